package wire

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/totegamma/unifedi/core"
)

// Entry binds a unified variant to one wire spelling.
type Entry[T comparable] struct {
	Variant T
	Wire    string
}

// Table maps wire spellings to unified variants and back. When several
// spellings share a variant, the first listed is canonical for encoding.
type Table[T comparable] struct {
	field     string
	toVariant map[string]T
	toWire    map[T]string
	unknown   func(string) T
}

func NewTable[T comparable](field string, unknown func(string) T, entries ...Entry[T]) Table[T] {
	t := Table[T]{
		field:     field,
		toVariant: make(map[string]T, len(entries)),
		toWire:    make(map[T]string, len(entries)),
		unknown:   unknown,
	}
	for _, e := range entries {
		if _, dup := t.toVariant[e.Wire]; dup {
			panic(fmt.Sprintf("wire: duplicate spelling %q for %s", e.Wire, field))
		}
		t.toVariant[e.Wire] = e.Variant
		if _, ok := t.toWire[e.Variant]; !ok {
			t.toWire[e.Variant] = e.Wire
		}
	}
	return t
}

// Decode resolves s. Unrecognized spellings become the Unknown variant in
// lenient mode and an UnknownVariantError in strict mode.
func (t Table[T]) Decode(opts core.Options, entity, s string) (T, error) {
	if v, ok := t.toVariant[s]; ok {
		return v, nil
	}
	if opts.Strict() {
		var zero T
		err := core.NewUnknownVariantError(t.field, s)
		err.Entity = entity
		return zero, err
	}
	opts.Warn(core.Warning{Entity: entity, Field: t.field, Message: "unrecognized variant", Value: s})
	return t.unknown(s), nil
}

// Encode returns the canonical spelling of v.
func (t Table[T]) Encode(v T) (string, bool) {
	s, ok := t.toWire[v]
	return s, ok
}

// Spellings lists every recognized wire spelling, sorted.
func (t Table[T]) Spellings() []string {
	keys := maps.Keys(t.toVariant)
	slices.Sort(keys)
	return keys
}

// Variants lists every variant with a canonical spelling.
func (t Table[T]) Variants() []T {
	return maps.Keys(t.toWire)
}
