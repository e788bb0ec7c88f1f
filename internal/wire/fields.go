package wire

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/totegamma/unifedi/core"
)

// Required returns *v, or a ParseError naming field when v is missing or null.
func Required[T any](entity, field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, &core.Error{Kind: core.KindParse, Entity: entity, Field: field, Message: "missing required field"}
	}
	return *v, nil
}

// Field is a required wire field and whether the body lacked it.
type Field struct {
	Name    string
	Missing bool
}

// CheckRequired reports the first missing field, in argument order.
func CheckRequired(entity string, fields ...Field) error {
	for _, f := range fields {
		if f.Missing {
			return &core.Error{Kind: core.KindParse, Entity: entity, Field: f.Name, Message: "missing required field"}
		}
	}
	return nil
}

// Count clamps a negative wire count to zero and reports it.
func Count(opts core.Options, entity, field string, n int64) uint64 {
	if n < 0 {
		opts.Warn(core.Warning{
			Entity:  entity,
			Field:   field,
			Message: "negative count clamped to zero",
			Value:   strconv.FormatInt(n, 10),
		})
		return 0
	}
	return uint64(n)
}

// OptionalCount is Count for counts a flavor may omit.
func OptionalCount(opts core.Options, entity, field string, n *int64) *uint64 {
	if n == nil {
		return nil
	}
	c := Count(opts, entity, field, *n)
	return &c
}

// TrimDisplayName removes trailing whitespace only.
func TrimDisplayName(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Deref returns *p or the zero value.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
