package wire

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/totegamma/unifedi/core"
)

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// fieldCache holds the json member names of each struct type.
var fieldCache sync.Map // reflect.Type -> map[string]reflect.Type

// encoding/json matches members case-insensitively; the wire formats do not.
// checkKeys finds members of body whose name equals a declared member of t
// only up to case. Strict mode rejects the first one. Otherwise each is
// reported and dropped, and the rewritten body is returned.
func checkKeys(body []byte, t reflect.Type, opts core.Options, entity string) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		// reported by the real decode
		return body, nil
	}
	if len(bytes.TrimSpace(body[dec.InputOffset():])) > 0 {
		return body, nil
	}

	w := keyWalker{opts: opts, entity: entity}
	if err := w.walk(tree, t); err != nil {
		return nil, err
	}
	if !w.changed {
		return body, nil
	}

	rewritten, err := json.Marshal(tree)
	if err != nil {
		return nil, core.NewOwnError("failed to rewrite body", errors.WithStack(err))
	}
	return rewritten, nil
}

type keyWalker struct {
	opts    core.Options
	entity  string
	changed bool
}

func (w *keyWalker) walk(v any, t reflect.Type) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		fields := fieldsOf(t)

		keys := maps.Keys(obj)
		slices.Sort(keys)
		for _, key := range keys {
			if ft, ok := fields[key]; ok {
				if err := w.walk(obj[key], ft); err != nil {
					return err
				}
				continue
			}

			declared, ok := foldedName(fields, key)
			if !ok {
				continue
			}
			if w.opts.Strict() {
				return core.NewParseError(key, "", "unknown field casing, expected "+declared, nil)
			}
			w.opts.Warn(core.Warning{
				Entity:  w.entity,
				Field:   key,
				Message: "unknown field casing ignored",
				Value:   declared,
			})
			delete(obj, key)
			w.changed = true
		}

	case reflect.Slice, reflect.Array:
		items, ok := v.([]any)
		if !ok {
			return nil
		}
		for _, item := range items {
			if err := w.walk(item, t.Elem()); err != nil {
				return err
			}
		}

	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		keys := maps.Keys(obj)
		slices.Sort(keys)
		for _, key := range keys {
			if err := w.walk(obj[key], t.Elem()); err != nil {
				return err
			}
		}
	}
	return nil
}

func foldedName(fields map[string]reflect.Type, key string) (string, bool) {
	names := maps.Keys(fields)
	slices.Sort(names)
	for _, name := range names {
		if strings.EqualFold(name, key) {
			return name, true
		}
	}
	return "", false
}

func fieldsOf(t reflect.Type) map[string]reflect.Type {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]reflect.Type)
	}

	fields := map[string]reflect.Type{}
	collectFields(t, fields)

	fieldCache.Store(t, fields)
	return fields
}

// collectFields follows encoding/json naming: the tag name, else the Go
// field name; untagged embedded structs are promoted. Outer fields win.
func collectFields(t reflect.Type, fields map[string]reflect.Type) {
	var embedded []reflect.Type

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				embedded = append(embedded, ft)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if _, ok := fields[name]; !ok {
			fields[name] = f.Type
		}
	}

	for _, et := range embedded {
		collectFields(et, fields)
	}
}
