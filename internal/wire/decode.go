package wire

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/totegamma/unifedi/core"
)

const unknownFieldPrefix = "json: unknown field "

// Decode unmarshals body into v. Member names match v's json tags exactly.
// Strict mode rejects fields v does not declare, including declared names
// spelled with another casing. Every failure is a *core.Error stamped with
// entity.
func Decode(body []byte, v any, opts core.Options, entity string) error {
	body, err := checkKeys(body, reflect.TypeOf(v), opts, entity)
	if err != nil {
		return core.WithEntity(err, entity)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if opts.Strict() {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		return core.WithEntity(convert(err, body), entity)
	}

	offset := dec.InputOffset()
	if len(bytes.TrimSpace(body[offset:])) > 0 {
		return core.WithEntity(core.NewParseError("", fragment(body, offset), "trailing data after JSON value", nil), entity)
	}
	return nil
}

func convert(err error, body []byte) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var coreErr *core.Error

	switch {
	case errors.As(err, &coreErr):
		return coreErr
	case errors.As(err, &syntaxErr):
		return core.NewParseError("", fragment(body, syntaxErr.Offset), "malformed JSON", errors.WithStack(err))
	case errors.As(err, &typeErr):
		return core.NewParseError(typeErr.Field, typeErr.Value, "wrong JSON type", errors.WithStack(err))
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return core.NewParseError("", "", "empty or truncated body", errors.WithStack(err))
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		field := strings.Trim(strings.TrimPrefix(err.Error(), unknownFieldPrefix), `"`)
		return core.NewParseError(field, "", "unknown field", errors.WithStack(err))
	default:
		return core.NewParseError("", "", "malformed JSON", errors.WithStack(err))
	}
}

// fragment returns up to 32 bytes of body around offset.
func fragment(body []byte, offset int64) string {
	start := int(offset) - 16
	if start < 0 {
		start = 0
	}
	end := int(offset) + 16
	if end > len(body) {
		end = len(body)
	}
	if start > end {
		return ""
	}
	return string(body[start:end])
}
