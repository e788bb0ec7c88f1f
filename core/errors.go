package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a translation failure.
type Kind int

const (
	KindOther Kind = iota
	KindParse
	KindUnknownVariant
	KindOwn
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindUnknownVariant:
		return "UnknownVariantError"
	case KindOwn:
		return "OwnError"
	case KindHTTP:
		return "HTTPError"
	default:
		return "OtherError"
	}
}

// Error is the error type returned by every decoder.
type Error struct {
	Kind       Kind
	Entity     string // entity being decoded (ex: "notification")
	Field      string // offending wire field, if any
	Fragment   string // raw offending value, if feasible
	Message    string
	StatusCode int // KindHTTP only
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Entity != "" {
		b.WriteString(" [")
		b.WriteString(e.Entity)
		b.WriteString("]")
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " status %d", e.StatusCode)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Fragment != "" {
		fmt.Fprintf(&b, " (%q)", e.Fragment)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause implements the pkg/errors causer interface.
func (e *Error) Cause() error {
	return e.Err
}

func NewParseError(field, fragment, message string, cause error) *Error {
	return &Error{Kind: KindParse, Field: field, Fragment: fragment, Message: message, Err: cause}
}

func NewUnknownVariantError(field, value string) *Error {
	return &Error{Kind: KindUnknownVariant, Field: field, Fragment: value, Message: "unrecognized variant"}
}

// NewOwnError creates an error originated by the translation layer itself.
func NewOwnError(message string, cause error) *Error {
	return &Error{Kind: KindOwn, Message: message, Err: cause}
}

// NewHTTPError wraps a transport failure. The translation layer never creates these itself.
func NewHTTPError(statusCode int, body string, cause error) *Error {
	return &Error{Kind: KindHTTP, StatusCode: statusCode, Fragment: body, Err: cause}
}

func NewOtherError(message string, cause error) *Error {
	return &Error{Kind: KindOther, Message: message, Err: cause}
}

// WithEntity stamps the entity name on err. Foreign errors become OwnError.
func WithEntity(err error, entity string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		stamped := *e
		if stamped.Entity == "" {
			stamped.Entity = entity
		}
		return &stamped
	}
	return &Error{Kind: KindOwn, Entity: entity, Message: "decode failed", Err: errors.WithStack(err)}
}

// KindOf returns the kind of err, or KindOther for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

func IsParseError(err error) bool {
	return err != nil && KindOf(err) == KindParse
}

func IsUnknownVariant(err error) bool {
	return err != nil && KindOf(err) == KindUnknownVariant
}

func IsHTTPError(err error) bool {
	return err != nil && KindOf(err) == KindHTTP
}
