// Package check holds the argument validation shared by pools, typed facades
// and persistent value generators.
package check

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrArgumentNull    = errors.New("argument must not be nil")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentNull returns an error wrapping ErrArgumentNull that names the
// offending argument.
func ArgumentNull(name string) error {
	return errors.WithMessage(ErrArgumentNull, name)
}

// InvalidArgument returns an error wrapping ErrInvalidArgument that names the
// offending argument and the violated precondition.
func InvalidArgument(name, reason string) error {
	return errors.WithMessagef(ErrInvalidArgument, "%s %s", name, reason)
}

// IsNil reports whether v is nil or a typed nil held in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// NotNil returns ArgumentNull(name) if validation is enabled and v is nil.
func (m Mode) NotNil(name string, v any) error {
	if m.Enabled() && IsNil(v) {
		return ArgumentNull(name)
	}
	return nil
}

// NotNegative returns InvalidArgument(name) if validation is enabled and n is
// negative.
func (m Mode) NotNegative(name string, n int) error {
	if m.Enabled() && n < 0 {
		return InvalidArgument(name, "must not be negative")
	}
	return nil
}
