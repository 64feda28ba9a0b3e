// Package object provides generic helpers to cast and inspect values of unknown type.
package object

import (
	"reflect"

	"github.com/dkinzler/respkit/errors"
)

// As returns v as a T if v is of type T (or implements T if it is an interface), otherwise the zero value of T.
func As[T any](v interface{}) T {
	t, _ := TryAs[T](v)
	return t
}

// TryAs is As but additionally reports whether v is of type T.
func TryAs[T any](v interface{}) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// IsNil reports whether v is nil or an interface holding a nil pointer, map, slice, channel or function.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Implements reports whether v implements the interface I.
// Returns false for a nil v.
func Implements[I any](v interface{}) bool {
	if v == nil {
		return false
	}
	return TypeImplements(reflect.TypeOf(v), reflect.TypeOf((*I)(nil)).Elem())
}

// TypeImplements reports whether t implements the interface type iface.
// Panics with an error with code InvalidArgument if t or iface is nil or iface is not an interface type.
func TypeImplements(t reflect.Type, iface reflect.Type) bool {
	if t == nil {
		panic(errors.NewInvalidArgument("object", "type"))
	}
	if iface == nil {
		panic(errors.NewInvalidArgument("object", "interface"))
	}
	if iface.Kind() != reflect.Interface {
		panic(errors.New(nil, "object", errors.InvalidArgument).
			WithParam("interface").
			WithInternalMessage("argument interface must be an interface type"))
	}
	return t.Implements(iface)
}
