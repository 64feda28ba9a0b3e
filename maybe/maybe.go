// Package maybe implements an optional value box that distinguishes "no value" from "a value that happens to be the zero value".
// It is used for response payloads, where e.g. a payload of 0 is different from no payload at all.
package maybe

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Maybe either holds a value of type T or nothing.
// The zero value is the empty Maybe, so
//
//	var m Maybe[int]
//
// and Empty[int]() are the same thing.
// A Maybe is immutable, there are no methods to change it after construction.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Returns the empty Maybe for type T.
func Empty[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Returns a Maybe holding the given value.
// Note that the Maybe has a value even if v is a nil pointer, use Of to treat nil as "no value".
func WithValue[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, hasValue: true}
}

// Of converts v into a Maybe.
// If v is nil (a nil interface, pointer, map, slice, channel or function) the empty Maybe is returned.
func Of[T any](v T) Maybe[T] {
	if isNil(v) {
		return Empty[T]()
	}
	return WithValue(v)
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

// Returns the value or the zero value of T if the Maybe is empty.
func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.hasValue
}

// Returns the value or def if the Maybe is empty.
func (m Maybe[T]) OrElse(def T) T {
	if m.hasValue {
		return m.value
	}
	return def
}

// Equal reports whether both values are empty or both hold equal values.
// If T has a method "Equal(T) bool" it is used to compare values, otherwise values are compared with reflect.DeepEqual.
func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.hasValue != other.hasValue {
		return false
	}
	if !m.hasValue {
		return true
	}
	if eq, ok := any(m.value).(interface{ Equal(T) bool }); ok {
		return eq.Equal(other.value)
	}
	return reflect.DeepEqual(m.value, other.value)
}

// An empty Maybe is encoded as JSON null, otherwise the value is encoded.
func (m Maybe[T]) MarshalJSON() ([]byte, error) {
	if !m.hasValue {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

// JSON null results in the empty Maybe.
func (m *Maybe[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Empty[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = WithValue(v)
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
