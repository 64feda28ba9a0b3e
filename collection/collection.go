// Package collection provides generic helpers for slices and maps.
//
// Helpers panic with an errors.Error with code InvalidArgument if a required argument
// (e.g. a predicate or factory function) is nil. The Param field names the argument.
package collection

import (
	"context"

	"github.com/dkinzler/respkit/errors"
)

const errorOrigin = "collection"

func checkNotNil(isNil bool, param string) {
	if isNil {
		panic(errors.NewInvalidArgument(errorOrigin, param))
	}
}

// AddIf appends v to the slice pointed to by c if pred(v) returns true.
// Reports whether v was added.
func AddIf[T any](c *[]T, pred func(T) bool, v T) bool {
	checkNotNil(c == nil, "collection")
	checkNotNil(pred == nil, "predicate")
	if !pred(v) {
		return false
	}
	*c = append(*c, v)
	return true
}

// GetOrAdd returns the value for key k.
// If m does not contain k, factory(k) is inserted and returned, otherwise factory is not called.
func GetOrAdd[K comparable, V any](m map[K]V, k K, factory func(K) V) V {
	checkNotNil(m == nil, "dictionary")
	checkNotNil(factory == nil, "factory")
	if v, ok := m[k]; ok {
		return v
	}
	v := factory(k)
	m[k] = v
	return v
}

// ForEach calls fn for every element of s in order.
// A nil slice is treated like an empty one.
func ForEach[T any](s []T, fn func(T)) {
	checkNotNil(fn == nil, "action")
	for _, v := range s {
		fn(v)
	}
}

// ForEachIndexed calls fn with the index and value of every element of s in order.
func ForEachIndexed[T any](s []T, fn func(int, T)) {
	checkNotNil(fn == nil, "action")
	for i, v := range s {
		fn(i, v)
	}
}

// ForEachContext calls fn for every element of s in order.
// Stops and returns the error if fn returns an error or ctx is done before an element is processed.
func ForEachContext[T any](ctx context.Context, s []T, fn func(context.Context, T) error) error {
	checkNotNil(fn == nil, "action")
	return ForEachIndexedContext(ctx, s, func(ctx context.Context, _ int, v T) error {
		return fn(ctx, v)
	})
}

// ForEachIndexedContext is ForEachContext with the index of the element passed to fn.
func ForEachIndexedContext[T any](ctx context.Context, s []T, fn func(context.Context, int, T) error) error {
	checkNotNil(fn == nil, "action")
	for i, v := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, i, v); err != nil {
			return err
		}
	}
	return nil
}

// Map returns a new slice with fn applied to every element of s.
// Returns nil if s is nil.
func Map[T any, U any](s []T, fn func(T) U) []U {
	checkNotNil(fn == nil, "selector")
	if s == nil {
		return nil
	}
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(v)
	}
	return result
}

// Filter returns the elements of s for which pred returns true, in order.
func Filter[T any](s []T, pred func(T) bool) []T {
	checkNotNil(pred == nil, "predicate")
	var result []T
	for _, v := range s {
		AddIf(&result, pred, v)
	}
	return result
}
