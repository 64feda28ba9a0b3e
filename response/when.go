package response

import (
	"context"

	"github.com/dkinzler/respkit/errors"
	"github.com/dkinzler/respkit/maybe"
)

// Transform computes a new response from the request held by a WhenBuilder.
type Transform func(Response) Response

// ContextTransform is a Transform that can block or fail.
type ContextTransform func(context.Context, Response) (Response, error)

// TransformOf is the Transform of a WhenBuilderOf[T].
type TransformOf[T any] func(Typed[T]) Response

// ContextTransformOf is the ContextTransform of a WhenBuilderOf[T].
type ContextTransformOf[T any] func(context.Context, Typed[T]) (Response, error)

// WhenBuilder conditionally transforms a response based on its variant.
//
//	r := response.When(res).
//		ExecuteIf(response.Is[response.NotFound](), func(r response.Response) response.Response {
//			return response.NewBadInput("unknown id", "id")
//		}).
//		Return()
//
// Transforms and matchers always see the original request passed to When, never the result of an earlier transform.
// Every transform that runs replaces the held result, the last one wins.
// A WhenBuilder is not safe for concurrent use.
type WhenBuilder struct {
	request Response
	result  Response
}

func When(r Response) *WhenBuilder {
	return &WhenBuilder{request: r, result: r}
}

// Execute runs fn unconditionally.
func (b *WhenBuilder) Execute(fn Transform) *WhenBuilder {
	checkTransform(fn == nil)
	b.result = fn(b.request)
	return b
}

// ExecuteIf runs fn if the request matches m.
func (b *WhenBuilder) ExecuteIf(m Matcher, fn Transform) *WhenBuilder {
	checkMatcher(m == nil)
	checkTransform(fn == nil)
	if m(b.request) {
		b.result = fn(b.request)
	}
	return b
}

// ExecuteIfNot runs fn if the request does not match m.
func (b *WhenBuilder) ExecuteIfNot(m Matcher, fn Transform) *WhenBuilder {
	checkMatcher(m == nil)
	return b.ExecuteIf(Not(m), fn)
}

// ExecuteContext runs fn unconditionally.
// If fn returns an error, the held result is not changed and the error is returned.
func (b *WhenBuilder) ExecuteContext(ctx context.Context, fn ContextTransform) (*WhenBuilder, error) {
	checkTransform(fn == nil)
	return b.executeContext(ctx, fn)
}

// ExecuteIfContext runs fn if the request matches m, see ExecuteContext.
func (b *WhenBuilder) ExecuteIfContext(ctx context.Context, m Matcher, fn ContextTransform) (*WhenBuilder, error) {
	checkMatcher(m == nil)
	checkTransform(fn == nil)
	if !m(b.request) {
		return b, nil
	}
	return b.executeContext(ctx, fn)
}

// ExecuteIfNotContext runs fn if the request does not match m, see ExecuteContext.
func (b *WhenBuilder) ExecuteIfNotContext(ctx context.Context, m Matcher, fn ContextTransform) (*WhenBuilder, error) {
	checkMatcher(m == nil)
	return b.ExecuteIfContext(ctx, Not(m), fn)
}

func (b *WhenBuilder) executeContext(ctx context.Context, fn ContextTransform) (*WhenBuilder, error) {
	r, err := fn(ctx, b.request)
	if err != nil {
		return b, err
	}
	b.result = r
	return b, nil
}

// Return returns the result of the last transform that ran.
// If no transform ran or it returned nil, the request is returned.
func (b *WhenBuilder) Return() Response {
	if b.result == nil {
		return b.request
	}
	return b.result
}

// WhenBuilderOf is a WhenBuilder for a response with a payload of type T.
// Transforms get typed access to the request.
type WhenBuilderOf[T any] struct {
	request Typed[T]
	result  Response
}

func WhenOf[T any](r Typed[T]) *WhenBuilderOf[T] {
	return &WhenBuilderOf[T]{request: r, result: r}
}

func (b *WhenBuilderOf[T]) Execute(fn TransformOf[T]) *WhenBuilderOf[T] {
	checkTransform(fn == nil)
	b.result = fn(b.request)
	return b
}

func (b *WhenBuilderOf[T]) ExecuteIf(m Matcher, fn TransformOf[T]) *WhenBuilderOf[T] {
	checkMatcher(m == nil)
	checkTransform(fn == nil)
	if m(b.request) {
		b.result = fn(b.request)
	}
	return b
}

func (b *WhenBuilderOf[T]) ExecuteIfNot(m Matcher, fn TransformOf[T]) *WhenBuilderOf[T] {
	checkMatcher(m == nil)
	return b.ExecuteIf(Not(m), fn)
}

func (b *WhenBuilderOf[T]) ExecuteContext(ctx context.Context, fn ContextTransformOf[T]) (*WhenBuilderOf[T], error) {
	checkTransform(fn == nil)
	return b.executeContext(ctx, fn)
}

func (b *WhenBuilderOf[T]) ExecuteIfContext(ctx context.Context, m Matcher, fn ContextTransformOf[T]) (*WhenBuilderOf[T], error) {
	checkMatcher(m == nil)
	checkTransform(fn == nil)
	if !m(b.request) {
		return b, nil
	}
	return b.executeContext(ctx, fn)
}

func (b *WhenBuilderOf[T]) ExecuteIfNotContext(ctx context.Context, m Matcher, fn ContextTransformOf[T]) (*WhenBuilderOf[T], error) {
	checkMatcher(m == nil)
	return b.ExecuteIfContext(ctx, Not(m), fn)
}

func (b *WhenBuilderOf[T]) executeContext(ctx context.Context, fn ContextTransformOf[T]) (*WhenBuilderOf[T], error) {
	r, err := fn(ctx, b.request)
	if err != nil {
		return b, err
	}
	b.result = r
	return b, nil
}

func (b *WhenBuilderOf[T]) Return() Response {
	if b.result == nil {
		return b.request
	}
	return b.result
}

// Returner is implemented by WhenBuilder and WhenBuilderOf.
type Returner interface {
	Return() Response
}

// Return returns the result of b as a response with payload type T.
// If the result is not a Typed[T], it is cast to one with an empty payload.
func Return[T any](b Returner) Typed[T] {
	return ReturnWith(b, maybe.Empty[T]())
}

// ReturnWith returns the result of b as a response with payload type T.
// If the result is not a Typed[T], it is cast to one with the given payload.
func ReturnWith[T any](b Returner, data maybe.Maybe[T]) Typed[T] {
	r := b.Return()
	if r == nil {
		return nil
	}
	if t, ok := r.(Typed[T]); ok {
		return t
	}
	return CastTo(r, data)
}

// As adapts a function that handles a concrete response type C to a Transform.
// Responses that are not of type C are returned unchanged, a generic counterpart of C is passed to fn as its non-generic variant.
func As[C Response](fn func(C) Response) Transform {
	return func(r Response) Response {
		c, ok := asVariant[C](r)
		if !ok {
			return r
		}
		return fn(c)
	}
}

// Into adapts a function that returns a typed response to a Transform.
func Into[T any](fn func(Response) Typed[T]) Transform {
	return func(r Response) Response {
		return fn(r)
	}
}

// AsContext is As for a ContextTransform.
func AsContext[C Response](fn func(context.Context, C) (Response, error)) ContextTransform {
	return func(ctx context.Context, r Response) (Response, error) {
		c, ok := asVariant[C](r)
		if !ok {
			return r, nil
		}
		return fn(ctx, c)
	}
}

// IntoContext is Into for a ContextTransform.
func IntoContext[T any](fn func(context.Context, Response) (Typed[T], error)) ContextTransform {
	return func(ctx context.Context, r Response) (Response, error) {
		t, err := fn(ctx, r)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// AsOf is As for a WhenBuilderOf[T].
func AsOf[T any, C Response](fn func(C) Response) TransformOf[T] {
	return func(r Typed[T]) Response {
		c, ok := asVariant[C](r)
		if !ok {
			return r
		}
		return fn(c)
	}
}

// IntoOf is Into for a WhenBuilderOf[T], e.g. to change the payload type.
func IntoOf[T any, U any](fn func(Typed[T]) Typed[U]) TransformOf[T] {
	return func(r Typed[T]) Response {
		return fn(r)
	}
}

func checkTransform(isNil bool) {
	if isNil {
		panic(errors.NewInvalidArgument("WhenBuilder", "fn"))
	}
}

func checkMatcher(isNil bool) {
	if isNil {
		panic(errors.NewInvalidArgument("WhenBuilder", "matcher"))
	}
}
