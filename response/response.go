// Package response implements a closed set of values that describe the outcome of a service operation,
// e.g. success, not found, bad input or error.
//
// Service code returns a Response instead of an error, a transport layer (see package transport/http)
// then maps it to e.g. a HTTP status code and body.
// Every variant has a generic counterpart that additionally carries an optional payload of type T,
// e.g. Success and SuccessOf[T]. The generic counterpart embeds the variant, so the accessors of the variant are available on it.
// Use CastTo to turn any response into a response with a payload of a given type.
//
// All responses are immutable values.
package response

import "github.com/dkinzler/respkit/maybe"

// Response is implemented by all response variants and their generic counterparts.
// The set of variants is closed, it is not possible to implement Response outside of this package.
type Response interface {
	Message() string
	Kind() Kind
	// returns the non-generic variant
	base() Response
}

// Typed is a Response that carries an optional payload of type T.
type Typed[T any] interface {
	Response
	Payload() maybe.Maybe[T]
	PayloadHolder
}

// PayloadHolder gives type erased access to the payload of a generic response.
// Useful in code that does not know the payload type, e.g. a mapper encoding the payload as JSON.
type PayloadHolder interface {
	AnyPayload() (interface{}, bool)
}

// CastTo returns the generic counterpart of the variant of r with payload data.
// All other fields like message, resource, errors or content are taken from r.
// If r already is a generic response, its payload is replaced.
// A new value is returned, r is never modified.
// Returns nil if r is nil.
func CastTo[T any](r Response, data maybe.Maybe[T]) Typed[T] {
	if r == nil {
		return nil
	}
	switch b := r.base().(type) {
	case Success:
		return NewSuccessOf(b, data)
	case NotFound:
		return NewNotFoundOf(b, data)
	case BadInput:
		return NewBadInputOf(b, data)
	case NotAuthenticated:
		return NewNotAuthenticatedOf(b, data)
	case NotAuthorized:
		return NewNotAuthorizedOf(b, data)
	case NotSupported:
		return NewNotSupportedOf(b, data)
	case NotImplemented:
		return NewNotImplementedOf(b, data)
	case Error:
		return NewErrorOf(b, data)
	case Aggregate:
		return NewAggregateOf(b, data)
	case StreamContent:
		return NewStreamContentOf(b, data)
	case ByteContent:
		return NewByteContentOf(b, data)
	}
	// not reachable, all variants are handled above
	return nil
}

// Base returns the non-generic variant of r, e.g. the Success value embedded in a SuccessOf[T].
// Returns r itself if it already is a non-generic variant and nil if r is nil.
func Base(r Response) Response {
	if r == nil {
		return nil
	}
	return r.base()
}

// Matcher decides whether a response should be processed, see WhenBuilder.
type Matcher func(Response) bool

// Is returns a Matcher that matches responses that are of type C.
// C can be a concrete variant, e.g. BadInput or BadInputOf[int], or an interface, e.g. Typed[int].
// A non-generic variant also matches its generic counterparts, i.e. Is[BadInput]() matches a BadInputOf[int],
// but Is[BadInputOf[int]]() does not match a BadInput.
func Is[C Response]() Matcher {
	return func(r Response) bool {
		_, ok := asVariant[C](r)
		return ok
	}
}

// asVariant returns r as a C, falling back to the non-generic variant embedded in r.
func asVariant[C Response](r Response) (C, bool) {
	if c, ok := r.(C); ok || r == nil {
		return c, ok
	}
	c, ok := Base(r).(C)
	return c, ok
}

// IsKind returns a Matcher that matches non-nil responses of the given kind.
func IsKind(k Kind) Matcher {
	return func(r Response) bool {
		return r != nil && r.Kind() == k
	}
}

// Not inverts a Matcher.
func Not(m Matcher) Matcher {
	return func(r Response) bool {
		return !m(r)
	}
}
