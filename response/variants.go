package response

//go:generate go run github.com/dkinzler/respkit/codegen -dir . -output variants_gen.go

import (
	"io"
	"strings"

	"github.com/dkinzler/respkit/maybe"
)

// Content type used by content responses if none is provided.
const DefaultContentType = "application/octet-stream"

// Fields shared by variants that refer to a resource, e.g. the name of an input field or the path of the requested entity.
type described struct {
	message  string
	resource string
}

func (d described) Message() string {
	return d.message
}

// The resource the response refers to.
// For BadInput this is the name of the offending input field.
func (d described) Resource() string {
	return d.resource
}

// The operation succeeded.
type Success struct {
	message string
}

func NewSuccess(message string) Success {
	return Success{message: message}
}

// Ok is a shorthand for a successful response with the given payload and no message.
// A nil payload (e.g. a nil pointer or slice) results in an empty payload.
func Ok[T any](payload T) SuccessOf[T] {
	return NewSuccessOf(Success{}, maybe.Of(payload))
}

func (r Success) Message() string { return r.message }
func (r Success) Kind() Kind      { return KindSuccess }
func (r Success) base() Response  { return r }

// The requested resource does not exist.
type NotFound struct {
	described
}

func NewNotFound(message string, resource string) NotFound {
	return NotFound{described{message: message, resource: resource}}
}

func (r NotFound) Kind() Kind     { return KindNotFound }
func (r NotFound) base() Response { return r }

// The input of the operation was invalid, Resource names the offending field.
type BadInput struct {
	described
}

func NewBadInput(message string, resource string) BadInput {
	return BadInput{described{message: message, resource: resource}}
}

func (r BadInput) Kind() Kind     { return KindBadInput }
func (r BadInput) base() Response { return r }

// The caller could not be authenticated.
type NotAuthenticated struct {
	described
}

func NewNotAuthenticated(message string, resource string) NotAuthenticated {
	return NotAuthenticated{described{message: message, resource: resource}}
}

func (r NotAuthenticated) Kind() Kind     { return KindNotAuthenticated }
func (r NotAuthenticated) base() Response { return r }

// The caller is authenticated but not allowed to perform the operation.
type NotAuthorized struct {
	described
}

func NewNotAuthorized(message string, resource string) NotAuthorized {
	return NotAuthorized{described{message: message, resource: resource}}
}

func (r NotAuthorized) Kind() Kind     { return KindNotAuthorized }
func (r NotAuthorized) base() Response { return r }

// The operation does not support the given input, e.g. an unknown media type.
type NotSupported struct {
	described
}

func NewNotSupported(message string, resource string) NotSupported {
	return NotSupported{described{message: message, resource: resource}}
}

func (r NotSupported) Kind() Kind     { return KindNotSupported }
func (r NotSupported) base() Response { return r }

type NotImplemented struct {
	described
}

func NewNotImplemented(message string, resource string) NotImplemented {
	return NotImplemented{described{message: message, resource: resource}}
}

func (r NotImplemented) Kind() Kind     { return KindNotImplemented }
func (r NotImplemented) base() Response { return r }

// The operation failed, Errors describes what went wrong.
type Error struct {
	message string
	errors  []ErrorEntry
}

// Returns a new Error response.
// If message is empty, the message of the first entry is used.
func NewError(message string, entries ...ErrorEntry) Error {
	if message == "" && len(entries) > 0 {
		message = entries[0].Message
	}
	return Error{
		message: message,
		errors:  append([]ErrorEntry(nil), entries...),
	}
}

func (r Error) Message() string { return r.message }
func (r Error) Kind() Kind      { return KindError }
func (r Error) base() Response  { return r }

// Returns a copy of the error entries.
func (r Error) Errors() []ErrorEntry {
	return append([]ErrorEntry(nil), r.errors...)
}

// A response composed of multiple child responses, e.g. one for every item of a batch operation.
type Aggregate struct {
	message   string
	responses []Response
}

func NewAggregate(message string, responses ...Response) Aggregate {
	return Aggregate{
		message:   message,
		responses: append([]Response(nil), responses...),
	}
}

func (r Aggregate) Message() string { return r.message }
func (r Aggregate) Kind() Kind      { return KindAggregate }
func (r Aggregate) base() Response  { return r }

// Returns a copy of the child responses.
func (r Aggregate) Responses() []Response {
	return append([]Response(nil), r.responses...)
}

// All reports whether every child response is of the given kind.
// Returns true if there are no child responses.
func (r Aggregate) All(k Kind) bool {
	for _, c := range r.responses {
		if c == nil || c.Kind() != k {
			return false
		}
	}
	return true
}

// Contains reports whether at least one child response is of the given kind.
func (r Aggregate) Contains(k Kind) bool {
	for _, c := range r.responses {
		if c != nil && c.Kind() == k {
			return true
		}
	}
	return false
}

// Returns the child responses of the given kind, in order.
func (r Aggregate) OfKind(k Kind) []Response {
	var result []Response
	for _, c := range r.responses {
		if c != nil && c.Kind() == k {
			result = append(result, c)
		}
	}
	return result
}

// AllOf reports whether every child response of r is of type C.
func AllOf[C Response](r Aggregate) bool {
	for _, c := range r.responses {
		if _, ok := c.(C); !ok {
			return false
		}
	}
	return true
}

// ContainsOf reports whether at least one child response of r is of type C.
func ContainsOf[C Response](r Aggregate) bool {
	for _, c := range r.responses {
		if _, ok := c.(C); ok {
			return true
		}
	}
	return false
}

// ResponsesOf returns the child responses of r that are of type C, in order.
func ResponsesOf[C Response](r Aggregate) []C {
	var result []C
	for _, c := range r.responses {
		if v, ok := c.(C); ok {
			result = append(result, v)
		}
	}
	return result
}

// Content that should be streamed to the caller, e.g. a file.
// The reader is owned by the caller, the response only holds a reference to it.
type StreamContent struct {
	message     string
	content     io.Reader
	contentType string
}

// A nil content results in an empty reader, an empty content type in DefaultContentType.
func NewStreamContent(message string, content io.Reader, contentType string) StreamContent {
	if content == nil {
		content = strings.NewReader("")
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	return StreamContent{message: message, content: content, contentType: contentType}
}

func (r StreamContent) Message() string     { return r.message }
func (r StreamContent) Kind() Kind          { return KindStreamContent }
func (r StreamContent) base() Response      { return r }
func (r StreamContent) Content() io.Reader  { return r.content }
func (r StreamContent) ContentType() string { return r.contentType }

// Content that is already in memory.
// The byte slice is not copied, callers should not modify it after creating the response.
type ByteContent struct {
	message     string
	content     []byte
	contentType string
}

// A nil content results in an empty slice, an empty content type in DefaultContentType.
func NewByteContent(message string, content []byte, contentType string) ByteContent {
	if content == nil {
		content = []byte{}
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	return ByteContent{message: message, content: content, contentType: contentType}
}

func (r ByteContent) Message() string     { return r.message }
func (r ByteContent) Kind() Kind          { return KindByteContent }
func (r ByteContent) base() Response      { return r }
func (r ByteContent) Content() []byte     { return r.content }
func (r ByteContent) ContentType() string { return r.contentType }
