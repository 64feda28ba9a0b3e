package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/dkinzler/respkit/response"
)

// Mapper converts a response into a transport specific result R.
type Mapper[R any] interface {
	Map(response.Response) R
}

// MapperFunc is an adapter to use an ordinary function as a Mapper.
type MapperFunc[R any] func(response.Response) R

func (f MapperFunc[R]) Map(r response.Response) R {
	return f(r)
}

// Result is a HTTP status code together with either a body that should be encoded as JSON or raw content.
type Result struct {
	Status int
	// encoded as JSON, nothing is written if Body is nil
	Body interface{}

	// set for content responses, Content is written as is instead of Body
	ContentType string
	Content     io.Reader
}

func (r Result) IsContent() bool {
	return r.Content != nil
}

// FieldErrors maps the name of an input field to the problems with its value.
//
// The json body has the following format:
//
//	{
//	  "Name": ["must not be empty"],
//	  "Age": ["must be positive", "must be < 200"]
//	}
type FieldErrors map[string][]string

func (f FieldErrors) add(field string, message string) {
	f[field] = append(f[field], message)
}

// ResultMapper is the default Mapper, it maps a response to a HTTP status code and body.
// The first matching rule wins:
//
//	Success          -> 200, payload if present, otherwise the message
//	NotFound         -> 404, message
//	BadInput         -> 400, FieldErrors with the message for the resource
//	Error            -> 500, the error response with all its entries
//	NotSupported     -> 415, message
//	NotAuthenticated -> 401, message
//	NotAuthorized    -> 403, message
//	Aggregate        -> 200 if all children are successful (or there are none),
//	                    400 with FieldErrors of all BadInput children,
//	                    500 with an Error combining all Error children,
//	                    404, 415, 401, 403 if a child of the respective kind exists (in this order),
//	                    body is the message of the aggregate
//	StreamContent    -> 200, raw content
//	ByteContent      -> 200, raw content
//	anything else    -> 500, no body
//
// The two content rules extend the usual table, which leaves content responses unmatched.
// Generic responses are mapped like their non-generic variant.
type ResultMapper struct{}

func NewResultMapper() ResultMapper {
	return ResultMapper{}
}

func (m ResultMapper) Map(r response.Response) Result {
	switch b := response.Base(r).(type) {
	case response.Success:
		if p, ok := r.(response.PayloadHolder); ok {
			if v, ok := p.AnyPayload(); ok {
				return Result{Status: http.StatusOK, Body: v}
			}
		}
		return Result{Status: http.StatusOK, Body: b.Message()}
	case response.NotFound:
		return Result{Status: http.StatusNotFound, Body: b.Message()}
	case response.BadInput:
		return Result{Status: http.StatusBadRequest, Body: FieldErrors{b.Resource(): {b.Message()}}}
	case response.Error:
		return Result{Status: http.StatusInternalServerError, Body: b}
	case response.NotSupported:
		return Result{Status: http.StatusUnsupportedMediaType, Body: b.Message()}
	case response.NotAuthenticated:
		return Result{Status: http.StatusUnauthorized, Body: b.Message()}
	case response.NotAuthorized:
		return Result{Status: http.StatusForbidden, Body: b.Message()}
	case response.Aggregate:
		return m.mapAggregate(b)
	case response.StreamContent:
		return Result{Status: http.StatusOK, ContentType: b.ContentType(), Content: b.Content()}
	case response.ByteContent:
		return Result{Status: http.StatusOK, ContentType: b.ContentType(), Content: bytes.NewReader(b.Content())}
	}
	return Result{Status: http.StatusInternalServerError}
}

func (m ResultMapper) mapAggregate(r response.Aggregate) Result {
	if r.All(response.KindSuccess) {
		return Result{Status: http.StatusOK, Body: r.Message()}
	}
	if r.Contains(response.KindBadInput) {
		fe := FieldErrors{}
		for _, c := range r.OfKind(response.KindBadInput) {
			bi := response.Base(c).(response.BadInput)
			fe.add(bi.Resource(), bi.Message())
		}
		return Result{Status: http.StatusBadRequest, Body: fe}
	}
	if r.Contains(response.KindError) {
		var message strings.Builder
		var entries []response.ErrorEntry
		for _, c := range r.OfKind(response.KindError) {
			e := response.Base(c).(response.Error)
			message.WriteString(e.Message())
			message.WriteString("\n")
			entries = append(entries, e.Errors()...)
		}
		return Result{Status: http.StatusInternalServerError, Body: response.NewError(message.String(), entries...)}
	}
	for _, s := range []struct {
		kind   response.Kind
		status int
	}{
		{response.KindNotFound, http.StatusNotFound},
		{response.KindNotSupported, http.StatusUnsupportedMediaType},
		{response.KindNotAuthenticated, http.StatusUnauthorized},
		{response.KindNotAuthorized, http.StatusForbidden},
	} {
		if r.Contains(s.kind) {
			return Result{Status: s.status, Body: r.Message()}
		}
	}
	return Result{Status: http.StatusInternalServerError}
}
