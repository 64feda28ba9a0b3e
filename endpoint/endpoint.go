// Package endpoint provides helpers and additional functionality for github.com/go-kit/kit/endpoint .
package endpoint

import (
	"context"

	"github.com/dkinzler/respkit/errors"
	"github.com/dkinzler/respkit/object"
	"github.com/dkinzler/respkit/response"

	"github.com/go-kit/kit/endpoint"
)

/*
A type implementing Responder can be used to wrap the response and error value returned by the
business logic/service/component part of an endpoint.
This makes it easier to distinguish between the outcome of the business logic/service/component code of an endpoint
and errors originating in endpoint code itself, e.g. an endpoint middleware.
The outcome of the service, whether it succeeded or not, is a response.Response.
An unexpected error from the service will be wrapped in the Responder type as well and therefore
returned as part of the "response" (first) return value of an endpoint function.
Whereas an error from endpoint code will be returned as the error return value of an endpoint function.

The following examples demonstrate the intended usage of Responder:

	func endpointFunc(ctx context.Context, request interface{}) (interface{}, error) {
		result, err := service.SomeServiceMethod(ctx, request)
		// Wrap response and error from service in Response, the default type implementing Responder.
		// The error return value of this endpoint function will be nil.
		return Response{
			R: result,
			Err: err,
		}, nil
	}

	// Errors from an endpoint middleware will be returned in the error return value of the endpoint function.
	func exampleEndpointMiddleware() endpoint.Middleware {
		return func(next endpoint.Endpoint) endpoint.Endpoint {
			return func(ctx context.Context, request interface{}) (interface{}, error) {
				err := PerformSomeOperationThatMightFail(request)
				if err != nil {
					return nil, err
				}
				return next(ctx, request)
			}
		}
	}

Use Make to avoid writing these endpoint functions by hand.
*/
type Responder interface {
	Response() response.Response
	Error() error
}

// Default implementation of Responder.
type Response struct {
	R   response.Response
	Err error
}

func (r Response) Response() response.Response {
	return r.R
}

func (r Response) Error() error {
	return r.Err
}

// Compile-time assertion that makes sure Response implements Responder.
var _ Responder = Response{}

// Outcome returns the response of r, if r contains an error it is converted with response.FromError.
func Outcome(r Responder) response.Response {
	if r.Error() != nil {
		return response.FromError(r.Error())
	}
	return r.Response()
}

// Make creates an endpoint from a service method that takes a request of type Req.
// The result of the service method is wrapped in a Response.
// If the request passed to the endpoint is not of type Req, an error with code InvalidArgument is returned by the endpoint.
func Make[Req any](fn func(context.Context, Req) (response.Response, error)) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req, ok := object.TryAs[Req](request)
		if !ok {
			return nil, errors.New(nil, errorOrigin, errors.InvalidArgument).
				WithInternalMessage("endpoint called with request of wrong type, this is probably a bug")
		}
		r, err := fn(ctx, req)
		return Response{R: r, Err: err}, nil
	}
}

const errorOrigin = "endpoint"
