package response

import (
	"github.com/dkinzler/respkit/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FromError converts an error into the matching response variant.
// The variant is chosen based on the code of an errors.Error, see the table below.
// Errors of any other type become an Error response.
//
//	nil                                            -> Success
//	InvalidArgument, FailedPrecondition, OutOfRange -> BadInput (resource = Param)
//	NotFound                                       -> NotFound
//	Unauthenticated                                -> NotAuthenticated
//	PermissionDenied                               -> NotAuthorized
//	Unimplemented                                  -> NotImplemented
//	everything else                                -> Error with a single entry for err
func FromError(err error) Response {
	if err == nil {
		return NewSuccess("")
	}
	e, ok := err.(errors.Error)
	if !ok {
		return newErrorFromErr(err)
	}
	message := errors.Message(e)
	switch e.Code {
	case errors.InvalidArgument, errors.FailedPrecondition, errors.OutOfRange:
		return NewBadInput(message, e.Param)
	case errors.NotFound:
		return NewNotFound(message, e.Param)
	case errors.Unauthenticated:
		return NewNotAuthenticated(message, e.Param)
	case errors.PermissionDenied:
		return NewNotAuthorized(message, e.Param)
	case errors.Unimplemented:
		return NewNotImplemented(message, e.Param)
	default:
		return newErrorFromErr(err)
	}
}

// FromStatus converts an error returned by a gRPC client into the matching response variant.
// Uses the same mapping as FromError with the gRPC status codes.
// Errors that do not carry a gRPC status become an Error response.
func FromStatus(err error) Response {
	if err == nil {
		return NewSuccess("")
	}
	s, ok := status.FromError(err)
	if !ok {
		return newErrorFromErr(err)
	}
	message := s.Message()
	switch s.Code() {
	case codes.OK:
		return NewSuccess(message)
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return NewBadInput(message, "")
	case codes.NotFound:
		return NewNotFound(message, "")
	case codes.Unauthenticated:
		return NewNotAuthenticated(message, "")
	case codes.PermissionDenied:
		return NewNotAuthorized(message, "")
	case codes.Unimplemented:
		return NewNotImplemented(message, "")
	default:
		return NewError(message, NewErrorEntry(0, "", message, err))
	}
}

func newErrorFromErr(err error) Error {
	entry, buildErr := NewEntryBuilder().WithError(err).Build()
	if buildErr != nil {
		// err has an empty message
		entry = NewErrorEntry(0, "", errors.Internal.String(), err)
	}
	return NewError("", entry)
}
