// Package errors provides the structured error type used throughout the kit.
// An error can carry an error code, public and internal messages, the component it originated in,
// the name of an offending parameter, a stack trace and wrap another error.
// Errors are not how service outcomes are reported (see package response), they are used for
// programming mistakes, precondition violations of helpers and transport failures.
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// A small set of common error codes that apply to most situations.
// Package response uses them to convert an error into a matching response variant,
// e.g. an error with code NotFound becomes a NotFound response and therefore a 404 status code.
// The codes are modeled after protobuf/grpc (see e.g. https://grpc.github.io/grpc/core/md_doc_statuscodes.html).
type ErrorCode int

const (
	Unknown ErrorCode = iota
	Cancelled
	//invalid argument was provided, e.g. a nil map or function passed to a helper, see also the Param field of Error
	InvalidArgument
	DeadlineExceeded
	NotFound
	AlreadyExists
	//caller does not have permission to execute the operation
	PermissionDenied
	//no or invalid authentication credentials were provided
	Unauthenticated
	//system is not in the correct state to execute the operation
	FailedPrecondition
	Aborted
	OutOfRange
	Unimplemented
	Internal
	Unavailable
)

func (e ErrorCode) String() string {
	s := [...]string{"Unknown", "Cancelled", "InvalidArgument", "DeadlineExceeded", "NotFound", "AlreadyExists", "PermissionDenied", "Unauthenticated", "FailedPrecondition", "Aborted", "OutOfRange", "Unimplemented", "Internal", "Unavailable"}
	if e >= 0 && int(e) < len(s) {
		return s[e]
	}
	return "InvalidErrorCode"
}

// Structured error that can encode additional context about an error.
// All the fields are optional, although it makes sense to always provide at least the origin and a general error code.
type Error struct {
	//component this error was created in
	Origin string
	//wrap another error
	Inner      error
	StackTrace []byte

	//general error code, see comments at the definition of type ErrorCode
	Code ErrorCode

	//name of the parameter/field the error relates to, usually set for errors with code InvalidArgument
	//e.g. an ErrorEntry built from this error uses it as the RelatedTo value
	Param string

	//code or message that might be provided to a user/client
	//Note: error codes should be > 0, a zero value will be interpreted as "no error code set"
	PublicCode    int
	PublicMessage string

	//code or message for internal use only, these could e.g. be written to application logs
	//Note: error codes should be > 0, a zero value will be interpreted as "no error code set"
	InternalCode    int
	InternalMessage string
}

// Errors can be build incrementally by chaining:
//
//	New(nil, "abc", InvalidArgument).WithParam("name").WithPublicMessage("name must not be empty")
func New(inner error, origin string, code ErrorCode) Error {
	var stack []byte
	//only add a stack trace if this is the innermost error
	if _, ok := inner.(Error); !ok {
		stack = debug.Stack()
	}
	return Error{
		Origin:     origin,
		Inner:      inner,
		StackTrace: stack,
		Code:       code,
	}
}

// Returns an error with code InvalidArgument for the given parameter name.
// Helper functions use it to report a missing (nil) argument.
func NewInvalidArgument(origin string, param string) Error {
	return New(nil, origin, InvalidArgument).
		WithParam(param).
		WithInternalMessage(fmt.Sprintf("argument %v must not be nil", param))
}

// implements the error interface
func (e Error) Error() string {
	r := fmt.Sprintf("origin: %v, code: %v", e.Origin, e.Code.String())
	if e.Param != "" {
		r += fmt.Sprintf(", param: %v", e.Param)
	}
	if e.PublicCode != 0 {
		r += fmt.Sprintf(", publicCode: %v", e.PublicCode)
	}
	if e.PublicMessage != "" {
		r += fmt.Sprintf(", publicMessage: %v", e.PublicMessage)
	}
	if e.InternalCode != 0 {
		r += fmt.Sprintf(", internalCode: %v", e.InternalCode)
	}
	if e.InternalMessage != "" {
		r += fmt.Sprintf(", internalMessage: %v", e.InternalMessage)
	}
	if e.StackTrace != nil {
		r += fmt.Sprintf(", stackTrace: %v", string(e.StackTrace))
	}
	if e.Inner != nil {
		r += fmt.Sprintf(", inner: [%v]", e.Inner.Error())
	}
	return r
}

// Unwrap makes the inner error visible to errors.Is and errors.As from the standard library.
func (e Error) Unwrap() error {
	return e.Inner
}

func (e Error) WithOrigin(origin string) Error {
	e.Origin = origin
	return e
}

func (e Error) WithInner(inner error) Error {
	e.Inner = inner
	return e
}

func (e Error) WithCode(code ErrorCode) Error {
	e.Code = code
	return e
}

func (e Error) WithParam(param string) Error {
	e.Param = param
	return e
}

// error codes should be > 0, a zero value will be interpreted as "no error code set"
func (e Error) WithPublicCode(code int) Error {
	e.PublicCode = code
	return e
}

func (e Error) WithPublicMessage(message string) Error {
	e.PublicMessage = message
	return e
}

// error codes should be > 0, a zero value will be interpreted as "no error code set"
func (e Error) WithInternalCode(code int) Error {
	e.InternalCode = code
	return e
}

func (e Error) WithInternalMessage(message string) Error {
	e.InternalMessage = message
	return e
}

func (e Error) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	if e.Origin != "" {
		m["origin"] = e.Origin
	}
	if e.Inner != nil {
		if inner, ok := e.Inner.(Error); ok {
			m["inner"] = inner.ToMap()
		} else {
			m["inner"] = e.Inner.Error()
		}
	}
	if e.StackTrace != nil {
		// since this usually ends up as a json log message, we split the stack trace apart into individual lines
		parts := strings.Split(strings.TrimSpace(string(e.StackTrace)), "\n")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		m["stackTrace"] = parts
	}
	m["code"] = e.Code.String()
	if e.Param != "" {
		m["param"] = e.Param
	}
	if e.PublicCode != 0 {
		m["publicCode"] = e.PublicCode
	}
	if e.PublicMessage != "" {
		m["publicMessage"] = e.PublicMessage
	}
	if e.InternalCode != 0 {
		m["internalCode"] = e.InternalCode
	}
	if e.InternalMessage != "" {
		m["internalMessage"] = e.InternalMessage
	}
	return m
}

// Returns a short human readable message for the given error, without stack traces.
// For an Error the public message is preferred, then the internal message, then the message of the inner error
// and finally the name of the error code.
// For any other error the result of Error() is returned.
func Message(err error) string {
	if err == nil {
		return ""
	}
	e, ok := err.(Error)
	if !ok {
		return err.Error()
	}
	if e.PublicMessage != "" {
		return e.PublicMessage
	}
	if e.InternalMessage != "" {
		return e.InternalMessage
	}
	if e.Inner != nil {
		return Message(e.Inner)
	}
	return e.Code.String()
}

// Returns the parameter name of the first Error in the chain of wrapped errors that has code InvalidArgument and a non-empty Param.
func ParamOf(err error) (string, bool) {
	for err != nil {
		var e Error
		if !stderrors.As(err, &e) {
			return "", false
		}
		if e.Code == InvalidArgument && e.Param != "" {
			return e.Param, true
		}
		err = e.Inner
	}
	return "", false
}

// Traverse inner errors and concatenate them in a slice
func UnstackErrors(e error) []error {
	var result []error
	var err error = e
	v, ok := err.(Error)
	for ok {
		result = append(result, v)
		err = v.Inner
		v, ok = err.(Error)
	}
	if err != nil {
		result = append(result, err)
	}
	return result
}

func Is(err error, code ErrorCode) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Code == code
}

func IsUnknownError(err error) bool {
	return Is(err, Unknown)
}

func IsCancelledError(err error) bool {
	return Is(err, Cancelled)
}

func IsInvalidArgumentError(err error) bool {
	return Is(err, InvalidArgument)
}

func IsDeadlineExceededError(err error) bool {
	return Is(err, DeadlineExceeded)
}

func IsNotFoundError(err error) bool {
	return Is(err, NotFound)
}

func IsAlreadyExistsError(err error) bool {
	return Is(err, AlreadyExists)
}

func IsPermissionDeniedError(err error) bool {
	return Is(err, PermissionDenied)
}

func IsUnauthenticatedError(err error) bool {
	return Is(err, Unauthenticated)
}

func IsFailedPreconditionError(err error) bool {
	return Is(err, FailedPrecondition)
}

func IsAbortedError(err error) bool {
	return Is(err, Aborted)
}

func IsOutOfRangeError(err error) bool {
	return Is(err, OutOfRange)
}

func IsUnimplementedError(err error) bool {
	return Is(err, Unimplemented)
}

func IsInternalError(err error) bool {
	return Is(err, Internal)
}

func IsUnavailableError(err error) bool {
	return Is(err, Unavailable)
}

func HasInternalCode(err error, code int) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.InternalCode == code
}

func HasPublicCode(err error, code int) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.PublicCode == code
}
