// Package http maps service responses (see package response) to HTTP results and includes functionality to decode and encode
// http requests/responses/parameters/errors, http middlewares and graceful shutdown handling.
// It is designed to work with Go kit (github.com/go-kit/kit/transport/http) and the Gorilla web toolkit (github.com/gorilla).
package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dkinzler/respkit/endpoint"
	"github.com/dkinzler/respkit/errors"
	"github.com/dkinzler/respkit/response"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

const errorOrigin = "transport/http"

func newPublicTransportError(inner error, code errors.ErrorCode, message string) error {
	return errors.New(inner, errorOrigin, code).WithPublicMessage(message)
}

func newInternalTransportError(inner error, code errors.ErrorCode, message string) error {
	return errors.New(inner, errorOrigin, code).WithInternalMessage(message)
}

// Tries to decode the body of the given request as JSON and store the result in target.
func DecodeJSONBody(r *http.Request, target interface{}) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		// Use a public error message, it might be send back in the body of the response.
		// If the request body could not be decoded there is probably a problem/bug in the client, so it makes sense to inform the client of the reason the request failed.
		return newPublicTransportError(err, errors.InvalidArgument, "could not decode json request body")
	}
	return nil
}

// Encode the value as JSON and write it to the given http response.
func EncodeJSONBody(w http.ResponseWriter, source interface{}) error {
	err := json.NewEncoder(w).Encode(source)
	if err != nil {
		// Use an internal error here, if the request could not be encoded this usually indicates a bug in the server application.
		// Clients do not need to know about this error.
		return newInternalTransportError(err, errors.Internal, "could not encode json response body")
	}
	return nil
}

func DecodeURLParameter(r *http.Request, name string) (string, error) {
	value, ok := mux.Vars(r)[name]
	//Note: normally this shouldn't happen since we should only call this method for routes that contain the corresponding parameter.
	//If we get this error, there is probably a bug in the code that uses this function.
	if !ok {
		return "", newInternalTransportError(nil, errors.Internal, "url parameter not found, this is probably a bug")
	}
	return value, nil
}

var schemaDecoder = schema.NewDecoder()

func DecodeQueryParameters(r *http.Request, v interface{}) error {
	err := r.ParseForm()
	if err != nil {
		return newPublicTransportError(nil, errors.InvalidArgument, "could not parse query parameters")
	}
	err = schemaDecoder.Decode(v, r.Form)
	if err != nil {
		return newPublicTransportError(err, errors.InvalidArgument, "could not decode query parameters")
	}
	return nil
}

// EncodeResult writes the given result to the http response.
// Raw content is copied as is and closed afterwards if it implements io.Closer, otherwise a non-nil body is encoded as JSON.
func EncodeResult(w http.ResponseWriter, r Result) error {
	if r.IsContent() {
		if closer, ok := r.Content.(io.Closer); ok {
			defer closer.Close()
		}
		contentType := r.ContentType
		if contentType == "" {
			contentType = response.DefaultContentType
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(r.Status)
		if _, err := io.Copy(w, r.Content); err != nil {
			return newInternalTransportError(err, errors.Internal, "could not write response content")
		}
		return nil
	}
	if r.Body == nil {
		w.WriteHeader(r.Status)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(r.Status)
	return EncodeJSONBody(w, r.Body)
}

var defaultMapper = NewResultMapper()

// EncodeResponse maps the response with the default ResultMapper and writes the result to w.
func EncodeResponse(_ context.Context, w http.ResponseWriter, r response.Response) error {
	return EncodeResult(w, defaultMapper.Map(r))
}

// Returns a go-kit encode func that maps responses with the given mapper.
// The value returned by the endpoint can be a response.Response or an endpoint.Responder.
// If a Responder contains an error, it is encoded with EncodeError.
// If mapper is nil, the default ResultMapper is used.
func MakeResponseEncodeFunc(mapper Mapper[Result]) kithttp.EncodeResponseFunc {
	if mapper == nil {
		mapper = defaultMapper
	}
	return func(ctx context.Context, w http.ResponseWriter, resp interface{}) error {
		var r response.Response
		switch v := resp.(type) {
		case endpoint.Responder:
			if v.Error() != nil {
				return EncodeError(ctx, v.Error(), w)
			}
			r = v.Response()
		case response.Response:
			r = v
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return newInternalTransportError(nil, errors.Internal, "response encode func used with a value that is neither a Response nor a Responder, this is probably a bug")
		}
		return EncodeResult(w, mapper.Map(r))
	}
}

// Determines an appropriate response code for the given error.
// The error is converted with response.FromError and then mapped like any other response,
// e.g. an errors.Error with code NotFound results in http.StatusNotFound.
// Errors that are not of type errors.Error result in http.StatusInternalServerError.
func ErrToCode(err error) int {
	return defaultMapper.Map(response.FromError(err)).Status
}

// Sends an appropriate status code and response body based on the error.
// Can be used as the error encoder of a go-kit http server.
// If the error is of type errors.Error and contains a public error code or message, those will be encoded as json and sent in the response body.
// Internal messages are never sent.
//
// The json body has the following format:
//
//	{
//	  "error": {
//	    "code": 42,
//		"message": "this is an example error message"
//	  }
//	}
func EncodeError(_ context.Context, err error, w http.ResponseWriter) error {
	if e, ok := err.(errors.Error); ok {
		if e.PublicCode != 0 || e.PublicMessage != "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(ErrToCode(err))
			return json.NewEncoder(w).Encode(jsonErrorBody(e.PublicCode, e.PublicMessage))
		}
	}
	w.WriteHeader(ErrToCode(err))
	return nil
}

// ErrorEncoder adapts EncodeError to the kithttp.ErrorEncoder signature.
func ErrorEncoder(ctx context.Context, err error, w http.ResponseWriter) {
	EncodeError(ctx, err, w)
}

type jsonErrorWrapper struct {
	Error jsonError `json:"error"`
}

type jsonError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func jsonErrorBody(code int, message string) interface{} {
	return jsonErrorWrapper{
		Error: jsonError{
			Code:    code,
			Message: message,
		},
	}
}

type LogErrorHandler struct {
	logger log.Logger
}

func NewLogErrorHandler(logger log.Logger) *LogErrorHandler {
	return &LogErrorHandler{
		logger: logger,
	}
}

func (h *LogErrorHandler) Handle(ctx context.Context, err error) {
	e, ok := err.(errors.Error)
	if ok {
		h.logger.Log("error", e.ToMap())
	} else {
		h.logger.Log("error", err)
	}
}

type maxRequestBodySizeHandler struct {
	next http.Handler
	n    int64
}

func (m *maxRequestBodySizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, m.n)
	m.next.ServeHTTP(w, r)
}

// Limit the request body size of the given http handler to the specified number of bytes.
// If request body is larger, reading beyond the limit will return an error.
func NewMaxRequestBodySizeHandler(next http.Handler, maxBytes int64) http.Handler {
	return &maxRequestBodySizeHandler{
		next: next,
		n:    maxBytes,
	}
}
