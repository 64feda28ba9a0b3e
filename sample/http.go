package sample

import (
	"context"
	"net/http"

	t "github.com/dkinzler/respkit/transport/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
)

const PathPrefix = "/api/sample"

func decodeListRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var filter ListFilter
	err := t.DecodeQueryParameters(r, &filter)
	if err != nil {
		return nil, err
	}
	return filter, nil
}

func decodeIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	return t.DecodeURLParameter(r, "id")
}

func decodeCreateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var n NewItem
	err := t.DecodeJSONBody(r, &n)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func decodeUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	id, err := t.DecodeURLParameter(r, "id")
	if err != nil {
		return nil, err
	}

	var u ItemUpdate
	err = t.DecodeJSONBody(r, &u)
	if err != nil {
		return nil, err
	}

	return UpdateRequest{
		ID:     id,
		Update: u,
	}, nil
}

func decodeBatchUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var updates []BatchItemUpdate
	err := t.DecodeJSONBody(r, &updates)
	if err != nil {
		return nil, err
	}
	return updates, nil
}

func decodeNoRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	return NoRequest{}, nil
}

// RegisterHTTPHandlers adds routes for all endpoints to the router, paths are relative to the router.
// Responses are mapped to status codes and bodies with the default result mapper.
func RegisterHTTPHandlers(endpoints EndpointSet, router *mux.Router, opts []kithttp.ServerOption) {
	encode := t.MakeResponseEncodeFunc(nil)

	listHandler := kithttp.NewServer(endpoints.ListEndpoint, decodeListRequest, encode, opts...)
	handleRoot(router, listHandler, "GET")

	createHandler := kithttp.NewServer(endpoints.CreateEndpoint, decodeCreateRequest, encode, opts...)
	handleRoot(router, createHandler, "POST")

	batchUpdateHandler := kithttp.NewServer(endpoints.BatchUpdateEndpoint, decodeBatchUpdateRequest, encode, opts...)
	handleRoot(router, batchUpdateHandler, "PUT")

	// must be registered before the routes with an id parameter
	exportHandler := kithttp.NewServer(endpoints.ExportEndpoint, decodeNoRequest, encode, opts...)
	router.Handle("/file", exportHandler).Methods("GET", "OPTIONS")

	summaryHandler := kithttp.NewServer(endpoints.SummaryEndpoint, decodeNoRequest, encode, opts...)
	router.Handle("/bytes", summaryHandler).Methods("GET", "OPTIONS")

	getHandler := kithttp.NewServer(endpoints.GetEndpoint, decodeIDRequest, encode, opts...)
	router.Handle("/{id}", getHandler).Methods("GET", "OPTIONS")

	updateHandler := kithttp.NewServer(endpoints.UpdateEndpoint, decodeUpdateRequest, encode, opts...)
	router.Handle("/{id}", updateHandler).Methods("PUT", "OPTIONS")

	deleteHandler := kithttp.NewServer(endpoints.DeleteEndpoint, decodeIDRequest, encode, opts...)
	router.Handle("/{id}", deleteHandler).Methods("DELETE", "OPTIONS")
}

// Routes the path of the router itself with and without a trailing slash, e.g. "/api/sample" and "/api/sample/".
func handleRoot(router *mux.Router, h http.Handler, method string) {
	router.Handle("", h).Methods(method, "OPTIONS")
	router.Handle("/", h).Methods(method, "OPTIONS")
}

// NewHTTPHandler returns a router that serves the endpoints under PathPrefix.
// Errors returned by endpoints or decode funcs are logged and encoded with the error encoder of package transport/http.
func NewHTTPHandler(endpoints EndpointSet, logger log.Logger) *mux.Router {
	router := mux.NewRouter()
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(t.ErrorEncoder),
		kithttp.ServerErrorHandler(t.NewLogErrorHandler(logger)),
	}
	RegisterHTTPHandlers(endpoints, router.PathPrefix(PathPrefix).Subrouter(), opts)
	return router
}
