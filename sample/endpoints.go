package sample

import (
	"context"

	e "github.com/dkinzler/respkit/endpoint"
	"github.com/dkinzler/respkit/response"

	"github.com/go-kit/kit/endpoint"
)

type UpdateRequest struct {
	ID     string
	Update ItemUpdate
}

// NoRequest is the request of endpoints that take no input.
type NoRequest struct{}

type EndpointSet struct {
	ListEndpoint        endpoint.Endpoint
	GetEndpoint         endpoint.Endpoint
	CreateEndpoint      endpoint.Endpoint
	UpdateEndpoint      endpoint.Endpoint
	BatchUpdateEndpoint endpoint.Endpoint
	DeleteEndpoint      endpoint.Endpoint
	ExportEndpoint      endpoint.Endpoint
	SummaryEndpoint     endpoint.Endpoint
}

// NewEndpoints creates endpoints for all service methods, the given middlewares are applied to each of them.
func NewEndpoints(svc *Service, mws ...endpoint.Middleware) EndpointSet {
	update := func(ctx context.Context, req UpdateRequest) (response.Response, error) {
		return svc.Update(ctx, req.ID, req.Update)
	}
	export := func(ctx context.Context, _ NoRequest) (response.Response, error) {
		return svc.Export(ctx)
	}
	summary := func(ctx context.Context, _ NoRequest) (response.Response, error) {
		return svc.Summary(ctx)
	}

	return EndpointSet{
		ListEndpoint:        e.ApplyMiddlewares(e.Make(svc.List), mws...),
		GetEndpoint:         e.ApplyMiddlewares(e.Make(svc.Get), mws...),
		CreateEndpoint:      e.ApplyMiddlewares(e.Make(svc.Create), mws...),
		UpdateEndpoint:      e.ApplyMiddlewares(e.Make(update), mws...),
		BatchUpdateEndpoint: e.ApplyMiddlewares(e.Make(svc.BatchUpdate), mws...),
		DeleteEndpoint:      e.ApplyMiddlewares(e.Make(svc.Delete), mws...),
		ExportEndpoint:      e.ApplyMiddlewares(e.Make(export), mws...),
		SummaryEndpoint:     e.ApplyMiddlewares(e.Make(summary), mws...),
	}
}
