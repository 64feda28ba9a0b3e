package endpoint

import (
	"context"
	"time"

	"github.com/dkinzler/respkit/errors"
	"github.com/dkinzler/respkit/response"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logs errors and failed responses from the underlying business/service/component logic of the endpoint, if the result value implements the Responder interface.
// Errors and responses of kind Error or NotImplemented are logged with level error, all other failures (e.g. NotFound or BadInput) with level warn.
// Errors from endpoint code should be caught/logged with the transport level error handler (see e.g. the errorHandler option to github.com/go-kit/kit/transport/http.NewServer)
func ResponseLoggingMiddleware(logger log.Logger) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (result interface{}, err error) {
			defer func() {
				resp, ok := result.(Responder)
				if !ok {
					return
				}
				if resp.Error() != nil {
					logError(level.Error(logger), resp.Error())
					return
				}
				logResponse(logger, resp.Response())
			}()
			return next(ctx, request)
		}
	}
}

func logError(logger log.Logger, err error) {
	e, ok := err.(errors.Error)
	if ok {
		logger.Log("error", e.ToMap())
	} else {
		logger.Log("error", err)
	}
}

func logResponse(logger log.Logger, r response.Response) {
	if r == nil {
		return
	}
	switch b := response.Base(r).(type) {
	case response.Error:
		keyvals := []interface{}{"kind", b.Kind().String(), "message", b.Message()}
		if entries := b.Errors(); len(entries) > 0 {
			keyvals = append(keyvals, "errors", entries)
		}
		level.Error(logger).Log(keyvals...)
	case response.NotImplemented:
		level.Error(logger).Log("kind", b.Kind().String(), "message", b.Message())
	case response.Aggregate:
		var failed []string
		for _, c := range b.Responses() {
			if c != nil && c.Kind().IsFailure() {
				failed = append(failed, c.Kind().String())
			}
		}
		if len(failed) > 0 {
			level.Warn(logger).Log("kind", b.Kind().String(), "message", b.Message(), "failed", failed)
		}
	default:
		if r.Kind().IsFailure() {
			level.Warn(logger).Log("kind", r.Kind().String(), "message", r.Message())
		}
	}
}

// Label value of observations for endpoint errors and results that do not implement Responder.
const KindEndpointError = "EndpointError"

// Records the time it took to process the request in milliseconds, the histogram must have a single label "kind".
// If the result value implements Responder, the observation is labeled with the kind of the response, e.g. "kind", "NotFound".
// An error in the Responder is converted with response.FromError first.
// Endpoint errors and other result values are labeled with KindEndpointError.
func InstrumentRequestTimeMiddleware(duration metrics.Histogram) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (result interface{}, err error) {
			defer func(begin time.Time) {
				kind := KindEndpointError
				if resp, ok := result.(Responder); ok && err == nil {
					kind = "None"
					if r := Outcome(resp); r != nil {
						kind = r.Kind().String()
					}
				}
				duration.With("kind", kind).Observe(float64(time.Since(begin).Milliseconds()))
			}(time.Now())
			return next(ctx, request)
		}
	}
}

// Applies zero or more middlewares to an Endpoint.
// Middlewares are applied in order, first middleware passed is applied first and therefore innermost, last middleware passed is outermost.
func ApplyMiddlewares(e endpoint.Endpoint, mws ...endpoint.Middleware) endpoint.Endpoint {
	var result endpoint.Endpoint = e
	for _, mw := range mws {
		result = mw(result)
	}
	return result
}
