package http

import (
	"context"
	"net/http"

	"github.com/dkinzler/respkit/response"
)

// An http middleware that recovers and calls the provided onPanic function if the next http handler panics.
// A 500 error response is written to the client.
// Note that if the handler already started writing a response before panicking, the status code can no longer be changed.
func PanicMiddleware(next http.Handler, onPanic func(e interface{})) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				if onPanic != nil {
					onPanic(e)
				}
				EncodeResponse(context.Background(), w, response.NewError("internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
