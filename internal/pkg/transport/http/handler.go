package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

type DecodeRequestFunc func(ctx context.Context, req *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// DecodeRequest decodes a JSON body into a fresh T. Types implementing
// render.Binder get their Bind hook (validation lives there); plain types
// are decoded as-is.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	if binder, ok := any(request).(render.Binder); ok {
		if err := render.Bind(req, binder); err != nil {
			return nil, fmt.Errorf("bind request: %w", err)
		}

		return request, nil
	}

	if err := render.DecodeJSON(req.Body, request); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	return request, nil
}

// MakeHandlerFunc wires decode -> endpoint -> encode into one handler.
// Every error path funnels through ErrorResponse so status mapping stays
// in one place.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decoder(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := endpt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encoder(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}
