// Package v1handler implements the v1 HTTP API of the bridge: batch
// enqueueing and delivery listing behind bearer token authentication.
package v1handler

import (
	"bskybridge/internal/bridge"
	"bskybridge/pkg/logger"
	"bskybridge/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Bridge bridge.Bridge
}

// Options configure request handling.
type Options struct {
	// MaxBodyBytes limits request bodies. Zero means no limit.
	MaxBodyBytes int64
}

type Handler struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{deps: deps, opts: opts}
}

// ErrorBody is the JSON document returned for every failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an ErrorBody with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// kindStatus maps semantic error kinds to HTTP status codes and the message
// used when the error carries none.
var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrMissingField: {http.StatusBadGateway, "upstream response incomplete"},
	serrors.ErrUpstream:     {http.StatusBadGateway, "upstream error"},
}

// NewError converts err into an ErrorResponse. Errors without a known kind,
// and internal errors, never expose their message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == nil {
		// a bare sentinel passed as the error
		_ = errors.As(err, &kind)
	}

	mapped, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	message := mapped.message
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	logger.Debug(ctx, "request failed", zap.Error(err))

	return &ErrorResponse{
		StatusCode: mapped.status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// Register mounts the v1 routes on mux under prefix. Every route requires a
// valid bearer token checked by sec.
func (h *Handler) Register(mux *http.ServeMux, prefix string, sec *SecHandler) {
	mux.Handle("POST "+prefix+"/batches", sec.Middleware(h.errorHandler(h.CreateBatch)))
	mux.Handle("GET "+prefix+"/deliveries", sec.Middleware(h.errorHandler(h.ListDeliveries)))
}

// handlerFunc is an http handler that reports failures as an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (h *Handler) errorHandler(fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			res := h.NewError(r.Context(), err)
			writeJSON(r.Context(), w, res.StatusCode, res.Response)
		}
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decodeJSON reads a JSON request body into v, honoring MaxBodyBytes.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := r.Body
	if h.opts.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", maxErr.Limit)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
