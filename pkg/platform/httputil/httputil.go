// Package httputil holds the JSON response and request helpers shared by all
// handlers so every endpoint emits the same envelope.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "insightboard/pkg/domain-errors"
	"insightboard/pkg/requestcontext"
)

// MaxBodyBytes bounds request bodies accepted by DecodeJSON.
const MaxBodyBytes = 1 << 20

// ErrorResponse is the single error envelope returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Validatable is implemented by request types that normalize and check
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into a status and the {"error": message} envelope.
// Only the public message of a domain error is written; causes stay in logs.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	if de, ok := dErrors.As(err); ok {
		status = dErrors.HTTPStatus(de.Code)
		message = de.Message
	}
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// DecodeJSON decodes a bounded request body into dst. An empty body leaves dst
// untouched.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// DecodeAndPrepare decodes the body into a T and runs its Validate method when
// present. On failure the error response is already written and ok is false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	ctx := r.Context()
	var req T
	if err := DecodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}
