package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jpoz/gitdash/internal/result"
)

type APIError struct {
	Error APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// BadRequest writes a 400 error body.
func BadRequest(w http.ResponseWriter, code, message string) {
	RespondJSON(w, http.StatusBadRequest, APIError{Error: APIErrorBody{Code: code, Message: message}})
}

// failureCode is the API error code for a failure kind.
func failureCode(k result.Kind) string {
	switch k {
	case result.NotFound:
		return "NOT_FOUND"
	case result.MissingParam:
		return "MISSING_PARAM"
	default:
		return "UPSTREAM_ERROR"
	}
}

// WriteFailure maps an aggregation failure to an HTTP error response.
func WriteFailure(w http.ResponseWriter, r *http.Request, f *result.Failure) {
	ctx := r.Context()
	body := APIError{Error: APIErrorBody{Code: failureCode(f.Kind), Message: f.Message}}
	switch f.Kind {
	case result.NotFound:
		slog.DebugContext(ctx, "resource not found", "error", f.Message)
		RespondJSON(w, http.StatusNotFound, body)
	case result.MissingParam:
		slog.DebugContext(ctx, "missing parameter", "error", f.Message)
		RespondJSON(w, http.StatusBadRequest, body)
	default:
		slog.WarnContext(ctx, "upstream failure", "error", f.Message)
		RespondJSON(w, http.StatusBadGateway, body)
	}
}

// respond writes the success value of res, or its failure.
func respond[T any](w http.ResponseWriter, r *http.Request, res result.Result[T]) {
	if v, ok := res.Value(); ok {
		RespondJSON(w, http.StatusOK, v)
		return
	}
	WriteFailure(w, r, res.Failure())
}
