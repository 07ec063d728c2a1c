package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errBodyTooLarge is returned by decodeJSON when MaxBodySize cut the body off.
var errBodyTooLarge = errors.New("request body too large")

// writeError maps err to a status and error body. This is the only place
// domain errors become HTTP statuses. Unknown errors are logged and
// reported as 500 without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fetchErr *domain.FetchError
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", unwrapMessage(err)))
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody("invalid_credentials", domain.ErrInvalidCredentials.Error()))
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized", "missing or unknown session"))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("conflict", domain.ErrConflict.Error()))
	case errors.Is(err, domain.ErrGuideNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("guide_not_found", "no guide found for this route"))
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, errorBody("upstream_timeout", "the guides service did not answer in time"))
	case errors.As(err, &fetchErr), errors.Is(err, domain.ErrNetwork):
		s.log.WarnContext(r.Context(), "upstream failure", "error", err)
		writeJSON(w, http.StatusBadGateway, errorBody("upstream_error", "the guides service is unavailable"))
	default:
		s.log.ErrorContext(r.Context(), "unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal error"))
	}
}

// writeRequestError reports a request rejected before reaching a service
// (malformed body, bad path parameter).
func writeRequestError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("body_too_large", err.Error()))
		return
	}
	writeJSON(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// unwrapMessage extracts the human-readable part of a validation error.
// e.g. "service.X.Y: validation error: rating must be between 0 and 5"
// → "rating must be between 0 and 5"
func unwrapMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
// When optional is true an empty body is not an error and v is left as is.
func decodeJSON(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	var maxErr *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		if optional {
			return nil
		}
		return errors.New("request body is required")
	case errors.As(err, &maxErr):
		return errBodyTooLarge
	default:
		return errors.New("malformed request body: " + err.Error())
	}
}
