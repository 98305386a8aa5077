package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fkhayef/groupchat/internal/logging"
	"github.com/fkhayef/groupchat/internal/metrics"
	"github.com/fkhayef/groupchat/pkg/apperr"
)

// ErrorBody is the payload of every error response
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends data as a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(data)
}

// Error sends an error JSON response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// Common error responses
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}

// Fail writes the response for an error returned by a domain operation.
// Business rejections keep their message; anything else is logged and
// reported as a generic 500.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		metrics.RecordRejection(appErr.Kind.String())
		Error(w, StatusFor(appErr.Kind), appErr.Message)
		return
	}

	metrics.RecordRejection(apperr.KindInternal.String())
	logging.FromContext(r.Context()).WithError(err).Error("request failed")
	InternalError(w, "Internal server error")
}

// StatusFor maps an error kind to its HTTP status code
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
