package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	errors "github.com/brunacaffaro/cashflowcontrol-backend/internal"
	"github.com/brunacaffaro/cashflowcontrol-backend/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// ErrorResponse is the body of every error reply. The status code always
// accompanies the message; internals never leak.
type ErrorResponse struct {
	Message string                   `json:"message"`
	Details *errors.ValidationErrors `json:"details,omitempty"`
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, ErrorResponse{Message: message})
}

// HandleServiceError converts a service error into an HTTP response using
// the AppError taxonomy; anything unclassified becomes a 500.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := errors.IsAppError(err); ok {
		resp := ErrorResponse{Message: appErr.GetDetailedMessage()}
		if details, ok := appErr.Details.(errors.ValidationErrors); ok {
			resp.Details = &details
		}
		h.Logger.Error("http error", "status", appErr.StatusCode, "message", resp.Message)
		h.WriteJSON(w, appErr.StatusCode, resp)
		return
	}

	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
