package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/dispatch/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and body.
func mapServiceError(err error) (int, gin.H) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, gin.H{"error": "invalid_request", "message": validErr.Error()}
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, gin.H{"error": "session_not_found", "message": "No session with that id exists."}
	}
	if errors.Is(err, services.ErrSessionNotPending) {
		return http.StatusConflict, gin.H{"error": "session_not_pending", "message": "The session is no longer pending."}
	}
	if errors.Is(err, services.ErrSessionExpired) {
		return http.StatusConflict, gin.H{"error": "session_not_pending", "message": "The session has expired."}
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "internal server error"}
}
