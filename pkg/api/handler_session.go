package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/dispatch/ent"
)

// sessionResponse is the dashboard view of one session.
type sessionResponse struct {
	SessionID       string         `json:"session_id"`
	UserID          int            `json:"user_id"`
	Status          string         `json:"status"`
	PendingAction   map[string]any `json:"pending_action"`
	ExecutionResult map[string]any `json:"execution_result,omitempty"`
	CreatedAt       string         `json:"created_at"`
	ExpiresAt       string         `json:"expires_at"`
}

func toSessionResponse(session *ent.AgentSession) sessionResponse {
	return sessionResponse{
		SessionID:       session.ID,
		UserID:          session.UserID,
		Status:          string(session.Status),
		PendingAction:   session.PendingAction,
		ExecutionResult: session.ExecutionResult,
		CreatedAt:       session.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		ExpiresAt:       session.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ListSessions handles GET /agent/sessions with optional status, limit
// and offset query parameters.
func (s *Server) ListSessions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	sessions, total, err := s.sessions.ListSessions(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(mapServiceError(err))
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionResponse(session))
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions": out,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetSession handles GET /agent/sessions/:id.
func (s *Server) GetSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}
