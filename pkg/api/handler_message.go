package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/dispatch/pkg/agent"
)

// MessageRequest is the body of POST /agent/message.
type MessageRequest struct {
	Text             string `json:"text" binding:"required"`
	UserID           int    `json:"user_id" binding:"required"`
	SessionID        string `json:"session_id"`
	SelectedEntityID *int   `json:"selected_entity_id"`
	CurrentPage      string `json:"current_page"`
	FromImage        bool   `json:"from_image"`
}

// PostMessage handles one conversational turn.
func (s *Server) PostMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	out, err := s.agent.HandleMessage(c.Request.Context(), agent.MessageRequest{
		Text:             req.Text,
		UserID:           req.UserID,
		SessionID:        req.SessionID,
		SelectedEntityID: req.SelectedEntityID,
		CurrentPage:      req.CurrentPage,
		FromImage:        req.FromImage,
	})
	if err != nil {
		slog.Error("Message handling failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "The request could not be completed.",
		})
		return
	}

	c.JSON(http.StatusOK, out)
}

// ConfirmRequest is the body of POST /agent/confirm. Confirmed is a
// pointer so a missing field is distinguishable from an explicit false.
type ConfirmRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Confirmed *bool  `json:"confirmed" binding:"required"`
	UserID    int    `json:"user_id" binding:"required"`
}

// PostConfirm resolves a pending confirmation.
func (s *Server) PostConfirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	out, err := s.agent.HandleConfirm(c.Request.Context(), req.SessionID, *req.Confirmed, req.UserID)
	if err != nil {
		slog.Error("Confirmation handling failed",
			"session_id", req.SessionID, "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "The confirmation could not be processed.",
		})
		return
	}

	c.JSON(http.StatusOK, out)
}
