// Package api exposes the agent over HTTP: the conversational message
// endpoint, the confirmation endpoint, image ingest, and read-only
// session listings for the operations dashboard.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/pkg/agent"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/database"
	"github.com/fleetops/dispatch/pkg/ocr"
	"github.com/fleetops/dispatch/pkg/version"
)

// ConversationAgent is the agent surface the handlers call. *agent.Agent
// implements it; tests substitute fakes.
type ConversationAgent interface {
	HandleMessage(ctx context.Context, req agent.MessageRequest) (map[string]any, error)
	HandleConfirm(ctx context.Context, sessionID string, confirmed bool, userID int) (map[string]any, error)
}

// SessionReader is the read-only session surface for the dashboard.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*ent.AgentSession, error)
	ListSessions(ctx context.Context, status string, limit, offset int) ([]*ent.AgentSession, int, error)
}

// TextExtractor is the OCR surface. *ocr.Client implements it.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte, contentType string) (*ocr.Extraction, error)
}

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	agent    ConversationAgent
	sessions SessionReader
	extract  TextExtractor
	db       *database.Client
	cfg      *config.ServerConfig
	apiKey   string
}

// NewServer creates the API server. The database client may be nil in
// tests; only the health endpoint uses it.
func NewServer(ag ConversationAgent, sessions SessionReader, extract TextExtractor, db *database.Client, cfg *config.ServerConfig, apiKey string) *Server {
	return &Server{
		agent:    ag,
		sessions: sessions,
		extract:  extract,
		db:       db,
		cfg:      cfg,
		apiKey:   apiKey,
	}
}

// Router builds the gin engine with middleware and routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(corsMiddleware(s.cfg.AllowedOrigins))

	r.GET("/healthz", s.Health)

	authed := r.Group("/", apiKeyAuth(s.apiKey))
	{
		authed.POST("/agent/message", s.PostMessage)
		authed.POST("/agent/confirm", s.PostConfirm)
		authed.POST("/agent/image", s.PostImage)
		authed.GET("/agent/sessions", s.ListSessions)
		authed.GET("/agent/sessions/:id", s.GetSession)
	}
	return r
}

// Health reports process and database liveness.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
		return
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
