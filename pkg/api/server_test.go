package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/pkg/agent"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/ocr"
	"github.com/fleetops/dispatch/pkg/services"
)

const testAPIKey = "test-key"

type fakeAgent struct {
	lastMessage agent.MessageRequest
	lastConfirm struct {
		sessionID string
		confirmed bool
		userID    int
	}
	messageOut map[string]any
	confirmOut map[string]any
	err        error
}

func (f *fakeAgent) HandleMessage(ctx context.Context, req agent.MessageRequest) (map[string]any, error) {
	f.lastMessage = req
	if f.err != nil {
		return nil, f.err
	}
	if f.messageOut != nil {
		return f.messageOut, nil
	}
	return map[string]any{"status": "executed", "action": "list_all_trips"}, nil
}

func (f *fakeAgent) HandleConfirm(ctx context.Context, sessionID string, confirmed bool, userID int) (map[string]any, error) {
	f.lastConfirm.sessionID = sessionID
	f.lastConfirm.confirmed = confirmed
	f.lastConfirm.userID = userID
	if f.err != nil {
		return nil, f.err
	}
	if f.confirmOut != nil {
		return f.confirmOut, nil
	}
	return map[string]any{"status": "executed", "session_id": sessionID}, nil
}

type fakeSessionReader struct {
	rows []*ent.AgentSession
}

func (f *fakeSessionReader) GetSession(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	for _, row := range f.rows {
		if row.ID == sessionID {
			return row, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeSessionReader) ListSessions(ctx context.Context, status string, limit, offset int) ([]*ent.AgentSession, int, error) {
	return f.rows, len(f.rows), nil
}

type fakeExtractor struct {
	extraction *ocr.Extraction
	err        error
}

func (f *fakeExtractor) ExtractText(ctx context.Context, image []byte, contentType string) (*ocr.Extraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.extraction, nil
}

func newTestServer(ag *fakeAgent, sessions *fakeSessionReader, extract *fakeExtractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if ag == nil {
		ag = &fakeAgent{}
	}
	if sessions == nil {
		sessions = &fakeSessionReader{}
	}
	if extract == nil {
		extract = &fakeExtractor{extraction: &ocr.Extraction{Text: "Path-3 - 07:30", Confidence: 0.92}}
	}
	srv := NewServer(ag, sessions, extract, nil, &config.ServerConfig{}, testAPIKey)
	return srv.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, apiKey string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAPIKeyRequired(t *testing.T) {
	router := newTestServer(nil, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/agent/message", "", MessageRequest{Text: "help", UserID: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/agent/message", "wrong-key", MessageRequest{Text: "help", UserID: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/agent/message", testAPIKey, MessageRequest{Text: "help", UserID: 1})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPreflightBypassesAuth(t *testing.T) {
	router := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/agent/message", nil)
	req.Header.Set("Origin", "https://ops.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://ops.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthOpen(t *testing.T) {
	router := newTestServer(nil, nil, nil)

	w := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostMessage(t *testing.T) {
	ag := &fakeAgent{messageOut: map[string]any{"status": "executed", "action": "get_trip_status"}}
	router := newTestServer(ag, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/agent/message", testAPIKey, MessageRequest{
		Text:        "status of trip 7",
		UserID:      3,
		CurrentPage: "trip_ops",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "executed", out["status"])
	assert.Equal(t, "status of trip 7", ag.lastMessage.Text)
	assert.Equal(t, 3, ag.lastMessage.UserID)
	assert.Equal(t, "trip_ops", ag.lastMessage.CurrentPage)
	assert.False(t, ag.lastMessage.FromImage)
}

func TestPostMessageFromImage(t *testing.T) {
	ag := &fakeAgent{}
	router := newTestServer(ag, nil, nil)

	// The UI resubmits recognised text with from_image set so the agent
	// keeps treating the turn as an image turn.
	w := doJSON(t, router, http.MethodPost, "/agent/message", testAPIKey, MessageRequest{
		Text:      "Path-3 - 07:30",
		UserID:    3,
		FromImage: true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ag.lastMessage.FromImage)
	assert.Equal(t, "Path-3 - 07:30", ag.lastMessage.Text)
}

func TestPostMessageValidation(t *testing.T) {
	router := newTestServer(nil, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/agent/message", testAPIKey, map[string]any{"user_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/agent/message", testAPIKey, map[string]any{"text": "help"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostConfirm(t *testing.T) {
	ag := &fakeAgent{confirmOut: map[string]any{"status": "cancelled"}}
	router := newTestServer(ag, nil, nil)

	confirmed := false
	w := doJSON(t, router, http.MethodPost, "/agent/confirm", testAPIKey, ConfirmRequest{
		SessionID: "abc",
		Confirmed: &confirmed,
		UserID:    3,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", ag.lastConfirm.sessionID)
	assert.False(t, ag.lastConfirm.confirmed)
	assert.Equal(t, 3, ag.lastConfirm.userID)
}

func TestPostConfirmRequiresConfirmedField(t *testing.T) {
	router := newTestServer(nil, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/agent/confirm", testAPIKey, map[string]any{
		"session_id": "abc",
		"user_id":    3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartImage(t *testing.T, userID string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_id", userID))
	part, err := mw.CreateFormFile("image", "sheet.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestPostImage(t *testing.T) {
	ag := &fakeAgent{messageOut: map[string]any{"status": "executed", "action": "suggest_actions"}}
	router := newTestServer(ag, nil, nil)

	body, contentType := multipartImage(t, "3")
	req := httptest.NewRequest(http.MethodPost, "/agent/image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(apiKeyHeader, testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	ocrOut, ok := out["ocr"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Path-3 - 07:30", ocrOut["ocr_text"])
	assert.InDelta(t, 0.92, ocrOut["confidence"], 0.001)
	assert.True(t, ag.lastMessage.FromImage)
	assert.Equal(t, "Path-3 - 07:30", ag.lastMessage.Text)
}

func TestPostImageOCRFailure(t *testing.T) {
	router := newTestServer(nil, nil, &fakeExtractor{err: errors.New("sidecar down")})

	body, contentType := multipartImage(t, "3")
	req := httptest.NewRequest(http.MethodPost, "/agent/image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(apiKeyHeader, testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "sidecar down")
}

func TestPostImageRequiresUserID(t *testing.T) {
	router := newTestServer(nil, nil, nil)

	body, contentType := multipartImage(t, "not-a-number")
	req := httptest.NewRequest(http.MethodPost, "/agent/image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(apiKeyHeader, testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSessions(t *testing.T) {
	now := time.Now()
	sessions := &fakeSessionReader{rows: []*ent.AgentSession{
		{
			ID:            "s-1",
			UserID:        3,
			Status:        agentsession.StatusPending,
			PendingAction: map[string]any{"action": "cancel_trip"},
			CreatedAt:     now,
			ExpiresAt:     now.Add(time.Hour),
		},
	}}
	router := newTestServer(nil, sessions, nil)

	w := doJSON(t, router, http.MethodGet, "/agent/sessions?status=pending", testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Sessions []sessionResponse `json:"sessions"`
		Total    int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Sessions, 1)
	assert.Equal(t, "s-1", out.Sessions[0].SessionID)
	assert.Equal(t, "pending", out.Sessions[0].Status)
	assert.Equal(t, 1, out.Total)
}

func TestGetSessionNotFound(t *testing.T) {
	router := newTestServer(nil, nil, nil)

	w := doJSON(t, router, http.MethodGet, "/agent/sessions/nope", testAPIKey, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "session_not_found"))
}
