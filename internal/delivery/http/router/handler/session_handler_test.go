package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionStore replays a fixed sequence of snapshots over Updates.
type stubSessionStore struct {
	snapshot usecase.SessionSnapshot
	updates  chan usecase.SessionSnapshot
}

func (s *stubSessionStore) Init(context.Context) error                         { return nil }
func (s *stubSessionStore) Dispose()                                           {}
func (s *stubSessionStore) HandleAuthEvent(context.Context, *entity.AuthEvent) {}
func (s *stubSessionStore) Snapshot() usecase.SessionSnapshot                  { return s.snapshot }
func (s *stubSessionStore) Updates() <-chan usecase.SessionSnapshot            { return s.updates }

func TestSessionHandler_Stream_DeliversStateChanges(t *testing.T) {
	store := &stubSessionStore{updates: make(chan usecase.SessionSnapshot, 2)}
	store.updates <- usecase.SessionSnapshot{Loading: true}
	store.updates <- usecase.SessionSnapshot{
		Session: &entity.Session{UserID: "user-1", Email: "test@example.com"},
		Profile: &entity.UserProfileView{Email: "test@example.com"},
	}
	// Closing the channel ends the stream, as Dispose does in production.
	close(store.updates)

	handler := NewSessionHandler(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session/stream", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Stream(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Contains(t, body, "event: session")
	assert.Contains(t, body, `"loading":true`)
	assert.Contains(t, body, `"authenticated":true`)
	assert.Contains(t, body, "test@example.com")
}
