package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the reconciled session state and accepts auth
// lifecycle events from the client surface (native wrapper or web shell).
type SessionHandler struct {
	store  usecase.SessionStore
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(store usecase.SessionStore, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{store: store, logger: logger}
}

// sessionSnapshotResponse is the JSON projection of a reconciler snapshot.
type sessionSnapshotResponse struct {
	Authenticated bool                    `json:"authenticated"`
	Loading       bool                    `json:"loading"`
	Profile       *entity.UserProfileView `json:"profile,omitempty"`
}

// Snapshot returns the current reconciled session state.
func (h *SessionHandler) Snapshot(c echo.Context) error {
	snap := h.store.Snapshot()

	return response.Success(c, http.StatusOK, sessionSnapshotResponse{
		Authenticated: snap.Session != nil,
		Loading:       snap.Loading,
		Profile:       snap.Profile,
	}, "Session state retrieved successfully")
}

// Stream pushes a snapshot to the client as a server-sent event after every
// session state change, so UI surfaces track auth state without polling. The
// connection ends when the client disconnects or the store is disposed.
func (h *SessionHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	updates := h.store.Updates()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(sessionSnapshotResponse{
				Authenticated: snap.Session != nil,
				Loading:       snap.Loading,
				Profile:       snap.Profile,
			})
			if err != nil {
				h.logger.Warn("Failed to encode session snapshot", slog.Any("error", err))

				continue
			}

			if _, err := fmt.Fprintf(res, "event: session\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// authEventRequest is the JSON body for a provider auth event. Session is
// omitted when the provider reports no active session.
type authEventRequest struct {
	Type    string `json:"type"`
	Session *struct {
		UserID       string    `json:"userId"`
		Email        string    `json:"email"`
		Name         string    `json:"name"`
		AvatarURL    string    `json:"avatarUrl"`
		AccessToken  string    `json:"accessToken"`
		RefreshToken string    `json:"refreshToken"`
		ExpiresAt    time.Time `json:"expiresAt"`
	} `json:"session"`
}

// HandleEvent reduces one provider auth event into the session store. The
// call returns after the store reaches a terminal state for the event, so
// the response snapshot never reports a dangling loading flag for it.
func (h *SessionHandler) HandleEvent(c echo.Context) error {
	var req authEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid auth event input")
	}

	eventType := entity.AuthEventType(req.Type)
	switch eventType {
	case entity.AuthEventInitialSession, entity.AuthEventSignedIn, entity.AuthEventSignedOut,
		entity.AuthEventTokenRefreshed, entity.AuthEventUserUpdated:
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Unknown auth event type")
	}

	event := &entity.AuthEvent{Type: eventType}
	if req.Session != nil {
		event.Session = &entity.Session{
			UserID:       req.Session.UserID,
			Email:        req.Session.Email,
			Name:         req.Session.Name,
			AvatarURL:    req.Session.AvatarURL,
			AccessToken:  req.Session.AccessToken,
			RefreshToken: req.Session.RefreshToken,
			ExpiresAt:    req.Session.ExpiresAt,
		}
	}

	h.store.HandleAuthEvent(c.Request().Context(), event)

	snap := h.store.Snapshot()

	return response.Success(c, http.StatusOK, sessionSnapshotResponse{
		Authenticated: snap.Session != nil,
		Loading:       snap.Loading,
		Profile:       snap.Profile,
	}, "Auth event processed successfully")
}
