package usecase

import (
	"context"

	"esnaftaucuz/internal/domain/entity"
)

// SessionSnapshot is the reconciler's externally visible state at one point
// in time. Profile may be a placeholder while the real row is in flight.
type SessionSnapshot struct {
	Session *entity.Session
	Profile *entity.UserProfileView
	Loading bool
}

// SessionStore reconciles provider auth events against the cached profile.
// It is an owned object with an explicit lifecycle, not ambient state: the
// caller constructs it, calls Init, feeds it events, and disposes it.
type SessionStore interface {
	// Init starts the store. Must be called before HandleAuthEvent.
	Init(ctx context.Context) error

	// Dispose stops the store and releases the subscriber channel. Safe to
	// call more than once.
	Dispose()

	// HandleAuthEvent reduces one provider event into the store's state.
	// It returns once the state is terminal for this event: the loading flag
	// is cleared on every path, including timeouts and fetch failures.
	HandleAuthEvent(ctx context.Context, event *entity.AuthEvent)

	// Snapshot returns the current state.
	Snapshot() SessionSnapshot

	// Updates returns a channel receiving a snapshot after every state
	// change. The channel is closed by Dispose.
	Updates() <-chan SessionSnapshot
}
