package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultProfileFetchTimeout = 5 * time.Second

// sessionStore reconciles provider auth events against the cached profile.
// It is constructed, initialized and disposed explicitly; nothing about it is
// ambient or package-level.
type sessionStore struct {
	userRepo            repository.UserRepository
	profileFetchTimeout time.Duration
	logger              *slog.Logger

	mu          sync.Mutex
	initialized bool
	disposed    bool
	session     *entity.Session
	profile     *entity.UserProfileView
	loading     bool

	// generation counts logical operations; a fetch or create result is only
	// applied while its generation is still current, so a completed-late
	// response can never overwrite a newer one.
	generation uint64

	updates chan usecase.SessionSnapshot

	// createWG tracks async profile-row creation, exposed for tests.
	createWG sync.WaitGroup
}

// SessionStoreParams holds dependencies for the session store, injected by Fx.
type SessionStoreParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore(params SessionStoreParams) usecase.SessionStore {
	timeout := defaultProfileFetchTimeout
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.ProfileFetchTimeout > 0 {
		timeout = params.Config.Session.ProfileFetchTimeout
	}

	return &sessionStore{
		userRepo:            params.UserRepo,
		profileFetchTimeout: timeout,
		logger:              params.Logger,
		updates:             make(chan usecase.SessionSnapshot, 16),
	}
}

// Init starts the store. Must be called before HandleAuthEvent.
func (s *sessionStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return errors.New("session store already disposed")
	}
	s.initialized = true

	return nil
}

// Dispose stops the store and releases the subscriber channel.
func (s *sessionStore) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true
	s.generation++ // invalidate anything in flight
	close(s.updates)
}

// Snapshot returns the current state.
func (s *sessionStore) Snapshot() usecase.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return usecase.SessionSnapshot{
		Session: s.session,
		Profile: s.profile,
		Loading: s.loading,
	}
}

// Updates returns the snapshot channel. Closed by Dispose.
func (s *sessionStore) Updates() <-chan usecase.SessionSnapshot {
	return s.updates
}

// HandleAuthEvent reduces one provider event into the store's state. Every
// path through here ends with the loading flag cleared: timeouts, fetch
// errors and missing rows all land on a placeholder, never on a spinner.
func (s *sessionStore) HandleAuthEvent(ctx context.Context, event *entity.AuthEvent) {
	s.mu.Lock()
	if !s.initialized || s.disposed {
		s.mu.Unlock()

		return
	}

	s.generation++
	gen := s.generation
	s.loading = true
	s.session = nil
	if event.Session != nil {
		s.session = event.Session
	}
	s.publishLocked()
	s.mu.Unlock()

	defer s.clearLoading(gen)

	if event.Type == entity.AuthEventSignedOut {
		s.clearState(gen)

		return
	}

	if event.Session == nil {
		// No session: keep whatever profile is cached (a guest or a stale
		// signed-in view); clear only when there is nothing to show.
		s.mu.Lock()
		if s.profile == nil {
			s.session = nil
		}
		s.mu.Unlock()

		return
	}

	if s.skipRefetch(event) {
		return
	}

	s.reconcileProfile(ctx, gen, event.Session)
}

// skipRefetch reports whether the cached profile already covers this event.
// Any event other than SIGNED_IN with a matching cached profile is an
// idempotent refresh.
func (s *sessionStore) skipRefetch(event *entity.AuthEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile != nil &&
		s.profile.ID == event.Session.UserID &&
		event.Type != entity.AuthEventSignedIn
}

// reconcileProfile fetches the backing row within the hard timeout, falling
// back to a synthesized placeholder when the row is slow, missing or broken.
func (s *sessionStore) reconcileProfile(ctx context.Context, gen uint64, session *entity.Session) {
	userID, err := uuid.Parse(session.UserID)
	if err != nil {
		s.logger.Warn("Session carries a non-UUID user id, using placeholder",
			slog.String("userID", session.UserID),
		)
		s.applyProfile(gen, session.PlaceholderProfile())

		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.profileFetchTimeout)
	defer cancel()

	user, err := s.userRepo.FindByID(fetchCtx, userID)
	switch {
	case err == nil:
		s.applyProfile(gen, entity.ViewFromUser(user))

	case errors.Is(err, repository.ErrUserNotFound):
		// New OAuth identity with no row yet: show the placeholder now and
		// create the row in the background. Creation failure does not roll
		// back the already-displayed placeholder.
		s.applyProfile(gen, session.PlaceholderProfile())
		s.createProfileAsync(gen, session, userID)

	default:
		s.logger.Warn("Profile fetch failed, using placeholder",
			slog.String("userID", session.UserID),
			slog.Any("error", err),
		)
		s.applyProfile(gen, session.PlaceholderProfile())
	}
}

// createProfileAsync writes the missing profile row and, when it lands while
// this operation is still current, replaces the placeholder with the row.
func (s *sessionStore) createProfileAsync(gen uint64, session *entity.Session, userID uuid.UUID) {
	s.createWG.Add(1)

	go func() {
		defer s.createWG.Done()

		createCtx, cancel := context.WithTimeout(context.Background(), s.profileFetchTimeout)
		defer cancel()

		name := session.Name
		if name == "" {
			name = session.Email
		}

		newUser := &entity.User{
			ID:        userID,
			Email:     session.Email,
			Name:      name,
			AvatarURL: session.AvatarURL,
			Level:     1,
		}

		if err := s.userRepo.Create(createCtx, newUser); err != nil {
			s.logger.Warn("Async profile creation failed, keeping placeholder",
				slog.Any("userID", userID),
				slog.Any("error", err),
			)

			return
		}

		s.applyProfile(gen, entity.ViewFromUser(newUser))
	}()
}

// WaitForProfileCreation blocks until any in-flight async row creation
// settles. Intended for shutdown and tests.
func (s *sessionStore) WaitForProfileCreation() {
	s.createWG.Wait()
}

// applyProfile installs a profile if the operation is still current.
func (s *sessionStore) applyProfile(gen uint64, profile *entity.UserProfileView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.disposed {
		return
	}

	s.profile = profile
	s.publishLocked()
}

func (s *sessionStore) clearState(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.disposed {
		return
	}

	s.session = nil
	s.profile = nil
	s.publishLocked()
}

// clearLoading terminates the loading flag for an operation. Later
// operations own the flag themselves, so a stale clear is a no-op.
func (s *sessionStore) clearLoading(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.disposed {
		return
	}

	s.loading = false
	s.publishLocked()
}

// publishLocked sends a snapshot without blocking; a full channel drops the
// intermediate state, the next send carries the newer one anyway.
func (s *sessionStore) publishLocked() {
	if s.disposed {
		return
	}

	snapshot := usecase.SessionSnapshot{
		Session: s.session,
		Profile: s.profile,
		Loading: s.loading,
	}

	select {
	case s.updates <- snapshot:
	default:
	}
}
