package usecase

import (
	"context"
	"time"
)

// LaunchKind classifies what a launch URL represents.
type LaunchKind string

const (
	// LaunchNormal is a plain app launch with no OAuth material in the URL.
	LaunchNormal LaunchKind = "normal"
	// LaunchOAuthCode is a redirect carrying an authorization code.
	LaunchOAuthCode LaunchKind = "oauth_code"
	// LaunchOAuthToken is a redirect carrying an access token in the fragment.
	LaunchOAuthToken LaunchKind = "oauth_token"
	// LaunchOAuthError is a redirect carrying a provider error.
	LaunchOAuthError LaunchKind = "oauth_error"
)

// LaunchInput describes the URL the app was opened with.
type LaunchInput struct {
	URL    string
	Native bool // True when running inside the native wrapper.
}

// BootstrapResult is the outcome of handling one launch URL.
type BootstrapResult struct {
	Kind LaunchKind

	// Exchanged is true when an authorization code was redeemed. At most one
	// exchange happens per redirect.
	Exchanged bool

	// ReloadAfter is the delay before the scheduled reload, zero when no
	// reload was scheduled.
	ReloadAfter time.Duration

	// ErrorFragment is appended to the app URL on failure so the UI can show
	// a recoverable banner instead of crashing.
	ErrorFragment string
}

// URLSource reports the app's current foreground URL. The native wrapper
// supplies one so the polling fallback can observe redirects that never
// arrive as deep-link events.
type URLSource func(ctx context.Context) string

// ReloadFunc performs the post-exchange application reload. The delivery
// layer supplies the actual mechanism; the bootstrapper only guarantees it
// is invoked exactly once per successful exchange.
type ReloadFunc func()

// SessionBootstrapper decides, before any routing, whether a launch is a
// normal start or an identity-provider redirect, and consumes the redirect
// when it is one.
type SessionBootstrapper interface {
	// HandleLaunch classifies the launch URL and, for a code redirect,
	// performs exactly one code exchange and schedules exactly one reload.
	HandleLaunch(ctx context.Context, input *LaunchInput) (*BootstrapResult, error)

	// StartCallbackWatch registers the redirect callback and, on native
	// platforms where deep-link delivery is unreliable, runs a bounded
	// polling fallback. It is the single owner of the poll loop; calling it
	// again stops the previous watch. Returns a stop function.
	StartCallbackWatch(ctx context.Context, input *LaunchInput, onRedirect func(*BootstrapResult)) (stop func(), err error)
}
