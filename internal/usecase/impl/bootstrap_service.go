package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultReloadDelay  = 500 * time.Millisecond
	defaultPollInterval = time.Second
	defaultMaxPolls     = 30

	// consumedCodeTTL bounds the duplicate-delivery guard. Provider codes
	// expire within minutes, so entries older than this cannot recur.
	consumedCodeTTL = 10 * time.Minute

	errorFragmentExchangeFailed = "error=oauth_exchange_failed"
)

// bootstrapService classifies launch URLs and consumes OAuth redirects.
// It is the single owner of the polling fallback: starting a new watch stops
// the previous one.
type bootstrapService struct {
	oauth        service.OAuthCodeService
	currentURL   usecase.URLSource
	reload       usecase.ReloadFunc
	reloadDelay  time.Duration
	pollInterval time.Duration
	maxPolls     int
	logger       *slog.Logger

	mu sync.Mutex
	// consumedCodes guards against the same redirect being delivered twice
	// (deep link plus poll observation). Each code is exchanged at most once;
	// entries older than consumedCodeTTL are swept on insert.
	consumedCodes map[string]time.Time
	stopWatch     chan struct{}
}

// BootstrapServiceParams holds dependencies for the bootstrapper, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	OAuth      service.OAuthCodeService
	CurrentURL usecase.URLSource  `optional:"true"`
	Reload     usecase.ReloadFunc `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(params BootstrapServiceParams) usecase.SessionBootstrapper {
	reloadDelay := defaultReloadDelay
	pollInterval := defaultPollInterval
	maxPolls := defaultMaxPolls
	if params.Config != nil && params.Config.Bootstrap != nil {
		if params.Config.Bootstrap.ReloadDelay > 0 {
			reloadDelay = params.Config.Bootstrap.ReloadDelay
		}
		if params.Config.Bootstrap.PollInterval > 0 {
			pollInterval = params.Config.Bootstrap.PollInterval
		}
		if params.Config.Bootstrap.MaxPolls > 0 {
			maxPolls = params.Config.Bootstrap.MaxPolls
		}
	}

	return &bootstrapService{
		oauth:         params.OAuth,
		currentURL:    params.CurrentURL,
		reload:        params.Reload,
		reloadDelay:   reloadDelay,
		pollInterval:  pollInterval,
		maxPolls:      maxPolls,
		logger:        params.Logger,
		consumedCodes: make(map[string]time.Time),
	}
}

// HandleLaunch classifies the launch URL and, for a code redirect, performs
// exactly one code exchange and schedules exactly one reload. Failures are
// recoverable: they come back as an error fragment, never as a crash.
func (srv *bootstrapService) HandleLaunch(ctx context.Context, input *usecase.LaunchInput) (*usecase.BootstrapResult, error) {
	parsed, err := url.Parse(input.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse launch URL")
	}

	fragment := parseFragment(parsed.Fragment)
	query := parsed.Query()

	// Provider-reported errors short-circuit everything else.
	if providerErr := firstNonEmpty(query.Get("error"), fragment.Get("error")); providerErr != "" {
		srv.logger.Warn("Launch URL carries a provider error", slog.String("error", providerErr))

		return &usecase.BootstrapResult{
			Kind:          usecase.LaunchOAuthError,
			ErrorFragment: "error=" + url.QueryEscape(providerErr),
		}, nil
	}

	// A token in the fragment means the provider SDK already holds the
	// session; defer to its own callback handling.
	if fragment.Get("access_token") != "" {
		return &usecase.BootstrapResult{Kind: usecase.LaunchOAuthToken}, nil
	}

	code := query.Get("code")
	if code == "" {
		return &usecase.BootstrapResult{Kind: usecase.LaunchNormal}, nil
	}

	return srv.consumeCode(ctx, code, query.Get("state"))
}

// consumeCode redeems an authorization code once. A code seen before is a
// duplicate delivery and comes back as an already-consumed redirect with no
// second exchange and no second reload.
func (srv *bootstrapService) consumeCode(ctx context.Context, code, state string) (*usecase.BootstrapResult, error) {
	now := time.Now()

	srv.mu.Lock()
	for seen, consumedAt := range srv.consumedCodes {
		if now.Sub(consumedAt) > consumedCodeTTL {
			delete(srv.consumedCodes, seen)
		}
	}
	if _, seen := srv.consumedCodes[code]; seen {
		srv.mu.Unlock()
		srv.logger.Debug("Ignoring already-consumed authorization code")

		return &usecase.BootstrapResult{Kind: usecase.LaunchOAuthCode}, nil
	}
	srv.consumedCodes[code] = now
	srv.mu.Unlock()

	if _, err := srv.oauth.ExchangeCode(ctx, code, state); err != nil {
		srv.logger.Warn("Code exchange failed", slog.Any("error", err))

		return &usecase.BootstrapResult{
			Kind:          usecase.LaunchOAuthError,
			ErrorFragment: errorFragmentExchangeFailed,
		}, nil
	}

	// One reload per successful exchange, after a short settle delay so the
	// session-consuming code re-initializes cleanly.
	if srv.reload != nil {
		time.AfterFunc(srv.reloadDelay, srv.reload)
	}

	return &usecase.BootstrapResult{
		Kind:        usecase.LaunchOAuthCode,
		Exchanged:   true,
		ReloadAfter: srv.reloadDelay,
	}, nil
}

// StartCallbackWatch registers the redirect callback. On native platforms it
// additionally polls the foreground URL, bounded to maxPolls ticks, because
// deep-link delivery there is unreliable. The previous watch, if any, is
// stopped first: there is only ever one owner of the poll loop.
func (srv *bootstrapService) StartCallbackWatch(ctx context.Context, input *usecase.LaunchInput, onRedirect func(*usecase.BootstrapResult)) (func(), error) {
	if onRedirect == nil {
		return nil, errors.New("redirect callback is required")
	}

	srv.mu.Lock()
	if srv.stopWatch != nil {
		close(srv.stopWatch)
	}
	stop := make(chan struct{})
	srv.stopWatch = stop
	srv.mu.Unlock()

	stopFn := func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		if srv.stopWatch == stop {
			close(srv.stopWatch)
			srv.stopWatch = nil
		}
	}

	if !input.Native || srv.currentURL == nil {
		// Browser: the redirect arrives as a page load, no polling needed.
		return stopFn, nil
	}

	go srv.pollForRedirect(ctx, stop, onRedirect)

	return stopFn, nil
}

func (srv *bootstrapService) pollForRedirect(ctx context.Context, stop <-chan struct{}, onRedirect func(*usecase.BootstrapResult)) {
	ticker := time.NewTicker(srv.pollInterval)
	defer ticker.Stop()

	for polls := 0; polls < srv.maxPolls; polls++ {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
		}

		current := srv.currentURL(ctx)
		if current == "" {
			continue
		}

		result, err := srv.HandleLaunch(ctx, &usecase.LaunchInput{URL: current, Native: true})
		if err != nil {
			srv.logger.Warn("Poll observed an unparseable URL", slog.Any("error", err))

			continue
		}

		if result.Kind != usecase.LaunchNormal {
			onRedirect(result)

			return
		}
	}

	srv.logger.Debug("Redirect poll budget exhausted")
}

// parseFragment reads a URL fragment as query-style key/value pairs.
func parseFragment(fragment string) url.Values {
	fragment = strings.TrimPrefix(fragment, "#")
	values, err := url.ParseQuery(fragment)
	if err != nil {
		return url.Values{}
	}

	return values
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
