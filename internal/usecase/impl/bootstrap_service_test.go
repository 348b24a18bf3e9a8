package impl

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/service"
	mockSvc "esnaftaucuz/internal/mocks/service"
	"esnaftaucuz/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bootstrapFixtures holds all test dependencies for bootstrapper tests.
type bootstrapFixtures struct {
	service     usecase.SessionBootstrapper
	oauth       *mockSvc.MockOAuthCodeService
	reloadCount *atomic.Int32
}

func createTestBootstrapper(t *testing.T, currentURL usecase.URLSource) bootstrapFixtures {
	oauth := mockSvc.NewMockOAuthCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var reloadCount atomic.Int32
	service := NewBootstrapService(BootstrapServiceParams{
		OAuth:      oauth,
		CurrentURL: currentURL,
		Reload:     func() { reloadCount.Add(1) },
		Config: &config.Config{
			Bootstrap: &config.BootstrapConfig{
				ReloadDelay:  10 * time.Millisecond,
				PollInterval: 5 * time.Millisecond,
				MaxPolls:     5,
			},
		},
		Logger: logger,
	})

	return bootstrapFixtures{service: service, oauth: oauth, reloadCount: &reloadCount}
}

func waitForReloads(t *testing.T, count *atomic.Int32, want int32) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if count.Load() >= want {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}
	// Settle long enough for a second, erroneous reload to fire.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, want, count.Load())
}

func TestBootstrapService_NormalLaunch(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	result, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchNormal, result.Kind)
	assert.False(t, result.Exchanged)
}

func TestBootstrapService_CodeRedirect_ExchangesOnceAndReloadsOnce(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	fx.oauth.EXPECT().
		ExchangeCode(context.Background(), "XYZ", "st4te").
		Return(&service.OAuthUser{ID: "google-sub", Email: "test@example.com"}, nil).
		Once()

	result, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/?code=XYZ&state=st4te",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchOAuthCode, result.Kind)
	assert.True(t, result.Exchanged)
	assert.Equal(t, 10*time.Millisecond, result.ReloadAfter)

	// The same redirect delivered again (deep link plus poll observation)
	// must neither exchange nor reload a second time.
	duplicate, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/?code=XYZ&state=st4te",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchOAuthCode, duplicate.Kind)
	assert.False(t, duplicate.Exchanged)

	waitForReloads(t, fx.reloadCount, 1)
}

func TestBootstrapService_StaleConsumedCodesAreSwept(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	srv, ok := fx.service.(*bootstrapService)
	require.True(t, ok)

	// Seed one entry past the TTL and one still within it.
	srv.mu.Lock()
	srv.consumedCodes["STALE"] = time.Now().Add(-consumedCodeTTL - time.Minute)
	srv.consumedCodes["RECENT"] = time.Now()
	srv.mu.Unlock()

	fx.oauth.EXPECT().
		ExchangeCode(context.Background(), "FRESH", "").
		Return(&service.OAuthUser{ID: "google-sub"}, nil).
		Once()

	result, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/?code=FRESH",
	})
	require.NoError(t, err)
	assert.True(t, result.Exchanged)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.NotContains(t, srv.consumedCodes, "STALE", "expired entries must be pruned on insert")
	assert.Contains(t, srv.consumedCodes, "RECENT")
	assert.Contains(t, srv.consumedCodes, "FRESH")
}

func TestBootstrapService_ExchangeFailure_YieldsErrorFragment(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	fx.oauth.EXPECT().
		ExchangeCode(context.Background(), "BAD", "").
		Return(nil, errors.New("invalid grant")).
		Once()

	result, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/?code=BAD",
	})

	require.NoError(t, err, "exchange failure is recoverable, never an error")
	assert.Equal(t, usecase.LaunchOAuthError, result.Kind)
	assert.Equal(t, "error=oauth_exchange_failed", result.ErrorFragment)

	waitForReloads(t, fx.reloadCount, 0)
}

func TestBootstrapService_ProviderError_ShortCircuits(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	result, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/?error=access_denied&code=XYZ",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchOAuthError, result.Kind)
	assert.Equal(t, "error=access_denied", result.ErrorFragment)
}

func TestBootstrapService_FragmentError_IsDetected(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	result, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/#error=server_error",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchOAuthError, result.Kind)
}

func TestBootstrapService_TokenFragment_DefersToProvider(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	result, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "https://app.example.com/#access_token=abc&token_type=bearer",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.LaunchOAuthToken, result.Kind)
	assert.False(t, result.Exchanged)
}

func TestBootstrapService_UnparseableURL_ReturnsError(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	_, err := fx.service.HandleLaunch(context.Background(), &usecase.LaunchInput{
		URL: "://not-a-url",
	})

	assert.Error(t, err)
}

func TestBootstrapService_PollObservesRedirect(t *testing.T) {
	var calls atomic.Int32
	currentURL := func(ctx context.Context) string {
		if calls.Add(1) < 2 {
			return "https://app.example.com/"
		}

		return "https://app.example.com/?code=POLLED"
	}

	fx := createTestBootstrapper(t, currentURL)

	fx.oauth.EXPECT().
		ExchangeCode(context.Background(), "POLLED", "").
		Return(&service.OAuthUser{ID: "google-sub"}, nil).
		Once()

	results := make(chan *usecase.BootstrapResult, 1)
	stop, err := fx.service.StartCallbackWatch(context.Background(),
		&usecase.LaunchInput{Native: true},
		func(result *usecase.BootstrapResult) { results <- result },
	)
	require.NoError(t, err)
	defer stop()

	select {
	case result := <-results:
		assert.Equal(t, usecase.LaunchOAuthCode, result.Kind)
		assert.True(t, result.Exchanged)
	case <-time.After(time.Second):
		t.Fatal("poll never observed the redirect")
	}
}

func TestBootstrapService_PollBudgetIsBounded(t *testing.T) {
	var calls atomic.Int32
	currentURL := func(ctx context.Context) string {
		calls.Add(1)

		return "https://app.example.com/"
	}

	fx := createTestBootstrapper(t, currentURL)

	stop, err := fx.service.StartCallbackWatch(context.Background(),
		&usecase.LaunchInput{Native: true},
		func(*usecase.BootstrapResult) { t.Error("no redirect should be reported") },
	)
	require.NoError(t, err)
	defer stop()

	// With a 5ms interval and 5 polls the loop must settle well within this.
	time.Sleep(100 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), int32(5), "poll loop must stop at its budget")
}

func TestBootstrapService_BrowserWatchDoesNotPoll(t *testing.T) {
	var calls atomic.Int32
	currentURL := func(ctx context.Context) string {
		calls.Add(1)

		return ""
	}

	fx := createTestBootstrapper(t, currentURL)

	stop, err := fx.service.StartCallbackWatch(context.Background(),
		&usecase.LaunchInput{Native: false},
		func(*usecase.BootstrapResult) {},
	)
	require.NoError(t, err)
	defer stop()

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, calls.Load(), "non-native launches rely on page loads, not polling")
}

func TestBootstrapService_NewWatchStopsPrevious(t *testing.T) {
	fx := createTestBootstrapper(t, func(ctx context.Context) string { return "" })

	first, err := fx.service.StartCallbackWatch(context.Background(),
		&usecase.LaunchInput{Native: true}, func(*usecase.BootstrapResult) {})
	require.NoError(t, err)

	second, err := fx.service.StartCallbackWatch(context.Background(),
		&usecase.LaunchInput{Native: true}, func(*usecase.BootstrapResult) {})
	require.NoError(t, err)

	// The first stop function is now stale; calling it must not panic or
	// tear down the second watch.
	first()
	second()
}

func TestBootstrapService_MissingCallback_IsRejected(t *testing.T) {
	fx := createTestBootstrapper(t, nil)

	_, err := fx.service.StartCallbackWatch(context.Background(), &usecase.LaunchInput{}, nil)
	assert.Error(t, err)
}
