// Package handler contains the Pub/Sub push handlers for the alert worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"esnaftaucuz/config"
	deliverycontext "esnaftaucuz/internal/delivery/context"
	"esnaftaucuz/internal/domain/constants"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying new price observations
// and fans them out as push notifications to nearby users.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	userRepo        repository.UserRepository
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	UserRepo        repository.UserRepository
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		userRepo:        params.UserRepo,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse price event
	var event service.PriceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse price event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing price event",
		slog.String("price_id", event.PriceID),
		slog.String("product_name", event.ProductName),
	)

	// Process the price alert
	if err := h.processPriceAlert(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process price alert",
			slog.String("price_id", event.PriceID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Price alert processed successfully",
		slog.String("price_id", event.PriceID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PriceEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processPriceAlert notifies users whose effective search radius covers the
// observation point. The submitter is never notified of their own price.
func (h *PushHandler) processPriceAlert(ctx context.Context, event *service.PriceEvent) error {
	if event.Latitude == 0 && event.Longitude == 0 {
		h.logger.Info("[Worker] Price event carries no coordinates, skipping",
			slog.String("price_id", event.PriceID),
		)

		return nil
	}

	users, err := h.userRepo.FindNotifiableNear(ctx, event.Latitude, event.Longitude)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	tokens := h.collectTokens(users, event)
	if len(tokens) == 0 {
		h.logger.Info("[Worker] No notifiable users near price point",
			slog.String("price_id", event.PriceID),
		)

		return nil
	}

	title, body, notificationData := h.prepareNotificationContent(event)

	successCount, failureCount, invalidTokens, err := h.notificationSvc.SendBatchNotification(
		ctx, tokens, title, body, notificationData,
	)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	h.logger.Info("[Worker] Price alert notifications sent",
		slog.String("price_id", event.PriceID),
		slog.Int("sent", successCount),
		slog.Int("failed", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// collectTokens extracts registered push tokens, skipping the submitter.
func (h *PushHandler) collectTokens(users []*entity.User, event *service.PriceEvent) []string {
	tokens := make([]string, 0, len(users))
	for _, user := range users {
		if user.Preferences.FCMToken == "" {
			continue
		}
		if user.ID.String() == event.UserID {
			continue
		}
		tokens = append(tokens, user.Preferences.FCMToken)
	}

	return tokens
}

// prepareNotificationContent creates the notification title, body, and data
func (h *PushHandler) prepareNotificationContent(event *service.PriceEvent) (title, body string, data map[string]string) {
	title = "Yakınında yeni fiyat"
	body = fmt.Sprintf("%s: %.2f TL/%s - %s", event.ProductName, event.Amount, event.Unit, event.LocationName)

	data = map[string]string{
		"price_id":     event.PriceID,
		"product_id":   event.ProductID,
		"product_name": event.ProductName,
		"latitude":     fmt.Sprintf("%f", event.Latitude),
		"longitude":    fmt.Sprintf("%f", event.Longitude),
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
