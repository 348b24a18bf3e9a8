package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"esnaftaucuz/internal/delivery/http/response"
	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// feedTable is the change-feed channel streamed to clients.
const feedTable = "prices"

// FeedHandler serves the live price list: a point-in-time snapshot plus a
// server-sent-events stream of change events.
type FeedHandler struct {
	feed    usecase.PriceFeed
	feedBus service.FeedBus
	logger  *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(feed usecase.PriceFeed, feedBus service.FeedBus, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{feed: feed, feedBus: feedBus, logger: logger}
}

// Snapshot returns the current deduplicated price list, newest first.
func (h *FeedHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feed.Snapshot(), "Feed snapshot retrieved successfully")
}

// Stream pushes change events to the client as server-sent events. Each
// client gets its own bus subscription; the connection ends when the client
// disconnects or the bus closes.
func (h *FeedHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()

	events, err := h.feedBus.Subscribe(ctx, feedTable)
	if err != nil {
		return errors.WithStack(err)
	}
	defer h.feedBus.Unsubscribe(feedTable, events)

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
		case event, ok := <-events:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Warn("Failed to encode feed event", slog.Any("error", err))

				continue
			}

			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Action, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
