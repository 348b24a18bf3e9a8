package service

import (
	"context"

	"esnaftaucuz/internal/domain/entity"
)

// FeedBus defines the realtime change feed used by the price list.
// Events are published per table; subscribers receive normalized events.
type FeedBus interface {
	// Publish emits a change event on the table's channel.
	Publish(ctx context.Context, event *entity.FeedEvent) error

	// Subscribe returns a channel of events for one table. Each call gets an
	// independent channel; slow consumers may miss events, they are not
	// buffered beyond the configured size.
	Subscribe(ctx context.Context, table string) (<-chan *entity.FeedEvent, error)

	// Unsubscribe releases the subscription created for the channel.
	Unsubscribe(table string, ch <-chan *entity.FeedEvent)

	// Close tears down all subscriptions.
	Close() error
}
