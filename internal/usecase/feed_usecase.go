package usecase

import (
	"context"

	"esnaftaucuz/internal/domain/entity"
)

// PriceFeed maintains a live, deduplicated list of prices by applying
// change-feed events. Pushed payloads carry only raw columns, so every
// insert or update triggers a secondary fetch-by-id to obtain the joined
// record before the list is touched.
type PriceFeed interface {
	// Run subscribes to the change feed and applies events until ctx is
	// cancelled. A failed secondary fetch falls back to a full reload.
	Run(ctx context.Context) error

	// Snapshot returns the current list, newest first.
	Snapshot() []*entity.Price

	// Updates returns a channel receiving the full list after every applied
	// event. Closed when Run returns.
	Updates() <-chan []*entity.Price
}
