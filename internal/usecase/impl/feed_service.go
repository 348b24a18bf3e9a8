package impl

import (
	"context"
	"log/slog"
	"sync"

	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/repository"
	"esnaftaucuz/internal/domain/service"
	"esnaftaucuz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const feedSnapshotLimit = 100

// priceFeed maintains a live, deduplicated price list from change-feed
// events. The pushed payload only carries raw columns, so inserts and
// updates go through a secondary fetch-by-id for the joined record.
type priceFeed struct {
	feedBus   service.FeedBus
	priceRepo repository.PriceRepository
	logger    *slog.Logger

	mu     sync.RWMutex
	prices []*entity.Price // Newest first, unique by ID.

	updates chan []*entity.Price
}

// PriceFeedParams holds dependencies for the price feed, injected by Fx.
type PriceFeedParams struct {
	fx.In

	FeedBus   service.FeedBus
	PriceRepo repository.PriceRepository
	Logger    *slog.Logger
}

// NewPriceFeed is the constructor for priceFeed.
func NewPriceFeed(params PriceFeedParams) usecase.PriceFeed {
	return &priceFeed{
		feedBus:   params.FeedBus,
		priceRepo: params.PriceRepo,
		logger:    params.Logger,
		updates:   make(chan []*entity.Price, 1),
	}
}

// Run subscribes to the change feed and applies events until ctx is
// cancelled.
func (f *priceFeed) Run(ctx context.Context) error {
	if err := f.reload(ctx); err != nil {
		return errors.Wrap(err, "failed to load initial price list")
	}

	events, err := f.feedBus.Subscribe(ctx, feedTablePrices)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to price feed")
	}
	defer f.feedBus.Unsubscribe(feedTablePrices, events)
	defer close(f.updates)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			f.ApplyEvent(ctx, event)
		}
	}
}

// ApplyEvent folds one change event into the list. Exported for direct use
// by tests and by delivery surfaces that bypass Run.
func (f *priceFeed) ApplyEvent(ctx context.Context, event *entity.FeedEvent) {
	switch event.Action {
	case entity.FeedActionDeleted:
		// Deletes carry enough in the raw payload; no secondary fetch.
		f.remove(event.Record.ID)

	case entity.FeedActionInserted, entity.FeedActionUpdated:
		id, err := uuid.Parse(event.Record.ID)
		if err != nil {
			f.logger.Warn("Feed event carries a non-UUID id, reloading",
				slog.String("id", event.Record.ID),
			)
			f.reloadOrLog(ctx)

			return
		}

		price, err := f.priceRepo.FindPriceByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPriceNotFound) {
				// Row vanished between the push and the fetch; treat as delete.
				f.remove(event.Record.ID)

				return
			}

			f.logger.Warn("Secondary fetch failed, falling back to full reload",
				slog.String("id", event.Record.ID),
				slog.Any("error", err),
			)
			f.reloadOrLog(ctx)

			return
		}

		f.upsert(price)

	default:
		f.logger.Warn("Ignoring feed event with unknown action",
			slog.String("action", string(event.Action)),
		)
	}
}

// Snapshot returns the current list, newest first.
func (f *priceFeed) Snapshot() []*entity.Price {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*entity.Price, len(f.prices))
	copy(out, f.prices)

	return out
}

// Updates returns the snapshot channel. Closed when Run returns.
func (f *priceFeed) Updates() <-chan []*entity.Price {
	return f.updates
}

// upsert replaces an existing entry by ID or prepends a new one.
// Last write wins; applying the same insert twice cannot duplicate.
func (f *priceFeed) upsert(price *entity.Price) {
	f.mu.Lock()

	replaced := false
	for i, existing := range f.prices {
		if existing.ID == price.ID {
			f.prices[i] = price
			replaced = true

			break
		}
	}
	if !replaced {
		f.prices = append([]*entity.Price{price}, f.prices...)
	}

	f.mu.Unlock()
	f.publish()
}

func (f *priceFeed) remove(id string) {
	f.mu.Lock()

	changed := false
	for i, existing := range f.prices {
		if existing.ID.String() == id {
			f.prices = append(f.prices[:i], f.prices[i+1:]...)
			changed = true

			break
		}
	}

	f.mu.Unlock()
	if changed {
		f.publish()
	}
}

func (f *priceFeed) reload(ctx context.Context) error {
	prices, err := f.priceRepo.ListPrices(ctx, repository.PriceQuery{Limit: feedSnapshotLimit})
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.prices = prices
	f.mu.Unlock()
	f.publish()

	return nil
}

func (f *priceFeed) reloadOrLog(ctx context.Context) {
	if err := f.reload(ctx); err != nil {
		f.logger.Error("Full reload fallback failed, keeping stale list", slog.Any("error", err))
	}
}

// publish sends the current list without blocking; the channel keeps only
// the latest snapshot.
func (f *priceFeed) publish() {
	snapshot := f.Snapshot()

	select {
	case f.updates <- snapshot:
	default:
		select {
		case <-f.updates:
		default:
		}
		select {
		case f.updates <- snapshot:
		default:
		}
	}
}
