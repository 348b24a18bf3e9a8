package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/repository"
	mockRepo "esnaftaucuz/internal/mocks/repository"
	mockSvc "esnaftaucuz/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedFixtures holds all test dependencies for price feed tests.
type feedFixtures struct {
	feed      *priceFeed
	feedBus   *mockSvc.MockFeedBus
	priceRepo *mockRepo.MockPriceRepository
}

func createTestPriceFeed(t *testing.T) feedFixtures {
	feedBus := mockSvc.NewMockFeedBus(t)
	priceRepo := mockRepo.NewMockPriceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	feed, ok := NewPriceFeed(PriceFeedParams{
		FeedBus:   feedBus,
		PriceRepo: priceRepo,
		Logger:    logger,
	}).(*priceFeed)
	require.True(t, ok)

	return feedFixtures{feed: feed, feedBus: feedBus, priceRepo: priceRepo}
}

func insertEventFor(id uuid.UUID) *entity.FeedEvent {
	return &entity.FeedEvent{
		Action: entity.FeedActionInserted,
		Table:  "prices",
		Record: entity.FeedRecord{ID: id.String()},
	}
}

func TestPriceFeed_DuplicateInsertDoesNotDuplicate(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	priceID := uuid.New()
	price := &entity.Price{ID: priceID, Amount: 42.5}

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(price, nil).
		Twice()

	fx.feed.ApplyEvent(ctx, insertEventFor(priceID))
	fx.feed.ApplyEvent(ctx, insertEventFor(priceID))

	snapshot := fx.feed.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, priceID, snapshot[0].ID)
}

func TestPriceFeed_UpdateReplacesInPlace(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	priceID := uuid.New()

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(&entity.Price{ID: priceID, Amount: 10}, nil).
		Once()
	fx.feed.ApplyEvent(ctx, insertEventFor(priceID))

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(&entity.Price{ID: priceID, Amount: 12, IsVerified: true}, nil).
		Once()
	fx.feed.ApplyEvent(ctx, &entity.FeedEvent{
		Action: entity.FeedActionUpdated,
		Table:  "prices",
		Record: entity.FeedRecord{ID: priceID.String(), IsVerified: true},
	})

	snapshot := fx.feed.Snapshot()
	require.Len(t, snapshot, 1)
	assert.InDelta(t, 12, snapshot[0].Amount, 0.001)
	assert.True(t, snapshot[0].IsVerified)
}

func TestPriceFeed_DeleteRemovesWithoutFetch(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	priceID := uuid.New()

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(&entity.Price{ID: priceID}, nil).
		Once()
	fx.feed.ApplyEvent(ctx, insertEventFor(priceID))
	require.Len(t, fx.feed.Snapshot(), 1)

	// A delete carries enough in the payload; the mock would fail on any
	// secondary fetch here.
	fx.feed.ApplyEvent(ctx, &entity.FeedEvent{
		Action: entity.FeedActionDeleted,
		Table:  "prices",
		Record: entity.FeedRecord{ID: priceID.String()},
	})

	assert.Empty(t, fx.feed.Snapshot())
}

func TestPriceFeed_VanishedRowTreatedAsDelete(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	priceID := uuid.New()

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(nil, repository.ErrPriceNotFound).
		Once()

	fx.feed.ApplyEvent(ctx, insertEventFor(priceID))

	assert.Empty(t, fx.feed.Snapshot())
}

func TestPriceFeed_SecondaryFetchFailure_FallsBackToReload(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	priceID := uuid.New()
	reloaded := []*entity.Price{
		{ID: uuid.New(), Amount: 5},
		{ID: uuid.New(), Amount: 7},
	}

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(nil, errors.New("connection reset")).
		Once()
	fx.priceRepo.EXPECT().
		ListPrices(ctx, repository.PriceQuery{Limit: feedSnapshotLimit}).
		Return(reloaded, nil).
		Once()

	fx.feed.ApplyEvent(ctx, insertEventFor(priceID))

	assert.Len(t, fx.feed.Snapshot(), 2)
}

func TestPriceFeed_NonUUIDEventID_FallsBackToReload(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	fx.priceRepo.EXPECT().
		ListPrices(ctx, repository.PriceQuery{Limit: feedSnapshotLimit}).
		Return(nil, nil).
		Once()

	fx.feed.ApplyEvent(ctx, &entity.FeedEvent{
		Action: entity.FeedActionInserted,
		Table:  "prices",
		Record: entity.FeedRecord{ID: "not-a-uuid"},
	})
}

func TestPriceFeed_NewInsertPrepends(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, first).
		Return(&entity.Price{ID: first}, nil).
		Once()
	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, second).
		Return(&entity.Price{ID: second}, nil).
		Once()

	fx.feed.ApplyEvent(ctx, insertEventFor(first))
	fx.feed.ApplyEvent(ctx, insertEventFor(second))

	snapshot := fx.feed.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, second, snapshot[0].ID, "newest observation leads the list")
}

func TestPriceFeed_UpdatesCarriesLatestSnapshot(t *testing.T) {
	fx := createTestPriceFeed(t)

	ctx := context.Background()
	priceID := uuid.New()

	fx.priceRepo.EXPECT().
		FindPriceByID(ctx, priceID).
		Return(&entity.Price{ID: priceID}, nil).
		Once()

	fx.feed.ApplyEvent(ctx, insertEventFor(priceID))

	select {
	case snapshot := <-fx.feed.Updates():
		require.Len(t, snapshot, 1)
		assert.Equal(t, priceID, snapshot[0].ID)
	default:
		t.Fatal("expected a snapshot on the updates channel")
	}
}
