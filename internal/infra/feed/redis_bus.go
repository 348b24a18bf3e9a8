// Package feed implements the realtime change feed over Redis pub/sub.
// Producers publish row-level change events; the delivery layer fans them
// out to connected clients.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"esnaftaucuz/config"
	"esnaftaucuz/internal/domain/entity"
	"esnaftaucuz/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// feedMessage is the wire form of a change event on the Redis channel.
type feedMessage struct {
	Action string         `json:"action"`
	Table  string         `json:"table"`
	Record map[string]any `json:"record"`
}

// RedisFeedBus distributes change events through Redis pub/sub. One Redis
// subscription is held per table; local subscribers fan out from it.
type RedisFeedBus struct {
	client        *redis.Client
	logger        *slog.Logger
	channelPrefix string
	bufferSize    int

	mutex         sync.RWMutex
	subscriptions map[string]*redis.PubSub
	subscribers   map[string]map[chan *entity.FeedEvent]struct{}
	closed        bool
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Client *redis.Client
	Logger *slog.Logger
}

// New creates a Redis-backed feed bus and wires its shutdown.
func New(params Params) service.FeedBus {
	bus := &RedisFeedBus{
		client:        params.Client,
		logger:        params.Logger,
		channelPrefix: params.Config.Feed.ChannelPrefix,
		bufferSize:    params.Config.Feed.BufferSize,
		subscriptions: make(map[string]*redis.PubSub),
		subscribers:   make(map[string]map[chan *entity.FeedEvent]struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bus.Close()
		},
	})

	return bus
}

// Publish emits a change event on the table's channel.
func (b *RedisFeedBus) Publish(ctx context.Context, event *entity.FeedEvent) error {
	message := feedMessage{
		Action: string(event.Action),
		Table:  event.Table,
		Record: event.Record.Columns,
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal feed event")
	}

	if err := b.client.Publish(ctx, b.channelName(event.Table), payload).Err(); err != nil {
		return errors.Wrap(err, "failed to publish feed event")
	}

	return nil
}

// Subscribe returns a channel of normalized events for one table. The first
// subscriber for a table opens the Redis subscription; later ones share it.
func (b *RedisFeedBus) Subscribe(ctx context.Context, table string) (<-chan *entity.FeedEvent, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.closed {
		return nil, errors.New("feed bus is closed")
	}

	channel := b.channelName(table)

	if _, exists := b.subscriptions[channel]; !exists {
		pubsub := b.client.Subscribe(ctx, channel)
		if _, err := pubsub.Receive(ctx); err != nil {
			_ = pubsub.Close()

			return nil, errors.Wrapf(err, "failed to subscribe to channel %s", channel)
		}

		b.subscriptions[channel] = pubsub
		b.subscribers[channel] = make(map[chan *entity.FeedEvent]struct{})

		go b.receiveMessages(channel, table, pubsub)
	}

	events := make(chan *entity.FeedEvent, b.bufferSize)
	b.subscribers[channel][events] = struct{}{}

	return events, nil
}

// Unsubscribe releases the subscription created for the channel.
func (b *RedisFeedBus) Unsubscribe(table string, ch <-chan *entity.FeedEvent) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	channel := b.channelName(table)

	subscribers, exists := b.subscribers[channel]
	if !exists {
		return
	}

	for subscriber := range subscribers {
		if subscriber == ch {
			delete(subscribers, subscriber)
			close(subscriber)

			break
		}
	}

	if len(subscribers) == 0 {
		b.closeChannelLocked(channel)
	}
}

// Close tears down all subscriptions.
func (b *RedisFeedBus) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for channel, subscribers := range b.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}
		delete(b.subscribers, channel)
	}

	var firstErr error
	for channel, pubsub := range b.subscriptions {
		if err := pubsub.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "failed to close subscription %s", channel)
		}
		delete(b.subscriptions, channel)
	}

	return firstErr
}

// receiveMessages pumps one Redis subscription into the local subscribers.
// It exits when the subscription is closed.
func (b *RedisFeedBus) receiveMessages(channel, table string, pubsub *redis.PubSub) {
	for message := range pubsub.Channel() {
		event, err := b.decodeMessage(table, message.Payload)
		if err != nil {
			b.logger.LogAttrs(context.Background(), slog.LevelWarn, "dropping malformed feed message",
				slog.String("channel", channel),
				slog.Any("error", err),
			)

			continue
		}

		b.fanOut(channel, event)
	}
}

func (b *RedisFeedBus) decodeMessage(table, payload string) (*entity.FeedEvent, error) {
	var message feedMessage
	if err := json.Unmarshal([]byte(payload), &message); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal feed message")
	}

	record, err := NormalizeRecord(message.Record)
	if err != nil {
		return nil, err
	}

	if message.Table == "" {
		message.Table = table
	}

	return &entity.FeedEvent{
		Action: entity.FeedAction(message.Action),
		Table:  message.Table,
		Record: record,
	}, nil
}

// fanOut delivers one event to every local subscriber. Full subscriber
// channels are skipped rather than blocking the receive loop.
func (b *RedisFeedBus) fanOut(channel string, event *entity.FeedEvent) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	for subscriber := range b.subscribers[channel] {
		select {
		case subscriber <- event:
		default:
			b.logger.LogAttrs(context.Background(), slog.LevelWarn, "feed subscriber is full, dropping event",
				slog.String("channel", channel),
				slog.String("record_id", event.Record.ID),
			)
		}
	}
}

// closeChannelLocked tears down the Redis subscription for a channel.
// Callers must hold the write lock.
func (b *RedisFeedBus) closeChannelLocked(channel string) {
	if pubsub, exists := b.subscriptions[channel]; exists {
		if err := pubsub.Close(); err != nil {
			b.logger.LogAttrs(context.Background(), slog.LevelWarn, "failed to close feed subscription",
				slog.String("channel", channel),
				slog.Any("error", err),
			)
		}
		delete(b.subscriptions, channel)
	}
	delete(b.subscribers, channel)
}

func (b *RedisFeedBus) channelName(table string) string {
	return b.channelPrefix + ":" + table
}
