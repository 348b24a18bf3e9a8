package service

import (
	"context"
)

// PriceEvent represents a new price observation to be processed by the alert worker
type PriceEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	PriceID      string  `json:"price_id"`
	UserID       string  `json:"user_id,omitempty"` // Submitter, excluded from alert fan-out
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"location_name"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPriceEvent publishes a price event for async processing
	PublishPriceEvent(ctx context.Context, event *PriceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
