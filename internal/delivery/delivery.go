// Package delivery defines the contract shared by all delivery surfaces.
package delivery

import "context"

// Delivery is a long-running server that blocks until ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
