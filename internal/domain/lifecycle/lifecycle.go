// Package lifecycle defines shared lifecycle constants for servers and clients.
package lifecycle

import "time"

// DefaultTimeout is the default timeout for graceful startup and shutdown.
const DefaultTimeout = 10 * time.Second
