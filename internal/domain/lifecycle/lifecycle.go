// Package lifecycle holds shared timeouts for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as database pings and server shutdown.
const DefaultTimeout = 10 * time.Second
