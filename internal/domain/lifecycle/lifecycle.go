// Package lifecycle defines timing shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (pings) and graceful shutdowns.
const DefaultTimeout = 15 * time.Second
