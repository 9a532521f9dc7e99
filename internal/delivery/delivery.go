// Package delivery defines the entry points driven by the process: HTTP servers and the job scheduler.
package delivery

import "context"

// Delivery is started by main once the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
