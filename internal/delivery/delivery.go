// Package delivery holds the entry points that drive the application: the
// HTTP API, the worker pool and the Pub/Sub ingest server.
package delivery

import "context"

// Delivery is a long-running entry point started by the fx app.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
