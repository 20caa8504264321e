// Package delivery defines the transport-facing surface of the application.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
// Implementations register their own shutdown through fx lifecycle hooks.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
