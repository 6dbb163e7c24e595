// Package delivery defines the transport-agnostic contract for anything that serves traffic.
package delivery

import "context"

// Delivery is a long-running server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
