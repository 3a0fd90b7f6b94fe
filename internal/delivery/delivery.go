// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker) started by the cmd
// wiring. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
