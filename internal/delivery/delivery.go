// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running transport serving the application, started by
// main and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
