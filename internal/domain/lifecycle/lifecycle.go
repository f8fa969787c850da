// Package lifecycle holds shared start/stop constants for managed components.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown work for managed
// components such as the HTTP server and database pool.
const DefaultTimeout = 10 * time.Second
