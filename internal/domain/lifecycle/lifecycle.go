// Package lifecycle holds shared bounds for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (pings, listener teardown, server shutdown).
const DefaultTimeout = 10 * time.Second
