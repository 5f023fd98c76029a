// Package lifecycle holds timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
