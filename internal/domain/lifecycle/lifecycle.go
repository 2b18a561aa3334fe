// Package lifecycle holds shutdown timing shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStop hook.
const DefaultTimeout = 10 * time.Second
