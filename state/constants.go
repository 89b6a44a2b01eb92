package state

import "time"

const (
	INF = ^(uint32)(0)
	// INFM is the maximum value for a metric that still counts as reachable.
	INFM = INF - 1
)

var (
	// DefaultMaxRounds bounds the round loop when the topology does not set its
	// own cap. 64 comfortably exceeds the diameter of any reasonable topology.
	DefaultMaxRounds = 64

	// DefaultWatchDelay is the pause between rendered rounds in watch mode.
	DefaultWatchDelay = 1500 * time.Millisecond

	// RunRetention is how long the API server keeps finished run records.
	RunRetention = time.Hour

	// DefaultBind is the address the API server listens on.
	DefaultBind = "127.0.0.1:7575"
)

// debug flags, bound to cli flags in cmd
var (
	DBG_log_route_changes = false
	DBG_trace             = false
	DBG_debug             = false
)
