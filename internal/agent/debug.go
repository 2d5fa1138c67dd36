package agent

import "sync/atomic"

// debugLoggingEnabled controls debug logging for the behavior subsystem.
// Package-level flag to avoid checking the slog level on every tick of
// every agent. Set via EnableDebugLogging() during initialization based
// on the configured log level.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables behavior debug logging.
// Call during initialization, after parsing config.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if behavior debug logging is enabled.
// Use it to guard per-tick debug log calls:
//
//	if agent.IsDebugEnabled() {
//	    slog.Debug("tick detail", "agentID", id)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
