// Package timeouts provides centralized timeout values for calls to the
// platform API and for dashboard page handlers.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks against the platform API
//   - Call: a single GET to one platform endpoint
//   - Page: everything one dashboard panel waits on
//
// Values can be changed at startup with Configure; otherwise the defaults
// below are used.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing = 2 * time.Second
	DefaultCall = 5 * time.Second
	DefaultPage = 10 * time.Second
)

var (
	mu   sync.RWMutex
	ping = DefaultPing
	call = DefaultCall
	page = DefaultPage
)

// Ping returns the timeout for health probes.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Call returns the timeout for one platform API request. A stats load runs
// seven of these concurrently, so it is also the bound on the whole load.
func Call() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return call
}

// Page returns the timeout for rendering one dashboard panel.
func Page() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return page
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Ping time.Duration
	Call time.Duration
	Page time.Duration
}

// Configure sets custom timeout values. Call it during startup, before
// handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Call > 0 {
		call = cfg.Call
	}
	if cfg.Page > 0 {
		page = cfg.Page
	}
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	call = DefaultCall
	page = DefaultPage
}

// Current returns the timeouts in effect, for logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Call: call, Page: page}
}

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning if the deadline was hit before cancel ran.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "stats panel")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
