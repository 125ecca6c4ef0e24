// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module emit events through hook interfaces without
// depending on any observability backend. The binary registers concrete
// hooks at startup; until then every hook is a no-op.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolveHooks(&mySolveHooks{})
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	grid, err := maze.Build(s, layout)
//	observability.Solve().OnBuildComplete(ctx, rows, cols, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solve Hooks
// =============================================================================

// SolveHooks receives events from the solve pipeline, one per stage.
type SolveHooks interface {
	// OnBuildComplete fires after the image has been classified into a grid.
	OnBuildComplete(ctx context.Context, rows, cols int, duration time.Duration, err error)

	// OnGraphComplete fires after the slide graph has been built.
	OnGraphComplete(ctx context.Context, nodes, edges int, duration time.Duration)

	// OnPathComplete fires after the shortest path search, with the number
	// of nodes on the path (0 on failure).
	OnPathComplete(ctx context.Context, pathLen int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from remote maze sessions.
type SessionHooks interface {
	// OnDial records a connection attempt (1-based).
	OnDial(ctx context.Context, addr string, attempt int, err error)

	// OnMaze records one maze exchange (0-based index).
	OnMaze(ctx context.Context, sessionID string, index int, duration time.Duration, err error)

	// OnSessionEnd records the end of a session.
	OnSessionEnd(ctx context.Context, sessionID string, solved int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolveHooks is a no-op implementation of SolveHooks.
type NoopSolveHooks struct{}

func (NoopSolveHooks) OnBuildComplete(context.Context, int, int, time.Duration, error) {}
func (NoopSolveHooks) OnGraphComplete(context.Context, int, int, time.Duration)        {}
func (NoopSolveHooks) OnPathComplete(context.Context, int, time.Duration, error)       {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnDial(context.Context, string, int, error)                {}
func (NoopSessionHooks) OnMaze(context.Context, string, int, time.Duration, error) {}
func (NoopSessionHooks) OnSessionEnd(context.Context, string, int, error)          {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solveHooks   SolveHooks   = NoopSolveHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	hooksMu      sync.RWMutex
)

// SetSolveHooks registers custom solve hooks.
// This should be called once at application startup before any solve.
func SetSolveHooks(h SolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solveHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any session starts.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// Solve returns the registered solve hooks.
func Solve() SolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solveHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solveHooks = NoopSolveHooks{}
	cacheHooks = NoopCacheHooks{}
	sessionHooks = NoopSessionHooks{}
}
