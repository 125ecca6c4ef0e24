package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ventriglisse/pkg/observability"
)

// logHooks writes observability events as debug lines, so -v shows stage
// timings without a metrics backend.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.SolveHooks   = (*logHooks)(nil)
	_ observability.CacheHooks   = (*logHooks)(nil)
	_ observability.SessionHooks = (*logHooks)(nil)
)

func (h *logHooks) OnBuildComplete(_ context.Context, rows, cols int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("grid build failed", "duration", d, "err", err)
		return
	}
	h.logger.Debug("grid built", "rows", rows, "cols", cols, "duration", d)
}

func (h *logHooks) OnGraphComplete(_ context.Context, nodes, edges int, d time.Duration) {
	h.logger.Debug("graph built", "nodes", nodes, "edges", edges, "duration", d)
}

func (h *logHooks) OnPathComplete(_ context.Context, pathLen int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("path search failed", "duration", d, "err", err)
		return
	}
	h.logger.Debug("path found", "nodes", pathLen, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnDial(_ context.Context, addr string, attempt int, err error) {
	if err != nil {
		h.logger.Warn("dial failed", "addr", addr, "attempt", attempt, "err", err)
		return
	}
	h.logger.Debug("connected", "addr", addr, "attempt", attempt)
}

func (h *logHooks) OnMaze(_ context.Context, sessionID string, index int, d time.Duration, err error) {
	h.logger.Debug("maze", "index", index, "duration", d, "err", err)
}

func (h *logHooks) OnSessionEnd(_ context.Context, sessionID string, solved int, err error) {
	h.logger.Debug("session end", "id", sessionID, "solved", solved, "err", err)
}
