package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ventriglisse/pkg/cache"
	"github.com/matzehuels/ventriglisse/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedMoves is the cache payload of a solved image.
type cachedMoves struct {
	Moves string `json:"moves"`
	Stats Stats  `json:"stats"`
}

const keyTypeMoves = "moves"

// Execute solves the PNG image in data, answering from the cache when the
// same image was solved before with the same options (unless opts.Refresh).
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	imageHash := cache.Hash(data)
	cacheKey := r.Keyer.MovesKey(imageHash, opts.MovesKeyOpts())

	if !opts.Refresh {
		if res, ok := r.lookup(ctx, cacheKey); ok {
			res.ImageHash = imageHash
			r.Logger.Info("solved maze",
				"moves", res.Moves,
				"cached", true,
				"image", imageHash[:12])
			return res, nil
		}
	}

	img, err := Decode(data)
	if err != nil {
		return nil, err
	}

	res, err := SolveContext(ctx, img, opts)
	if err != nil {
		return res, err
	}
	res.ImageHash = imageHash

	r.Logger.Info("solved maze",
		"moves", res.Moves,
		"grid", fmt.Sprintf("%dx%d", res.Stats.Cols, res.Stats.Rows),
		"edges", res.Stats.Edges,
		"duration", res.Stats.Total())

	r.store(ctx, cacheKey, res)
	return res, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeMoves)
		return nil, false
	}

	var entry cachedMoves
	if err := json.Unmarshal(data, &entry); err != nil || entry.Moves == "" {
		observability.Cache().OnCacheMiss(ctx, keyTypeMoves)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeMoves)
	return &Result{Moves: entry.Moves, Stats: entry.Stats, Cached: true}, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result) {
	data, err := json.Marshal(cachedMoves{Moves: res.Moves, Stats: res.Stats})
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLMoves); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeMoves, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
