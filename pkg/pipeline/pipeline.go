// Package pipeline chains the solve stages of ventriglisse: decode the maze
// image, build the grid, build the slide graph, find the shortest path and
// encode it as a move string.
//
// The CLI, the HTTP API and the remote session all go through this package
// so that they solve mazes the same way.
//
// # Usage
//
// Solve a decoded image directly:
//
//	res, err := pipeline.Solve(img, pipeline.Options{})
//	fmt.Println(res.Moves)
//
// Or let a Runner handle decoding and caching of raw PNG bytes:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pngBytes, pipeline.Options{Alphabet: "french"})
//
// # Failures
//
// A solve fails in one of two structural ways, both typed in pkg/errors:
// the image does not follow the rendering contract (*errors.MalformedImageError)
// or the graph has no route from start to end (*errors.PathNotFoundError).
// Once a grid was built, failures are wrapped in a [*SolveError] that keeps
// the grid for diagnosis.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ventriglisse/pkg/cache"
	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/moves"
	"github.com/matzehuels/ventriglisse/pkg/slide"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Session
// =============================================================================

// DefaultAlphabet is the alphabet used when Options.Alphabet is empty.
const DefaultAlphabet = "default"

// Format constants for rendered outputs.
const (
	FormatPNG  = "png"  // Maze image redrawn from the grid
	FormatText = "txt"  // Grid in the text fixture format
	FormatJSON = "json" // Grid as JSON
	FormatDOT  = "dot"  // Slide graph as Graphviz DOT
	FormatSVG  = "svg"  // Slide graph rendered to SVG
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a solve. The zero value solves with the default layout
// and alphabet.
type Options struct {
	Layout   maze.Layout `json:"layout"`
	Alphabet string      `json:"alphabet,omitempty"` // Named alphabet or four letters
	Refresh  bool        `json:"refresh,omitempty"`  // Bypass cached answers

	// Render options
	Formats []string `json:"formats,omitempty"`
	Pinned  bool     `json:"pinned,omitempty"` // Draw graph nodes at their grid positions

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	alphabet  moves.Alphabet
	validated bool
}

// Result contains the outputs of a solve.
type Result struct {
	// Moves is the encoded move string.
	Moves string

	// ImageHash is the content hash of the source image, when known.
	ImageHash string

	// Grid, Graph and Path are the intermediate stage outputs. They are
	// nil when the result came from the cache.
	Grid  *maze.Grid
	Graph *slide.Graph
	Path  slide.Path

	// Stats contains timing and size information.
	Stats Stats

	// Cached reports whether Moves came from the cache.
	Cached bool
}

// Stats contains solve statistics.
type Stats struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Nodes   int `json:"nodes"`
	Edges   int `json:"edges"`
	PathLen int `json:"path_len"`

	BuildTime time.Duration `json:"-"`
	GraphTime time.Duration `json:"-"`
	PathTime  time.Duration `json:"-"`
}

// Total returns the time spent in all stages.
func (s Stats) Total() time.Duration {
	return s.BuildTime + s.GraphTime + s.PathTime
}

// SolveError wraps a failure that happened after the grid was built, so
// callers can persist the grid next to the offending image.
type SolveError struct {
	Grid *maze.Grid
	Err  error
}

func (e *SolveError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *SolveError) Unwrap() error { return e.Err }

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: png, txt, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Layout == (maze.Layout{}) {
		o.Layout = maze.DefaultLayout
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if o.Alphabet == "" {
		o.Alphabet = DefaultAlphabet
	}
	a, err := moves.ParseAlphabet(o.Alphabet)
	if err != nil {
		return err
	}
	o.alphabet = a
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	return ValidateFormats(o.Formats)
}

// MovesKeyOpts returns cache key options for move string caching.
// The alphabet is keyed by its letters, so "french" and "NSEO" share entries.
func (o *Options) MovesKeyOpts() cache.MovesKeyOpts {
	return cache.MovesKeyOpts{
		Alphabet: o.alphabet.String(),
		Layout:   o.Layout,
	}
}
