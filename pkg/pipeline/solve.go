package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"time"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/moves"
	"github.com/matzehuels/ventriglisse/pkg/observability"
	"github.com/matzehuels/ventriglisse/pkg/slide"
)

// Decode decodes PNG bytes into an image. Undecodable data is reported as
// a *errors.MalformedImageError.
func Decode(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &verrors.MalformedImageError{Reason: "not a PNG image: " + err.Error()}
	}
	return img, nil
}

// Solve runs every stage on a decoded image.
func Solve(img image.Image, opts Options) (*Result, error) {
	return SolveContext(context.Background(), img, opts)
}

// SolveContext is Solve with a context for the observability hooks.
func SolveContext(ctx context.Context, img image.Image, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := maze.Build(maze.NewImageSampler(img), opts.Layout)
	buildTime := time.Since(start)
	if err != nil {
		observability.Solve().OnBuildComplete(ctx, 0, 0, buildTime, err)
		return nil, err
	}
	observability.Solve().OnBuildComplete(ctx, g.Height, g.Width, buildTime, nil)

	res, err := SolveGrid(ctx, g, opts)
	if res != nil {
		res.Stats.BuildTime = buildTime
	}
	return res, err
}

// SolveGrid runs the graph, path and encoding stages on an already built
// grid. Failures are returned as *SolveError.
func SolveGrid(ctx context.Context, g *maze.Grid, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	res := &Result{Grid: g}
	res.Stats.Rows = g.Height
	res.Stats.Cols = g.Width

	start := time.Now()
	sg := slide.Build(g)
	res.Graph = sg
	res.Stats.GraphTime = time.Since(start)
	res.Stats.Nodes = sg.NodeCount()
	res.Stats.Edges = sg.EdgeCount()
	observability.Solve().OnGraphComplete(ctx, sg.NodeCount(), sg.EdgeCount(), res.Stats.GraphTime)

	logger.Debug("built slide graph",
		"rows", g.Height,
		"cols", g.Width,
		"nodes", sg.NodeCount(),
		"edges", sg.EdgeCount())

	start = time.Now()
	path, err := slide.Solve(sg)
	res.Stats.PathTime = time.Since(start)
	observability.Solve().OnPathComplete(ctx, len(path), res.Stats.PathTime, err)
	if err != nil {
		return res, &SolveError{Grid: g, Err: err}
	}
	res.Path = path
	res.Stats.PathLen = len(path)

	res.Moves = moves.Encode(path, opts.alphabet)
	logger.Debug("found path", "hops", path.Hops(), "moves", res.Moves)
	return res, nil
}
