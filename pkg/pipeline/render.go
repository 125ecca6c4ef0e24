package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/render/nodelink"
	"github.com/matzehuels/ventriglisse/pkg/slide"
)

// Render generates output artifacts in the requested formats from the
// intermediate outputs of a solve. It works on failed solves too, as long
// as the grid was built, which is when the pictures are most useful.
func Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if res == nil || res.Grid == nil {
		return nil, fmt.Errorf("nothing to render: result has no grid (cached answer?)")
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatPNG:
			var buf bytes.Buffer
			err = png.Encode(&buf, maze.Render(res.Grid, opts.Layout))
			data = buf.Bytes()
		case FormatText:
			data = []byte(maze.FormatGrid(res.Grid))
		case FormatJSON:
			data, err = json.MarshalIndent(res.Grid, "", "  ")
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = graphDOT(res, opts)
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = nodelink.RenderSVG(ctx, dot)
			}
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func graphDOT(res *Result, opts Options) string {
	g := res.Graph
	if g == nil {
		g = slide.Build(res.Grid)
	}
	return nodelink.ToDOT(g, nodelink.Options{Path: res.Path, Pinned: opts.Pinned})
}
