package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/pipeline"
	"github.com/matzehuels/ventriglisse/pkg/render/nodelink"
)

// Graph output formats. PNG here is the rendered graph, not the maze.
var graphFormats = []string{pipeline.FormatDOT, pipeline.FormatSVG, "png"}

type graphOpts struct {
	output  string
	formats string
	pinned  bool
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <image.png|grid.txt>",
		Short: "Draw the slide graph of a maze",
		Long: `Graph builds the slide graph of a maze image or text grid and writes it
as Graphviz DOT, SVG or PNG. The shortest path, when there is one, is drawn
in red. Mazes without a path are still drawn, which helps spotting a misread
wall or marker.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "svg", "comma-separated formats: dot, svg, png")
	cmd.Flags().BoolVar(&opts.pinned, "pinned", false, "place nodes at their grid position")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, input string, opts graphOpts) error {
	formats := parseFormats(opts.formats)
	for _, f := range formats {
		if !slices.Contains(graphFormats, f) {
			return fmt.Errorf("unsupported graph format %q (want one of %s)", f, strings.Join(graphFormats, ", "))
		}
	}

	prog := newProgress(c.Logger)
	g, err := c.loadGrid(input)
	if err != nil {
		return err
	}

	popts := c.solveOptions("")
	popts.Pinned = opts.pinned
	res, err := pipeline.SolveGrid(ctx, g, popts)
	if res == nil {
		return err
	}
	if err != nil {
		printWarning("%v", err)
	}

	// The graph PNG is rendered from DOT.
	need := slices.DeleteFunc(slices.Clone(formats), func(f string) bool { return f == "png" })
	if slices.Contains(formats, "png") && !slices.Contains(need, pipeline.FormatDOT) {
		need = append(need, pipeline.FormatDOT)
	}
	popts.Formats = need
	artifacts, err := pipeline.Render(ctx, res, popts)
	if err != nil {
		return err
	}
	if slices.Contains(formats, "png") {
		if artifacts["png"], err = nodelink.RenderPNG(ctx, string(artifacts[pipeline.FormatDOT])); err != nil {
			return err
		}
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	for _, f := range formats {
		path := base + "." + f
		if path == input {
			path = base + ".graph." + f
		}
		if err := os.WriteFile(path, artifacts[f], 0644); err != nil {
			return err
		}
		printFile(path)
	}
	prog.done(fmt.Sprintf("Drew %d nodes and %d edges", res.Stats.Nodes, res.Stats.Edges))
	return nil
}

// loadGrid reads a maze image or, for .txt files, a grid in the text
// fixture format.
func (c *CLI) loadGrid(path string) (*maze.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".txt" {
		return maze.ParseGrid(bytes.NewReader(data))
	}
	img, err := pipeline.Decode(data)
	if err != nil {
		return nil, err
	}
	return maze.Build(maze.NewImageSampler(img), c.Config.MazeLayout())
}

// graphFormat picks the output format of --graph from the file extension.
func graphFormat(path string) (string, error) {
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
	case pipeline.FormatSVG, pipeline.FormatDOT:
		return ext, nil
	}
	return "", errors.New("--graph must end in .svg or .dot")
}
