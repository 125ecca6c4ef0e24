package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ventriglisse/pkg/pipeline"
)

type renderOpts struct {
	output string
	format string
}

// renderCommand creates the render command, which draws a maze image from
// a text grid. The image follows the same layout the solver reads, so
// `render` output can be fed straight back to `solve`.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <grid.txt>",
		Short: "Draw a maze image from a text grid",
		Long: `Render reads a grid in the text fixture format, one row per line and one
token per cell made of T, R, B, L (walls), S (start), E (end) or "." for an
empty cell, and writes it as a maze image.

It can also convert a maze image back to text or JSON (--format txt|json).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatPNG, "png, txt or json")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	switch opts.format {
	case pipeline.FormatPNG, pipeline.FormatText, pipeline.FormatJSON:
	default:
		return fmt.Errorf("render: unsupported format %q (want png, txt or json)", opts.format)
	}

	g, err := c.loadGrid(input)
	if err != nil {
		return err
	}

	popts := c.solveOptions("")
	popts.Formats = []string{opts.format}
	artifacts, err := pipeline.Render(ctx, &pipeline.Result{Grid: g}, popts)
	if err != nil {
		return err
	}

	path := outputPath(input, opts.output, opts.format)
	if path == input {
		path = strings.TrimSuffix(path, "."+opts.format) + ".out." + opts.format
	}
	if err := os.WriteFile(path, artifacts[opts.format], 0644); err != nil {
		return err
	}
	printSuccess("Rendered %dx%d grid", g.Width, g.Height)
	printFile(path)
	return nil
}
