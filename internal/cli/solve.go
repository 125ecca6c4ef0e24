package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ventriglisse/pkg/diagnostics"
	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/pipeline"
)

type solveOpts struct {
	alphabet string
	noCache  bool
	refresh  bool
	graph    string // write the slide graph with the path highlighted
	keep     bool   // save failed mazes to the diagnostics store
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <image.png>",
		Short: "Print the move string solving a maze image",
		Long: `Solve reads a maze image and prints the shortest move string from the
start cell to the end cell on stdout. Answers are cached by image content.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.alphabet, "alphabet", "a", "", "move letters: default, french or four letters in N,S,E,W order")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solve cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "solve again even if the answer is cached")
	cmd.Flags().StringVar(&opts.graph, "graph", "", "also write the slide graph to this .svg or .dot file")
	cmd.Flags().BoolVar(&opts.keep, "keep-failures", false, "save unsolvable mazes to the diagnostics store")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, cmd *cobra.Command, path string, opts solveOpts) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.solveOptions(opts.alphabet)
	// A cached answer carries no grid to draw.
	popts.Refresh = opts.refresh || opts.graph != ""

	res, err := runner.Execute(ctx, data, popts)
	if err != nil {
		if opts.keep {
			c.keepFailure(ctx, data, err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Moves)
	printStats(res.Stats.Rows, res.Stats.Cols, res.Stats.Nodes, res.Stats.Edges, res.Cached)

	if opts.graph != "" {
		format, err := graphFormat(opts.graph)
		if err != nil {
			return err
		}
		popts.Formats = []string{format}
		artifacts, err := pipeline.Render(ctx, res, popts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.graph, artifacts[format], 0644); err != nil {
			return err
		}
		printFile(opts.graph)
	}
	return nil
}

// keepFailure stores a failed maze. Errors are only logged: the solve error
// is what the user needs to see.
func (c *CLI) keepFailure(ctx context.Context, data []byte, cause error) {
	store, err := diagnostics.Open(ctx, c.Config.DiagnosticsOptions())
	if err != nil {
		c.Logger.Warn("diagnostics unavailable", "err", err)
		return
	}
	defer store.Close(ctx)

	var grid *maze.Grid
	var se *pipeline.SolveError
	if errors.As(cause, &se) {
		grid = se.Grid
	}
	where, err := store.Save(ctx, diagnostics.NewArtifact("", data, grid, cause))
	if err != nil {
		c.Logger.Warn("could not save failed maze", "err", err)
		return
	}
	printWarning("Saved failed maze")
	printFile(where)
}
