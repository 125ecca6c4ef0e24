// Package cli implements the ventriglisse command-line interface.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ventriglisse/pkg/buildinfo"
	"github.com/matzehuels/ventriglisse/pkg/cache"
	"github.com/matzehuels/ventriglisse/pkg/config"
	"github.com/matzehuels/ventriglisse/pkg/observability"
	"github.com/matzehuels/ventriglisse/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "ventriglisse"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Ventriglisse solves ice-sliding mazes",
		Long:         `Ventriglisse reads ice-sliding maze images, finds the shortest sequence of slides from start to end and answers with a move string, one-shot or against a remote game server.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.installHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks routes pipeline, cache and session events to the debug log.
func (c *CLI) installHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetSolveHooks(h)
	observability.SetCacheHooks(h)
	observability.SetSessionHooks(h)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	opts := c.Config.CacheOptions()
	if noCache {
		opts.Backend = cache.BackendNone
	}
	if opts.Backend == cache.BackendFile {
		opts.Dir = c.fileCacheDir()
	}
	ch, err := cache.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, c.Config.Keyer(), c.Logger), nil
}

// solveOptions builds pipeline options from the configuration, letting a
// non-empty flag value override the alphabet.
func (c *CLI) solveOptions(alphabet string) pipeline.Options {
	if alphabet == "" {
		alphabet = c.Config.Solve.Alphabet
	}
	return pipeline.Options{
		Layout:   c.Config.MazeLayout(),
		Alphabet: alphabet,
		Logger:   c.Logger,
	}
}

// =============================================================================
// Paths
// =============================================================================

// outputPath derives an output file name from the input by swapping the
// extension, unless an explicit output was given.
func outputPath(input, output, ext string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + "." + ext
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
