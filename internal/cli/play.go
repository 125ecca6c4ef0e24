package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ventriglisse/pkg/diagnostics"
	"github.com/matzehuels/ventriglisse/pkg/session"
)

type playOpts struct {
	addr     string
	alphabet string
	diagDir  string
	maxMazes int
	noCache  bool
	history  bool
}

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a remote game, answering every maze the server sends",
		Long: `Play connects to a game server, waits for its banner and answers each
maze it sends with the move string. The session ends when the server closes
the connection; its last message is printed.

Unsolvable mazes end the session and are saved to the diagnostics store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.history {
				return c.runHistory(cmd.Context())
			}
			return c.runPlay(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "server address host:port (default from config)")
	cmd.Flags().StringVarP(&opts.alphabet, "alphabet", "a", "", "move letters: default, french or four letters in N,S,E,W order")
	cmd.Flags().StringVar(&opts.diagDir, "diag-dir", "", "directory for failed mazes (default from config)")
	cmd.Flags().IntVar(&opts.maxMazes, "max", 0, "stop after this many mazes (0 for no limit)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solve cache")
	cmd.Flags().BoolVar(&opts.history, "history", false, "list past sessions instead of playing")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, opts playOpts) error {
	logger := loggerFromContext(ctx)
	addr := opts.addr
	if addr == "" {
		addr = c.Config.Remote.Addr
	}

	dopts := c.Config.DiagnosticsOptions()
	if opts.diagDir != "" {
		dopts.Backend = diagnostics.BackendFile
		dopts.Dir = opts.diagDir
	}
	store, err := diagnostics.Open(ctx, dopts)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinner(ctx, "Connecting to "+addr)
	spin.Start()
	conn, err := session.Dial(ctx, addr, c.Config.Backoff())
	if err != nil {
		spin.StopWithError("Could not connect to " + addr)
		return err
	}
	defer conn.Close()
	spin.StopWithSuccess("Connected to " + addr)

	s := session.New(conn, runner, session.Options{
		Solve:       c.solveOptions(opts.alphabet),
		Diagnostics: store,
		Logger:      logger,
		IOTimeout:   c.Config.Remote.Timeout.Duration,
		MaxMazes:    opts.maxMazes,
	})
	sum, err := s.Run(ctx)
	c.recordSession(ctx, sum)

	printKeyValue("Session", sum.SessionID)
	printKeyValue("Solved", fmt.Sprint(sum.Solved))
	printKeyValue("Duration", sum.Duration.Round(time.Millisecond).String())
	if sum.Artifact != "" {
		printKeyValue("Artifact", sum.Artifact)
	}
	if err != nil {
		return err
	}
	if sum.Final != "" {
		fmt.Println(StyleTitle.Render(sum.Final))
	}
	return nil
}

// recordSession keeps the summary for `play --history`.
func (c *CLI) recordSession(ctx context.Context, sum *session.Summary) {
	records, err := session.NewRecordStore("")
	if err != nil {
		c.Logger.Debug("session history unavailable", "err", err)
		return
	}
	if err := records.Save(ctx, sum); err != nil {
		c.Logger.Debug("could not record session", "err", err)
	}
}

func (c *CLI) runHistory(ctx context.Context) error {
	records, err := session.NewRecordStore("")
	if err != nil {
		return err
	}
	all, err := records.List(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		printInfo("No sessions recorded")
		printDetail("Directory: %s", records.Path())
		return nil
	}
	for _, sum := range all {
		line := fmt.Sprintf("%s  %s  %d solved", sum.StartedAt.Format(time.DateTime), shortID(sum.SessionID), sum.Solved)
		if sum.Final != "" {
			line += "  " + StyleMoves.Render(sum.Final)
		}
		fmt.Println(line)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
