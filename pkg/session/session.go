package session

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/ventriglisse/pkg/diagnostics"
	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/observability"
	"github.com/matzehuels/ventriglisse/pkg/pipeline"
)

// Solver turns maze images into move strings. *pipeline.Runner implements
// it.
type Solver interface {
	Execute(ctx context.Context, data []byte, opts pipeline.Options) (*pipeline.Result, error)
}

// Options configures a Session.
type Options struct {
	Solve       pipeline.Options
	Diagnostics diagnostics.Store // nil disables failure artifacts
	Logger      *log.Logger
	IOTimeout   time.Duration // per read/write deadline, 0 for none
	MaxMazes    int           // stop after this many mazes, 0 for no limit
}

// Answer is one exchanged maze.
type Answer struct {
	Index     int           `json:"index"`
	Moves     string        `json:"moves"`
	ImageHash string        `json:"image_hash"`
	Cached    bool          `json:"cached,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// Summary describes a finished session.
type Summary struct {
	SessionID string        `json:"session_id"`
	Solved    int           `json:"solved"`
	Answers   []Answer      `json:"answers"`
	Final     string        `json:"final,omitempty"` // closing message of the server
	Artifact  string        `json:"artifact,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// deadliner is implemented by net.Conn.
type deadliner interface {
	SetDeadline(t time.Time) error
}

// Session plays one game over rw.
type Session struct {
	ID     string
	rw     io.ReadWriter
	conn   *Conn
	solver Solver
	opts   Options
}

// New creates a session. The caller keeps ownership of rw.
func New(rw io.ReadWriter, solver Solver, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = diagnostics.NullStore{}
	}
	return &Session{
		ID:     uuid.NewString(),
		rw:     rw,
		conn:   NewConn(rw),
		solver: solver,
		opts:   opts,
	}
}

// Run plays until the server closes the stream, a maze fails or ctx is
// cancelled. The summary is returned in every case.
func (s *Session) Run(ctx context.Context) (*Summary, error) {
	sum := &Summary{SessionID: s.ID, StartedAt: time.Now()}
	logger := s.opts.Logger.With("session", s.ID[:8])

	if c, ok := s.rw.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { c.Close() })
		defer stop()
	}

	err := s.play(ctx, sum, logger)
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		err = ctxErr
	}
	sum.Duration = time.Since(sum.StartedAt)
	observability.Session().OnSessionEnd(ctx, s.ID, sum.Solved, err)

	if err != nil {
		logger.Warn("session aborted", "solved", sum.Solved, "err", err)
		return sum, err
	}
	logger.Info("session finished", "solved", sum.Solved, "duration", sum.Duration.Round(time.Millisecond))
	return sum, nil
}

func (s *Session) play(ctx context.Context, sum *Summary, logger *log.Logger) error {
	s.deadline()
	if _, err := s.conn.WaitReady(); err != nil {
		return err
	}
	logger.Debug("server ready")

	for i := 0; s.opts.MaxMazes == 0 || i < s.opts.MaxMazes; i++ {
		s.deadline()
		data, err := s.conn.ReadMaze()
		var eos *EndOfStream
		if errors.As(err, &eos) {
			sum.Final = eos.Final
			return nil
		}
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := s.solver.Execute(ctx, data, s.opts.Solve)
		dur := time.Since(start)
		observability.Session().OnMaze(ctx, s.ID, i, dur, err)
		if err != nil {
			sum.Artifact = s.saveArtifact(ctx, data, err, logger)
			return err
		}

		if err := s.conn.SendLine(res.Moves); err != nil {
			return err
		}
		sum.Answers = append(sum.Answers, Answer{
			Index:     i,
			Moves:     res.Moves,
			ImageHash: res.ImageHash,
			Cached:    res.Cached,
			Duration:  dur,
		})
		sum.Solved++
		logger.Debug("answered maze", "index", i, "moves", res.Moves)
	}
	return nil
}

func (s *Session) deadline() {
	if s.opts.IOTimeout <= 0 {
		return
	}
	if d, ok := s.rw.(deadliner); ok {
		_ = d.SetDeadline(time.Now().Add(s.opts.IOTimeout))
	}
}

// saveArtifact stores the failed maze and returns where it went.
func (s *Session) saveArtifact(ctx context.Context, data []byte, cause error, logger *log.Logger) string {
	var grid *maze.Grid
	var se *pipeline.SolveError
	if errors.As(cause, &se) {
		grid = se.Grid
	}
	where, err := s.opts.Diagnostics.Save(ctx, diagnostics.NewArtifact(s.ID, data, grid, cause))
	if err != nil {
		logger.Warn("could not save failed maze", "err", err)
		return ""
	}
	if where != "" {
		logger.Info("saved failed maze", "code", verrors.GetCode(cause), "artifact", where)
	}
	return where
}
