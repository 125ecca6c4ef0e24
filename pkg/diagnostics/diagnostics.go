// Package diagnostics keeps the evidence of failed solves: the maze image
// as received, the grid it was classified into and the error, so that a
// misread wall or marker can be investigated after the session is gone.
package diagnostics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/maze"
)

// Artifact is one failed solve.
type Artifact struct {
	ID        string    `json:"id" bson:"_id"`
	SessionID string    `json:"session_id,omitempty" bson:"session_id,omitempty"`
	Image     []byte    `json:"-" bson:"image,omitempty"`
	Grid      string    `json:"grid,omitempty" bson:"grid,omitempty"` // text fixture format
	Error     string    `json:"error" bson:"error"`
	Code      string    `json:"code,omitempty" bson:"code,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewArtifact describes a failure. grid may be nil when the image could not
// be classified at all.
func NewArtifact(sessionID string, image []byte, grid *maze.Grid, err error) Artifact {
	a := Artifact{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Image:     image,
		CreatedAt: time.Now().UTC(),
	}
	if grid != nil {
		a.Grid = maze.FormatGrid(grid)
	}
	if err != nil {
		a.Error = err.Error()
		a.Code = string(verrors.GetCode(err))
	}
	return a
}

// Store persists artifacts. Save returns where the artifact went, for the
// log line that tells the operator where to look.
type Store interface {
	Save(ctx context.Context, a Artifact) (string, error)
	Close(ctx context.Context) error
}

// Backend names accepted by Open.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend    string // "file" (default), "mongo" or "none"
	Dir        string // FileStore directory
	MongoURI   string
	Database   string
	Collection string
}

// Open creates the store named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Dir)
	case BackendMongo:
		return NewMongoStore(ctx, opts.MongoURI, opts.Database, opts.Collection)
	case BackendNone:
		return NullStore{}, nil
	}
	return nil, fmt.Errorf("unknown diagnostics backend %q", opts.Backend)
}

// NullStore discards artifacts.
type NullStore struct{}

// Save does nothing.
func (NullStore) Save(context.Context, Artifact) (string, error) { return "", nil }

// Close does nothing.
func (NullStore) Close(context.Context) error { return nil }
