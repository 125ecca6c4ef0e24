package cache

import "github.com/matzehuels/ventriglisse/pkg/maze"

// Keyer produces cache keys. Implementations must return the same key for
// inputs that yield the same answer and different keys otherwise.
type Keyer interface {
	// MovesKey returns the key of the move string solved from the image
	// with the given content hash.
	MovesKey(imageHash string, opts MovesKeyOpts) string
}

// MovesKeyOpts holds the options that change the move string of an image.
type MovesKeyOpts struct {
	Alphabet string      `json:"alphabet"`
	Layout   maze.Layout `json:"layout"`
}

// DefaultKeyer builds keys of the form "moves:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// MovesKey hashes the image hash together with the options.
func (DefaultKeyer) MovesKey(imageHash string, opts MovesKeyOpts) string {
	return hashKey("moves", imageHash, opts)
}

var _ Keyer = DefaultKeyer{}
