package slide

import (
	"strings"
	"testing"

	"github.com/matzehuels/ventriglisse/pkg/maze"
)

const lCorridor = `
TLRS  .   .
LR    .   .
LB    TB  TBRE
`

func grid(t *testing.T, text string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseGrid(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func xy(x, y int) Node { return At(maze.Coord{X: x, Y: y}) }
