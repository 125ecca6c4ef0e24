package slide

import (
	"slices"
	"testing"

	"github.com/matzehuels/ventriglisse/pkg/maze"
)

func TestBuildLCorridor(t *testing.T) {
	g := Build(grid(t, lCorridor))

	want := []Edge{
		{xy(0, 0), xy(0, 2)},
		{Start, xy(0, 0)},
		{xy(0, 1), xy(0, 2)},
		{xy(0, 1), xy(0, 0)},
		{xy(0, 2), xy(0, 0)},
		{xy(0, 2), xy(2, 2)},
		{xy(1, 2), xy(0, 2)},
		{xy(1, 2), xy(2, 2)},
		{xy(2, 2), xy(0, 2)},
		{xy(2, 2), End},
	}
	got := g.Edges()
	if !slices.Equal(got, want) {
		t.Errorf("Edges() =\n%v\nwant\n%v", got, want)
	}
	if g.NodeCount() != 7 {
		t.Errorf("NodeCount() = %d, want 7", g.NodeCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBuildDeterministic(t *testing.T) {
	mz := grid(t, `
TL   T    TR
L    .    RS
LBE  B    RB
`)
	first := Build(mz).Edges()
	for range 5 {
		if again := Build(mz).Edges(); !slices.Equal(first, again) {
			t.Fatalf("Build not deterministic:\n%v\n%v", first, again)
		}
	}
}

func TestBuildEdgeBudget(t *testing.T) {
	mz := grid(t, `
TL   T    TR   .
L    .    R    BE
LB   B    RBS  .
`)
	g := Build(mz)

	for y := range mz.Height {
		for x := range mz.Width {
			c := maze.Coord{X: x, Y: y}
			cell := mz.At(c)
			limit := 0
			if cell.HasWall() {
				limit = 4
			}
			if cell.End {
				limit++
			}
			if got := g.OutDegree(At(c)); got > limit {
				t.Errorf("cell %v (%s) has %d edges, want at most %d", c, cell, got, limit)
			}
			if !cell.HasWall() && !cell.End && g.OutDegree(At(c)) != 0 {
				t.Errorf("wall-less cell %v originates edges", c)
			}
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			t.Errorf("self loop %v", e.From)
		}
	}
}

func TestBuildSentinels(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEdges []Edge
		absent    []Edge
	}{
		{
			name:      "start edge when the ball cannot move up",
			text:      "TS .\n",
			wantEdges: []Edge{{Start, xy(0, 0)}},
		},
		{
			name:      "start edge follows the upward slide of the marked cell",
			text:      "T .\nLS .\n",
			wantEdges: []Edge{{Start, xy(0, 0)}, {xy(0, 1), xy(0, 0)}},
		},
		{
			name:   "wall-less start cell has no start edge",
			text:   "S T\n",
			absent: []Edge{{Start, xy(0, 0)}},
		},
		{
			name:      "wall-less end cell still reaches end",
			text:      "E T\n",
			wantEdges: []Edge{{xy(0, 0), End}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(grid(t, tt.text))
			for _, e := range tt.wantEdges {
				if !g.HasEdge(e.From, e.To) {
					t.Errorf("missing edge %v -> %v in %v", e.From, e.To, g.Edges())
				}
			}
			for _, e := range tt.absent {
				if g.HasEdge(e.From, e.To) {
					t.Errorf("unexpected edge %v -> %v", e.From, e.To)
				}
			}
		})
	}
}

func TestSlides(t *testing.T) {
	mz := grid(t, `
.   .   .   .
.   L   .   R
.   .   .   .
`)

	tests := []struct {
		name string
		from maze.Coord
		want Destinations
	}{
		{
			name: "open grid slides to the edges",
			from: maze.Coord{X: 0, Y: 0},
			want: Destinations{
				Down:  maze.Coord{X: 0, Y: 2},
				Left:  maze.Coord{X: 0, Y: 0},
				Up:    maze.Coord{X: 0, Y: 0},
				Right: maze.Coord{X: 3, Y: 0},
			},
		},
		{
			name: "walls stop the scan on the walled cell",
			from: maze.Coord{X: 2, Y: 1},
			want: Destinations{
				Down:  maze.Coord{X: 2, Y: 2},
				Left:  maze.Coord{X: 1, Y: 1},
				Up:    maze.Coord{X: 2, Y: 0},
				Right: maze.Coord{X: 3, Y: 1},
			},
		},
		{
			name: "own wall stops the slide immediately",
			from: maze.Coord{X: 1, Y: 1},
			want: Destinations{
				Down:  maze.Coord{X: 1, Y: 2},
				Left:  maze.Coord{X: 1, Y: 1},
				Up:    maze.Coord{X: 1, Y: 0},
				Right: maze.Coord{X: 3, Y: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slides(mz, tt.from); got != tt.want {
				t.Errorf("Slides(%v) = %+v, want %+v", tt.from, got, tt.want)
			}
		})
	}
}
