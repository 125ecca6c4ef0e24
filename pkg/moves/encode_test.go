package moves

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/slide"
)

func path(coords ...maze.Coord) slide.Path {
	p := slide.Path{slide.Start}
	for _, c := range coords {
		p = append(p, slide.At(c))
	}
	return append(p, slide.End)
}

func c(x, y int) maze.Coord { return maze.Coord{X: x, Y: y} }

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		path     slide.Path
		alphabet Alphabet
		want     string
	}{
		{"l corridor", path(c(0, 0), c(0, 2), c(2, 2)), DefaultAlphabet, "NSEN"},
		{"single cell", path(c(1, 1)), DefaultAlphabet, "N"},
		{"sentinels only", slide.Path{slide.Start, slide.End}, DefaultAlphabet, "N"},
		{"straight down", path(c(0, 0), c(0, 2)), DefaultAlphabet, "NSN"},
		{"ends going north", path(c(0, 2), c(0, 0)), DefaultAlphabet, "NN"},
		{"vertical before horizontal", path(c(0, 0), c(1, 1)), DefaultAlphabet, "NSEN"},
		{"north and west", path(c(2, 2), c(0, 0)), DefaultAlphabet, "NNWN"},
		{"west then north", path(c(2, 2), c(0, 2), c(0, 0)), DefaultAlphabet, "NWN"},
		{"french west", path(c(2, 0), c(0, 0)), FrenchAlphabet, "NON"},
		{"french l corridor", path(c(0, 0), c(0, 2), c(2, 2)), FrenchAlphabet, "NSEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.path, tt.alphabet)
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeBracketsWithNorth(t *testing.T) {
	for _, p := range []slide.Path{
		path(c(0, 0), c(3, 0)),
		path(c(3, 0), c(0, 0)),
		path(c(0, 0), c(0, 4)),
	} {
		got := Encode(p, DefaultAlphabet)
		if !strings.HasPrefix(got, "N") || !strings.HasSuffix(got, "N") {
			t.Errorf("Encode(%v) = %q, want leading and trailing N", p, got)
		}
	}
}

func TestSteps(t *testing.T) {
	got := Steps([]maze.Coord{c(0, 0), c(0, 3), c(2, 3), c(2, 3), c(0, 0)})
	want := []Direction{South, East, North, West}
	if !slices.Equal(got, want) {
		t.Errorf("Steps() = %v, want %v", got, want)
	}
	if got := Steps(nil); got != nil {
		t.Errorf("Steps(nil) = %v, want nil", got)
	}
}

func TestDecode(t *testing.T) {
	dirs, ok := Decode("NSEO", FrenchAlphabet)
	if !ok {
		t.Fatal("Decode() rejected a valid string")
	}
	if !slices.Equal(dirs, Directions) {
		t.Errorf("Decode() = %v, want %v", dirs, Directions)
	}
	if _, ok := Decode("NSEW", FrenchAlphabet); ok {
		t.Error("Decode() accepted W with the French alphabet")
	}
}
