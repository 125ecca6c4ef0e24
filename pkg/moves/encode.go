package moves

import (
	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/slide"
)

// Steps returns the directions between consecutive coordinates. The
// vertical direction of a pair comes first; a pair that changes both axes
// yields two directions and a pair that changes neither yields none.
func Steps(coords []maze.Coord) []Direction {
	var dirs []Direction
	for i := 0; i+1 < len(coords); i++ {
		a, b := coords[i], coords[i+1]
		switch {
		case a.Y < b.Y:
			dirs = append(dirs, South)
		case a.Y > b.Y:
			dirs = append(dirs, North)
		}
		switch {
		case a.X < b.X:
			dirs = append(dirs, East)
		case a.X > b.X:
			dirs = append(dirs, West)
		}
	}
	return dirs
}

// Encode returns the move string of a solved path.
//
// The string opens with North, the push that launches the ball from the
// start marker. Each hop between two cells then contributes its Steps.
// Hops to and from the sentinels carry no move of their own. The string is
// closed with North to push the ball onto the end marker, unless it already
// ends with North.
func Encode(p slide.Path, a Alphabet) string {
	return EncodeCoords(p.Coords(), a)
}

// EncodeCoords is Encode for a sentinel-free sequence of coordinates.
func EncodeCoords(coords []maze.Coord, a Alphabet) string {
	steps := Steps(coords)
	out := make([]byte, 0, len(steps)+2)
	out = append(out, a.Letter(North))
	for _, d := range steps {
		out = append(out, a.Letter(d))
	}
	if out[len(out)-1] != a.Letter(North) {
		out = append(out, a.Letter(North))
	}
	return string(out)
}

// Decode converts a move string back into directions.
func Decode(s string, a Alphabet) ([]Direction, bool) {
	dirs := make([]Direction, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, ok := a.Direction(s[i])
		if !ok {
			return nil, false
		}
		dirs = append(dirs, d)
	}
	return dirs, true
}
