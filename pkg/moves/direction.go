// Package moves encodes a slide path as the move string the maze service
// expects: one letter per cardinal push.
package moves

import (
	"strings"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
)

// Direction is a cardinal direction of movement.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in alphabet order.
var Directions = []Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Alphabet maps each direction to a single letter, in North, South, East,
// West order.
type Alphabet [4]byte

var (
	// DefaultAlphabet uses the English initials.
	DefaultAlphabet = Alphabet{'N', 'S', 'E', 'W'}
	// FrenchAlphabet uses O (ouest) for West, as the maze service does.
	FrenchAlphabet = Alphabet{'N', 'S', 'E', 'O'}
)

// namedAlphabets are accepted by ParseAlphabet in addition to literal
// four-letter strings.
var namedAlphabets = map[string]Alphabet{
	"default": DefaultAlphabet,
	"english": DefaultAlphabet,
	"french":  FrenchAlphabet,
}

// ParseAlphabet parses a named alphabet ("default", "english", "french") or
// four distinct letters in North, South, East, West order such as "NSEO".
func ParseAlphabet(s string) (Alphabet, error) {
	s = strings.TrimSpace(s)
	if a, ok := namedAlphabets[strings.ToLower(s)]; ok {
		return a, nil
	}
	s = strings.ToUpper(s)
	if err := verrors.ValidateAlphabet(s); err != nil {
		return Alphabet{}, err
	}
	var a Alphabet
	copy(a[:], s)
	return a, nil
}

// Letter returns the letter of d.
func (a Alphabet) Letter(d Direction) byte { return a[d] }

// Direction returns the direction written as letter.
func (a Alphabet) Direction(letter byte) (Direction, bool) {
	for i, l := range a {
		if l == letter {
			return Direction(i), true
		}
	}
	return 0, false
}

func (a Alphabet) String() string { return string(a[:]) }

// MarshalText implements encoding.TextMarshaler.
func (a Alphabet) MarshalText() ([]byte, error) { return a[:], nil }

// UnmarshalText implements encoding.TextUnmarshaler, accepting anything
// ParseAlphabet does.
func (a *Alphabet) UnmarshalText(text []byte) error {
	parsed, err := ParseAlphabet(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
