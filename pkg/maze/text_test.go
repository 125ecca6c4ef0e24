package maze

import (
	"testing"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
)

func TestParseGrid(t *testing.T) {
	g := mustParse(t, "# L corridor\n"+lCorridor)

	if g.Width != 3 || g.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Width, g.Height)
	}

	tests := []struct {
		at   Coord
		want Cell
	}{
		{Coord{0, 0}, Cell{Top: true, Left: true, Right: true, Start: true}},
		{Coord{0, 1}, Cell{Left: true, Right: true}},
		{Coord{0, 2}, Cell{Left: true, Bottom: true}},
		{Coord{1, 2}, Cell{Top: true, Bottom: true}},
		{Coord{2, 2}, Cell{Top: true, Bottom: true, Right: true, End: true}},
		{Coord{1, 0}, Cell{}},
		{Coord{2, 1}, Cell{}},
	}
	for _, tt := range tests {
		if got := g.At(tt.at); got != tt.want {
			t.Errorf("At(%v) = %+v, want %+v", tt.at, got, tt.want)
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only comments", "# nothing\n\n"},
		{"unknown letter", "TX .\n"},
		{"repeated letter", "TT .\n"},
		{"ragged rows", ". .\n.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(stringsReader(tt.input))
			if err == nil {
				t.Fatal("ParseGrid() error = nil, want error")
			}
			if !verrors.Is(err, verrors.ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", verrors.GetCode(err), verrors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestFormatGrid(t *testing.T) {
	g := mustParse(t, "LS  .\nTRBLE B\n")

	want := "LS    .\nTRBLE B\n"
	if got := FormatGrid(g); got != want {
		t.Errorf("FormatGrid() = %q, want %q", got, want)
	}

	again := mustParse(t, FormatGrid(g))
	if FormatGrid(again) != want {
		t.Errorf("FormatGrid is not stable across a parse: %q", FormatGrid(again))
	}
}
