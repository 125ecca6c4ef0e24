package maze

import (
	"bufio"
	"io"
	"strings"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
)

// ParseGrid reads a grid in the text format described in the package
// documentation. Blank lines and lines starting with '#' are ignored.
func ParseGrid(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var row []Cell
		for _, tok := range strings.Fields(line) {
			cell, err := parseCell(tok)
			if err != nil {
				return nil, verrors.Wrap(verrors.ErrCodeInvalidInput, err, "line %d", lineNo)
			}
			row = append(row, cell)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, verrors.New(verrors.ErrCodeInvalidInput, "line %d: %d cells, want %d", lineNo, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, verrors.New(verrors.ErrCodeInvalidInput, "grid is empty")
	}
	return NewGrid(rows)
}

func parseCell(tok string) (Cell, error) {
	var c Cell
	if tok == "." {
		return c, nil
	}
	for _, r := range tok {
		var flag *bool
		switch r {
		case 'T':
			flag = &c.Top
		case 'R':
			flag = &c.Right
		case 'B':
			flag = &c.Bottom
		case 'L':
			flag = &c.Left
		case 'S':
			flag = &c.Start
		case 'E':
			flag = &c.End
		default:
			return Cell{}, verrors.New(verrors.ErrCodeInvalidInput, "unknown cell letter %q in %q", r, tok)
		}
		if *flag {
			return Cell{}, verrors.New(verrors.ErrCodeInvalidInput, "repeated cell letter %q in %q", r, tok)
		}
		*flag = true
	}
	return c, nil
}

// FormatGrid writes g in the text format, columns padded to line up.
func FormatGrid(g *Grid) string {
	width := 1
	for _, row := range g.cells {
		for _, cell := range row {
			width = max(width, len(cell.String()))
		}
	}

	var b strings.Builder
	for _, row := range g.cells {
		for x, cell := range row {
			tok := cell.String()
			b.WriteString(tok)
			if x < len(row)-1 {
				b.WriteString(strings.Repeat(" ", width-len(tok)+1))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
