package parse

import (
	"github.com/matzehuels/aoc/pkg/errors"
)

// Grid is a rectangular block of bytes addressed as [row][col].
type Grid [][]byte

// ParseGrid reads input as a rectangular grid. Ragged rows are rejected.
func ParseGrid(input string) (Grid, error) {
	lines, err := NonEmpty(input)
	if err != nil {
		return nil, err
	}
	g := make(Grid, len(lines))
	for i, l := range lines {
		if len(l) != len(lines[0]) {
			return nil, errors.Input("row %d has width %d, want %d", i+1, len(l), len(lines[0]))
		}
		g[i] = []byte(l)
	}
	return g, nil
}

// Digits reads input as a rectangular grid of single decimal digits.
func Digits(input string) ([][]int, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		for c, b := range row {
			if b < '0' || b > '9' {
				return nil, errors.Input("row %d col %d: %q is not a digit", r+1, c+1, b)
			}
			out[r][c] = int(b - '0')
		}
	}
	return out, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// In reports whether (r, c) lies inside the grid.
func (g Grid) In(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.Rows() && c < g.Cols()
}

// Find returns the position of the first occurrence of b, scanning rows
// top to bottom.
func (g Grid) Find(b byte) (r, c int, ok bool) {
	for r, row := range g {
		for c, v := range row {
			if v == b {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Count returns how many cells equal b.
func (g Grid) Count(b byte) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == b {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]byte(nil), row...)
	}
	return out
}

// String renders the grid back to text.
func (g Grid) String() string {
	n := 0
	for _, row := range g {
		n += len(row) + 1
	}
	buf := make([]byte, 0, n)
	for i, row := range g {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, row...)
	}
	return string(buf)
}
