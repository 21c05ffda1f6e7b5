package domain

import (
	"fmt"
	"strings"
)

// ParseGrid reads a grid from text. Accepted forms are a single run of
// 81 digits or nine rows of nine; '0' and '.' both mean unknown.
// Whitespace between cells and blank lines are ignored.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch >= '1' && ch <= '9':
			if i >= 81 {
				return Grid{}, fmt.Errorf("parse grid: more than 81 cells")
			}
			g[i/9][i%9] = int(ch - '0')
			i++
		case ch == '0' || ch == '.':
			if i >= 81 {
				return Grid{}, fmt.Errorf("parse grid: more than 81 cells")
			}
			i++
		case strings.ContainsRune(" \t\r\n|+-", ch):
			// separators and ascii grid art
		default:
			return Grid{}, fmt.Errorf("parse grid: unexpected character %q", ch)
		}
	}
	if i != 81 {
		return Grid{}, fmt.Errorf("parse grid: got %d cells, want 81", i)
	}
	return g, nil
}

// String renders the grid as nine rows of nine digits, '.' for unknown
// cells and 'x' for the unsolvable sentinel.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			switch v := g[r][c]; {
			case v >= 1 && v <= 9:
				b.WriteByte(byte('0' + v))
			case v == Sentinel:
				b.WriteByte('x')
			default:
				b.WriteByte('.')
			}
			if c == 2 || c == 5 {
				b.WriteByte(' ')
			}
		}
		if r != 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
