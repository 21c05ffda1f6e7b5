package domain

// Grid is a 9x9 Sudoku grid. Zero marks an unknown cell; a solved grid
// holds only 1..9. An unsolvable result is a grid filled with Sentinel.
type Grid [9][9]int

// Sentinel fills every cell of the grid returned for unsolvable puzzles.
const Sentinel = -1

// Unsolvable returns the all-sentinel grid that encodes "no solution".
func Unsolvable() Grid {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = Sentinel
		}
	}
	return g
}

// IsUnsolvable reports whether g is the unsolvable sentinel grid.
func (g Grid) IsUnsolvable() bool {
	return g[0][0] == Sentinel
}

// Complete reports whether every cell holds a value other than zero.
// It says nothing about validity.
func (g Grid) Complete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Givens counts the non-zero cells.
func (g Grid) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
