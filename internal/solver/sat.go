package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/wqueree/sudoku/internal/domain"
	"github.com/wqueree/sudoku/internal/ports"
)

// SATSolver encodes the puzzle as CNF and hands it to gini. One
// variable per (row, col, digit) triple; clauses assert that every cell
// holds at least one digit, that no digit repeats within a row, column,
// or box, and that the givens hold. An unsat result maps to the
// unsolvable grid.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func lit(row, col, num int) z.Lit {
	n := num
	n += col * 9
	n += row * 81
	return z.Var(n + 1).Pos()
}

func (s *SATSolver) Solve(ctx context.Context, grid domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}
	g := gini.New()

	// every cell holds at least one digit
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				g.Add(lit(row, col, n))
			}
			g.Add(0)
		}
	}

	// pairwise at-most-one per digit within a unit
	atMostOne := func(cells [][2]int) {
		for n := 0; n < 9; n++ {
			for i, a := range cells {
				la := lit(a[0], a[1], n)
				for _, b := range cells[i+1:] {
					g.Add(la.Not())
					g.Add(lit(b[0], b[1], n).Not())
					g.Add(0)
				}
			}
		}
	}
	for i := 0; i < 9; i++ {
		row := make([][2]int, 9)
		col := make([][2]int, 9)
		box := make([][2]int, 9)
		br, bc := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			row[j] = [2]int{i, j}
			col[j] = [2]int{j, i}
			box[j] = [2]int{br + j/3, bc + j%3}
		}
		atMostOne(row)
		atMostOne(col)
		atMostOne(box)
	}

	// unit clauses for the givens
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if v := grid[row][col]; v > 0 {
				g.Add(lit(row, col, v-1))
				g.Add(0)
			}
		}
	}

	if g.Solve() != 1 {
		return domain.Unsolvable(), ports.Stats{Duration: time.Since(start)}, nil
	}
	var out domain.Grid
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				if g.Value(lit(row, col, n)) {
					out[row][col] = n + 1
					break
				}
			}
		}
	}
	return out, ports.Stats{Duration: time.Since(start)}, nil
}
