// Package search drives a backtracking depth-first search over board
// states. Each node derives a fresh state by fixing one cell to one
// candidate and re-propagating, so failed branches leave no trace in
// their siblings. Cell choice follows the minimum-remaining-values
// heuristic; value order tries the globally least-allocated digit first.
package search

import (
	"context"
	"math/rand"
	"sort"

	"github.com/wqueree/sudoku/internal/domain"
	"github.com/wqueree/sudoku/internal/state"
)

// Driver runs the search. The zero-configured driver is fully
// deterministic; WithRandomFallback switches the MRV tie-fallback to a
// seeded random choice.
type Driver struct {
	rng *rand.Rand
}

// Option configures a Driver.
type Option func(*Driver)

// WithRandomFallback makes the degenerate cell-selection fallback pick
// uniformly at random from the given seed instead of taking the first
// unassigned cell. The fallback cannot fire while any unassigned cell
// has nine or fewer candidates, so results stay reproducible either way.
func WithRandomFallback(seed int64) Option {
	return func(d *Driver) { d.rng = rand.New(rand.NewSource(seed)) }
}

// New returns a search driver.
func New(opts ...Option) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Solve builds and minimizes the board state, returning immediately if
// propagation alone finishes or contradicts the puzzle, and otherwise
// searches. It returns the solution grid and the number of search nodes
// expanded; the error is non-nil only when ctx is canceled. Unsolvable
// puzzles yield the all-sentinel grid, never an error.
func (d *Driver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, int, error) {
	st := state.New(g)
	st.Minimize()
	if st.IsValid() && st.IsGoal() {
		return st.Grid(), 0, nil
	}
	if !st.IsValid() {
		return domain.Unsolvable(), 0, nil
	}
	nodes := 0
	sol, err := d.dfs(ctx, st, &nodes)
	if err != nil {
		return domain.Grid{}, nodes, err
	}
	if sol == nil {
		return domain.Unsolvable(), nodes, nil
	}
	return sol.Grid(), nodes, nil
}

// dfs explores one branch per candidate value of the chosen cell. A
// branch that yields an invalid state is abandoned; the first goal state
// found propagates straight up, pruning all remaining siblings. Depth is
// bounded by the number of unassigned cells, at most 81.
func (d *Driver) dfs(ctx context.Context, st *state.State, nodes *int) (*state.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	row, col := d.nextCell(st)
	for _, v := range orderValues(st, row, col) {
		*nodes++
		next := st.SetValue(row, col, v)
		if !next.IsValid() {
			continue
		}
		if next.IsGoal() {
			return next, nil
		}
		sol, err := d.dfs(ctx, next, nodes)
		if err != nil || sol != nil {
			return sol, err
		}
	}
	return nil, nil
}

// nextCell returns the unassigned cell with the fewest remaining
// candidates, scanning row-major and keeping the first strict
// improvement. Every unassigned cell has at most nine candidates, so
// the fallback below the sentinel is unreachable in practice; it is
// kept as a safety branch and honors the driver's randomized mode.
func (d *Driver) nextCell(st *state.State) (int, int) {
	const sentinel = 10
	bestRow, bestCol, bestCount := -1, -1, sentinel
	var unassigned [][2]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if st.ValueAt(r, c) != 0 {
				continue
			}
			unassigned = append(unassigned, [2]int{r, c})
			if n := st.CandidateCount(r, c); n < bestCount {
				bestRow, bestCol, bestCount = r, c, n
			}
		}
	}
	if bestRow >= 0 {
		return bestRow, bestCol
	}
	if d.rng != nil {
		rc := unassigned[d.rng.Intn(len(unassigned))]
		return rc[0], rc[1]
	}
	rc := unassigned[0]
	return rc[0], rc[1]
}

// orderValues sorts the cell's candidates ascending by how often each
// digit is already allocated across the whole grid, trying the
// least-used digit first. The sort is stable, so ties keep ascending
// digit order.
func orderValues(st *state.State, row, col int) []int {
	values := st.CandidateValues(row, col)
	sort.SliceStable(values, func(i, j int) bool {
		return st.Allocation(values[i]) < st.Allocation(values[j])
	})
	return values
}
