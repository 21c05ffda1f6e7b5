package hint

import (
	"context"
	"fmt"

	"github.com/wqueree/sudoku/internal/domain"
	"github.com/wqueree/sudoku/internal/state"
)

// Singles suggests the next naked or hidden single, reading candidate
// sets from the propagation engine. Hidden singles are only offered
// when the max tier allows them.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, g domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	st := candidateState(g)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if st.ValueAt(r, c) != 0 {
				continue
			}
			if st.CandidateCount(r, c) == 1 {
				v := st.CandidateValues(r, c)[0]
				return domain.Hint{
					Message:  fmt.Sprintf("Naked single: only %d fits here", v),
					Value:    v,
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Strategy: domain.StrategyNakedSingle,
				}, true, nil
			}
		}
	}
	if max < domain.StrategyHiddenSingle {
		return domain.Hint{}, false, nil
	}
	if hh, ok := hiddenSingle(st); ok {
		return hh, true, nil
	}
	return domain.Hint{}, false, nil
}

// candidateState builds a state whose candidates reflect the givens
// without finalizing anything, so hints point at cells the user still
// has to fill.
func candidateState(g domain.Grid) *state.State {
	st := state.New(g)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if st.ValueAt(r, c) == 0 {
				st.Narrow(r, c)
			}
		}
	}
	return st
}

// hiddenSingle finds a digit whose only candidate home in some row,
// column, or box is a single cell.
func hiddenSingle(st *state.State) (domain.Hint, bool) {
	units := make([][][2]int, 0, 27)
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
		units = append(units, row, col, box)
	}
	for _, u := range units {
		var count [10]int
		var home [10][2]int
		for _, rc := range u {
			if st.ValueAt(rc[0], rc[1]) != 0 {
				continue
			}
			for _, v := range st.CandidateValues(rc[0], rc[1]) {
				count[v]++
				home[v] = rc
			}
		}
		for v := 1; v <= 9; v++ {
			if count[v] == 1 {
				return domain.Hint{
					Message:  fmt.Sprintf("Hidden single: %d has only one home in this unit", v),
					Value:    v,
					Cells:    []domain.CellCoord{{Row: home[v][0], Col: home[v][1]}},
					Strategy: domain.StrategyHiddenSingle,
				}, true
			}
		}
	}
	return domain.Hint{}, false
}
