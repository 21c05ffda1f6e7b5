// Package state holds the constraint-propagation engine: an immutable
// snapshot of a partially solved grid with per-cell candidate sets. A
// state is built once from the puzzle, minimized, and then only ever
// derived from: SetValue returns a fresh copy with one more cell
// finalized and all consequences propagated, so search branches never
// observe each other's tentative assignments.
package state

import "github.com/wqueree/sudoku/internal/domain"

// State is the full 9x9 grid of cells plus a per-digit count of
// finalized allocations, used by the search driver to order values.
type State struct {
	cells       [9][9]Cell
	allocations [9]int
}

// New builds a state from a puzzle grid. Positive values finalize their
// cell and count toward the digit's allocation; zeros start with all
// nine candidates.
func New(g domain.Grid) *State {
	s := &State{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v > 0 {
				s.cells[r][c] = Cell{value: v, row: r, col: c}
				s.allocations[v-1]++
			} else {
				s.cells[r][c] = Cell{cands: allCandidates, row: r, col: c}
			}
		}
	}
	return s
}

// Grid returns the finalized values of the state.
func (s *State) Grid() domain.Grid {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = s.cells[r][c].value
		}
	}
	return g
}

// ValueAt returns the finalized value at (r, c), or 0 if unassigned.
func (s *State) ValueAt(r, c int) int { return s.cells[r][c].value }

// CandidateCount returns the number of candidates left at (r, c).
func (s *State) CandidateCount(r, c int) int { return s.cells[r][c].cands.count() }

// CandidateValues returns the candidates at (r, c) in ascending order.
func (s *State) CandidateValues(r, c int) []int { return s.cells[r][c].cands.values() }

// Allocation returns how many cells across the grid hold v as their
// finalized value.
func (s *State) Allocation(v int) int { return s.allocations[v-1] }

// IsGoal reports whether every cell is finalized. It does not check
// validity.
func (s *State) IsGoal() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.cells[r][c].value == 0 {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether no row, column, or box contains a duplicate
// finalized value. Unassigned cells never count as duplicates.
func (s *State) IsValid() bool {
	for i := 0; i < 9; i++ {
		rowSeen, colSeen := 0, 0
		for j := 0; j < 9; j++ {
			if v := s.cells[i][j].value; v > 0 {
				bit := 1 << v
				if rowSeen&bit != 0 {
					return false
				}
				rowSeen |= bit
			}
			if v := s.cells[j][i].value; v > 0 {
				bit := 1 << v
				if colSeen&bit != 0 {
					return false
				}
				colSeen |= bit
			}
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			seen := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					if v := s.cells[br+dr][bc+dc].value; v > 0 {
						bit := 1 << v
						if seen&bit != 0 {
							return false
						}
						seen |= bit
					}
				}
			}
		}
	}
	return true
}

// Minimize removes from every unassigned cell any candidate already
// finalized in its row, column, or box, finalizing cells reduced to a
// single candidate as it goes. Called once on the initial state.
func (s *State) Minimize() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := &s.cells[r][c]
			if cell.value != 0 {
				continue
			}
			s.updateCandidates(r, c)
			if v := cell.cands.sole(); v != 0 {
				s.setValueInState(r, c, v)
			}
		}
	}
}

// SetValue derives a new state with (row, col) finalized to v. The
// receiver is copied, never mutated: the copy propagates the assignment,
// cascades naked singles, and runs the hidden-singles sweep to a fixed
// point before being returned.
func (s *State) SetValue(row, col, v int) *State {
	next := *s
	next.setValueInState(row, col, v)
	next.soleAppearanceSweep()
	return &next
}

// setValueInState finalizes (r, c) to v in place, bumps the allocation
// counter, removes v from the candidates of every peer, and cascades any
// cells left with a single candidate. Contradictions are not raised
// here; an emptied candidate set surfaces later through IsValid.
func (s *State) setValueInState(r, c, v int) {
	s.cells[r][c] = Cell{value: v, row: r, col: c}
	s.allocations[v-1]++
	s.propagateRow(r, v)
	s.propagateCol(c, v)
	s.propagateBox(r, c, v)
	s.singletonSweep()
}

func (s *State) propagateRow(r, v int) {
	for c := 0; c < 9; c++ {
		if cell := &s.cells[r][c]; cell.value == 0 {
			cell.cands.remove(v)
		}
	}
}

func (s *State) propagateCol(c, v int) {
	for r := 0; r < 9; r++ {
		if cell := &s.cells[r][c]; cell.value == 0 {
			cell.cands.remove(v)
		}
	}
}

func (s *State) propagateBox(r, c, v int) {
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if cell := &s.cells[br+dr][bc+dc]; cell.value == 0 {
				cell.cands.remove(v)
			}
		}
	}
}

// singletonSweep finalizes every unassigned cell left with exactly one
// candidate. Each finalization re-propagates and re-sweeps, so the
// cascade runs until no naked single remains.
func (s *State) singletonSweep() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := &s.cells[r][c]
			if cell.value != 0 {
				continue
			}
			if v := cell.cands.sole(); v != 0 {
				s.setValueInState(r, c, v)
			}
		}
	}
}

// Narrow removes from (r, c) every digit finalized elsewhere in its
// row, column, or box, without finalizing the cell. Minimize performs
// the same elimination but also resolves naked singles as it sweeps.
func (s *State) Narrow(r, c int) {
	s.updateCandidates(r, c)
}

// updateCandidates removes from (r, c) every digit finalized elsewhere
// in its row, column, or box.
func (s *State) updateCandidates(r, c int) {
	cell := &s.cells[r][c]
	for i := 0; i < 9; i++ {
		if v := s.cells[r][i].value; v > 0 {
			cell.cands.remove(v)
		}
		if v := s.cells[i][c].value; v > 0 {
			cell.cands.remove(v)
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if v := s.cells[br+dr][bc+dc].value; v > 0 {
				cell.cands.remove(v)
			}
		}
	}
}
