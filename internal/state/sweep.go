package state

// unit enumerates the nine (row, col) coordinates of a row, column, or
// box, the three kinds of region subject to the uniqueness constraint.
type unit [9][2]int

func rowUnit(r int) unit {
	var u unit
	for c := 0; c < 9; c++ {
		u[c] = [2]int{r, c}
	}
	return u
}

func colUnit(c int) unit {
	var u unit
	for r := 0; r < 9; r++ {
		u[r] = [2]int{r, c}
	}
	return u
}

func boxUnit(b int) unit {
	var u unit
	br, bc := (b/3)*3, (b%3)*3
	for i := 0; i < 9; i++ {
		u[i] = [2]int{br + i/3, bc + i%3}
	}
	return u
}

// soleAppearanceSweep finalizes hidden singles: digits that appear in
// the candidate set of exactly one unassigned cell within a unit. Every
// finalization can create new hidden singles elsewhere, so the sweep
// restarts from the first unit after each one and only returns once a
// full pass over all units resolves nothing.
func (s *State) soleAppearanceSweep() {
	for s.resolveHiddenSingle() {
	}
}

// resolveHiddenSingle scans rows, then columns, then boxes for the first
// digit whose only remaining home in a unit is a single cell, finalizes
// that cell, and reports whether anything changed.
func (s *State) resolveHiddenSingle() bool {
	for i := 0; i < 9; i++ {
		if s.resolveInUnit(rowUnit(i)) {
			return true
		}
	}
	for i := 0; i < 9; i++ {
		if s.resolveInUnit(colUnit(i)) {
			return true
		}
	}
	for i := 0; i < 9; i++ {
		if s.resolveInUnit(boxUnit(i)) {
			return true
		}
	}
	return false
}

func (s *State) resolveInUnit(u unit) bool {
	var count [10]int
	var home [10][2]int
	for _, rc := range u {
		cell := &s.cells[rc[0]][rc[1]]
		if cell.value != 0 {
			continue
		}
		for v := 1; v <= 9; v++ {
			if cell.cands.has(v) {
				count[v]++
				home[v] = rc
			}
		}
	}
	for v := 1; v <= 9; v++ {
		if count[v] == 1 {
			s.setValueInState(home[v][0], home[v][1], v)
			return true
		}
	}
	return false
}
