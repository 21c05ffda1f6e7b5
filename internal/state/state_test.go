package state

import (
	"testing"

	"github.com/wqueree/sudoku/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func countValues(s *State) map[int]int {
	counts := make(map[int]int)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := s.ValueAt(r, c); v > 0 {
				counts[v]++
			}
		}
	}
	return counts
}

func TestNewTracksAllocations(t *testing.T) {
	s := New(sample)
	counts := countValues(s)
	for v := 1; v <= 9; v++ {
		if got, want := s.Allocation(v), counts[v]; got != want {
			t.Errorf("Allocation(%d) = %d, want %d", v, got, want)
		}
	}
	if s.IsGoal() {
		t.Error("partial grid reported as goal")
	}
	if !s.IsValid() {
		t.Error("consistent grid reported invalid")
	}
}

func TestMinimizeReachesFixedPoint(t *testing.T) {
	s := New(sample)
	s.Minimize()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.ValueAt(r, c) != 0 {
				continue
			}
			for _, v := range s.CandidateValues(r, c) {
				if peerHasValue(s, r, c, v) {
					t.Fatalf("cell (%d,%d) still holds candidate %d finalized in a peer", r, c, v)
				}
			}
			if s.CandidateCount(r, c) == 1 {
				t.Fatalf("cell (%d,%d) left as an unresolved naked single", r, c)
			}
		}
	}
}

func peerHasValue(s *State, r, c, v int) bool {
	for i := 0; i < 9; i++ {
		if i != c && s.ValueAt(r, i) == v {
			return true
		}
		if i != r && s.ValueAt(i, c) == v {
			return true
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if br+dr == r && bc+dc == c {
				continue
			}
			if s.ValueAt(br+dr, bc+dc) == v {
				return true
			}
		}
	}
	return false
}

func TestMinimizeCompletesDiagonalBlanks(t *testing.T) {
	g := sampleSolution
	for i := 0; i < 9; i++ {
		g[i][i] = 0
	}
	s := New(g)
	s.Minimize()
	if !s.IsGoal() || !s.IsValid() {
		t.Fatalf("propagation alone should finish a diagonal-blanked grid, goal=%v valid=%v", s.IsGoal(), s.IsValid())
	}
	if got := s.Grid(); got != sampleSolution {
		t.Fatalf("minimized grid differs from the known solution:\n%v", got)
	}
}

func TestSetValueDoesNotMutateReceiver(t *testing.T) {
	s := New(sample)
	s.Minimize()

	var row, col int
	found := false
	for r := 0; r < 9 && !found; r++ {
		for c := 0; c < 9 && !found; c++ {
			if s.ValueAt(r, c) == 0 {
				row, col, found = r, c, true
			}
		}
	}
	if !found {
		t.Skip("sample fully solved by propagation")
	}
	before := s.Grid()
	beforeCands := s.CandidateValues(row, col)

	next := s.SetValue(row, col, beforeCands[0])
	if next == s {
		t.Fatal("SetValue returned the receiver")
	}
	if next.ValueAt(row, col) != beforeCands[0] {
		t.Fatalf("derived state did not finalize (%d,%d)", row, col)
	}
	if got := s.Grid(); got != before {
		t.Fatal("SetValue mutated the parent state's grid")
	}
	if got := s.CandidateValues(row, col); len(got) != len(beforeCands) {
		t.Fatal("SetValue mutated the parent state's candidates")
	}
}

func TestSetValueMaintainsAllocations(t *testing.T) {
	s := New(sample)
	s.Minimize()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.ValueAt(r, c) != 0 {
				continue
			}
			next := s.SetValue(r, c, s.CandidateValues(r, c)[0])
			counts := countValues(next)
			for v := 1; v <= 9; v++ {
				if got, want := next.Allocation(v), counts[v]; got != want {
					t.Fatalf("after SetValue(%d,%d): Allocation(%d) = %d, want %d", r, c, v, got, want)
				}
			}
			return
		}
	}
}

// hiddenSingleGrid pins eight 1s so that in row 0 (and column 4) the
// digit 1 can only live at (0,4), while (0,4) itself keeps all nine
// candidates. No cell in the grid is a naked single.
var hiddenSingleGrid = func() domain.Grid {
	var g domain.Grid
	for _, rc := range [][2]int{{1, 0}, {2, 8}, {3, 3}, {4, 1}, {5, 6}, {6, 5}, {7, 2}, {8, 7}} {
		g[rc[0]][rc[1]] = 1
	}
	return g
}()

func TestSoleAppearanceSweepResolvesHiddenSingle(t *testing.T) {
	s := New(hiddenSingleGrid)
	s.Minimize()
	if s.ValueAt(0, 4) != 0 {
		t.Fatal("minimize alone should not have finalized (0,4)")
	}
	if s.CandidateCount(0, 4) != 9 {
		t.Fatalf("(0,4) should keep all nine candidates, has %d", s.CandidateCount(0, 4))
	}

	s.soleAppearanceSweep()
	if got := s.ValueAt(0, 4); got != 1 {
		t.Fatalf("hidden single not resolved: ValueAt(0,4) = %d, want 1", got)
	}
	if got := s.Allocation(1); got != 9 {
		t.Fatalf("Allocation(1) = %d, want 9", got)
	}
	if !s.IsValid() {
		t.Fatal("state invalid after hidden-single sweep")
	}
}

func TestIsValidDetectsDuplicates(t *testing.T) {
	cases := []struct {
		name  string
		cells [][3]int // row, col, value
	}{
		{"row", [][3]int{{0, 0, 5}, {0, 8, 5}}},
		{"column", [][3]int{{0, 2, 3}, {8, 2, 3}}},
		{"box", [][3]int{{3, 3, 7}, {5, 5, 7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g domain.Grid
			for _, cell := range tc.cells {
				g[cell[0]][cell[1]] = cell[2]
			}
			if New(g).IsValid() {
				t.Errorf("duplicate in %s not detected", tc.name)
			}
		})
	}
}

func TestIsValidIgnoresUnassigned(t *testing.T) {
	var g domain.Grid
	if !New(g).IsValid() {
		t.Error("empty grid reported invalid")
	}
}
