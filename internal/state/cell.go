package state

import "math/bits"

// candidateSet is a bitmask of the digits 1..9 still possible for a cell.
// Bit v-1 is set when digit v is a candidate. Iteration in ascending digit
// order matches the order candidates were created in, so removals never
// reorder the set.
type candidateSet uint16

const allCandidates candidateSet = 0x1ff

func (s candidateSet) has(v int) bool {
	return s&(1<<uint(v-1)) != 0
}

func (s *candidateSet) remove(v int) {
	*s &^= 1 << uint(v-1)
}

func (s candidateSet) count() int {
	return bits.OnesCount16(uint16(s))
}

// sole returns the single remaining candidate, or 0 if the set does not
// hold exactly one digit.
func (s candidateSet) sole() int {
	if s.count() != 1 {
		return 0
	}
	return bits.TrailingZeros16(uint16(s)) + 1
}

func (s candidateSet) values() []int {
	out := make([]int, 0, s.count())
	for v := 1; v <= 9; v++ {
		if s.has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Cell is one of the 81 grid positions. A finalized cell has a value in
// 1..9 and an empty candidate set; an unassigned cell has value 0 and a
// non-empty candidate set (empty only once the state is contradictory).
type Cell struct {
	value    int
	cands    candidateSet
	row, col int
}
