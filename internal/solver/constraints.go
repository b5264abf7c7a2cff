package solver

import (
	"github.com/uriel-olayinka/sudomines/internal/grid"
)

// binding is a scoped extension of the live assignment: the checkers see the
// assignment as if pos were bound to val, without mutating solver state.
type binding struct {
	pos int
	val int
}

// valueAt resolves a variable's value under the binding: the tentative value
// for the bound position, the live assignment otherwise.
func (s *Solver) valueAt(pos int, b binding) (int, bool) {
	if pos == b.pos {
		return b.val, true
	}
	if v := s.values[pos]; v != unassigned {
		return int(v), true
	}
	return 0, false
}

// tally counts confirmed mines and still-unbound variables among vars under
// the binding.
func (s *Solver) tally(vars []int, b binding) (mines, unbound int) {
	for _, pos := range vars {
		if v, ok := s.valueAt(pos, b); ok {
			mines += v
		} else {
			unbound++
		}
	}
	return mines, unbound
}

// checkGroup applies the shared row/column/block rule: the group's variables
// must still be able to hold exactly minesPerGroup mines. It fails when the
// confirmed count already exceeds the target, when every variable is bound
// with the wrong total, or when the target is no longer reachable.
func (s *Solver) checkGroup(vars []int, b binding) bool {
	mines, unbound := s.tally(vars, b)
	if mines > minesPerGroup {
		return false
	}
	if unbound == 0 && mines != minesPerGroup {
		return false
	}
	if mines+unbound < minesPerGroup {
		return false
	}
	return true
}

// checkRow tests the exactly-three-mines rule for one row.
func (s *Solver) checkRow(row int, b binding) bool {
	return s.checkGroup(s.rowVars[row], b)
}

// checkColumn tests the exactly-three-mines rule for one column.
func (s *Solver) checkColumn(col int, b binding) bool {
	return s.checkGroup(s.colVars[col], b)
}

// checkBlock tests the exactly-three-mines rule for one 3x3 block.
func (s *Solver) checkBlock(block int, b binding) bool {
	return s.checkGroup(s.blockVars[block], b)
}

// checkClues tests every clue cell in the grid: its confirmed neighbor mines
// must not exceed its count, and once all neighbors are bound the total must
// match the count exactly.
func (s *Solver) checkClues(b binding) bool {
	for i := range s.clues {
		c := &s.clues[i]
		mines, unbound := s.tally(c.vars, b)
		if mines > c.count {
			return false
		}
		if unbound == 0 && mines != c.count {
			return false
		}
	}
	return true
}

// isConsistent reports whether extending the current assignment with the
// binding keeps every constraint satisfiable. It is the single feasibility
// oracle shared by the search driver and the forward checker, and it never
// mutates the live assignment.
func (s *Solver) isConsistent(b binding) bool {
	return s.checkRow(grid.RowOf(b.pos), b) &&
		s.checkColumn(grid.ColOf(b.pos), b) &&
		s.checkBlock(grid.BlockOf(b.pos), b) &&
		s.checkClues(b)
}
