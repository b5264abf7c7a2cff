package solver

import (
	"testing"

	"github.com/uriel-olayinka/sudomines/internal/grid"
)

// rowBlankCells returns a grid of 1-clues with the first n cells of row 0
// blanked.
func rowBlankCells(n int) [grid.Size][grid.Size]int {
	var cells [grid.Size][grid.Size]int
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			cells[row][col] = 1
		}
	}
	for col := 0; col < n; col++ {
		cells[0][col] = grid.Blank
	}
	return cells
}

func TestCheckGroupRejectsExcessMines(t *testing.T) {
	s := mustSolver(t, rowBlankCells(4))
	s.reset()

	for col := 0; col < 3; col++ {
		s.values[grid.MakePos(0, col)] = 1
		s.assigned++
	}

	if s.checkRow(0, binding{pos: grid.MakePos(0, 3), val: 1}) {
		t.Error("row with 4 mines accepted")
	}
	if !s.checkRow(0, binding{pos: grid.MakePos(0, 3), val: 0}) {
		t.Error("row completing at exactly 3 mines rejected")
	}
}

func TestCheckGroupRejectsWrongTotal(t *testing.T) {
	s := mustSolver(t, rowBlankCells(4))
	s.reset()

	s.values[grid.MakePos(0, 0)] = 1
	s.values[grid.MakePos(0, 1)] = 0
	s.values[grid.MakePos(0, 2)] = 0
	s.assigned += 3

	if s.checkRow(0, binding{pos: grid.MakePos(0, 3), val: 1}) {
		t.Error("fully bound row with 2 mines accepted")
	}
}

func TestCheckGroupRejectsUnreachableTotal(t *testing.T) {
	s := mustSolver(t, rowBlankCells(4))
	s.reset()

	s.values[grid.MakePos(0, 0)] = 0
	s.values[grid.MakePos(0, 1)] = 0
	s.assigned += 2

	// One bound mine at most can follow: 0+0+0+1 and 0+0+1+unbound both
	// fall short of the quota.
	if s.checkRow(0, binding{pos: grid.MakePos(0, 2), val: 0}) {
		t.Error("row that cannot reach 3 mines accepted")
	}
}

// TestCheckColumnAppliesReachRule pins the column checker to the same
// cannot-reach pruning as rows and blocks.
func TestCheckColumnAppliesReachRule(t *testing.T) {
	var cells [grid.Size][grid.Size]int
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			cells[row][col] = 1
		}
	}
	for row := 0; row < 3; row++ {
		cells[row][0] = grid.Blank
	}

	s := mustSolver(t, cells)
	s.reset()

	if s.checkColumn(0, binding{pos: grid.MakePos(0, 0), val: 0}) {
		t.Error("column that cannot reach 3 mines accepted")
	}
	if !s.checkColumn(0, binding{pos: grid.MakePos(0, 0), val: 1}) {
		t.Error("column still able to reach 3 mines rejected")
	}
}

func TestCheckBlockMirrorsRowRules(t *testing.T) {
	var cells [grid.Size][grid.Size]int
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			cells[row][col] = 1
		}
	}
	// Four blanks inside block 0.
	cells[0][0] = grid.Blank
	cells[0][1] = grid.Blank
	cells[1][0] = grid.Blank
	cells[1][1] = grid.Blank

	s := mustSolver(t, cells)
	s.reset()

	s.values[grid.MakePos(0, 0)] = 1
	s.values[grid.MakePos(0, 1)] = 1
	s.values[grid.MakePos(1, 0)] = 1
	s.assigned += 3

	if s.checkBlock(0, binding{pos: grid.MakePos(1, 1), val: 1}) {
		t.Error("block with 4 mines accepted")
	}
	if !s.checkBlock(0, binding{pos: grid.MakePos(1, 1), val: 0}) {
		t.Error("block completing at exactly 3 mines rejected")
	}
}

func TestCheckCluesOvershoot(t *testing.T) {
	s := mustSolver(t, rowBlankCells(3))
	s.reset()

	s.values[grid.MakePos(0, 0)] = 1
	s.assigned++

	// The 1-clue at (1,1) neighbors all three variables.
	if s.checkClues(binding{pos: grid.MakePos(0, 1), val: 1}) {
		t.Error("clue with confirmed mines above its count accepted")
	}
}

func TestCheckCluesCompleteMismatch(t *testing.T) {
	s := mustSolver(t, rowBlankCells(3))
	s.reset()

	s.values[grid.MakePos(0, 0)] = 0
	s.values[grid.MakePos(0, 1)] = 0
	s.assigned += 2

	if s.checkClues(binding{pos: grid.MakePos(0, 2), val: 0}) {
		t.Error("fully bound clue neighborhood with the wrong count accepted")
	}
}

func TestCheckCluesPartialNeighborhoodPasses(t *testing.T) {
	s := mustSolver(t, cellsFromLayout(t, diagLayout()))
	s.reset()

	if !s.checkClues(binding{pos: grid.MakePos(0, 0), val: 1}) {
		t.Error("satisfiable partial clue neighborhoods rejected")
	}
}

func TestIsConsistentComposesCheckers(t *testing.T) {
	s := mustSolver(t, cellsFromLayout(t, diagLayout()))
	s.reset()

	pos := grid.MakePos(0, 0)
	if s.isConsistent(binding{pos: pos, val: 0}) {
		t.Error("value 0 accepted although the row cannot then reach 3 mines")
	}
	if !s.isConsistent(binding{pos: pos, val: 1}) {
		t.Error("value 1 rejected on a satisfiable puzzle")
	}
}
