package solver

import (
	"github.com/uriel-olayinka/sudomines/internal/grid"
)

// minesPerGroup is the required mine count in every row, column, and block.
const minesPerGroup = 3

// Domain bitmask values. Bit 0 represents "no mine", bit 1 represents "mine".
const (
	domainSafe = uint8(1) << 0
	domainMine = uint8(1) << 1
	domainFull = domainSafe | domainMine
)

// unassigned marks a variable with no value in the current assignment.
const unassigned = int8(-1)

// valueOrder is the fixed order in which candidate values are tried.
var valueOrder = [2]int{0, 1}

// domainBit maps a candidate value {0,1} to its domain mask bit.
func domainBit(val int) uint8 {
	return uint8(1) << uint(val)
}

// Solver solves a Sudoku-Mines puzzle: place mines on the blank cells so
// that every row, column, and 3x3 block holds exactly three mines and every
// clue cell counts exactly its number of mines among its neighbors.
//
// The search is recursive backtracking with minimum-remaining-values
// variable ordering (degree tie-break) and forward checking. A Solver is
// not safe for concurrent use; a solve runs single-threaded to completion.
type Solver struct {
	grid *grid.Grid

	// vars holds the blank-cell positions in row-major order.
	// The variable set is fixed for the lifetime of the solver.
	vars []int

	// Per-group variable lists, precomputed from the grid.
	rowVars   [grid.Size][]int
	colVars   [grid.Size][]int
	blockVars [grid.Size][]int

	// clues lists every clue cell together with its variable neighbors.
	clues []clue

	// cluesOf[pos] indexes into clues for every clue cell adjacent to pos.
	cluesOf [grid.CellCount][]int

	// peers[pos] holds the other variable positions sharing a constraint
	// with pos, deduplicated across relations. Used by the degree tie-break.
	peers [grid.CellCount][]int

	// Live search state, reset on each Solve.
	domains  [grid.CellCount]uint8
	values   [grid.CellCount]int8
	assigned int

	nodes     int
	goalDepth int
	maxDepth  int
}

// clue is a numbered cell and the variable cells its count constrains.
type clue struct {
	pos   int
	count int
	vars  []int
}

// Outcome reports the result of a solve.
type Outcome struct {
	// Solved is false when the search space was exhausted with no
	// satisfying assignment. That is a normal outcome, not an error.
	Solved bool

	// Solution is meaningful only when Solved is true.
	Solution grid.Solution

	// GoalDepth is the number of assignments made when the solution was
	// found, or the deepest expansion reached on an exhausted search.
	GoalDepth int

	// Nodes counts every search-tree node generated, the terminal
	// success node included.
	Nodes int
}

// New creates a solver for the given puzzle grid.
func New(g *grid.Grid) *Solver {
	s := &Solver{grid: g}

	for pos := 0; pos < grid.CellCount; pos++ {
		s.values[pos] = unassigned
		if g.IsBlank(pos) {
			s.vars = append(s.vars, pos)
		}
	}

	for _, pos := range s.vars {
		s.rowVars[grid.RowOf(pos)] = append(s.rowVars[grid.RowOf(pos)], pos)
		s.colVars[grid.ColOf(pos)] = append(s.colVars[grid.ColOf(pos)], pos)
		s.blockVars[grid.BlockOf(pos)] = append(s.blockVars[grid.BlockOf(pos)], pos)
	}

	for pos := 0; pos < grid.CellCount; pos++ {
		count := g.Clue(pos)
		if count == grid.Blank {
			continue
		}
		c := clue{pos: pos, count: count}
		for _, nb := range grid.Neighbors(pos) {
			if g.IsBlank(nb) {
				c.vars = append(c.vars, nb)
			}
		}
		for _, nb := range c.vars {
			s.cluesOf[nb] = append(s.cluesOf[nb], len(s.clues))
		}
		s.clues = append(s.clues, c)
	}

	s.buildPeers()
	return s
}

// FromCells constructs a solver directly from a 9x9 matrix.
// Returns an error wrapping grid.ErrInvalidGrid on out-of-range values.
func FromCells(cells [grid.Size][grid.Size]int) (*Solver, error) {
	g, err := grid.New(cells)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

// buildPeers precomputes, for each variable, the set of other variables it
// shares a constraint with: same row, same column, same block, or
// co-neighbor of a shared clue. The set is deduplicated across relations.
func (s *Solver) buildPeers() {
	var seen [grid.CellCount]bool

	for _, pos := range s.vars {
		peers := make([]int, 0, 20)
		add := func(peer int) {
			if peer != pos && !seen[peer] {
				seen[peer] = true
				peers = append(peers, peer)
			}
		}

		for _, peer := range s.rowVars[grid.RowOf(pos)] {
			add(peer)
		}
		for _, peer := range s.colVars[grid.ColOf(pos)] {
			add(peer)
		}
		for _, peer := range s.blockVars[grid.BlockOf(pos)] {
			add(peer)
		}
		for _, ci := range s.cluesOf[pos] {
			for _, peer := range s.clues[ci].vars {
				add(peer)
			}
		}

		s.peers[pos] = peers
		for _, peer := range peers {
			seen[peer] = false
		}
	}
}

// Grid returns the puzzle the solver was built from.
func (s *Solver) Grid() *grid.Grid {
	return s.grid
}

// Variables returns the number of blank cells the solver must assign.
func (s *Solver) Variables() int {
	return len(s.vars)
}

// Nodes returns the node count of the most recent solve.
func (s *Solver) Nodes() int {
	return s.nodes
}

// GoalDepth returns the goal depth of the most recent solve. After a failed
// solve it reports the deepest expansion the search reached.
func (s *Solver) GoalDepth() int {
	return s.goalDepth
}

// Solve runs the backtracking search to completion and reports the outcome.
// Repeated calls reset all search state first, so identical input yields an
// identical outcome.
func (s *Solver) Solve() Outcome {
	s.reset()

	solved := s.backtrack(0)
	if !solved {
		s.goalDepth = s.maxDepth
	}

	out := Outcome{
		Solved:    solved,
		GoalDepth: s.goalDepth,
		Nodes:     s.nodes,
	}
	if solved {
		for _, pos := range s.vars {
			out.Solution[grid.RowOf(pos)][grid.ColOf(pos)] = int(s.values[pos])
		}
	}
	return out
}

// reset restores the solver to its pre-search state: empty assignment, full
// domains, zeroed statistics.
func (s *Solver) reset() {
	for _, pos := range s.vars {
		s.values[pos] = unassigned
		s.domains[pos] = domainFull
	}
	s.assigned = 0
	s.nodes = 0
	s.goalDepth = 0
	s.maxDepth = 0
}

// backtrack is the recursive depth-first search. Each invocation counts one
// node. Domain pruning and restoration are paired within a single frame:
// a frame restores exactly what its own forward check removed.
func (s *Solver) backtrack(depth int) bool {
	s.nodes++
	if depth > s.maxDepth {
		s.maxDepth = depth
	}

	if s.assigned == len(s.vars) {
		s.goalDepth = depth
		return true
	}

	pos := s.selectVariable()
	if pos == grid.InvalidCell {
		panic("solver: no unassigned variable on an incomplete assignment")
	}

	for _, val := range valueOrder {
		if s.domains[pos]&domainBit(val) == 0 {
			continue
		}
		if !s.isConsistent(binding{pos: pos, val: val}) {
			continue
		}

		s.values[pos] = int8(val)
		s.assigned++

		if removed, ok := s.forwardCheck(); ok {
			if s.backtrack(depth + 1) {
				return true
			}
			s.restore(removed)
		}

		s.values[pos] = unassigned
		s.assigned--
	}

	return false
}
