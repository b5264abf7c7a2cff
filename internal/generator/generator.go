package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/uriel-olayinka/sudomines/internal/grid"
)

// minesPerGroup is the mine quota of every row, column, and block.
const minesPerGroup = 3

var ErrGenerationFailed = errors.New("failed to generate valid puzzle")

// Generator creates Sudoku-Mines puzzles.
//
// A puzzle is derived from a random mine layout with exactly three mines in
// every row, column, and 3x3 block: mine cells become blank, safe cells
// carry their adjacent-mine count as a clue. Safe cells with no adjacent
// mines stay blank, as the flat format cannot express a zero clue.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new puzzle.
// Returns the puzzle and the mine layout it was derived from.
func (g *Generator) Generate() (*grid.Grid, grid.Solution, error) {
	layout, ok := g.generateLayout()
	if !ok {
		// Layout backtracking is exhaustive and quotas are always
		// satisfiable, so this indicates a generator bug.
		return nil, grid.Solution{}, ErrGenerationFailed
	}

	puzzle, err := g.derivePuzzle(layout)
	if err != nil {
		return nil, grid.Solution{}, err
	}

	return puzzle, layout, nil
}

// generateLayout builds a random mine layout satisfying the three-per-group
// quotas by row-by-row backtracking over column and block budgets.
func (g *Generator) generateLayout() (grid.Solution, bool) {
	var layout grid.Solution
	var colCount, blockCount [grid.Size]int

	var fillRow func(row int) bool
	fillRow = func(row int) bool {
		if row == grid.Size {
			return true
		}

		// Shuffle the column order so each recursion level explores
		// candidate triples in a random order.
		cols := g.rng.Perm(grid.Size)

		for i := 0; i < grid.Size-2; i++ {
			for j := i + 1; j < grid.Size-1; j++ {
				for k := j + 1; k < grid.Size; k++ {
					triple := [3]int{cols[i], cols[j], cols[k]}
					if !g.placeRow(row, triple, &colCount, &blockCount) {
						continue
					}
					for _, col := range triple {
						layout[row][col] = 1
					}
					if fillRow(row + 1) {
						return true
					}
					for _, col := range triple {
						layout[row][col] = 0
					}
					g.unplaceRow(row, triple, &colCount, &blockCount)
				}
			}
		}
		return false
	}

	return layout, fillRow(0)
}

// placeRow commits a row's mine columns against the column and block
// budgets. Returns false, leaving the budgets untouched, if any quota
// would be exceeded.
func (g *Generator) placeRow(row int, triple [3]int, colCount, blockCount *[grid.Size]int) bool {
	var blocks [3]int
	for i, col := range triple {
		blocks[i] = grid.BlockOf(grid.MakePos(row, col))
	}

	var blockAdd [grid.Size]int
	for i, col := range triple {
		if colCount[col] >= minesPerGroup {
			return false
		}
		blockAdd[blocks[i]]++
		if blockCount[blocks[i]]+blockAdd[blocks[i]] > minesPerGroup {
			return false
		}
	}

	for i, col := range triple {
		colCount[col]++
		blockCount[blocks[i]]++
	}
	return true
}

// unplaceRow reverses placeRow.
func (g *Generator) unplaceRow(row int, triple [3]int, colCount, blockCount *[grid.Size]int) {
	for _, col := range triple {
		colCount[col]--
		blockCount[grid.BlockOf(grid.MakePos(row, col))]--
	}
}

// derivePuzzle turns a mine layout into a puzzle grid: mine cells blank,
// safe cells clued with their adjacent-mine count, plus optional extra
// blanking of safe clue cells.
func (g *Generator) derivePuzzle(layout grid.Solution) (*grid.Grid, error) {
	var cells [grid.Size][grid.Size]int

	clued := make([]int, 0, grid.CellCount)
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			if layout[row][col] == 1 {
				continue
			}
			pos := grid.MakePos(row, col)
			count := 0
			for _, nb := range grid.Neighbors(pos) {
				count += layout[grid.RowOf(nb)][grid.ColOf(nb)]
			}
			cells[row][col] = count
			if count > 0 {
				clued = append(clued, pos)
			}
		}
	}

	// Blank out extra safe cells to widen the variable set.
	extra := min(g.options.ExtraBlanks, len(clued))
	for _, i := range g.rng.Perm(len(clued))[:extra] {
		pos := clued[i]
		cells[grid.RowOf(pos)][grid.ColOf(pos)] = grid.Blank
	}

	return grid.New(cells)
}
