package grid

import (
	"strings"
)

// Special cell values
const (
	Blank       = 0
	MaxClue     = 8
	InvalidCell = -1
)

// Board dimensions
const (
	Size      = 9
	BlockSize = 3
	CellCount = 81
)

// Grid represents a 9x9 Sudoku-Mines puzzle.
// A cell holds either Blank (its mine state must be solved for) or a
// clue 1-8 counting the mines among its up-to-8 neighbors.
// A Grid is immutable once constructed.
type Grid struct {
	cells [CellCount]int

	// blankCount tracks blank cells for quick variable enumeration.
	blankCount int
}

// New creates a Grid from a 9x9 matrix.
// Returns an error wrapping ErrInvalidGrid if any value is outside [0, 8].
func New(cells [Size][Size]int) (*Grid, error) {
	g := &Grid{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			val := cells[row][col]
			if err := validateValue(row, col, val); err != nil {
				return nil, err
			}
			g.cells[MakePos(row, col)] = val
			if val == Blank {
				g.blankCount++
			}
		}
	}
	return g, nil
}

// Clue returns the clue at the given position, or Blank for a blank cell.
// Returns InvalidCell for invalid positions.
func (g *Grid) Clue(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return g.cells[pos]
}

// IsBlank reports whether the cell at the given position is a variable cell.
func (g *Grid) IsBlank(pos int) bool {
	return isValidPosition(pos) && g.cells[pos] == Blank
}

// BlankCount returns the number of blank (variable) cells.
func (g *Grid) BlankCount() int {
	return g.blankCount
}

// ClueCount returns the number of clue cells.
func (g *Grid) ClueCount() int {
	return CellCount - g.blankCount
}

// Neighbors returns the positions of the up-to-8 cells adjacent to pos,
// horizontally, vertically, and diagonally, clipped to grid bounds.
// The returned slice is shared and must not be modified.
func Neighbors(pos int) []int {
	if !isValidPosition(pos) {
		return nil
	}
	return neighborTable[pos]
}

// String returns the grid as an 81-character string.
// Blank cells are represented as '.', clue cells as '1'-'8'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range g.cells {
		if cell == Blank {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with block lines.
func (g *Grid) Format() string {
	return format(func(row, col int) byte {
		val := g.cells[MakePos(row, col)]
		if val == Blank {
			return '.'
		}
		return '0' + byte(val)
	})
}

// format renders a 9x9 cell function using the shared box drawing.
func format(cell func(row, col int) byte) string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < Size; row++ {
		sb.WriteString("| ")
		for col := 0; col < Size; col++ {
			sb.WriteByte(cell(row, col))
			sb.WriteByte(' ')

			if (col+1)%BlockSize == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%BlockSize == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables for row, column, block, and neighbor mapping.
var (
	posToRow   [CellCount]int
	posToCol   [CellCount]int
	posToBlock [CellCount]int

	neighborTable [CellCount][]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return InvalidCell
	}
	return Size*row + col
}

// RowOf returns the row index of a position.
func RowOf(pos int) int {
	return posToRow[pos]
}

// ColOf returns the column index of a position.
func ColOf(pos int) int {
	return posToCol[pos]
}

// BlockOf returns the 3x3 block index (0-8) of a position.
func BlockOf(pos int) int {
	return posToBlock[pos]
}

// init initializes the position lookup tables and the neighbor table.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		row, col := pos/Size, pos%Size
		posToRow[pos] = row
		posToCol[pos] = col
		posToBlock[pos] = (row/BlockSize)*BlockSize + col/BlockSize

		neighbors := make([]int, 0, 8)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if nb := MakePos(row+dr, col+dc); nb != InvalidCell {
					neighbors = append(neighbors, nb)
				}
			}
		}
		neighborTable[pos] = neighbors
	}
}
