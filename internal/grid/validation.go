package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGrid     = errors.New("grid is malformed")
	ErrInvalidPosition = errors.New("position out of bounds")
)

// isValidPosition reports whether a given position is in bounds of the grid.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// validateValue checks that a cell value is Blank or a clue 1-8.
func validateValue(row, col, val int) error {
	if val < Blank || val > MaxClue {
		return fmt.Errorf("%w: value %d at row %d col %d must be in range [0, %d]",
			ErrInvalidGrid, val, row, col, MaxClue)
	}
	return nil
}
