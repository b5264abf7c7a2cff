package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a puzzle in the flat text format: 9 lines of 9 whitespace
// separated integer tokens in [0, 8]. Blank lines are skipped.
// Returns an error wrapping ErrInvalidGrid on any malformed input.
func Parse(r io.Reader) (*Grid, error) {
	var cells [Size][Size]int

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if row >= Size {
			return nil, fmt.Errorf("%w: more than %d rows", ErrInvalidGrid, Size)
		}
		if len(fields) != Size {
			return nil, fmt.Errorf("%w: row %d has %d tokens, expected %d",
				ErrInvalidGrid, row, len(fields), Size)
		}
		for col, field := range fields {
			val, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q is not an integer",
					ErrInvalidGrid, row, col, field)
			}
			cells[row][col] = val
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}
	if row != Size {
		return nil, fmt.Errorf("%w: got %d rows, expected %d", ErrInvalidGrid, row, Size)
	}

	return New(cells)
}

// ParseString is a convenience wrapper around Parse for in-memory puzzles.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Flat returns the grid in the flat text format accepted by Parse:
// 9 lines of 9 space-separated integers.
func (g *Grid) Flat() string {
	var sb strings.Builder
	sb.Grow(CellCount * 2)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + byte(g.cells[MakePos(row, col)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
