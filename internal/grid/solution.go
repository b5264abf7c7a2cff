package grid

import "strings"

// Solution is a solved mine placement: 1 marks a mine, 0 a safe cell.
// Clue cells are never mines and always hold 0.
type Solution [Size][Size]int

// String returns the solution as 9 lines of 9 space-separated {0,1} tokens,
// the body of the flat output format.
func (s Solution) String() string {
	var sb strings.Builder
	sb.Grow(CellCount * 2)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + byte(s[row][col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Format returns a human-readable solution representation with block lines.
// Mines are rendered as '*', safe cells as '.'.
func (s Solution) Format() string {
	return format(func(row, col int) byte {
		if s[row][col] == 1 {
			return '*'
		}
		return '.'
	})
}
