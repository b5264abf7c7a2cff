package solver

import (
	"math/bits"

	"github.com/uriel-olayinka/sudomines/internal/grid"
)

// selectVariable picks the next variable to branch on: the unassigned
// variable with the smallest current domain (minimum remaining values),
// ties broken by the largest degree, remaining ties by row-major order.
// Returns grid.InvalidCell when every variable is assigned.
func (s *Solver) selectVariable() int {
	best := grid.InvalidCell
	bestSize := int(^uint(0) >> 1)
	bestDegree := -1

	for _, pos := range s.vars {
		if s.values[pos] != unassigned {
			continue
		}
		size := bits.OnesCount8(s.domains[pos])
		if size > bestSize {
			continue
		}
		if size < bestSize {
			best, bestSize, bestDegree = pos, size, s.degree(pos)
			continue
		}
		if d := s.degree(pos); d > bestDegree {
			best, bestDegree = pos, d
		}
	}

	return best
}

// degree counts the other unassigned variables that share a constraint with
// pos. The peer sets are precomputed and deduplicated, so a variable
// constrained through several relations at once is counted only once.
func (s *Solver) degree(pos int) int {
	n := 0
	for _, peer := range s.peers[pos] {
		if s.values[peer] == unassigned {
			n++
		}
	}
	return n
}
