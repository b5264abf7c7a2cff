package solver

// removal records the domain values pruned from one variable during a single
// forward-checking pass.
type removal struct {
	pos  int
	mask uint8
}

// forwardCheck prunes values that became inconsistent after the most recent
// binding. It returns the removal record and ok=true on success; an empty
// record with ok=true means no pruning was needed. On domain wipeout it
// reinstates exactly its own removals and returns ok=false.
func (s *Solver) forwardCheck() (removed []removal, ok bool) {
	for _, pos := range s.vars {
		if s.values[pos] != unassigned {
			continue
		}

		var pruned uint8
		for _, val := range valueOrder {
			bit := domainBit(val)
			if s.domains[pos]&bit == 0 {
				continue
			}
			if !s.isConsistent(binding{pos: pos, val: val}) {
				pruned |= bit
			}
		}
		if pruned == 0 {
			continue
		}

		s.domains[pos] &^= pruned
		removed = append(removed, removal{pos: pos, mask: pruned})

		if s.domains[pos] == 0 {
			s.restore(removed)
			return nil, false
		}
	}

	return removed, true
}

// restore reinstates exactly the values a forward-checking pass removed.
// Restoration is a set union, so it never touches values outside the record.
func (s *Solver) restore(removed []removal) {
	for _, r := range removed {
		s.domains[r.pos] |= r.mask
	}
}
