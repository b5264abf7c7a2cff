package solver

import (
	"testing"
)

func TestForwardCheckRestoreRoundTrip(t *testing.T) {
	s := mustSolver(t, cellsFromLayout(t, diagLayout()))
	s.reset()

	before := s.domains

	// Bind the first variable to a mine, the consistent choice, and run a
	// forward-checking pass. Every row has only three variables, so the
	// pass must prune value 0 everywhere else.
	pos := s.vars[0]
	s.values[pos] = 1
	s.assigned++

	removed, ok := s.forwardCheck()
	if !ok {
		t.Fatal("unexpected domain wipeout")
	}
	if len(removed) == 0 {
		t.Fatal("expected prunings from forward checking")
	}
	for _, r := range removed {
		if r.mask&domainSafe == 0 {
			t.Errorf("expected value 0 pruned at position %d, got mask %#x", r.pos, r.mask)
		}
		if s.domains[r.pos]&r.mask != 0 {
			t.Errorf("removed values still present at position %d", r.pos)
		}
	}

	s.restore(removed)
	s.values[pos] = unassigned
	s.assigned--

	if s.domains != before {
		t.Error("domains differ from their pre-pruning state after restore")
	}
}

func TestForwardCheckWipeout(t *testing.T) {
	s := mustSolver(t, cellsFromLayout(t, diagLayout()))
	s.reset()

	// Force an inconsistent state behind the propagator's back: with one
	// row variable bound to 0, the remaining two cannot reach the 3-mine
	// quota whichever value they take.
	pos := s.rowVars[0][0]
	s.values[pos] = 0
	s.assigned++

	before := s.domains

	removed, ok := s.forwardCheck()
	if ok {
		t.Fatalf("expected wipeout, got removal record of %d entries", len(removed))
	}
	if removed != nil {
		t.Errorf("wipeout must not leak a removal record")
	}
	if s.domains != before {
		t.Error("wipeout failed to reinstate its own prunings")
	}
}

func TestRestoreIsExact(t *testing.T) {
	s := mustSolver(t, cellsFromLayout(t, diagLayout()))
	s.reset()

	a, b := s.vars[0], s.vars[1]
	s.domains[a] &^= domainSafe
	s.domains[b] &^= domainMine

	s.restore([]removal{{pos: a, mask: domainSafe}})

	if s.domains[a] != domainFull {
		t.Errorf("position %d not restored, mask %#x", a, s.domains[a])
	}
	if s.domains[b] != domainSafe {
		t.Errorf("restore touched position %d outside its record, mask %#x", b, s.domains[b])
	}
}
