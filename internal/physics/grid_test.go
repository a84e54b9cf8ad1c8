package physics

import (
	"sort"
	"testing"
)

func TestCandidates_AscendingOrder(t *testing.T) {
	g := NewGrid(480, 800, 64)
	g.Insert(100, 100, 7)
	g.Insert(102, 98, 2)
	g.Insert(130, 110, 5)

	got := g.Candidates(101, 101)
	if len(got) != 3 {
		t.Fatalf("candidates = %v, want 3 entries", got)
	}
	if !sort.IntsAreSorted(got) {
		t.Errorf("candidates %v not ascending", got)
	}
}

func TestCandidates_OnlyNearbyCells(t *testing.T) {
	g := NewGrid(480, 800, 64)
	g.Insert(32, 32, 0)   // Same cell as the query
	g.Insert(100, 32, 1)  // Adjacent cell
	g.Insert(400, 700, 2) // Far corner

	got := g.Candidates(40, 40)
	want := map[int]bool{0: true, 1: true}
	if len(got) != 2 {
		t.Fatalf("candidates = %v, want the two nearby entries", got)
	}
	for _, idx := range got {
		if !want[idx] {
			t.Errorf("unexpected candidate %d", idx)
		}
	}
}

func TestCandidates_ClampedOffFieldEntriesStayVisible(t *testing.T) {
	g := NewGrid(480, 800, 64)
	// An asteroid entering from above has a center just off the field.
	g.Insert(240, -20, 3)

	got := g.Candidates(240, 10)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("candidates = %v, want the clamped entry", got)
	}
}

func TestReset_ClearsEntriesAndTracksFieldSize(t *testing.T) {
	g := NewGrid(480, 800, 64)
	g.Insert(240, 400, 1)

	g.Reset(480, 800)
	if got := g.Candidates(240, 400); len(got) != 0 {
		t.Errorf("candidates after reset = %v, want none", got)
	}

	// A smaller field still accepts clamped inserts everywhere.
	g.Reset(100, 100)
	g.Insert(480, 800, 9)
	if got := g.Candidates(99, 99); len(got) != 1 || got[0] != 9 {
		t.Errorf("candidates on shrunken field = %v, want the clamped entry", got)
	}
}
