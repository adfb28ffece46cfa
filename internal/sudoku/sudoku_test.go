package sudoku

import (
	"testing"

	"sudoku-core/internal/core"
)

// S2 from spec.md §8, exercised through the facade dispatcher rather than
// the layer0 package directly: Plain(0,0) = {1}; NakedSingle(0,0) = {1};
// HiddenSingle(0,0) = ∅ (the naked digit is subtracted); Combined(0,0) = {1};
// Consensus(0,0) = {1}; LayerN(0,0) = {1}.
func TestCandidates_DispatchesEveryLayer(t *testing.T) {
	g, err := FromRows([][]int{
		{0, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain := Candidates(g, core.Layer0Plain, 0, 0)
	if v, ok := plain.Only(4); !ok || v != 1 {
		t.Errorf("Plain(0,0) = %v, want {1}", plain)
	}

	naked := Candidates(g, core.Layer0NakedSingle, 0, 0)
	if v, ok := naked.Only(4); !ok || v != 1 {
		t.Errorf("NakedSingle(0,0) = %v, want {1}", naked)
	}

	if hidden := Candidates(g, core.Layer0HiddenSingle, 0, 0); !hidden.IsEmpty() {
		t.Errorf("HiddenSingle(0,0) = %v, want empty", hidden)
	}

	combined := Candidates(g, core.Layer0Combined, 0, 0)
	if v, ok := combined.Only(4); !ok || v != 1 {
		t.Errorf("Combined(0,0) = %v, want {1}", combined)
	}

	consensus := Candidates(g, core.Layer1Consensus, 0, 0)
	if v, ok := consensus.Only(4); !ok || v != 1 {
		t.Errorf("Consensus(0,0) = %v, want {1}", consensus)
	}

	layerN := Candidates(g, core.LayerN, 0, 0)
	if v, ok := layerN.Only(4); !ok || v != 1 {
		t.Errorf("LayerN(0,0) = %v, want {1}", layerN)
	}

	if unknown := Candidates(g, core.CandidateLayer(99), 0, 0); !unknown.IsEmpty() {
		t.Errorf("unknown layer should return empty, got %v", unknown)
	}
}

func TestSolve_DispatchesToSolver(t *testing.T) {
	g, err := FromRows([][]int{
		{0, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	solutions, err := Solve(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}
}

func TestHasNakedSingle(t *testing.T) {
	g, err := FromRows([][]int{
		{0, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !HasNakedSingle(g) {
		t.Error("expected a naked single on this grid")
	}
}
