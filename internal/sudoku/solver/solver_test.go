package solver

import (
	"testing"

	"sudoku-core/internal/sudoku/grid"
)

func mustGrid(t *testing.T, rows [][]int) grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("unexpected error building grid: %v", err)
	}
	return g
}

// S1 from spec.md §8: an empty 4x4 grid has exactly 288 completions — the
// known count of Latin squares satisfying the 4x4 Sudoku block constraint.
func TestSolve_S1_Empty4x4HasExactly288Completions(t *testing.T) {
	rows := make([][]int, 4)
	for i := range rows {
		rows[i] = make([]int, 4)
	}
	g := mustGrid(t, rows)

	solutions, err := Solve(g, 288)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 288 {
		t.Fatalf("got %d completions, want 288", len(solutions))
	}
}

// S2 from spec.md §8: Solve(2) on a 4x4 with a unique completion returns
// exactly one Grid, agreeing with the source's forced cell.
func TestSolve_S2_UniqueCompletionAgreesOnNakedSingle(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})

	solutions, err := Solve(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 1 {
		t.Fatalf("got %d completions, want 1", len(solutions))
	}
	if solutions[0].At(0, 0) != 1 {
		t.Errorf("completion[0][0] = %d, want 1", solutions[0].At(0, 0))
	}
}

// Completion correctness (spec.md §8 property 4): every returned Grid is
// full, distinct across every row/column/block, and agrees with the source
// on non-zero cells.
func TestSolve_CompletionCorrectness(t *testing.T) {
	g := mustGrid(t, [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	})

	solutions, err := Solve(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 1 {
		t.Fatalf("got %d completions, want exactly 1 (well-known unique puzzle)", len(solutions))
	}

	s := solutions[0]
	if !s.IsFull() {
		t.Fatal("completion is not full")
	}
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if v := g.At(i, j); v != 0 && s.At(i, j) != v {
				t.Errorf("completion disagrees with source at (%d,%d): got %d, want %d", i, j, s.At(i, j), v)
			}
		}
	}
	for _, region := range s.Regions() {
		seen := map[int]bool{}
		for _, p := range region {
			v := s.At(p.Row, p.Col)
			if seen[v] {
				t.Errorf("duplicate value %d in region %v", v, region)
			}
			seen[v] = true
		}
	}
}

// SolverInfeasible (spec.md §7): an unsatisfiable Grid returns an empty,
// non-error slice.
func TestSolve_Infeasible(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3, 4, 5, 6, 7, 8, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 9},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{9, 0, 0, 0, 0, 0, 0, 0, 0},
	})

	solutions, err := Solve(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 0 {
		t.Errorf("expected no completions for an infeasible grid, got %d", len(solutions))
	}
}

func TestHasCompletion(t *testing.T) {
	solvable := mustGrid(t, [][]int{
		{0, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	ok, err := HasCompletion(solvable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected solvable grid to have a completion")
	}

	unsolvable := mustGrid(t, [][]int{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	ok, err = HasCompletion(unsolvable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected a grid with a row conflict to have no completion")
	}
}
