// Package sudoku is the facade spec.md §6 describes as the library's public
// surface: `Grid.candidates(layer, [i,j])` dispatched across whichever of
// the six candidate layers (internal/core.CandidateLayer) the caller names,
// without requiring the caller to import layer0/layer1/layern directly.
// This mirrors the teacher's own top-level package boundary — callers reach
// the reasoning core through one door, the way ThoDHa-sudoku's
// internal/transport/http reaches its human solver through one
// human.NewSolver() entry point rather than importing each technique file.
package sudoku

import (
	"sudoku-core/internal/core"
	"sudoku-core/internal/sudoku/grid"
	"sudoku-core/internal/sudoku/layer0"
	"sudoku-core/internal/sudoku/layer1"
	"sudoku-core/internal/sudoku/layern"
	"sudoku-core/internal/sudoku/solver"
)

// FromRows constructs a Grid from a row-major slice of rows, per spec.md
// §6's `Grid.fromRows`.
func FromRows(rows [][]int) (grid.Grid, error) {
	return grid.FromRows(rows)
}

// With returns spec.md §6's `Grid.with(i,j,v)`.
func With(g grid.Grid, row, col, value int) grid.Grid {
	return g.With(row, col, value)
}

// Candidates dispatches spec.md §6's `Grid.candidates(layer, [i,j])` for a
// single position: the exhaustive switch over every CandidateLayer tag
// design note §9 calls the "sum-typed layer selector".
func Candidates(g grid.Grid, layer core.CandidateLayer, row, col int) grid.Candidates {
	switch layer {
	case core.Layer0Plain:
		return layer0.Plain(g, row, col)
	case core.Layer0NakedSingle:
		return layer0.NakedSingle(g, row, col)
	case core.Layer0HiddenSingle:
		return layer0.HiddenSingle(g, row, col)
	case core.Layer0Combined:
		return layer0.Combined(g, row, col)
	case core.Layer1Consensus:
		return layer1.Consensus(g, row, col)
	case core.LayerN:
		return layern.ValueSet(g, row, col)
	default:
		return 0
	}
}

// AllCandidates dispatches spec.md §6's `Grid.candidates(layer)` whole-grid
// enumeration (position omitted), returning candidates in row-major order.
func AllCandidates(g grid.Grid, layer core.CandidateLayer) []core.Candidate {
	switch layer {
	case core.Layer0Plain, core.Layer0NakedSingle, core.Layer0HiddenSingle, core.Layer0Combined:
		return layer0.AllCandidates(g, layer)
	case core.Layer1Consensus:
		return layer1.AllCandidates(g)
	case core.LayerN:
		return layern.AllCandidates(g)
	default:
		return nil
	}
}

// Solve dispatches spec.md §6's `Grid.solve(maxSolutions?)`.
func Solve(g grid.Grid, maxSolutions int) ([]grid.Grid, error) {
	return solver.Solve(g, maxSolutions)
}

// HasNakedSingle reports whether g has at least one empty cell whose
// NakedSingle set is nonempty — the Factory's NakedSingleTarget predicate
// building block (spec.md §4.7).
func HasNakedSingle(g grid.Grid) bool {
	return len(layer0.AllCandidates(g, core.Layer0NakedSingle)) > 0
}

// HasHiddenSingle reports whether g has at least one empty cell whose
// HiddenSingle set is nonempty.
func HasHiddenSingle(g grid.Grid) bool {
	return len(layer0.AllCandidates(g, core.Layer0HiddenSingle)) > 0
}

// HasConsensus reports whether g has at least one empty cell whose
// Consensus set is nonempty.
func HasConsensus(g grid.Grid) bool {
	return len(layer1.AllCandidates(g)) > 0
}
