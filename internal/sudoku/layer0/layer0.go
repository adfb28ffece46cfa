// Package layer0 implements spec.md §3/§4.3's Layer-0 candidate engine
// (component C): Plain, Naked Single, Hidden Single, and Combined
// candidate sets for a single cell, plus row-major whole-grid enumeration.
//
// This is a direct, generalized port of the distilled original's
// candidate_values_0th_layer_* methods in
// original_source/packages/core/src/core/sudoku.py, expressed over the
// teacher's Candidates bitmask (internal/sudoku/grid.Candidates, itself
// ported from techniques/board.go) instead of Python sets, and memoized
// through each Grid's own cache (internal/sudoku/cache) instead of
// @cachedmethod.
package layer0

import (
	"sudoku-core/internal/core"
	"sudoku-core/internal/sudoku/cache"
	"sudoku-core/internal/sudoku/grid"
)

const (
	tagPlain        = "layer0.plain"
	tagNakedSingle  = "layer0.naked_single"
	tagHiddenSingle = "layer0.hidden_single"
	tagCombined     = "layer0.combined"
)

// Plain returns the digits not ruled out by row/column/block membership
// alone — spec.md §3's Plain(i,j). A filled cell always has an empty Plain
// set.
func Plain(g grid.Grid, row, col int) grid.Candidates {
	return g.Memo(cache.PositionKey(tagPlain, row, col), func() any {
		return plainUncached(g, row, col)
	}).(grid.Candidates)
}

func plainUncached(g grid.Grid, row, col int) grid.Candidates {
	side := g.Side()
	if row < 0 || row >= side || col < 0 || col >= side || g.At(row, col) != 0 {
		return 0
	}

	used := grid.NewCandidates(g.Row(row), side).
		Union(grid.NewCandidates(g.Col(col), side)).
		Union(grid.NewCandidates(g.BlockAt(row, col), side))

	return grid.AllCandidates(side).Subtract(used)
}

// NakedSingle returns Plain(i,j) if it is a singleton, else ∅.
func NakedSingle(g grid.Grid, row, col int) grid.Candidates {
	return g.Memo(cache.PositionKey(tagNakedSingle, row, col), func() any {
		plain := Plain(g, row, col)
		if plain.Count() == 1 {
			return plain
		}
		return grid.Candidates(0)
	}).(grid.Candidates)
}

// HiddenSingle returns the subset of Plain(i,j) comprising digits unique to
// (i,j) within its row, column, or block among the other empty cells of
// that region, minus whatever NakedSingle already claims (Open Question
// "Hidden-single subtraction" in SPEC_FULL.md — required for the
// Disjointness invariant), restricted to a singleton result.
func HiddenSingle(g grid.Grid, row, col int) grid.Candidates {
	return g.Memo(cache.PositionKey(tagHiddenSingle, row, col), func() any {
		return hiddenSingleUncached(g, row, col)
	}).(grid.Candidates)
}

func hiddenSingleUncached(g grid.Grid, row, col int) grid.Candidates {
	base := Plain(g, row, col)
	if base.IsEmpty() {
		return 0
	}

	side := g.Side()
	b := g.BlockSide()
	i0, j0 := (row/b)*b, (col/b)*b

	var result grid.Candidates
	for _, x := range base.ToSlice(side) {
		uniqueInRow := true
		for jj := 0; jj < side; jj++ {
			if jj != col && Plain(g, row, jj).Has(x, side) {
				uniqueInRow = false
				break
			}
		}
		uniqueInCol := true
		for ii := 0; ii < side; ii++ {
			if ii != row && Plain(g, ii, col).Has(x, side) {
				uniqueInCol = false
				break
			}
		}
		uniqueInBlock := true
		for a := 0; a < b && uniqueInBlock; a++ {
			for c := 0; c < b; c++ {
				ii, jj := i0+a, j0+c
				if (ii != row || jj != col) && Plain(g, ii, jj).Has(x, side) {
					uniqueInBlock = false
					break
				}
			}
		}

		if uniqueInRow || uniqueInCol || uniqueInBlock {
			result = result.Set(x, side)
		}
	}

	result = result.Subtract(NakedSingle(g, row, col))
	if result.Count() == 1 {
		return result
	}
	return 0
}

// Combined returns NakedSingle(i,j) ∪ HiddenSingle(i,j) if either is
// nonempty, otherwise falls back to Plain(i,j) (Open Question "Combined at
// non-single cells" in SPEC_FULL.md).
func Combined(g grid.Grid, row, col int) grid.Candidates {
	return g.Memo(cache.PositionKey(tagCombined, row, col), func() any {
		naked := NakedSingle(g, row, col)
		hidden := HiddenSingle(g, row, col)
		if naked.IsEmpty() && hidden.IsEmpty() {
			return Plain(g, row, col)
		}
		return naked.Union(hidden)
	}).(grid.Candidates)
}

// SaturateExcept repeatedly places Layer-0 Combined singles on empty cells
// other than heldOut, one at a time in row-major order, until none remain —
// the "saturate layer-0 singles except one held-out cell" primitive design
// note §9 calls "the single most reusable primitive in the core". It
// terminates because each placement strictly reduces the number of empty
// cells (spec.md §4.4). consensus.go (layer1) is its first consumer; any
// future deeper layer needing the same branch-and-propagate shape should
// reuse it rather than reimplementing saturation.
func SaturateExcept(g grid.Grid, heldOut core.CellRef) (grid.Grid, []core.Candidate) {
	var placed []core.Candidate
	side := g.Side()
	for {
		found := false
		for i := 0; i < side && !found; i++ {
			for j := 0; j < side; j++ {
				if i == heldOut.Row && j == heldOut.Col {
					continue
				}
				if g.At(i, j) != 0 {
					continue
				}
				if v, ok := Combined(g, i, j).Only(side); ok {
					g = g.With(i, j, v)
					placed = append(placed, core.Candidate{Value: v, Position: core.CellRef{Row: i, Col: j}})
					found = true
					break
				}
			}
		}
		if !found {
			break
		}
	}
	return g, placed
}

// AllCandidates enumerates every (position, value) candidate of the given
// layer over the whole grid, in row-major order (spec.md §4.3's
// determinism requirement). layer must be one of the four Layer-0 tags;
// any other value returns nil.
func AllCandidates(g grid.Grid, layer core.CandidateLayer) []core.Candidate {
	side := g.Side()
	var fn func(grid.Grid, int, int) grid.Candidates
	switch layer {
	case core.Layer0Plain:
		fn = Plain
	case core.Layer0NakedSingle:
		fn = NakedSingle
	case core.Layer0HiddenSingle:
		fn = HiddenSingle
	case core.Layer0Combined:
		fn = Combined
	default:
		return nil
	}

	var out []core.Candidate
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			for _, v := range fn(g, i, j).ToSlice(side) {
				out = append(out, core.Candidate{Value: v, Position: core.CellRef{Row: i, Col: j}})
			}
		}
	}
	return out
}
