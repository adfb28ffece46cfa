// Package layer1 implements spec.md §3/§4.4's Layer-1 consensus engine
// (component D): a region-based hypothesis branching with saturating
// Layer-0 propagation inside each branch, generalized from the distilled
// original's candidate_values_1st_layer method in
// original_source/packages/core/src/core/sudoku.py onto this module's
// bitmask Candidates type and the reusable layer0.SaturateExcept helper
// design note §9 calls out for exactly this purpose.
package layer1

import (
	"sudoku-core/internal/core"
	"sudoku-core/internal/sudoku/cache"
	"sudoku-core/internal/sudoku/grid"
	"sudoku-core/internal/sudoku/layer0"
)

const tagConsensus = "layer1.consensus"

// Consensus returns spec.md §3's Consensus(i,j): a digit x is a consensus
// witness when, for every empty position p in some region (any row, column,
// or block of the grid) other than (i,j) itself that accepts x in its Plain set,
// placing x at p and saturating Layer-0 singles everywhere except (i,j)
// drives (i,j)'s Combined set to exactly {x}. The branch-count condition
// follows SPEC_FULL.md's Open Question resolution: the number of witnessing
// branches must equal the number of *other* positions in P (p ≠ (i,j)),
// not |P| itself — (i,j) is never counted as its own branch. Result is the
// singleton {x} if exactly one digit x meets this in at least one region;
// if no digit or more than one digit does, the result is ∅.
func Consensus(g grid.Grid, row, col int) grid.Candidates {
	return g.Memo(cache.PositionKey(tagConsensus, row, col), func() any {
		return consensusUncached(g, row, col)
	}).(grid.Candidates)
}

func consensusUncached(g grid.Grid, row, col int) grid.Candidates {
	if g.At(row, col) != 0 {
		return 0
	}

	side := g.Side()
	held := core.CellRef{Row: row, Col: col}
	var result grid.Candidates

	// Rows -> Columns -> Blocks, ascending index order (g.Regions() already
	// produces exactly this order); digits ascending within each region;
	// positions row-major within each region (RowPositions/ColPositions/
	// BlockPositions already enumerate that way) — spec.md §4.4's
	// determinism requirement.
	for _, region := range g.Regions() {
		for x := 1; x <= side; x++ {
			var positions []core.CellRef
			for _, p := range region {
				if g.At(p.Row, p.Col) != 0 {
					continue
				}
				if layer0.Plain(g, p.Row, p.Col).Has(x, side) {
					positions = append(positions, p)
				}
			}
			if len(positions) == 0 {
				continue
			}

			required := 0
			witnesses := 0
			allAgree := true
			for _, p := range positions {
				if p == held {
					continue
				}
				required++

				branch := g.With(p.Row, p.Col, x)
				saturated, _ := layer0.SaturateExcept(branch, held)
				// A branch that drives some other cell's Plain to ∅ simply
				// fails to land a singleton {x} here and contributes no
				// witness; it never corrupts the outer computation
				// (spec.md §4.4's failure semantics).
				v, ok := layer0.Combined(saturated, row, col).Only(side)
				if !ok || v != x {
					allAgree = false
					break
				}
				witnesses++
			}

			// Universally quantified over the *other* positions in P: when
			// (i,j) is the only position in P, there are no other positions
			// to disagree, so the condition holds vacuously (required==0,
			// witnesses==0) and x is still recorded.
			if allAgree && witnesses == required {
				result = result.Set(x, side)
			}
		}
	}

	if result.Count() == 1 {
		return result
	}
	return 0
}

// AllCandidates enumerates Consensus(i,j) over every cell, row-major.
func AllCandidates(g grid.Grid) []core.Candidate {
	side := g.Side()
	var out []core.Candidate
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			for _, v := range Consensus(g, i, j).ToSlice(side) {
				out = append(out, core.Candidate{Value: v, Position: core.CellRef{Row: i, Col: j}})
			}
		}
	}
	return out
}
