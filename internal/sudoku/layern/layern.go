// Package layern implements spec.md §3/§4.5's Layer-N engine (component E):
// for each empty cell, the set of digits for which placing that digit
// still leaves the grid globally solvable, decided by asking the Solver
// (component B) with a cap of 1 per digit rather than by any local
// propagation — the "deepest, most expensive layer" spec.md §4.5 and
// design note §9 both describe, grounded the same way the distilled
// original's layer-N fallback leans on a full constraint solve rather than
// a hand-written technique.
package layern

import (
	"sudoku-core/internal/core"
	"sudoku-core/internal/sudoku/cache"
	"sudoku-core/internal/sudoku/grid"
	"sudoku-core/internal/sudoku/solver"
)

const tagValueSet = "layern.value_set"

// ValueSet returns spec.md §4.5's ValueSet(i,j): the digits x for which
// With(i,j,x) still has at least one completion. A filled cell always has
// an empty ValueSet. Errors from the underlying Solver are treated as "no
// completion" for that digit (spec.md §7: Solver failures never abort a
// candidate computation, they simply withhold that digit).
func ValueSet(g grid.Grid, row, col int) grid.Candidates {
	return g.Memo(cache.PositionKey(tagValueSet, row, col), func() any {
		return valueSetUncached(g, row, col)
	}).(grid.Candidates)
}

func valueSetUncached(g grid.Grid, row, col int) grid.Candidates {
	side := g.Side()
	if row < 0 || row >= side || col < 0 || col >= side || g.At(row, col) != 0 {
		return 0
	}

	var result grid.Candidates
	for x := 1; x <= side; x++ {
		candidate := g.With(row, col, x)
		solutions, err := solver.Solve(candidate, 1)
		if err != nil {
			continue
		}
		if len(solutions) > 0 {
			result = result.Set(x, side)
		}
	}
	return result
}

// AllCandidates enumerates ValueSet(i,j) over every cell, row-major.
func AllCandidates(g grid.Grid) []core.Candidate {
	side := g.Side()
	var out []core.Candidate
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			for _, v := range ValueSet(g, i, j).ToSlice(side) {
				out = append(out, core.Candidate{Value: v, Position: core.CellRef{Row: i, Col: j}})
			}
		}
	}
	return out
}
