// Package solver implements spec.md §4.2's Solver (component B): enumerate
// up to a caller-supplied cap of distinct completions of a Grid, each one
// full and satisfying every row/column/block distinctness constraint and
// agreeing with the source on every non-zero cell.
//
// Per design note §9 ("isolate the SMT/CP solver behind a narrow port") and
// SPEC_FULL.md's provenance section, the backend is
// github.com/crillab/gophersat, a pure-Go CDCL SAT solver (grounded on the
// other_examples fragment
// 7551c36c_DoOR-Team-gophersat__solver-solver.go.go, which is the solver
// package's own propagate/search/Enumerate machinery — this file drives its
// public New/Solve/Model/AppendClause surface rather than reimplementing
// any of that machinery). Sudoku's constraints are compiled once to CNF
// over one boolean variable per (cell, digit) pair; between models a
// blocking clause — the disjunction of the negation of every literal true
// in the prior model — forces the next model found to differ somewhere,
// exactly the scheme spec.md §4.2 describes.
package solver

import (
	"fmt"

	gophersat "github.com/crillab/gophersat/solver"

	"sudoku-core/internal/sudoku/grid"
)

// varIndex maps (row, col, digit) on a board of the given side to a 1-based
// CNF variable index.
func varIndex(side, row, col, digit int) int {
	return (row*side+col)*side + (digit - 1) + 1
}

// encode builds the CNF clause set for g: exactly-one-value-per-cell,
// at-most-one-per-digit-per-region (row, column, block — the "exactly one"
// side of region distinctness follows from every cell holding exactly one
// digit, by pigeonhole, so only the at-most-one half needs a clause), and
// unit clauses pinning every non-zero source cell. This is spec.md §4.2's
// "N² integer variables bounded to 1..N; N row-distinct... column-distinct
// ...block-distinct constraints; equality constraints for each non-zero
// source cell."
func encode(g grid.Grid) [][]int {
	side := g.Side()
	clauses := make([][]int, 0, side*side*(1+side*(side-1)/2)+3*side*side*(side-1)/2)

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			atLeastOne := make([]int, 0, side)
			for d := 1; d <= side; d++ {
				atLeastOne = append(atLeastOne, varIndex(side, i, j, d))
			}
			clauses = append(clauses, atLeastOne)

			for d1 := 1; d1 <= side; d1++ {
				for d2 := d1 + 1; d2 <= side; d2++ {
					clauses = append(clauses, []int{-varIndex(side, i, j, d1), -varIndex(side, i, j, d2)})
				}
			}

			if v := g.At(i, j); v != 0 {
				clauses = append(clauses, []int{varIndex(side, i, j, v)})
			}
		}
	}

	for _, region := range g.Regions() {
		for d := 1; d <= side; d++ {
			for a := 0; a < len(region); a++ {
				for b := a + 1; b < len(region); b++ {
					p, q := region[a], region[b]
					clauses = append(clauses, []int{
						-varIndex(side, p.Row, p.Col, d),
						-varIndex(side, q.Row, q.Col, d),
					})
				}
			}
		}
	}

	return clauses
}

// decode reads a satisfying assignment back into a Grid of the given side.
func decode(model []bool, side int) (grid.Grid, error) {
	rows := make([][]int, side)
	for i := range rows {
		rows[i] = make([]int, side)
	}
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			for d := 1; d <= side; d++ {
				idx := varIndex(side, i, j, d)
				if idx-1 < len(model) && model[idx-1] {
					rows[i][j] = d
					break
				}
			}
		}
	}
	return grid.FromRows(rows)
}

// blockingClause builds the clause that forces the next model to differ
// from model in at least one of the side³ encoding variables: the
// disjunction of the negation of every literal currently true.
func blockingClause(model []bool, nbVars int) []gophersat.Lit {
	lits := make([]gophersat.Lit, 0, nbVars)
	for idx := 1; idx <= nbVars && idx-1 < len(model); idx++ {
		if model[idx-1] {
			lits = append(lits, gophersat.IntToLit(int32(-idx)))
		}
	}
	return lits
}

// Solve enumerates up to maxSolutions distinct completions of g, per
// spec.md §4.2. maxSolutions <= 0 means unbounded — enumerate every
// completion (caller risk per spec.md §6's configuration table). An
// infeasible Grid yields a nil, non-error slice (spec.md §7's
// SolverInfeasible is not an error).
func Solve(g grid.Grid, maxSolutions int) ([]grid.Grid, error) {
	side := g.Side()
	clauses := encode(g)
	nbVars := side * side * side

	problem := gophersat.ParseSlice(clauses)
	s := gophersat.New(problem)

	var out []grid.Grid
	for maxSolutions <= 0 || len(out) < maxSolutions {
		status := s.Solve()
		if status != gophersat.Sat {
			break
		}
		model := s.Model()
		solved, err := decode(model, side)
		if err != nil {
			return out, fmt.Errorf("solver: decoding model: %w", err)
		}
		out = append(out, solved)

		block := blockingClause(model, nbVars)
		if len(block) == 0 {
			break
		}
		s.AppendClause(gophersat.NewClause(block))
	}
	return out, nil
}

// HasCompletion reports whether g has at least one completion, using a cap
// of 1 — the same "ask Solver (B) with cap 1" check spec.md §4.5 (LayerN)
// describes. The layern and factory packages call Solve directly rather
// than this helper.
func HasCompletion(g grid.Grid) (bool, error) {
	solutions, err := Solve(g, 1)
	if err != nil {
		return false, err
	}
	return len(solutions) > 0, nil
}
