// Package core holds the small set of value types and error kinds shared
// across the Sudoku reasoning packages (grid, layer0, layer1, layern,
// solver, factory): spec.md §3's Candidate record and §7's error taxonomy.
package core

import "fmt"

// CellRef identifies a cell by its zero-based row and column.
type CellRef struct {
	Row int
	Col int
}

// CandidateLayer tags which computation produced a Candidate, per spec.md
// §3's "Candidate layer" tag set. The three exported to generators carry
// the fixed serialization strings from spec.md §6; the rest are internal.
type CandidateLayer int

const (
	Layer0Plain CandidateLayer = iota
	Layer0NakedSingle
	Layer0HiddenSingle
	Layer0Combined
	Layer1Consensus
	LayerN
)

// String renders the layer tag, using the fixed serialized names from
// spec.md §6 for the three layers exposed to generators.
func (l CandidateLayer) String() string {
	switch l {
	case Layer0Plain:
		return "ZEROTH_LAYER_PLAIN"
	case Layer0NakedSingle:
		return "NAKED_SINGLES_L0"
	case Layer0HiddenSingle:
		return "HIDDEN_SINGLES_L0"
	case Layer0Combined:
		return "ZEROTH_LAYER_COMBINED"
	case Layer1Consensus:
		return "CONSENSUS_L1"
	case LayerN:
		return "NTH_LAYER"
	default:
		return "UNKNOWN_LAYER"
	}
}

// Candidate is spec.md §3's (value, position) record.
type Candidate struct {
	Value    int
	Position CellRef
}

// InvalidShapeError reports a Grid constructor failure: the input was not
// square, or its side was not a perfect square (spec.md §7).
type InvalidShapeError struct {
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid sudoku shape: %s", e.Reason)
}

// OutOfBoundsError reports a transition addressed outside [0,N) (spec.md
// §7). Candidate queries (layer0, layer1, layern) instead return an empty
// set per that section's documented per-operation policy; only transitions
// (Grid.With) signal this.
type OutOfBoundsError struct {
	Side, Row, Col int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) out of bounds for side %d", e.Row, e.Col, e.Side)
}
