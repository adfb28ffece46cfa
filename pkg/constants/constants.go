// Package constants collects the magic numbers shared across the Sudoku
// reasoning core, mirroring the flat const-block style of the rest of this
// module's ambient stack.
package constants

// Grid shape bounds. The core targets N ∈ {4, 9} (the system's scope); the
// packed cell array is sized for side 16, whose digits 1..16 all fit the
// Candidates bitmask (bit 0 unused, bits 1..16 used).
const (
	MaxSide  = 16
	MaxCells = MaxSide * MaxSide

	Side4 = 4
	Side9 = 9
)

// SupportedSides lists the side lengths this module is tested against.
var SupportedSides = []int{Side4, Side9}

// Factory / predicate defaults.
const (
	DefaultNakedSingleMinRatio = 0.25
)

// DefaultLayerNCap bounds per-digit satisfiability probes in the LayerN
// engine: only the first completion matters, never all of them.
const DefaultLayerNCap = 1

// API version and port for the optional demo HTTP façade.
const (
	APIVersion  = "0.1.0"
	DefaultPort = "8080"
)
