// Package grid implements spec.md §3/§4.1's Grid model (component A): an
// immutable N×N board of digits 0..N with row/column/block views, O(1)
// block lookup, and a transition operation that always returns a fresh
// value.
//
// The representation follows design note §9 ("immutable value type with
// structural equality... packed N² array of small integers"): cells are
// stored in a fixed-size array sized to constants.MaxCells, held inline in
// the backing struct rather than in a separately allocated slice, and
// With shares no cells between the old and new board (copy-on-write at the
// array level, matching `next_step_at_position` in the distilled Python
// original, which also always returns a new board). Every new Grid also
// gets its own fresh memo cache.
package grid

import (
	"math"

	"sudoku-core/internal/core"
	"sudoku-core/internal/sudoku/cache"
	"sudoku-core/pkg/constants"
)

type cellArray [constants.MaxCells]uint8

// gridData is the immutable backing store a Grid value points to. Two
// Grids built from identical rows get distinct gridData (and therefore
// distinct, non-shared memo caches — spec.md §4.6: "never shared across
// distinct Grids"), but Grid.Equal and Grid.Key compare only side+cells,
// never the cache, so content-identical Grids remain indistinguishable to
// every caller per spec.md §3.
type gridData struct {
	side      int
	blockSide int
	cells     cellArray
	cache     *cache.Cache
}

// Grid is an immutable value handle onto a gridData. It is cheap to copy
// (one pointer) and safe to share for read-only candidate queries across
// goroutines, since its cache is internally synchronized (spec.md §5).
type Grid struct {
	data *gridData
}

// Key is a comparable, hashable identity for a Grid's contents — usable as
// a map key where a Grid itself should not be (Grid intentionally carries
// no == semantics of its own; use Equal or Key).
type Key struct {
	side  int
	cells cellArray
}

// cacheCapacity follows spec.md §4.6: O(|Layers| × N²), with one slot of
// headroom. Six layer tags are defined in internal/core.
func cacheCapacity(side int) int {
	const numLayers = 6
	return numLayers*side*side + 1
}

// FromRows constructs a Grid from a row-major slice of rows. It fails with
// *core.InvalidShapeError if the grid is not square or its side is not a
// perfect square, per spec.md §4.1.
func FromRows(rows [][]int) (Grid, error) {
	side := len(rows)
	if side == 0 || side > constants.MaxSide {
		return Grid{}, &core.InvalidShapeError{Reason: "grid side must be between 1 and the maximum supported side"}
	}
	for _, row := range rows {
		if len(row) != side {
			return Grid{}, &core.InvalidShapeError{Reason: "grid must be square"}
		}
	}
	blockSide := int(math.Sqrt(float64(side)))
	if blockSide*blockSide != side {
		return Grid{}, &core.InvalidShapeError{Reason: "grid side must be a perfect square"}
	}

	var cells cellArray
	for i, row := range rows {
		for j, v := range row {
			cells[i*side+j] = uint8(v)
		}
	}

	return Grid{data: &gridData{
		side:      side,
		blockSide: blockSide,
		cells:     cells,
		cache:     cache.New(cacheCapacity(side)),
	}}, nil
}

// Side returns N, the grid's side length.
func (g Grid) Side() int {
	return g.data.side
}

// BlockSide returns B = √N, the side of each square block.
func (g Grid) BlockSide() int {
	return g.data.blockSide
}

// Area returns N².
func (g Grid) Area() int {
	return g.data.side * g.data.side
}

// At returns the digit at (row, col), or 0 for out-of-bounds positions —
// the "return ∅" policy spec.md §7 requires for query operations.
func (g Grid) At(row, col int) int {
	if !g.inBounds(row, col) {
		return 0
	}
	return int(g.data.cells[row*g.data.side+col])
}

func (g Grid) inBounds(row, col int) bool {
	n := g.data.side
	return row >= 0 && row < n && col >= 0 && col < n
}

// With returns a new Grid identical to g except that (row, col) holds
// value. Per spec.md §7's per-operation OutOfBounds policy, transitions
// signal the error: With panics for a position outside [0,N), the Go
// idiom for programmer errors on index operations (mirroring a slice
// index panic rather than returning a sentinel the caller must remember
// to check).
func (g Grid) With(row, col, value int) Grid {
	if !g.inBounds(row, col) {
		panic((&core.OutOfBoundsError{Side: g.data.side, Row: row, Col: col}).Error())
	}
	cells := g.data.cells
	cells[row*g.data.side+col] = uint8(value)
	return Grid{data: &gridData{
		side:      g.data.side,
		blockSide: g.data.blockSide,
		cells:     cells,
		cache:     cache.New(cacheCapacity(g.data.side)),
	}}
}

// Row returns row i as an ordered N-tuple.
func (g Grid) Row(i int) []int {
	n := g.data.side
	row := make([]int, n)
	for j := 0; j < n; j++ {
		row[j] = int(g.data.cells[i*n+j])
	}
	return row
}

// Col returns column j as an ordered N-tuple.
func (g Grid) Col(j int) []int {
	n := g.data.side
	col := make([]int, n)
	for i := 0; i < n; i++ {
		col[i] = int(g.data.cells[i*n+j])
	}
	return col
}

// blockOrigin returns the top-left (i0, j0) of the block containing (i,j).
func (g Grid) blockOrigin(i, j int) (int, int) {
	b := g.data.blockSide
	return (i / b) * b, (j / b) * b
}

// Block returns block k (row-major block index) as an ordered N-tuple.
func (g Grid) Block(k int) []int {
	b := g.data.blockSide
	i0, j0 := (k/b)*b, (k%b)*b
	return g.blockAt(i0, j0)
}

// BlockAt returns, in O(1), the block containing (i,j).
func (g Grid) BlockAt(i, j int) []int {
	i0, j0 := g.blockOrigin(i, j)
	return g.blockAt(i0, j0)
}

func (g Grid) blockAt(i0, j0 int) []int {
	b := g.data.blockSide
	n := g.data.side
	block := make([]int, 0, n)
	for a := 0; a < b; a++ {
		for c := 0; c < b; c++ {
			block = append(block, int(g.data.cells[(i0+a)*n+(j0+c)]))
		}
	}
	return block
}

// IsFull reports whether every cell is nonzero.
func (g Grid) IsFull() bool {
	n := g.data.side
	for i := 0; i < n*n; i++ {
		if g.data.cells[i] == 0 {
			return false
		}
	}
	return true
}

// IsEmpty reports whether every cell is zero.
func (g Grid) IsEmpty() bool {
	n := g.data.side
	for i := 0; i < n*n; i++ {
		if g.data.cells[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two Grids have identical contents, per spec.md
// §3's value equality (their memo caches, which are never part of a
// Grid's identity, are ignored).
func (g Grid) Equal(other Grid) bool {
	if g.data == other.data {
		return true
	}
	return g.data.side == other.data.side && g.data.cells == other.data.cells
}

// Key returns a comparable, hashable identity for g's contents, suitable
// as a map key (spec.md §3: "Equality and hashing required").
func (g Grid) Key() Key {
	return Key{side: g.data.side, cells: g.data.cells}
}

// Rows returns all N rows in order.
func (g Grid) Rows() [][]int {
	n := g.data.side
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

// RowPositions returns the N cell positions of row i, in column order.
func (g Grid) RowPositions(i int) []core.CellRef {
	n := g.data.side
	cells := make([]core.CellRef, n)
	for j := 0; j < n; j++ {
		cells[j] = core.CellRef{Row: i, Col: j}
	}
	return cells
}

// ColPositions returns the N cell positions of column j, in row order.
func (g Grid) ColPositions(j int) []core.CellRef {
	n := g.data.side
	cells := make([]core.CellRef, n)
	for i := 0; i < n; i++ {
		cells[i] = core.CellRef{Row: i, Col: j}
	}
	return cells
}

// BlockPositions returns the N cell positions of block k (row-major block
// index), in row-major order within the block.
func (g Grid) BlockPositions(k int) []core.CellRef {
	b := g.data.blockSide
	n := g.data.side
	i0, j0 := (k/b)*b, (k%b)*b
	cells := make([]core.CellRef, 0, n)
	for a := 0; a < b; a++ {
		for c := 0; c < b; c++ {
			cells = append(cells, core.CellRef{Row: i0 + a, Col: j0 + c})
		}
	}
	return cells
}

// Regions returns every row, then every column, then every block, each in
// ascending index order — the fixed Rows→Columns→Blocks iteration order
// spec.md §4.4 requires for the Layer-1 consensus engine.
func (g Grid) Regions() [][]core.CellRef {
	n := g.data.side
	regions := make([][]core.CellRef, 0, 3*n)
	for i := 0; i < n; i++ {
		regions = append(regions, g.RowPositions(i))
	}
	for j := 0; j < n; j++ {
		regions = append(regions, g.ColPositions(j))
	}
	for k := 0; k < n; k++ {
		regions = append(regions, g.BlockPositions(k))
	}
	return regions
}

// Memo exposes the Grid's attached per-instance memo cache (component F,
// spec.md §4.6) to the layer0/layer1/layern packages: same Grid, same key,
// same value, served from the cache while the entry is held (an entry
// evicted by the LRU bound is recomputed on its next request).
func (g Grid) Memo(key cache.Key, compute func() any) any {
	return g.data.cache.GetOrCompute(key, compute)
}
