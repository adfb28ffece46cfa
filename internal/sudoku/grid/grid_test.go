package grid

import "testing"

func TestFromRows_InvalidShape(t *testing.T) {
	if _, err := FromRows([][]int{{1, 2}, {1, 2, 3}}); err == nil {
		t.Error("expected error for non-square grid")
	}
	if _, err := FromRows([][]int{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}); err == nil {
		t.Error("expected error for non-perfect-square side")
	}
}

func TestFromRows_ValidShapes(t *testing.T) {
	for _, side := range []int{4, 9} {
		rows := make([][]int, side)
		for i := range rows {
			rows[i] = make([]int, side)
		}
		g, err := FromRows(rows)
		if err != nil {
			t.Fatalf("side %d: unexpected error: %v", side, err)
		}
		if g.Side() != side {
			t.Errorf("side %d: got Side()=%d", side, g.Side())
		}
		if g.BlockSide()*g.BlockSide() != side {
			t.Errorf("side %d: BlockSide()=%d is not a square root", side, g.BlockSide())
		}
		if !g.IsEmpty() {
			t.Errorf("side %d: expected empty grid", side)
		}
	}
}

func TestEquality(t *testing.T) {
	rows := [][]int{
		{0, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	a, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("grids built from identical rows should be Equal")
	}
	if a.Key() != b.Key() {
		t.Error("grids built from identical rows should have identical Key()")
	}
}

func TestTransitionIdempotence(t *testing.T) {
	rows := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}

	same := g.With(0, 0, g.At(0, 0))
	if !same.Equal(g) {
		t.Error("With(i,j,existing value) should equal the original grid")
	}

	once := g.With(1, 1, 9)
	twice := once.With(1, 1, 9)
	if !once.Equal(twice) {
		t.Error("With(i,j,v).With(i,j,v) should equal With(i,j,v)")
	}
}

func TestBlockAt(t *testing.T) {
	rows := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	block := g.BlockAt(0, 0)
	want := []int{1, 2, 3, 4}
	if len(block) != len(want) {
		t.Fatalf("expected block of size %d, got %d", len(want), len(block))
	}
	for i, v := range want {
		if block[i] != v {
			t.Errorf("block[%d] = %d, want %d", i, block[i], v)
		}
	}
}

func TestWithIsOutOfBoundsPanics(t *testing.T) {
	g, err := FromRows([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected With to panic on out-of-bounds position")
		}
	}()
	g.With(4, 0, 1)
}
