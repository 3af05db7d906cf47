package grid_test

import (
	"testing"

	"github.com/mtorpey/libsemigroups/grid"
)

func TestNewShape(t *testing.T) {
	g := grid.New(3, 2, -1)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("got %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if v := g.Get(r, c); v != -1 {
				t.Errorf("Get(%d,%d) = %d, want -1", r, c, v)
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	g := grid.New(2, 2, 0)
	g.Set(0, 0, 1)
	g.Set(1, 1, 2)
	if g.Get(0, 0) != 1 || g.Get(1, 1) != 2 {
		t.Fatalf("unexpected contents: %v %v", g.Get(0, 0), g.Get(1, 1))
	}
	if g.Get(0, 1) != 0 || g.Get(1, 0) != 0 {
		t.Fatalf("untouched cells should stay default")
	}
}

func TestAddRows(t *testing.T) {
	g2 := grid.New(2, 1, 7)
	g2.Set(0, 0, 1)
	g2.AddRows(2)
	if g2.Rows() != 3 {
		t.Fatalf("Rows() = %d, want 3", g2.Rows())
	}
	if g2.Get(0, 0) != 1 {
		t.Fatalf("pre-existing row clobbered by AddRows")
	}
	if g2.Get(1, 0) != 7 || g2.Get(2, 1) != 7 {
		t.Fatalf("new rows should be filled with default")
	}
}

func TestAddColsPreservesCellsAndFillsDefault(t *testing.T) {
	g := grid.New(2, 2, 9)
	g.Set(0, 0, 1)
	g.Set(1, 1, 2)
	g.AddCols(1)
	if g.Cols() != 3 {
		t.Fatalf("Cols() = %d, want 3", g.Cols())
	}
	if g.Get(0, 0) != 1 || g.Get(1, 1) != 2 {
		t.Fatalf("existing cells moved or clobbered")
	}
	if g.Get(0, 2) != 9 || g.Get(1, 2) != 9 {
		t.Fatalf("newly exposed column should be default")
	}
}

func TestAddColsReallocates(t *testing.T) {
	g := grid.New(1, 3, 0)
	for r := 0; r < 3; r++ {
		g.Set(r, 0, r+1)
	}
	g.AddCols(5) // forces reallocation since colCap starts at 1
	if g.Cols() != 6 {
		t.Fatalf("Cols() = %d, want 6", g.Cols())
	}
	for r := 0; r < 3; r++ {
		if g.Get(r, 0) != r+1 {
			t.Fatalf("row %d col 0 clobbered by realloc: got %d", r, g.Get(r, 0))
		}
		for c := 1; c < 6; c++ {
			if g.Get(r, c) != 0 {
				t.Fatalf("row %d col %d should be default after realloc", r, c)
			}
		}
	}
}

func TestClear(t *testing.T) {
	g := grid.New(2, 2, -1)
	g.Set(0, 0, 5)
	g.Set(1, 1, 6)
	g.Clear()
	g.EachRow(func(r int, row []int) {
		for c, v := range row {
			if v != -1 {
				t.Fatalf("cell (%d,%d) = %d after Clear, want -1", r, c, v)
			}
		}
	})
}

func TestAppend(t *testing.T) {
	a := grid.New(2, 1, 0)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	b := grid.New(2, 2, 0)
	b.Set(0, 0, 3)
	b.Set(1, 0, 4)
	a.Append(b)
	if a.Rows() != 3 {
		t.Fatalf("Rows() = %d, want 3", a.Rows())
	}
	if a.Get(1, 0) != 3 || a.Get(2, 0) != 4 {
		t.Fatalf("appended rows not copied correctly")
	}
}

func TestEachRowOrder(t *testing.T) {
	g := grid.New(1, 3, 0)
	for r := 0; r < 3; r++ {
		g.Set(r, 0, r*10)
	}
	var seen []int
	g.EachRow(func(r int, row []int) {
		seen = append(seen, row[0])
	})
	want := []int{0, 10, 20}
	for i, v := range want {
		if seen[i] != v {
			t.Fatalf("EachRow order: got %v, want %v", seen, want)
		}
	}
}
