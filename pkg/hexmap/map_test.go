package hexmap

import (
	"errors"
	"testing"

	"go-hex-defense/internal/types"
)

func newTestMap(radius int) *HexMap {
	next := types.EntityID(0)
	return NewHexagon(radius, func(Hex) types.EntityID {
		next++
		return next
	})
}

func TestNewHexagonSize(t *testing.T) {
	for radius := 0; radius <= 13; radius++ {
		hm := newTestMap(radius)
		want := 3*radius*(radius+1) + 1
		if hm.Len() != want {
			t.Fatalf("radius %d: %d cells, want %d", radius, hm.Len(), want)
		}
	}
}

func TestCellAt(t *testing.T) {
	hm := newTestMap(2)
	if _, ok := hm.CellAt(Hex{3, 0}); ok {
		t.Fatal("coordinate outside the hexagon must be absent")
	}
	id, ok := hm.CellAt(Hex{1, -1})
	if !ok || id == types.None {
		t.Fatalf("CellAt(1,-1) = %d, %v", id, ok)
	}
	ids := make(map[types.EntityID]bool)
	for _, h := range hm.Hexes() {
		id, _ := hm.CellAt(h)
		if ids[id] {
			t.Fatalf("entity %d maps to more than one cell", id)
		}
		ids[id] = true
	}
}

func TestInsertIsAppendOnly(t *testing.T) {
	hm := New()
	if err := hm.Insert(Hex{0, 0}, 7); err != nil {
		t.Fatal(err)
	}
	if err := hm.Insert(Hex{0, 0}, 8); !errors.Is(err, ErrCellExists) {
		t.Fatalf("err = %v, want ErrCellExists", err)
	}
	if id, _ := hm.CellAt(Hex{0, 0}); id != 7 {
		t.Fatalf("cell replaced: %d", id)
	}
	if err := hm.Insert(Hex{3, -1}, 9); err != nil {
		t.Fatal(err)
	}
	if hm.Radius != 3 {
		t.Fatalf("radius = %d, want 3", hm.Radius)
	}
}

func TestNeighborsAtEdge(t *testing.T) {
	hm := newTestMap(2)
	cases := []struct {
		hex  Hex
		want int
	}{
		{Hex{0, 0}, 6},
		{Hex{2, 0}, 3},
		{Hex{2, -1}, 4},
		{Hex{5, 5}, 0},
	}
	for _, c := range cases {
		got := hm.Neighbors(c.hex)
		if len(got) != c.want {
			t.Errorf("Neighbors(%v) = %v, want %d entries", c.hex, got, c.want)
		}
		for _, n := range got {
			if !hm.Contains(n) || !c.hex.IsNeighbor(n) {
				t.Errorf("Neighbors(%v) returned %v", c.hex, n)
			}
		}
	}
}

func TestMapRingFiltersAbsentCells(t *testing.T) {
	hm := newTestMap(3)
	count := 0
	for h := range hm.Ring(Hex{3, 0}, 1) {
		if !hm.Contains(h) {
			t.Fatalf("ring yielded absent %v", h)
		}
		count++
	}
	if count != 3 {
		t.Fatalf("ring around the corner has %d cells, want 3", count)
	}
}

func TestRange(t *testing.T) {
	hm := newTestMap(4)
	got := hm.Range(Hex{}, 2)
	if len(got) != 19 {
		t.Fatalf("len = %d, want 19", len(got))
	}
	if got[0] != (Hex{}) {
		t.Fatalf("center must come first, got %v", got[0])
	}
}

func TestHexesSorted(t *testing.T) {
	hexes := newTestMap(3).Hexes()
	for i := 1; i < len(hexes); i++ {
		if compareHex(hexes[i-1], hexes[i]) >= 0 {
			t.Fatalf("not sorted at %d: %v then %v", i, hexes[i-1], hexes[i])
		}
	}
}
