package terrain

import (
	"testing"

	"go-hex-defense/internal/config"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

func newMap(radius int) *hexmap.HexMap {
	next := types.EntityID(1)
	return hexmap.NewHexagon(radius, func(hexmap.Hex) types.EntityID {
		id := next
		next++
		return id
	})
}

func TestBlocked(t *testing.T) {
	wall := []hexmap.Hex{{Q: 1, R: -1}, {Q: 1, R: 0}, {Q: 0, R: 1}}
	cost := Blocked(wall...)
	for _, h := range wall {
		if _, ok := cost(h); ok {
			t.Errorf("%v should be impassable", h)
		}
	}
	if c, ok := cost(hexmap.Zero); !ok || c != 1 {
		t.Fatalf("origin cost = %d, %v", c, ok)
	}

	m := newMap(4)
	path, ok := m.FindPath(hexmap.Hex{Q: -2, R: 0}, hexmap.Hex{Q: 3, R: 0}, cost)
	if !ok {
		t.Fatal("expected a path around the wall")
	}
	for _, h := range wall {
		if path.Contains(h) {
			t.Fatalf("path %v crosses %v", path, h)
		}
	}
}

func TestCombine(t *testing.T) {
	heavy := func(h hexmap.Hex) (int, bool) { return 4, true }
	cost := Combine(heavy, Blocked(hexmap.Zero))
	if _, ok := cost(hexmap.Zero); ok {
		t.Fatal("blocked part must win")
	}
	if c, ok := cost(hexmap.Hex{Q: 1, R: 0}); !ok || c != 4 {
		t.Fatalf("cost = %d, %v", c, ok)
	}
	if c, ok := Combine()(hexmap.Zero); !ok || c != 1 {
		t.Fatal("empty combine should be uniform")
	}
}

func TestScriptCost(t *testing.T) {
	src := `
if q == 0 && r == 0 {
	cost = -1
} else if q == 1 {
	cost = 5
} else if r != 3 {
	cost = 1
}
`
	s, err := NewScriptCost(src)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		h    hexmap.Hex
		cost int
		ok   bool
	}{
		{hexmap.Hex{Q: 0, R: 0}, 0, false},
		{hexmap.Hex{Q: 1, R: 2}, 5, true},
		{hexmap.Hex{Q: 2, R: 0}, 1, true},
		{hexmap.Hex{Q: 2, R: 3}, 0, false}, // cost не задан
		{hexmap.Hex{Q: 1, R: 3}, 5, true},
	}
	for _, c := range cases {
		got, ok := s.Cost(c.h)
		if got != c.cost || ok != c.ok {
			t.Errorf("Cost(%v) = %d, %v; want %d, %v", c.h, got, ok, c.cost, c.ok)
		}
	}
	// повторный вызов берётся из кэша и совпадает
	if got, ok := s.Cost(hexmap.Hex{Q: 1, R: 2}); got != 5 || !ok {
		t.Fatalf("cached cost = %d, %v", got, ok)
	}
}

func TestScriptCostCompileError(t *testing.T) {
	if _, err := NewScriptCost("cost = ("); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestScriptSteersPath(t *testing.T) {
	// Ряд r == 0 дорогой, поэтому путь по прямой невыгоден.
	s, err := NewScriptCost(`cost = r == 0 && q != -3 && q != 3 ? 10 : 1`)
	if err != nil {
		t.Fatal(err)
	}
	m := newMap(3)
	start, goal := hexmap.Hex{Q: -3, R: 0}, hexmap.Hex{Q: 3, R: 0}
	path, ok := m.FindPath(start, goal, s.Cost)
	if !ok {
		t.Fatal("no path")
	}
	for _, h := range path[1 : len(path)-1] {
		if h.R == 0 {
			t.Fatalf("path %v uses the expensive row at %v", path, h)
		}
	}
}

func TestFromConfig(t *testing.T) {
	cost, err := FromConfig(config.TerrainConfig{
		Blocked:    []config.Coord{{0, 0}},
		CostScript: `cost = q == 2 ? 3 : 1`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cost(hexmap.Zero); ok {
		t.Fatal("origin should be blocked")
	}
	if c, _ := cost(hexmap.Hex{Q: 2, R: 0}); c != 3 {
		t.Fatalf("scripted cost = %d", c)
	}
	if _, err := FromConfig(config.TerrainConfig{CostScript: "cost = ("}); err == nil {
		t.Fatal("expected error for broken script")
	}
}
