// pkg/hexmap/map.go
package hexmap

import (
	"errors"
	"iter"
	"slices"

	"go-hex-defense/internal/types"
)

// ErrCellExists is returned by Insert when the coordinate is already populated.
var ErrCellExists = errors.New("hexmap: cell already exists")

// HexMap is the spatial index of the world: every populated coordinate maps to
// the entity that represents its cell. A coordinate that is not in the map does
// not exist and is never traversable.
//
// The key set is built once during world setup and only grows after that.
// Concurrent readers are safe as long as no Insert runs at the same time.
type HexMap struct {
	cells  map[Hex]types.EntityID
	Radius int
}

// New returns an empty map.
func New() *HexMap {
	return &HexMap{cells: make(map[Hex]types.EntityID)}
}

// NewHexagon populates a hexagon of the given radius around the origin.
// alloc is called once per coordinate to create the backing cell entity.
func NewHexagon(radius int, alloc func(Hex) types.EntityID) *HexMap {
	hm := New()
	hm.Radius = radius

	// Генерация базовой карты
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			h := Hex{q, r}
			hm.cells[h] = alloc(h)
		}
	}
	return hm
}

// Insert adds a cell. The map is append-only: existing keys are never replaced.
func (hm *HexMap) Insert(h Hex, id types.EntityID) error {
	if _, exists := hm.cells[h]; exists {
		return ErrCellExists
	}
	hm.cells[h] = id
	if l := h.Length(); l > hm.Radius {
		hm.Radius = l
	}
	return nil
}

// CellAt returns the cell entity at h. Absence is a normal answer, not an error.
func (hm *HexMap) CellAt(h Hex) (types.EntityID, bool) {
	id, ok := hm.cells[h]
	return id, ok
}

func (hm *HexMap) Contains(hex Hex) bool {
	_, exists := hm.cells[hex]
	return exists
}

func (hm *HexMap) Len() int {
	return len(hm.cells)
}

// Hexes returns every populated coordinate ordered by R, then Q.
func (hm *HexMap) Hexes() []Hex {
	hexes := make([]Hex, 0, len(hm.cells))
	for h := range hm.cells {
		hexes = append(hexes, h)
	}
	slices.SortFunc(hexes, compareHex)
	return hexes
}

// Neighbors возвращает существующих соседей гекса
func (hm *HexMap) Neighbors(h Hex) []Hex {
	valid := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if hm.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Ring yields the populated coordinates exactly radius steps from center.
// Like the package-level Ring it is recomputed on every iteration.
func (hm *HexMap) Ring(center Hex, radius int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for h := range Ring(center, radius) {
			if !hm.Contains(h) {
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

// Range returns the populated coordinates within radius of center, center first.
func (hm *HexMap) Range(center Hex, radius int) []Hex {
	var result []Hex
	for h := range Spiral(center, radius) {
		if hm.Contains(h) {
			result = append(result, h)
		}
	}
	return result
}

func compareHex(a, b Hex) int {
	if a.R != b.R {
		return a.R - b.R
	}
	return a.Q - b.Q
}
