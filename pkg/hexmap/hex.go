// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"
	"iter"

	"go-hex-defense/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// Zero is the map origin.
var Zero = Hex{}

// NeighborDirections lists the six axial offsets, counter-clockwise starting from East.
// Ring walks these in order, so the sequence must stay contiguous around the hexagon.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// S возвращает третью кубическую координату
func (h Hex) S() int {
	return -h.Q - h.R
}

// Neighbor returns the adjacent hex in direction dir (0..5).
func (h Hex) Neighbor(dir int) Hex {
	return h.Add(NeighborDirections[((dir%6)+6)%6])
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() [6]Hex {
	var result [6]Hex
	for i, d := range NeighborDirections {
		result[i] = h.Add(d)
	}
	return result
}

// IsNeighbor reports whether other is exactly one step away.
func (h Hex) IsNeighbor(other Hex) bool {
	return h.Distance(other) == 1
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Length is the distance from the origin.
func (h Hex) Length() int {
	return (utils.Abs(h.Q) + utils.Abs(h.R) + utils.Abs(h.Q+h.R)) / 2
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	return h.Subtract(to).Length()
}

// Lerp выполняет линейную интерполяцию между двумя гексами
func (h Hex) Lerp(b Hex, t float64) Hex {
	q := float64(h.Q)*(1-t) + float64(b.Q)*t
	r := float64(h.R)*(1-t) + float64(b.R)*t
	return axialRound(q, r)
}

// LineTo возвращает гексы на прямой между двумя точками
func (h Hex) LineTo(end Hex) []Hex {
	n := h.Distance(end)
	if n == 0 {
		return []Hex{h}
	}
	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 1.0 / float64(n) * float64(i)
		results = append(results, h.Lerp(end, t))
	}
	return results
}

// Ring yields the coordinates exactly radius steps from center, walking
// counter-clockwise. The sequence holds no cursor: every range over it starts
// from the beginning. Radius 0 yields center; a negative radius yields nothing.
func Ring(center Hex, radius int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		if radius < 0 {
			return
		}
		if radius == 0 {
			yield(center)
			return
		}
		h := center.Add(NeighborDirections[4].Scale(radius))
		for side := 0; side < 6; side++ {
			for step := 0; step < radius; step++ {
				if !yield(h) {
					return
				}
				h = h.Neighbor(side)
			}
		}
	}
}

// Spiral yields center followed by rings 1..radius.
func Spiral(center Hex, radius int) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		for r := 0; r <= radius; r++ {
			for h := range Ring(center, r) {
				if !yield(h) {
					return
				}
			}
		}
	}
}
