package hexmap

import (
	"math"

	"go-hex-defense/pkg/utils"
)

// Orientation selects how hexes sit on the world plane.
type Orientation int

const (
	// Pointy — вершина гекса смотрит вверх.
	Pointy Orientation = iota
	// Flat — грань гекса смотрит вверх.
	Flat
)

// Layout converts between axial coordinates and world positions.
// Size is the outer radius of a hex; Origin is the world position of Hex{0,0}.
type Layout struct {
	Orientation Orientation
	Size        float64
	Origin      utils.Vec2
}

// HexToWorld returns the world position of the center of h.
func (l Layout) HexToWorld(h Hex) utils.Vec2 {
	q, r := float64(h.Q), float64(h.R)
	var x, y float64
	switch l.Orientation {
	case Flat:
		x = l.Size * (3.0 / 2.0 * q)
		y = l.Size * (Sqrt3/2*q + Sqrt3*r)
	default:
		x = l.Size * (Sqrt3*q + Sqrt3/2*r)
		y = l.Size * (3.0 / 2.0 * r)
	}
	return utils.Vec2{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// WorldToHex returns the hex that contains the world position p.
func (l Layout) WorldToHex(p utils.Vec2) Hex {
	x := p.X - l.Origin.X
	y := p.Y - l.Origin.Y
	var q, r float64
	switch l.Orientation {
	case Flat:
		q = (2.0 / 3 * x) / l.Size
		r = (-1.0/3*x + Sqrt3/3*y) / l.Size
	default:
		q = (Sqrt3/3*x - 1.0/3*y) / l.Size
		r = (2.0 / 3 * y) / l.Size
	}
	return axialRound(q, r)
}

// Corners returns the six world-space vertices of h.
func (l Layout) Corners(h Hex) [6]utils.Vec2 {
	center := l.HexToWorld(h)
	offset := math.Pi / 6
	if l.Orientation == Flat {
		offset = 0
	}
	var corners [6]utils.Vec2
	for i := range corners {
		angle := math.Pi/3*float64(i) + offset
		corners[i] = utils.Vec2{
			X: center.X + l.Size*math.Cos(angle),
			Y: center.Y + l.Size*math.Sin(angle),
		}
	}
	return corners
}
