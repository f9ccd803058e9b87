// component/movement.go
package component

import (
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

// Position — компонент позиции
type Position struct {
	X, Y float64
}

func (p Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

func (p *Position) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity — компонент скорости (мировых единиц в секунду)
type Velocity struct {
	Speed float64
}

// Path is the walking state of a walker. CurrentIndex points at the waypoint
// the walker is heading to and only ever grows. Done is set once the final
// waypoint has been reached.
type Path struct {
	Hexes        hexmap.Path
	CurrentIndex int
	Done         bool
}

// Target returns the waypoint the walker is heading to.
func (p *Path) Target() hexmap.Hex {
	return p.Hexes[p.CurrentIndex]
}

// IsFinal reports whether the current target is the last waypoint.
func (p *Path) IsFinal() bool {
	return p.CurrentIndex == len(p.Hexes)-1
}
