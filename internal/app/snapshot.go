// internal/app/snapshot.go
package app

import (
	"image/color"
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

// Snapshot is a copy of the world that renderers and the debug API read
// without holding the game lock.
type Snapshot struct {
	Tick        uint64              `json:"tick"`
	GameTime    time.Duration       `json:"game_time"`
	Cells       []CellView          `json:"cells"`
	Walkers     []WalkerView        `json:"walkers"`
	Buildings   []BuildingView      `json:"buildings"`
	Projectiles []ProjectileView    `json:"projectiles"`
	Route       hexmap.Path         `json:"route"`
	Highlighted hexmap.Path         `json:"highlighted"`
	Selection   component.Selection `json:"selection"`
}

type CellView struct {
	ID        types.EntityID           `json:"id"`
	Hex       hexmap.Hex               `json:"hex"`
	Highlight component.HighlightFlags `json:"highlight"`
	Passable  bool                     `json:"passable"`
}

type WalkerView struct {
	ID           types.EntityID `json:"id"`
	Hex          hexmap.Hex     `json:"hex"`
	Position     utils.Vec2     `json:"position"`
	Health       int            `json:"health"`
	MaxHealth    int            `json:"max_health"`
	Laps         int            `json:"laps"`
	CurrentIndex int            `json:"current_index"`
	Flash        bool           `json:"flash"`
	Color        color.RGBA     `json:"-"`
	Radius       float32        `json:"-"`
}

type BuildingView struct {
	ID       types.EntityID `json:"id"`
	DefID    string         `json:"def_id"`
	Hex      hexmap.Hex     `json:"hex"`
	Position utils.Vec2     `json:"position"`
	Facing   float64        `json:"facing"`
	Color    color.RGBA     `json:"-"`
	Radius   float32        `json:"-"`
	Stroke   bool           `json:"-"`
}

type ProjectileView struct {
	ID        types.EntityID `json:"id"`
	Position  utils.Vec2     `json:"position"`
	Direction utils.Vec2     `json:"direction"`
	Remaining time.Duration  `json:"remaining"`
	Color     color.RGBA     `json:"-"`
	Radius    float32        `json:"-"`
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Tick:        g.tick,
		GameTime:    g.gameTime,
		Route:       g.SpawnSystem.Route(),
		Highlighted: g.RouteSystem.Highlighted(),
		Selection:   g.RouteSystem.Selection(),
	}
	for _, h := range g.hexMap.Hexes() {
		id, _ := g.hexMap.CellAt(h)
		_, passable := g.cost(h)
		view := CellView{ID: id, Hex: h, Passable: passable}
		if c, ok := g.ecs.Cells[id]; ok {
			view.Highlight = c.Highlight
		}
		s.Cells = append(s.Cells, view)
	}
	for _, id := range entity.SortedIDs(g.ecs.Enemies) {
		pos, ok := g.ecs.Positions[id]
		if !ok {
			continue
		}
		view := WalkerView{
			ID:       id,
			Hex:      g.layout.WorldToHex(pos.Vec()),
			Position: pos.Vec(),
			Laps:     g.ecs.Enemies[id].Laps,
		}
		if h, ok := g.ecs.Healths[id]; ok {
			view.Health, view.MaxHealth = h.Value, h.Max
		}
		if p, ok := g.ecs.Paths[id]; ok {
			view.CurrentIndex = p.CurrentIndex
		}
		_, view.Flash = g.ecs.DamageFlashes[id]
		if r, ok := g.ecs.Renderables[id]; ok {
			view.Color, view.Radius = r.Color, r.Radius
		}
		s.Walkers = append(s.Walkers, view)
	}
	for _, id := range entity.SortedIDs(g.ecs.Buildings) {
		b := g.ecs.Buildings[id]
		view := BuildingView{
			ID:       id,
			DefID:    b.DefID,
			Hex:      b.Hex,
			Position: g.layout.HexToWorld(b.Hex),
			Facing:   b.Facing,
		}
		if r, ok := g.ecs.Renderables[id]; ok {
			view.Color, view.Radius, view.Stroke = r.Color, r.Radius, r.HasStroke
		}
		s.Buildings = append(s.Buildings, view)
	}
	for _, id := range entity.SortedIDs(g.ecs.Projectiles) {
		p := g.ecs.Projectiles[id]
		view := ProjectileView{ID: id, Direction: p.Direction, Remaining: p.Remaining}
		if pos, ok := g.ecs.Positions[id]; ok {
			view.Position = pos.Vec()
		}
		if r, ok := g.ecs.Renderables[id]; ok {
			view.Color, view.Radius = r.Color, r.Radius
		}
		s.Projectiles = append(s.Projectiles, view)
	}
	return s
}
