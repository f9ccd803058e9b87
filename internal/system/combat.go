// internal/system/combat.go
package system

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

var (
	ErrNoCell            = errors.New("no cell at coordinate")
	ErrOccupied          = errors.New("cell already has a building")
	ErrUnknownDefinition = errors.New("unknown definition")
)

const projectileRadius = 0.12 // доля размера гекса

// CombatSystem управляет атакой построек.
type CombatSystem struct {
	ecs    *entity.ECS
	hexMap *hexmap.HexMap
	layout hexmap.Layout
	queue  *event.Queue
	lib    *defs.Library
}

func NewCombatSystem(ecs *entity.ECS, hexMap *hexmap.HexMap, layout hexmap.Layout, queue *event.Queue, lib *defs.Library) *CombatSystem {
	return &CombatSystem{ecs: ecs, hexMap: hexMap, layout: layout, queue: queue, lib: lib}
}

// SetLibrary switches to new definitions. Timers of placed buildings pick up
// the new attack period; elapsed time is kept.
func (s *CombatSystem) SetLibrary(lib *defs.Library) {
	s.lib = lib
	for id, b := range s.ecs.Buildings {
		def, ok := lib.Buildings[b.DefID]
		if !ok {
			log.Printf("CombatSystem: building %d keeps stale definition %s", id, b.DefID)
			continue
		}
		b.Range = def.Combat.Range
		if timer, ok := s.ecs.AttackTimers[id]; ok {
			timer.Period = def.Combat.AttackPeriod
		}
	}
}

// PlaceBuilding ставит постройку на существующую свободную клетку.
func (s *CombatSystem) PlaceBuilding(hex hexmap.Hex, defID string) (types.EntityID, error) {
	if _, ok := s.hexMap.CellAt(hex); !ok {
		return types.None, fmt.Errorf("place %s at %v: %w", defID, hex, ErrNoCell)
	}
	def, ok := s.lib.Buildings[defID]
	if !ok {
		return types.None, fmt.Errorf("place %s at %v: %w", defID, hex, ErrUnknownDefinition)
	}
	if other, taken := s.BuildingAt(hex); taken {
		return types.None, fmt.Errorf("place %s at %v (building %d): %w", defID, hex, other, ErrOccupied)
	}

	id := s.ecs.NewEntity(component.KindBuilding)
	pos := s.layout.HexToWorld(hex)
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Buildings[id] = &component.Building{
		DefID:  defID,
		Hex:    hex,
		Facing: def.Combat.Facing * math.Pi / 180,
		Range:  def.Combat.Range,
	}
	s.ecs.AttackTimers[id] = &component.AttackTimer{Period: def.Combat.AttackPeriod}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color.RGBA(),
		Radius:    float32(def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.queue.Push(event.BuildingPlaced, event.BuildingData{ID: id, DefID: defID, Hex: hex})
	return id, nil
}

// BuildingAt returns the building standing on hex, if any.
func (s *CombatSystem) BuildingAt(hex hexmap.Hex) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(s.ecs.Buildings) {
		if s.ecs.Buildings[id].Hex == hex {
			return id, true
		}
	}
	return types.None, false
}

// AdvanceCombat ticks the building's timer and fires one projectile when it
// becomes ready. Before firing the building turns to the nearest walker in
// range; with nobody in range it keeps its facing.
func (s *CombatSystem) AdvanceCombat(id types.EntityID, dt time.Duration) (event.ProjectileData, bool) {
	building, ok := s.ecs.Buildings[id]
	timer, hasTimer := s.ecs.AttackTimers[id]
	if !ok || !hasTimer {
		log.Printf("CombatSystem: skipping %d: not a building", id)
		return event.ProjectileData{}, false
	}
	timer.Tick(dt)
	if !timer.Ready() {
		return event.ProjectileData{}, false
	}
	// Один выстрел за тик; остаток меньше периода, долг не копится.
	timer.Elapsed = min(timer.Elapsed, timer.Period-1)

	def, ok := s.lib.Buildings[building.DefID]
	if !ok {
		log.Printf("CombatSystem: Could not find building definition for ID %s", building.DefID)
		return event.ProjectileData{}, false
	}

	origin := s.layout.HexToWorld(building.Hex)
	if target, found := s.findNearestWalkerInRange(building.Hex, building.Range); found {
		to := s.ecs.Positions[target].Vec().Sub(origin)
		if to.Len() > 0 {
			building.Facing = to.Angle()
		}
	}

	projID := s.ecs.NewEntity(component.KindProjectile)
	s.ecs.Positions[projID] = &component.Position{X: origin.X, Y: origin.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		Source:    id,
		Speed:     def.Combat.ProjectileSpeed,
		Direction: utils.FromAngle(building.Facing),
		Remaining: def.Combat.ProjectileLifetime,
		Damage:    def.Combat.Damage,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: projectileRadius,
	}

	spawned := event.ProjectileData{
		ID:       projID,
		Building: id,
		Position: origin,
		Facing:   building.Facing,
	}
	s.queue.Push(event.ProjectileSpawned, spawned)
	return spawned, true
}

// Update advances every building once, in ascending handle order.
func (s *CombatSystem) Update(dt time.Duration) []event.ProjectileData {
	var fired []event.ProjectileData
	for _, id := range entity.SortedIDs(s.ecs.Buildings) {
		if p, ok := s.AdvanceCombat(id, dt); ok {
			fired = append(fired, p)
		}
	}
	return fired
}

// findNearestWalkerInRange ищет ближайшего врага в радиусе (в гексах).
// Ties go to the lower handle.
func (s *CombatSystem) findNearestWalkerInRange(from hexmap.Hex, rangeRadius int) (types.EntityID, bool) {
	if rangeRadius <= 0 {
		return types.None, false
	}
	nearest := types.None
	minDistance := math.MaxInt
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if h, ok := s.ecs.Healths[id]; ok && h.Value <= 0 {
			continue
		}
		d := from.Distance(s.layout.WorldToHex(pos.Vec()))
		if d <= rangeRadius && d < minDistance {
			minDistance = d
			nearest = id
		}
	}
	return nearest, nearest != types.None
}
