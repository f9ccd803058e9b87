// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/types"
)

// ECS is the entity arena: handles are stable integers that are never reused,
// each live handle has exactly one Kind, and per-kind data lives in component tables.
type ECS struct {
	NextID        types.EntityID
	Kinds         map[types.EntityID]component.Kind
	Cells         map[types.EntityID]*component.Cell
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	Buildings     map[types.EntityID]*component.Building
	AttackTimers  map[types.EntityID]*component.AttackTimer
	Projectiles   map[types.EntityID]*component.Projectile
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Kinds:         make(map[types.EntityID]component.Kind),
		Cells:         make(map[types.EntityID]*component.Cell),
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Buildings:     make(map[types.EntityID]*component.Building),
		AttackTimers:  make(map[types.EntityID]*component.AttackTimer),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
	}
}

// NewEntity allocates a handle of the given kind.
func (ecs *ECS) NewEntity(kind component.Kind) types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Kinds[id] = kind
	return id
}

// Kind returns the kind of id, KindNone for dead or unknown handles.
func (ecs *ECS) Kind(id types.EntityID) component.Kind {
	return ecs.Kinds[id]
}

func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Kinds[id]
	return ok
}

// Destroy removes id from every table. Destroying a dead handle is a no-op.
func (ecs *ECS) Destroy(id types.EntityID) bool {
	if !ecs.Alive(id) {
		return false
	}
	delete(ecs.Kinds, id)
	delete(ecs.Cells, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Buildings, id)
	delete(ecs.AttackTimers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
	return true
}

// OfKind returns the live handles of kind k in ascending order.
func (ecs *ECS) OfKind(k component.Kind) []types.EntityID {
	var ids []types.EntityID
	for id, kind := range ecs.Kinds {
		if kind == k {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// SortedIDs returns the keys of a component table in ascending order so that
// systems visit entities deterministically.
func SortedIDs[V any](table map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(table))
}
