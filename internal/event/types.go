package event

import (
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

const (
	WalkerSpawned     EventType = "WalkerSpawned"     // Враг появился в начале маршрута
	WalkerArrived     EventType = "WalkerArrived"     // Враг дошёл до конца маршрута
	WalkerDestroyed   EventType = "WalkerDestroyed"   // Враг уничтожен
	BuildingPlaced    EventType = "BuildingPlaced"    // Постройка размещена
	ProjectileSpawned EventType = "ProjectileSpawned" // Постройка выстрелила
	ProjectileExpired EventType = "ProjectileExpired" // Снаряд исчерпал время жизни
	RouteChosen       EventType = "RouteChosen"       // Выбраны обе точки маршрута
	RouteResolved     EventType = "RouteResolved"     // Маршрут рассчитан (или нет)
)

// WalkerData accompanies WalkerSpawned, WalkerArrived and WalkerDestroyed.
type WalkerData struct {
	ID  types.EntityID
	Hex hexmap.Hex
}

// BuildingData accompanies BuildingPlaced.
type BuildingData struct {
	ID    types.EntityID
	DefID string
	Hex   hexmap.Hex
}

// ProjectileData accompanies ProjectileSpawned.
type ProjectileData struct {
	ID       types.EntityID
	Building types.EntityID
	Position utils.Vec2
	Facing   float64
}

// Impact is what an expired projectile does to the world. A zero Damage means no effect.
type Impact struct {
	Projectile types.EntityID
	Hex        hexmap.Hex
	Position   utils.Vec2
	Damage     int
	Hits       []types.EntityID
}

// RouteData accompanies RouteChosen and RouteResolved. Path is nil when no
// route exists or a pick could not be resolved.
type RouteData struct {
	First, Second types.EntityID
	Path          hexmap.Path
	Found         bool
}
