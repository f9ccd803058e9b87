// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/system"
	"go-hex-defense/internal/terrain"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

var (
	ErrNoCell            = system.ErrNoCell
	ErrOccupied          = system.ErrOccupied
	ErrUnknownDefinition = system.ErrUnknownDefinition
	ErrInvalidPath       = system.ErrInvalidPath
	ErrPickPending       = system.ErrPickPending
)

// Game holds the simulation: the map, the entity arena and the systems that
// advance it. Every exported method takes the game lock, so the viewer, the
// debug server and the definitions watcher may call in from their own
// goroutines between ticks.
type Game struct {
	mu sync.Mutex

	cfg    *config.Config
	lib    *defs.Library
	layout hexmap.Layout
	hexMap *hexmap.HexMap
	ecs    *entity.ECS
	queue  *event.Queue
	cost   hexmap.CostFunc

	MovementSystem     *system.MovementSystem
	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	RouteSystem        *system.RouteSystem
	VisualEffectSystem *system.VisualEffectSystem

	tick     uint64
	gameTime time.Duration
	speed    float64
}

// NewGame builds the hexagonal map, places the configured buildings and
// computes the walker route. A route with an unreachable leg is logged and
// left empty; the game still runs without walkers.
func NewGame(cfg *config.Config, lib *defs.Library) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: invalid config: %w", err)
	}
	if _, ok := lib.Enemies[cfg.Spawn.Enemy]; !ok {
		return nil, fmt.Errorf("app: spawn enemy %s: %w", cfg.Spawn.Enemy, ErrUnknownDefinition)
	}
	cost, err := terrain.FromConfig(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	ecs := entity.NewECS()
	queue := event.NewQueue()
	layout := hexmap.Layout{Orientation: cfg.Orientation(), Size: cfg.Map.HexSize}
	hexMap := hexmap.NewHexagon(cfg.Map.Radius, func(h hexmap.Hex) types.EntityID {
		id := ecs.NewEntity(component.KindCell)
		ecs.Cells[id] = &component.Cell{Hex: h}
		return id
	})

	g := &Game{
		cfg:    cfg,
		lib:    lib,
		layout: layout,
		hexMap: hexMap,
		ecs:    ecs,
		queue:  queue,
		cost:   cost,
		speed:  1,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, layout, cfg.Movement.ArrivalEpsilon)
	g.SpawnSystem = system.NewSpawnSystem(ecs, hexMap, g.MovementSystem, queue, lib, cfg.Spawn.Enemy, cfg.Spawn.Interval, cfg.Spawn.MaxWalkers)
	g.CombatSystem = system.NewCombatSystem(ecs, hexMap, layout, queue, lib)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, layout, queue, nil)
	g.RouteSystem = system.NewRouteSystem(ecs, hexMap, queue, cost)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	for _, b := range cfg.Buildings {
		if _, err := g.CombatSystem.PlaceBuilding(b.At.Hex(), b.ID); err != nil {
			return nil, fmt.Errorf("app: initial building: %w", err)
		}
	}
	if err := g.SpawnSystem.SetRoute(cfg.Waypoints(), cost); err != nil {
		log.Printf("Game: walkers disabled: %v", err)
	}
	log.Printf("Game: %d cells, route of %d hexes", hexMap.Len(), len(g.SpawnSystem.Route()))
	return g, nil
}

// Update advances the simulation by dt, clamped to the configured maximum
// step and scaled by the game speed.
func (g *Game) Update(dt time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if dt <= 0 {
		return
	}
	dt = min(dt, g.cfg.MaxDelta)
	dt = time.Duration(float64(dt) * g.speed)
	g.gameTime += dt
	g.tick++

	g.SpawnSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.SpawnSystem.Reap()
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.RouteSystem.Resolve()
}

// Events drains the events raised since the previous call.
func (g *Game) Events() []event.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.queue.Drain()
}

// FindPath runs A* with the configured terrain cost.
func (g *Game) FindPath(start, goal hexmap.Hex) (hexmap.Path, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hexMap.FindPath(start, goal, g.cost)
}

// SpawnWalker creates a walker of the configured enemy type on path.
func (g *Game) SpawnWalker(path hexmap.Path) (types.EntityID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.SpawnSystem.Spawn(path)
}

// Advance moves one walker outside the regular tick.
func (g *Game) Advance(id types.EntityID, dt time.Duration) system.WalkEvent {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.MovementSystem.Advance(id, dt)
}

func (g *Game) PlaceBuilding(hex hexmap.Hex, defID string) (types.EntityID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.CombatSystem.PlaceBuilding(hex, defID)
}

// AdvanceCombat ticks one building outside the regular tick.
func (g *Game) AdvanceCombat(id types.EntityID, dt time.Duration) (event.ProjectileData, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.CombatSystem.AdvanceCombat(id, dt)
}

func (g *Game) SubmitPick(id types.EntityID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.RouteSystem.SubmitPick(id)
}

// PickAt submits the building standing on hex, or the cell itself.
// Off the map it returns ErrNoCell; a pick ignored because a chosen pair is
// still unresolved returns the picked handle with ErrPickPending.
func (g *Game) PickAt(hex hexmap.Hex) (types.EntityID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, ok := g.CombatSystem.BuildingAt(hex)
	if !ok {
		id, ok = g.hexMap.CellAt(hex)
	}
	if !ok {
		log.Printf("Game: pick outside the map at %v", hex)
		return types.None, fmt.Errorf("pick at %v: %w", hex, ErrNoCell)
	}
	if err := g.RouteSystem.SubmitPick(id); err != nil {
		return id, fmt.Errorf("pick at %v: %w", hex, err)
	}
	return id, nil
}

// HighlightedRoute returns the latest route resolved from two picks.
func (g *Game) HighlightedRoute() hexmap.Path {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.RouteSystem.Highlighted()
}

// WalkerRoute returns the route walkers follow.
func (g *Game) WalkerRoute() hexmap.Path {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.SpawnSystem.Route()
}

func (g *Game) CellAt(hex hexmap.Hex) (types.EntityID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hexMap.CellAt(hex)
}

// ApplyDefinitions swaps the definition library. Walkers already on the map
// keep their stats; buildings pick up the new attack period and range.
func (g *Game) ApplyDefinitions(lib *defs.Library) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := lib.Enemies[g.cfg.Spawn.Enemy]; !ok {
		return fmt.Errorf("app: spawn enemy %s: %w", g.cfg.Spawn.Enemy, ErrUnknownDefinition)
	}
	g.lib = lib
	g.SpawnSystem.SetLibrary(lib)
	g.CombatSystem.SetLibrary(lib)
	log.Printf("Game: definitions applied (%d enemies, %d buildings)", len(lib.Enemies), len(lib.Buildings))
	return nil
}

// Definitions returns the IDs of the buildings that can be placed, sorted.
func (g *Game) Definitions() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make([]string, 0, len(g.lib.Buildings))
	for id := range g.lib.Buildings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Layout is fixed for the life of the game and needs no lock.
func (g *Game) Layout() hexmap.Layout {
	return g.layout
}

func (g *Game) Config() *config.Config {
	return g.cfg
}

// SetSpeed scales simulated time; values below zero are treated as zero.
func (g *Game) SetSpeed(multiplier float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.speed = max(multiplier, 0)
}

func (g *Game) Speed() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speed
}
