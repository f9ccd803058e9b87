// internal/system/spawn.go
package system

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

// ErrInvalidPath rejects paths that leave the map or skip over a cell.
var ErrInvalidPath = errors.New("system: invalid walker path")

// SpawnSystem keeps up to MaxWalkers walkers on the route. Walkers that reach
// the end are replaced by a fresh one at the route origin; walkers that die
// are removed and the periodic spawn refills the slot.
type SpawnSystem struct {
	ecs      *entity.ECS
	hexMap   *hexmap.HexMap
	movement *MovementSystem
	queue    *event.Queue
	lib      *defs.Library

	enemyID    string
	maxWalkers int
	timer      component.AttackTimer
	route      hexmap.Path
}

func NewSpawnSystem(ecs *entity.ECS, hexMap *hexmap.HexMap, movement *MovementSystem, queue *event.Queue, lib *defs.Library, enemyID string, interval time.Duration, maxWalkers int) *SpawnSystem {
	return &SpawnSystem{
		ecs:        ecs,
		hexMap:     hexMap,
		movement:   movement,
		queue:      queue,
		lib:        lib,
		enemyID:    enemyID,
		maxWalkers: maxWalkers,
		// первый враг появляется сразу
		timer: component.AttackTimer{Period: interval, Elapsed: interval},
	}
}

func (s *SpawnSystem) SetLibrary(lib *defs.Library) {
	s.lib = lib
}

// SetRoute computes the walker route through waypoints. When any leg has no
// path the whole route is dropped: nothing spawns until a later SetRoute
// succeeds. Cells on the route are flagged with HighlightPath.
func (s *SpawnSystem) SetRoute(waypoints []hexmap.Hex, cost hexmap.CostFunc) error {
	route, err := s.hexMap.FindRoute(waypoints, cost)
	s.markRoute(s.route, false)
	if err != nil {
		s.route = nil
		var legErr *hexmap.LegError
		if errors.As(err, &legErr) {
			log.Printf("SpawnSystem: route aborted, leg %d %v -> %v has no path", legErr.Index, legErr.From, legErr.To)
		} else {
			log.Printf("SpawnSystem: route aborted: %v", err)
		}
		return err
	}
	s.route = route
	s.markRoute(route, true)
	return nil
}

// Route returns a copy of the current walker route, nil when there is none.
func (s *SpawnSystem) Route() hexmap.Path {
	return slices.Clone(s.route)
}

func (s *SpawnSystem) markRoute(route hexmap.Path, on bool) {
	for _, h := range route {
		id, ok := s.hexMap.CellAt(h)
		if !ok {
			continue
		}
		if cell, ok := s.ecs.Cells[id]; ok {
			if on {
				cell.Set(component.HighlightPath)
			} else {
				cell.Clear(component.HighlightPath)
			}
		}
	}
}

// Spawn creates a walker of the configured enemy type on path.
func (s *SpawnSystem) Spawn(path hexmap.Path) (types.EntityID, error) {
	if len(path) == 0 {
		return types.None, ErrEmptyPath
	}
	if err := s.checkPath(path); err != nil {
		log.Printf("SpawnSystem: %v", err)
		return types.None, err
	}
	def, ok := s.lib.Enemies[s.enemyID]
	if !ok {
		return types.None, fmt.Errorf("enemy %s: %w", s.enemyID, ErrUnknownDefinition)
	}

	id := s.ecs.NewEntity(component.KindWalker)
	if err := s.movement.Attach(id, slices.Clone(path), def.Speed); err != nil {
		s.ecs.Destroy(id)
		return types.None, err
	}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{DefID: def.ID}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color.RGBA(),
		Radius:    float32(def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.queue.Push(event.WalkerSpawned, event.WalkerData{ID: id, Hex: path[0]})
	return id, nil
}

// checkPath requires every hex on the map and each step to an adjacent hex.
func (s *SpawnSystem) checkPath(path hexmap.Path) error {
	for i, h := range path {
		if !s.hexMap.Contains(h) {
			return fmt.Errorf("hex %v at %d is off the map: %w", h, i, ErrInvalidPath)
		}
		if i > 0 && !path[i-1].IsNeighbor(h) {
			return fmt.Errorf("%v -> %v at %d is not a step: %w", path[i-1], h, i, ErrInvalidPath)
		}
	}
	return nil
}

// Walkers is the number of live walkers.
func (s *SpawnSystem) Walkers() int {
	return len(s.ecs.Enemies)
}

// Update spawns a walker on the route once per interval while below the cap.
// The timer is checked before it is ticked, so the first walker appears on
// the first update. At the cap the timer holds at one full period and the
// next free slot is filled at once.
func (s *SpawnSystem) Update(dt time.Duration) {
	if s.route == nil {
		return
	}
	if s.Walkers() >= s.maxWalkers {
		s.timer.Tick(dt)
		s.timer.Elapsed = min(s.timer.Elapsed, s.timer.Period)
		return
	}
	if s.timer.Ready() {
		if _, err := s.Spawn(s.route); err != nil {
			log.Printf("Error: spawn failed: %v", err)
		}
	}
	s.timer.Tick(dt)
}

// Reap runs after movement: walkers that finished their path loop back to the
// route origin, walkers without health are removed.
func (s *SpawnSystem) Reap() {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if h, ok := s.ecs.Healths[id]; ok && h.Value <= 0 {
			s.queue.Push(event.WalkerDestroyed, event.WalkerData{ID: id, Hex: s.currentHex(id)})
			s.ecs.Destroy(id)
			continue
		}
		if p, ok := s.ecs.Paths[id]; ok && p.Done {
			s.loopBack(id)
		}
	}
}

func (s *SpawnSystem) loopBack(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return
	}
	laps := enemy.Laps + 1
	s.queue.Push(event.WalkerArrived, event.WalkerData{ID: id, Hex: s.currentHex(id)})
	s.ecs.Destroy(id)

	if s.route == nil {
		return
	}
	fresh, err := s.Spawn(s.route)
	if err != nil {
		log.Printf("Error: respawn of walker %d failed: %v", id, err)
		return
	}
	s.ecs.Enemies[fresh].Laps = laps
}

func (s *SpawnSystem) currentHex(id types.EntityID) hexmap.Hex {
	if p, ok := s.ecs.Paths[id]; ok && len(p.Hexes) > 0 {
		return p.Hexes[p.CurrentIndex]
	}
	return hexmap.Hex{}
}
