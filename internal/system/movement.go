// internal/system/movement.go
package system

import (
	"errors"
	"log"
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

var ErrEmptyPath = errors.New("system: walker path is empty")

// WalkEvent is the outcome of advancing one walker for one tick.
type WalkEvent int

const (
	WalkProgressing  WalkEvent = iota // still on the way
	WalkArrivedAtEnd                  // reached the final waypoint during this call
	WalkSkipped                       // stale handle or walker already done
)

func (e WalkEvent) String() string {
	switch e {
	case WalkProgressing:
		return "Progressing"
	case WalkArrivedAtEnd:
		return "ArrivedAtEnd"
	case WalkSkipped:
		return "Skipped"
	}
	return "Unknown"
}

// WalkResult pairs a walker with the event its advance produced.
type WalkResult struct {
	ID    types.EntityID
	Event WalkEvent
}

// MovementSystem двигает врагов по их путям.
type MovementSystem struct {
	ecs     *entity.ECS
	layout  hexmap.Layout
	epsilon float64
}

func NewMovementSystem(ecs *entity.ECS, layout hexmap.Layout, epsilon float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, layout: layout, epsilon: epsilon}
}

// Attach gives id a walking state on path: the walker stands on path[0] and
// heads for path[1], or for path[0] itself when the path has one element.
func (s *MovementSystem) Attach(id types.EntityID, path hexmap.Path, speed float64) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	start := s.layout.HexToWorld(path[0])
	index := 1
	if len(path) == 1 {
		index = 0
	}
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Paths[id] = &component.Path{Hexes: path, CurrentIndex: index}
	return nil
}

// Advance moves one walker by speed*dt toward its current target.
//
// Reaching a waypoint means ending within epsilon of its world position; the
// walker then snaps onto it and spends what is left of the step on the next
// leg. A non-positive dt changes nothing.
func (s *MovementSystem) Advance(id types.EntityID, dt time.Duration) WalkEvent {
	path, hasPath := s.ecs.Paths[id]
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	if !hasPath || !hasPos || !hasVel || len(path.Hexes) == 0 {
		log.Printf("MovementSystem: skipping %d: no walking state", id)
		return WalkSkipped
	}
	if path.Done {
		log.Printf("MovementSystem: skipping %d: path already finished", id)
		return WalkSkipped
	}
	if dt <= 0 {
		return WalkProgressing
	}

	budget := vel.Speed * dt.Seconds()
	for {
		cur := pos.Vec()
		target := s.layout.HexToWorld(path.Target())
		dist := cur.Dist(target)

		if dist-budget > s.epsilon {
			pos.Set(cur.Add(target.Sub(cur).Scale(budget / dist)))
			return WalkProgressing
		}

		// Достигли текущей точки пути.
		pos.Set(target)
		budget = max(budget-dist, 0)
		if path.IsFinal() {
			path.Done = true
			return WalkArrivedAtEnd
		}
		// The next target is the element right after the cursor, never an
		// earlier occurrence of the same coordinate, so repeated hexes on a
		// path cannot send the walker back.
		path.CurrentIndex++
		if budget == 0 {
			return WalkProgressing
		}
	}
}

// Update advances every unfinished walker once, in ascending handle order.
func (s *MovementSystem) Update(dt time.Duration) []WalkResult {
	var results []WalkResult
	for _, id := range entity.SortedIDs(s.ecs.Paths) {
		if s.ecs.Paths[id].Done {
			continue
		}
		results = append(results, WalkResult{ID: id, Event: s.Advance(id, dt)})
	}
	return results
}
