// internal/system/route.go
package system

import (
	"errors"
	"log"
	"slices"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

// ErrPickPending is returned for picks made while a chosen pair waits for Resolve.
var ErrPickPending = errors.New("route pick pending")

// RouteSystem implements the two-click route picker. The second pick queues
// a RouteChosen event; Resolve, run once per tick, computes the route and
// always clears the selection afterwards.
type RouteSystem struct {
	ecs         *entity.ECS
	hexMap      *hexmap.HexMap
	queue       *event.Queue
	cost        hexmap.CostFunc
	selection   component.Selection
	highlighted hexmap.Path
}

func NewRouteSystem(ecs *entity.ECS, hexMap *hexmap.HexMap, queue *event.Queue, cost hexmap.CostFunc) *RouteSystem {
	return &RouteSystem{ecs: ecs, hexMap: hexMap, queue: queue, cost: cost}
}

func (s *RouteSystem) SetCost(cost hexmap.CostFunc) {
	s.cost = cost
}

// Selection returns the current picks.
func (s *RouteSystem) Selection() component.Selection {
	return s.selection
}

// Pending reports whether a chosen pair waits for Resolve.
func (s *RouteSystem) Pending() bool {
	return s.selection.Complete()
}

// SubmitPick records a pick. Picks made while a pair is waiting for Resolve
// are ignored and reported with ErrPickPending; an empty handle with ErrNoCell.
func (s *RouteSystem) SubmitPick(id types.EntityID) error {
	if id == types.None {
		log.Println("RouteSystem: ignoring empty pick")
		return ErrNoCell
	}
	if s.selection.Complete() {
		log.Printf("RouteSystem: ignoring pick %d, route %d -> %d not resolved yet", id, s.selection.First, s.selection.Second)
		return ErrPickPending
	}
	if s.selection.First == types.None {
		s.selection.First = id
		s.setPickMark(id, true)
		return nil
	}
	s.selection.Second = id
	s.queue.Push(event.RouteChosen, event.RouteData{First: s.selection.First, Second: id})
	return nil
}

// Resolve computes the chosen route, if any. Stale picks and missing paths
// are logged and leave the previous highlight in place. The selection is
// reset either way.
func (s *RouteSystem) Resolve() {
	if !s.selection.Complete() {
		return
	}
	sel := s.selection
	defer s.reset()

	result := event.RouteData{First: sel.First, Second: sel.Second}
	from, okFrom := s.hexOf(sel.First)
	to, okTo := s.hexOf(sel.Second)
	if !okFrom || !okTo {
		log.Printf("RouteSystem: pick %d -> %d no longer maps to a cell, skipping", sel.First, sel.Second)
		s.queue.Push(event.RouteResolved, result)
		return
	}

	path, found := s.hexMap.FindPath(from, to, s.cost)
	if !found {
		log.Printf("RouteSystem: no path %v -> %v", from, to)
		s.queue.Push(event.RouteResolved, result)
		return
	}

	s.setRouteMarks(s.highlighted, false)
	s.setRouteMarks(path, true)
	s.highlighted = path
	result.Path = slices.Clone(path)
	result.Found = true
	s.queue.Push(event.RouteResolved, result)
}

// Highlighted returns the latest resolved route.
func (s *RouteSystem) Highlighted() hexmap.Path {
	return slices.Clone(s.highlighted)
}

func (s *RouteSystem) reset() {
	s.setPickMark(s.selection.First, false)
	s.selection.Reset()
}

// hexOf maps a cell or building handle to its coordinate.
func (s *RouteSystem) hexOf(id types.EntityID) (hexmap.Hex, bool) {
	switch s.ecs.Kind(id) {
	case component.KindCell:
		if c, ok := s.ecs.Cells[id]; ok {
			return c.Hex, true
		}
	case component.KindBuilding:
		if b, ok := s.ecs.Buildings[id]; ok {
			return b.Hex, true
		}
	}
	return hexmap.Hex{}, false
}

func (s *RouteSystem) cellFor(h hexmap.Hex) *component.Cell {
	id, ok := s.hexMap.CellAt(h)
	if !ok {
		return nil
	}
	return s.ecs.Cells[id]
}

func (s *RouteSystem) setPickMark(id types.EntityID, on bool) {
	h, ok := s.hexOf(id)
	if !ok {
		return
	}
	if cell := s.cellFor(h); cell != nil {
		if on {
			cell.Set(component.HighlightPick)
		} else {
			cell.Clear(component.HighlightPick)
		}
	}
}

func (s *RouteSystem) setRouteMarks(path hexmap.Path, on bool) {
	for _, h := range path {
		if cell := s.cellFor(h); cell != nil {
			if on {
				cell.Set(component.HighlightRoute)
			} else {
				cell.Clear(component.HighlightRoute)
			}
		}
	}
}
