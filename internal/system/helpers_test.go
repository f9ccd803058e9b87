package system

import (
	"testing"
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

const testTick = 100 * time.Millisecond

type world struct {
	ecs    *entity.ECS
	hexMap *hexmap.HexMap
	layout hexmap.Layout
	queue  *event.Queue
	lib    *defs.Library
}

func newWorld(t *testing.T, radius int) *world {
	t.Helper()
	ecs := entity.NewECS()
	hm := hexmap.NewHexagon(radius, func(h hexmap.Hex) types.EntityID {
		id := ecs.NewEntity(component.KindCell)
		ecs.Cells[id] = &component.Cell{Hex: h}
		return id
	})
	return &world{
		ecs:    ecs,
		hexMap: hm,
		layout: hexmap.Layout{Orientation: hexmap.Flat, Size: 1},
		queue:  event.NewQueue(),
		lib:    defs.DefaultLibrary(),
	}
}

func (w *world) cell(t *testing.T, h hexmap.Hex) types.EntityID {
	t.Helper()
	id, ok := w.hexMap.CellAt(h)
	if !ok {
		t.Fatalf("no cell at %v", h)
	}
	return id
}

// addWalker puts a stationary walker on h.
func (w *world) addWalker(h hexmap.Hex, health int) types.EntityID {
	id := w.ecs.NewEntity(component.KindWalker)
	p := w.layout.HexToWorld(h)
	w.ecs.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Enemies[id] = &component.Enemy{DefID: defs.DefaultEnemyID}
	return id
}

func ofType(events []event.Event, typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
