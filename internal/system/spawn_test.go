package system

import (
	"errors"
	"testing"
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

var originalWaypoints = []hexmap.Hex{{Q: 0, R: -13}, {Q: 5, R: -7}, {Q: 0, R: 0}, {Q: -9, R: 13}}

func newSpawner(w *world, interval time.Duration, maxWalkers int) (*SpawnSystem, *MovementSystem) {
	ms := NewMovementSystem(w.ecs, w.layout, 1e-3)
	return NewSpawnSystem(w.ecs, w.hexMap, ms, w.queue, w.lib, defs.DefaultEnemyID, interval, maxWalkers), ms
}

func TestSetRouteThroughWaypoints(t *testing.T) {
	w := newWorld(t, 13)
	ss, _ := newSpawner(w, time.Second, 5)
	if err := ss.SetRoute(originalWaypoints, nil); err != nil {
		t.Fatal(err)
	}
	route := ss.Route()
	if route.Start() != originalWaypoints[0] || route.Goal() != originalWaypoints[3] {
		t.Fatalf("route %v", route)
	}
	for _, wp := range originalWaypoints {
		if !route.Contains(wp) {
			t.Errorf("route misses waypoint %v", wp)
		}
	}
	for _, h := range route {
		if !w.ecs.Cells[w.cell(t, h)].Has(component.HighlightPath) {
			t.Fatalf("%v not flagged", h)
		}
	}
}

func TestFailedLegAbortsRoute(t *testing.T) {
	w := newWorld(t, 4)
	ss, _ := newSpawner(w, time.Second, 5)
	if err := ss.SetRoute([]hexmap.Hex{{Q: -4, R: 0}, {Q: 4, R: 0}}, nil); err != nil {
		t.Fatal(err)
	}

	// Все соседи (0,0) непроходимы: второй отрезок не строится.
	cost := func(h hexmap.Hex) (int, bool) { return 1, h.Distance(hexmap.Zero) != 1 }
	err := ss.SetRoute([]hexmap.Hex{{Q: -4, R: 0}, {Q: 2, R: 2}, {Q: 0, R: 0}}, cost)
	var legErr *hexmap.LegError
	if !errors.As(err, &legErr) || legErr.Index != 1 {
		t.Fatalf("err = %v, want leg 1 failure", err)
	}
	if ss.Route() != nil {
		t.Fatal("route kept after failure")
	}
	for _, h := range w.hexMap.Hexes() {
		if w.ecs.Cells[w.cell(t, h)].Has(component.HighlightPath) {
			t.Fatalf("%v still flagged", h)
		}
	}
	ss.Update(time.Hour)
	if ss.Walkers() != 0 {
		t.Fatal("spawned without a route")
	}
}

func TestSpawnIntervalAndCap(t *testing.T) {
	w := newWorld(t, 6)
	ss, _ := newSpawner(w, 300*time.Millisecond, 2)
	if err := ss.SetRoute([]hexmap.Hex{{Q: -6, R: 0}, {Q: 6, R: 0}}, nil); err != nil {
		t.Fatal(err)
	}

	ss.Update(testTick)
	if ss.Walkers() != 1 {
		t.Fatalf("walkers after first tick = %d, want 1", ss.Walkers())
	}
	ss.Update(testTick)
	ss.Update(testTick)
	if ss.Walkers() != 1 {
		t.Fatalf("walkers before interval = %d, want 1", ss.Walkers())
	}
	ss.Update(testTick)
	if ss.Walkers() != 2 {
		t.Fatalf("walkers after interval = %d, want 2", ss.Walkers())
	}
	for i := 0; i < 20; i++ {
		ss.Update(testTick)
	}
	if ss.Walkers() != 2 {
		t.Fatalf("walkers = %d, cap is 2", ss.Walkers())
	}
	if n := len(ofType(w.queue.Drain(), event.WalkerSpawned)); n != 2 {
		t.Fatalf("WalkerSpawned events = %d", n)
	}

	spawned, err := ss.Spawn(ss.Route())
	if err != nil {
		t.Fatal(err)
	}
	enemy := w.ecs.Enemies[spawned]
	def := w.lib.Enemies[defs.DefaultEnemyID]
	if w.ecs.Healths[spawned].Value != def.Health || w.ecs.Velocities[spawned].Speed != def.Speed || enemy.DefID != def.ID {
		t.Fatal("walker not built from its definition")
	}
	if w.ecs.Kind(spawned) != component.KindWalker {
		t.Fatalf("kind = %v", w.ecs.Kind(spawned))
	}
}

func TestArrivedWalkerLoopsBack(t *testing.T) {
	w := newWorld(t, 2)
	ss, ms := newSpawner(w, time.Hour, 1)
	if err := ss.SetRoute([]hexmap.Hex{{Q: 0, R: 0}, {Q: 1, R: 0}}, nil); err != nil {
		t.Fatal(err)
	}
	ss.Update(testTick)
	first := w.ecs.OfKind(component.KindWalker)
	if len(first) != 1 {
		t.Fatalf("walkers = %v", first)
	}
	w.queue.Drain()

	ms.Update(time.Hour)
	ss.Reap()

	if w.ecs.Alive(first[0]) {
		t.Fatal("arrived walker not removed")
	}
	now := w.ecs.OfKind(component.KindWalker)
	if len(now) != 1 {
		t.Fatalf("walkers after loop-back = %v", now)
	}
	fresh := now[0]
	if w.ecs.Enemies[fresh].Laps != 1 {
		t.Fatalf("laps = %d, want 1", w.ecs.Enemies[fresh].Laps)
	}
	if got, want := w.ecs.Positions[fresh].Vec(), w.layout.HexToWorld(hexmap.Zero); got != want {
		t.Fatalf("respawned at %v, want %v", got, want)
	}
	events := w.queue.Drain()
	if len(ofType(events, event.WalkerArrived)) != 1 || len(ofType(events, event.WalkerSpawned)) != 1 {
		t.Fatalf("events = %+v", events)
	}
}

func TestDeadWalkersAreReaped(t *testing.T) {
	w := newWorld(t, 2)
	ss, _ := newSpawner(w, time.Second, 5)
	dead := w.addWalker(hexmap.Zero, 10)
	alive := w.addWalker(hexmap.Zero, 10)
	if !ApplyDamage(w.ecs, dead, 25) {
		t.Fatal("lethal hit not reported")
	}
	if ApplyDamage(w.ecs, dead, 5) {
		t.Fatal("hit on a dead walker reported as lethal")
	}
	ss.Reap()
	if w.ecs.Alive(dead) || !w.ecs.Alive(alive) {
		t.Fatal("wrong walkers reaped")
	}
	if n := len(ofType(w.queue.Drain(), event.WalkerDestroyed)); n != 1 {
		t.Fatalf("WalkerDestroyed events = %d", n)
	}
}

func TestDamageFlashFades(t *testing.T) {
	w := newWorld(t, 1)
	id := w.addWalker(hexmap.Zero, 10)
	ApplyDamage(w.ecs, id, 1)
	vs := NewVisualEffectSystem(w.ecs)
	vs.Update(DamageFlashDuration - time.Millisecond)
	if _, ok := w.ecs.DamageFlashes[id]; !ok {
		t.Fatal("flash ended early")
	}
	vs.Update(time.Millisecond)
	if _, ok := w.ecs.DamageFlashes[id]; ok {
		t.Fatal("flash did not end")
	}
}

func TestSpawnRejectsInvalidPaths(t *testing.T) {
	cases := []struct {
		name string
		path hexmap.Path
		err  error
	}{
		{"empty", nil, ErrEmptyPath},
		{"off map", hexmap.Path{{Q: 3, R: 0}, {Q: 4, R: 0}}, ErrInvalidPath},
		{"far off map", hexmap.Path{{Q: 99, R: 99}, {Q: -50, R: 0}}, ErrInvalidPath},
		{"gap", hexmap.Path{{Q: 0, R: 0}, {Q: 2, R: 0}}, ErrInvalidPath},
		{"standing step", hexmap.Path{{Q: 0, R: 0}, {Q: 0, R: 0}}, ErrInvalidPath},
		{"valid", hexmap.Path{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 1, R: 1}}, nil},
		{"single", hexmap.Path{{Q: -3, R: 0}}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(t, 3)
			ss, _ := newSpawner(w, time.Second, 5)
			id, err := ss.Spawn(c.path)
			if !errors.Is(err, c.err) {
				t.Fatalf("err = %v, want %v", err, c.err)
			}
			if c.err == nil {
				return
			}
			if id != types.None || ss.Walkers() != 0 || w.queue.Len() != 0 {
				t.Fatalf("rejected path left walker %d (%d alive, %d events)", id, ss.Walkers(), w.queue.Len())
			}
		})
	}
}
