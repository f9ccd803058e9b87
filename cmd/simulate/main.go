// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/debugapi"
	"go-hex-defense/internal/event"
)

// Headless runner: fixed-step ticks, every drained event is logged.
func main() {
	configPath := flag.String("config", "", "scenario file (YAML); built-in scenario when empty")
	defsPath := flag.String("defs", "", "definitions file (YAML); overrides the scenario's definitions")
	ticks := flag.Int("ticks", 600, "ticks to simulate; 0 runs until interrupted")
	realtime := flag.Bool("realtime", false, "sleep one tick step between ticks")
	serve := flag.Bool("serve", false, "start the debug API")
	quiet := flag.Bool("quiet", false, "log only route and walker lifecycle events")
	flag.Parse()

	cfg, lib, watched, err := app.LoadScenario(*configPath, *defsPath)
	if err != nil {
		log.Fatal(err)
	}
	g, err := app.NewGame(cfg, lib)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if watched != "" {
		if err := g.WatchDefinitions(ctx, watched); err != nil {
			log.Printf("Error: %v", err)
		}
	}
	if *serve && cfg.DebugAddr != "" {
		go func() {
			log.Println(debugapi.ListenAndServe(cfg.DebugAddr, g))
		}()
	}

	counts := make(map[event.EventType]int)
	for tick := 1; *ticks == 0 || tick <= *ticks; tick++ {
		if ctx.Err() != nil {
			break
		}
		g.Update(cfg.TickStep)
		for _, e := range g.Events() {
			counts[e.Type]++
			if *quiet && (e.Type == event.ProjectileSpawned || e.Type == event.ProjectileExpired) {
				continue
			}
			log.Printf("tick %d: %v", tick, e)
		}
		if *realtime {
			time.Sleep(cfg.TickStep)
		}
	}

	snap := g.Snapshot()
	log.Printf("Done at tick %d (%v): %d walkers, %d buildings, %d projectiles",
		snap.Tick, snap.GameTime, len(snap.Walkers), len(snap.Buildings), len(snap.Projectiles))
	for _, typ := range []event.EventType{
		event.WalkerSpawned, event.WalkerArrived, event.WalkerDestroyed,
		event.BuildingPlaced, event.ProjectileSpawned, event.ProjectileExpired,
		event.RouteChosen, event.RouteResolved,
	} {
		log.Printf("  %-18s %d", typ, counts[typ])
	}
}
