// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/debugapi"
	"go-hex-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDelta       time.Duration
}

func (a *AppGame) Update() error {
	now := time.Now()
	dt := min(now.Sub(a.lastUpdateTime), a.maxDelta)
	a.lastUpdateTime = now
	a.stateMachine.Update(dt)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "scenario file (YAML); built-in scenario when empty")
	defsPath := flag.String("defs", "", "definitions file (YAML); overrides the scenario's definitions")
	menu := flag.Bool("menu", false, "start from the menu screen")
	flag.Parse()

	cfg, lib, watched, err := app.LoadScenario(*configPath, *defsPath)
	if err != nil {
		log.Fatal(err)
	}
	g, err := app.NewGame(cfg, lib)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watched != "" {
		if err := g.WatchDefinitions(ctx, watched); err != nil {
			log.Printf("Error: %v", err)
		}
	}
	if cfg.DebugAddr != "" {
		go func() {
			log.Println(debugapi.ListenAndServe(cfg.DebugAddr, g))
		}()
	}

	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, g))
	} else {
		sm.SetState(state.NewGameState(sm, g))
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDelta:       cfg.MaxDelta,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
