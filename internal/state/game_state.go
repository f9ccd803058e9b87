// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/defs"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/internal/ui"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.HexRenderer
	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	infoPanel     *ui.InfoPanel
	snapshot      app.Snapshot
	lastClickTime time.Time
	lastEvent     string
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PassableColor:   config.PassableColor,
		ImpassableColor: config.ImpassableColor,
		PathColor:       config.PathColor,
		RouteColor:      config.RouteColor,
		PickColor:       config.PickColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		FlashColor:      config.DamageFlashColor,
		StrokeColor:     config.TowerStrokeColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}

	snap := g.Snapshot()
	renderer := render.NewHexRenderer(g.Layout(), snap.Cells, config.PixelsPerUnit, config.ScreenWidth, config.ScreenHeight, mapColors)

	right := float32(config.ScreenWidth - config.IndicatorOffsetX)
	top := float32(config.IndicatorOffsetX)
	return &GameState{
		sm:            sm,
		game:          g,
		renderer:      renderer,
		indicator:     ui.NewStateIndicator(right, top, config.IndicatorRadius),
		speedButton:   ui.NewSpeedButton(right-config.ButtonSpacing, top, config.ButtonSize, config.SpeedSteps, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(right-2*config.ButtonSpacing, top, config.ButtonSize, config.PauseButtonColor, config.PlayButtonColor),
		infoPanel:     ui.NewInfoPanel(),
		snapshot:      snap,
		lastClickTime: time.Now(),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

// Game returns the simulation driven by this state.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Update(dt time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.infoPanel.Hide()
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) && i < len(config.SpeedSteps) {
			g.speedButton.CurrentState = i
			g.game.SetSpeed(g.speedButton.Speed())
		}
	}

	if g.infoPanel.Update() {
		g.placeBuilding(g.infoPanel.Target)
	}
	if g.handleClicks() {
		return
	}

	g.game.Update(dt)
	for _, e := range g.game.Events() {
		g.onEvent(e)
	}
	g.snapshot = g.game.Snapshot()
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// handleClicks reports true when the state was left.
func (g *GameState) handleClicks() bool {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyB)
	if !left && !right {
		return false
	}
	if time.Since(g.lastClickTime) < config.ClickDebounceTime {
		return false
	}
	g.lastClickTime = time.Now()

	x, y := ebiten.CursorPosition()
	if left {
		switch {
		case g.pauseButton.IsClicked(x, y):
			g.pause()
			return true
		case g.speedButton.IsClicked(x, y):
			g.game.SetSpeed(g.speedButton.ToggleState())
			return false
		case g.infoPanel.Contains(x, y):
			return false
		}
	}

	hex := g.renderer.ScreenToHex(x, y)
	if right {
		g.placeBuilding(hex)
		return false
	}
	// Пик уходит в очередь и разрешается на следующем тике.
	if _, err := g.game.PickAt(hex); err != nil {
		g.lastEvent = err.Error()
		if errors.Is(err, app.ErrNoCell) {
			g.infoPanel.Hide()
		}
		return false
	}
	g.indicator.Pulse()
	g.infoPanel.SetTarget(hex)
	return false
}

func (g *GameState) placeBuilding(hex hexmap.Hex) {
	if _, err := g.game.PlaceBuilding(hex, defs.DefaultBuildingID); err != nil {
		log.Printf("GameState: place building at %v: %v", hex, err)
		g.lastEvent = err.Error()
	}
}

func (g *GameState) onEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.RouteData:
		if e.Type == event.RouteResolved {
			if data.Found {
				g.lastEvent = fmt.Sprintf("route %d -> %d: %d steps", data.First, data.Second, data.Path.Steps())
			} else {
				g.lastEvent = fmt.Sprintf("route %d -> %d: unreachable", data.First, data.Second)
			}
		}
	case event.BuildingData:
		g.lastEvent = fmt.Sprintf("%s placed at %v", data.DefID, data.Hex)
	}
}

// selectionColor shows whether a first pick is waiting for its pair.
func (g *GameState) selectionColor() color.RGBA {
	switch {
	case g.snapshot.Selection.First != types.None:
		return config.PickStateColor
	case len(g.snapshot.Highlighted) > 0:
		return config.RouteStateColor
	default:
		return config.IdleStateColor
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snapshot)
	g.indicator.Draw(screen, g.selectionColor())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen, &g.snapshot)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Tick: %d  Time: %v  Speed: x%.0f\nWalkers: %d  Buildings: %d  Projectiles: %d\n%s",
		g.snapshot.Tick, g.snapshot.GameTime.Truncate(time.Second), g.game.Speed(),
		len(g.snapshot.Walkers), len(g.snapshot.Buildings), len(g.snapshot.Projectiles),
		g.lastEvent,
	))
}

func (g *GameState) Exit() {}
