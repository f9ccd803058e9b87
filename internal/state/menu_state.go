// internal/state/menu_state.go
package state

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-hex-defense/internal/app"
)

const menuText = `HEX DEFENSE

Space   start
LMB     pick two cells to show a route
RMB, B  place a turret
1 2 3   simulation speed
P       pause`

// MenuState — стартовый экран со справкой по управлению
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, g *app.Game) *MenuState {
	return &MenuState{sm: sm, game: g}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	ebitenutil.DebugPrintAt(screen, menuText, 40, 40)
}

func (m *MenuState) Exit() {}
