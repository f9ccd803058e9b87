// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/pkg/hexmap"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel slides up from the bottom edge and lists what stands on the
// selected hex.
type InfoPanel struct {
	IsVisible   bool
	Target      hexmap.Hex
	face        text.Face
	currentY    float64
	targetY     float64
	PlaceButton Button
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		face:     text.NewGoXFace(basicfont.Face7x13),
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(hex hexmap.Hex) {
	p.Target = hex
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a screen point falls on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && y >= int(p.currentY)
}

// Update animates the panel and reports a click on the place button.
func (p *InfoPanel) Update() (placeRequested bool) {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}

	if p.IsVisible && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return image.Pt(x, y).In(p.PlaceButton.Rect)
	}
	return false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	for i, line := range describeHex(snap, p.Target) {
		p.drawText(screen, line, panelRect.Min.X+15, panelRect.Min.Y+15+i*lineHeight, config.TextLightColor)
	}
	p.drawPlaceButton(screen, panelRect)
}

func (p *InfoPanel) drawPlaceButton(screen *ebiten.Image, panelRect image.Rectangle) {
	btnWidth := 150
	btnHeight := 40
	p.PlaceButton.Rect = image.Rect(
		panelRect.Max.X-btnWidth-20,
		panelRect.Max.Y-btnHeight-20,
		panelRect.Max.X-20,
		panelRect.Max.Y-20,
	)
	p.PlaceButton.Text = "Place turret"

	btnColor := color.RGBA{R: 180, G: 140, B: 20, A: 255}
	r := p.PlaceButton.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(btnWidth), float32(btnHeight), btnColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X+btnWidth/2), float64(r.Min.Y+btnHeight/2))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, p.PlaceButton.Text, p.face, op)
}

func (p *InfoPanel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, p.face, op)
}

// describeHex lists the cell, buildings and walkers found on hex.
func describeHex(snap *app.Snapshot, hex hexmap.Hex) []string {
	lines := []string{fmt.Sprintf("Hex %v", hex)}
	for _, c := range snap.Cells {
		if c.Hex != hex {
			continue
		}
		var marks []string
		if c.Highlight&component.HighlightPath != 0 {
			marks = append(marks, "walker route")
		}
		if c.Highlight&component.HighlightRoute != 0 {
			marks = append(marks, "chosen route")
		}
		if c.Highlight&component.HighlightPick != 0 {
			marks = append(marks, "first pick")
		}
		if len(marks) > 0 {
			lines[0] += "  [" + strings.Join(marks, ", ") + "]"
		}
	}
	for _, b := range snap.Buildings {
		if b.Hex == hex {
			lines = append(lines, fmt.Sprintf("Building #%d %s, facing %.0f°", b.ID, b.DefID, b.Facing*180/math.Pi))
		}
	}
	for _, w := range snap.Walkers {
		if w.Hex == hex {
			lines = append(lines, fmt.Sprintf("Walker #%d  HP %d/%d  lap %d", w.ID, w.Health, w.MaxHealth, w.Laps))
		}
	}
	if len(lines) == 1 {
		lines = append(lines, "Empty")
	}
	return lines
}
