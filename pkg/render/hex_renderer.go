// pkg/render/hex_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/component"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

// HexRenderer draws the map and the entities of a snapshot. World units are
// scaled to pixels and the world origin sits at the screen center.
type HexRenderer struct {
	layout       hexmap.Layout
	scale        float64
	screenWidth  int
	screenHeight int
	colors       *MapColors
	cells        []app.CellView
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     text.Face
	mapImage     *ebiten.Image              // Предрендеренная карта без подсветки
	facings      map[types.EntityID]float64 // отображаемый поворот построек
}

// facingLerp is the share of the remaining turn shown per frame.
const facingLerp = 0.25

func NewHexRenderer(layout hexmap.Layout, cells []app.CellView, scale float64, screenWidth, screenHeight int, colors *MapColors) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &HexRenderer{
		layout:       layout,
		scale:        scale,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		cells:        cells,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     text.NewGoXFace(basicfont.Face7x13),
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
		facings:      make(map[types.EntityID]float64),
	}
	r.RenderMapImage()
	return r
}

// WorldToScreen converts a world position to pixels.
func (r *HexRenderer) WorldToScreen(v utils.Vec2) (float32, float32) {
	x := v.X*r.scale + float64(r.screenWidth)/2
	y := v.Y*r.scale + float64(r.screenHeight)/2
	return float32(x), float32(y)
}

// ScreenToHex returns the hex under a pixel.
func (r *HexRenderer) ScreenToHex(x, y int) hexmap.Hex {
	world := utils.Vec2{
		X: (float64(x) - float64(r.screenWidth)/2) / r.scale,
		Y: (float64(y) - float64(r.screenHeight)/2) / r.scale,
	}
	return r.layout.WorldToHex(world)
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for _, cell := range r.cells {
		fill := r.baseColor(cell)
		r.drawHexFill(r.mapImage, cell.Hex, fill)
		r.drawHexOutline(r.mapImage, cell.Hex, LightenColor(fill, 40))
	}
	for _, cell := range r.cells {
		r.drawLabel(r.mapImage, cell.Hex, r.baseColor(cell))
	}
}

// Draw renders one frame from snap.
func (r *HexRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.DrawImage(r.mapImage, nil)

	for _, cell := range snap.Cells {
		if cell.Highlight == 0 {
			continue
		}
		fill := r.highlightColor(cell.Highlight)
		r.drawHexFill(screen, cell.Hex, fill)
		r.drawHexOutline(screen, cell.Hex, LightenColor(fill, 40))
		r.drawLabel(screen, cell.Hex, fill)
	}

	seen := make(map[types.EntityID]struct{}, len(snap.Buildings))
	for _, b := range snap.Buildings {
		x, y := r.WorldToScreen(b.Position)
		radius := b.Radius * float32(r.layout.Size*r.scale)
		if b.Stroke {
			vector.DrawFilledCircle(screen, x, y, radius+r.colors.StrokeWidth, r.colors.StrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, b.Color, true)
		// Направление стрельбы
		facing, ok := r.facings[b.ID]
		if !ok {
			facing = b.Facing
		}
		facing = utils.LerpAngle(facing, b.Facing, facingLerp)
		seen[b.ID] = struct{}{}
		r.facings[b.ID] = facing
		fx := x + float32(math.Cos(facing))*radius*1.4
		fy := y + float32(math.Sin(facing))*radius*1.4
		vector.StrokeLine(screen, x, y, fx, fy, r.colors.StrokeWidth, r.colors.StrokeColor, true)
	}

	for id := range r.facings {
		if _, ok := seen[id]; !ok {
			delete(r.facings, id)
		}
	}

	for _, w := range snap.Walkers {
		x, y := r.WorldToScreen(w.Position)
		c := w.Color
		if w.Flash {
			c = r.colors.FlashColor
		}
		radius := w.Radius * float32(r.layout.Size*r.scale)
		if w.MaxHealth > 0 {
			// Раненые враги уменьшаются
			radius *= 0.6 + 0.4*float32(w.Health)/float32(w.MaxHealth)
		}
		vector.DrawFilledCircle(screen, x, y, radius, c, true)
	}

	for _, p := range snap.Projectiles {
		x, y := r.WorldToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, p.Radius*float32(r.layout.Size*r.scale), p.Color, true)
	}
}

func (r *HexRenderer) baseColor(cell app.CellView) color.RGBA {
	if !cell.Passable {
		return r.colors.ImpassableColor
	}
	return r.colors.PassableColor
}

func (r *HexRenderer) highlightColor(flags component.HighlightFlags) color.RGBA {
	switch {
	case flags&component.HighlightPick != 0:
		return r.colors.PickColor
	case flags&component.HighlightRoute != 0:
		return r.colors.RouteColor
	default:
		return r.colors.PathColor
	}
}

func (r *HexRenderer) hexPath(hex hexmap.Hex) vector.Path {
	path := vector.Path{}
	for i, corner := range r.layout.Corners(hex) {
		x, y := r.WorldToScreen(corner)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, hex hexmap.Hex, fillColor color.RGBA) {
	path := r.hexPath(hex)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorVertices(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, hex hexmap.Hex, strokeColor color.RGBA) {
	path := r.hexPath(hex)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	colorVertices(r.strokeVs, strokeColor)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawLabel(target *ebiten.Image, hex hexmap.Hex, fill color.RGBA) {
	// Подписи помещаются только на достаточно крупные гексы.
	if r.layout.Size*r.scale < 18 {
		return
	}
	x, y := r.WorldToScreen(r.layout.HexToWorld(hex))
	label := fmt.Sprintf("%d,%d", hex.Q, hex.R)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColorFor(fill, r.colors))
	text.Draw(target, label, r.fontFace, op)
}

func colorVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
