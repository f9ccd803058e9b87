// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the map.
type MapColors struct {
	BackgroundColor color.RGBA
	PassableColor   color.RGBA
	ImpassableColor color.RGBA
	PathColor       color.RGBA // маршрут врагов
	RouteColor      color.RGBA // маршрут, выбранный двумя кликами
	PickColor       color.RGBA // первая выбранная клетка
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	FlashColor      color.RGBA
	StrokeColor     color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds a fixed amount to every channel.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: 255,
	}
}

// textColorFor picks a readable label color for a fill.
func textColorFor(fill color.RGBA, colors *MapColors) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return colors.TextDarkColor
	}
	return colors.TextLightColor
}
