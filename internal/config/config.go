// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth       = 1200
	ScreenHeight      = 900
	PixelsPerUnit     = 64.0 // масштаб мировых единиц в пиксели для просмотрщика
	HexSize           = 0.3  // внешний радиус гекса в мировых единицах
	MapRadius         = 13
	MaxDeltaTime      = 250 * time.Millisecond // больше за один кадр не симулируем
	TickStep          = 100 * time.Millisecond
	ClickDebounceTime = 100 * time.Millisecond
	ArrivalEpsilon    = 1e-3 // мировых единиц

	SpawnInterval = time.Second
	MaxWalkers    = 5

	DebugAddr = "localhost:6060"

	// Элементы интерфейса
	IndicatorOffsetX = 30
	IndicatorRadius  = 12
	ButtonSize       = 12
	ButtonSpacing    = 45
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PassableColor    = color.RGBA{70, 100, 120, 220}
	ImpassableColor  = color.RGBA{150, 70, 70, 220}
	PathColor        = color.RGBA{200, 190, 90, 230}
	RouteColor       = color.RGBA{255, 215, 0, 255}
	PickColor        = color.RGBA{50, 205, 50, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	ProjectileColor  = color.RGBA{255, 255, 255, 255}
	DamageFlashColor = color.RGBA{255, 60, 60, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	StrokeWidth      = 2.0

	SpeedButtonColors = []color.RGBA{{60, 179, 113, 255}, {255, 165, 0, 255}, {220, 20, 60, 255}}
	SpeedSteps        = []float64{1, 2, 4}
	PauseButtonColor  = color.RGBA{200, 200, 200, 255}
	PlayButtonColor   = color.RGBA{60, 179, 113, 255}
	IdleStateColor    = color.RGBA{90, 90, 110, 255}
	PickStateColor    = PickColor
	RouteStateColor   = RouteColor
)

// DefaultWaypoints is the walker route: entry, two checkpoints, exit.
var DefaultWaypoints = []Coord{{0, -13}, {5, -7}, {0, 0}, {-9, 13}}
