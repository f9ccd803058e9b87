// internal/system/visual_effect.go
package system

import (
	"time"

	"go-hex-defense/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет таймеры вспышек урона.
func (s *VisualEffectSystem) Update(dt time.Duration) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Remaining -= dt
		if flash.Remaining <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
