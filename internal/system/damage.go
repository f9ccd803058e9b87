// internal/system/damage.go
package system

import (
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/types"
)

const DamageFlashDuration = 150 * time.Millisecond

// ApplyDamage наносит урон сущности и запускает вспышку.
// Returns true when the hit brought health to zero.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, damage int) bool {
	health, ok := ecs.Healths[id]
	if !ok || damage <= 0 {
		return false
	}
	wasAlive := health.Value > 0
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
	if _, isEnemy := ecs.Enemies[id]; isEnemy {
		ecs.DamageFlashes[id] = &component.DamageFlash{Remaining: DamageFlashDuration}
	}
	return wasAlive && health.Value == 0
}
