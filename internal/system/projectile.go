// internal/system/projectile.go
package system

import (
	"time"

	"go-hex-defense/internal/component"
	"go-hex-defense/internal/entity"
	"go-hex-defense/internal/event"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
	"go-hex-defense/pkg/utils"
)

// ExpiryHook decides what an expired projectile does at its final position.
// It runs after the projectile is removed from the world.
type ExpiryHook func(id types.EntityID, p component.Projectile, at utils.Vec2) event.Impact

// ProjectileSystem двигает снаряды по прямой и удаляет их по истечении времени жизни.
type ProjectileSystem struct {
	ecs    *entity.ECS
	layout hexmap.Layout
	queue  *event.Queue
	hook   ExpiryHook
}

// NewProjectileSystem uses SplashDamage when hook is nil.
func NewProjectileSystem(ecs *entity.ECS, layout hexmap.Layout, queue *event.Queue, hook ExpiryHook) *ProjectileSystem {
	s := &ProjectileSystem{ecs: ecs, layout: layout, queue: queue}
	s.SetHook(hook)
	return s
}

func (s *ProjectileSystem) SetHook(hook ExpiryHook) {
	if hook == nil {
		hook = SplashDamage(s.ecs, s.layout)
	}
	s.hook = hook
}

// Update moves every projectile along its launch direction. A projectile
// travels for at most its remaining lifetime, so its final position does not
// depend on how the last tick was sliced.
func (s *ProjectileSystem) Update(dt time.Duration) []event.Impact {
	if dt <= 0 {
		return nil
	}
	var impacts []event.Impact
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.Destroy(id)
			continue
		}

		step := min(dt, proj.Remaining)
		pos.Set(pos.Vec().Add(proj.Direction.Scale(proj.Speed * step.Seconds())))
		proj.Remaining -= dt
		if proj.Remaining > 0 {
			continue
		}

		at := pos.Vec()
		expired := *proj
		s.ecs.Destroy(id)
		impact := s.hook(id, expired, at)
		impact.Projectile = id
		s.queue.Push(event.ProjectileExpired, impact)
		impacts = append(impacts, impact)
	}
	return impacts
}

// SplashDamage hits every living walker standing on the cell where the
// projectile expired.
func SplashDamage(ecs *entity.ECS, layout hexmap.Layout) ExpiryHook {
	return func(id types.EntityID, p component.Projectile, at utils.Vec2) event.Impact {
		impact := event.Impact{
			Hex:      layout.WorldToHex(at),
			Position: at,
			Damage:   p.Damage,
		}
		if p.Damage <= 0 {
			return impact
		}
		for _, walker := range entity.SortedIDs(ecs.Enemies) {
			pos, ok := ecs.Positions[walker]
			if !ok || layout.WorldToHex(pos.Vec()) != impact.Hex {
				continue
			}
			if h, ok := ecs.Healths[walker]; !ok || h.Value <= 0 {
				continue
			}
			ApplyDamage(ecs, walker, p.Damage)
			impact.Hits = append(impact.Hits, walker)
		}
		return impact
	}
}
