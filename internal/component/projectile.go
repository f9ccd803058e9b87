// internal/component/projectile.go
package component

import (
	"time"

	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/utils"
)

// Projectile представляет летящий снаряд.
// Direction is a unit vector fixed at launch; projectiles do not home.
type Projectile struct {
	Source    types.EntityID
	Speed     float64
	Direction utils.Vec2
	Remaining time.Duration
	Damage    int
}
