// internal/component/visual.go
package component

import "time"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Remaining time.Duration
}
