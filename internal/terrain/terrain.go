// internal/terrain/terrain.go
package terrain

import (
	"fmt"

	"go-hex-defense/internal/config"
	"go-hex-defense/pkg/hexmap"
)

// Uniform is the default cost: every cell costs 1.
var Uniform hexmap.CostFunc = hexmap.UniformCost

// Blocked marks the given coordinates impassable and every other cell uniform.
func Blocked(coords ...hexmap.Hex) hexmap.CostFunc {
	if len(coords) == 0 {
		return Uniform
	}
	blocked := make(map[hexmap.Hex]struct{}, len(coords))
	for _, h := range coords {
		blocked[h] = struct{}{}
	}
	return func(h hexmap.Hex) (int, bool) {
		if _, ok := blocked[h]; ok {
			return 0, false
		}
		return 1, true
	}
}

// Combine returns a cost that is impassable when any part is, and otherwise
// the largest cost among parts.
func Combine(parts ...hexmap.CostFunc) hexmap.CostFunc {
	switch len(parts) {
	case 0:
		return Uniform
	case 1:
		return parts[0]
	}
	return func(h hexmap.Hex) (int, bool) {
		best := 1
		for _, part := range parts {
			c, ok := part(h)
			if !ok {
				return 0, false
			}
			best = max(best, c)
		}
		return best, true
	}
}

// FromConfig builds the cost function described by a scenario's terrain section.
func FromConfig(cfg config.TerrainConfig) (hexmap.CostFunc, error) {
	var parts []hexmap.CostFunc
	if len(cfg.Blocked) > 0 {
		hexes := make([]hexmap.Hex, len(cfg.Blocked))
		for i, c := range cfg.Blocked {
			hexes[i] = c.Hex()
		}
		parts = append(parts, Blocked(hexes...))
	}
	if cfg.CostScript != "" {
		s, err := NewScriptCost(cfg.CostScript)
		if err != nil {
			return nil, fmt.Errorf("terrain: %w", err)
		}
		parts = append(parts, s.Cost)
	}
	return Combine(parts...), nil
}
