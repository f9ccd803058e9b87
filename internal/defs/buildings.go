package defs

import "time"

// BuildingDefinition holds all the static data for a specific type of building.
type BuildingDefinition struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Combat  CombatStats `yaml:"combat"`
	Visuals Visuals     `yaml:"visuals"`
}

// CombatStats contains parameters related to a building's attack.
type CombatStats struct {
	AttackPeriod       time.Duration `yaml:"attack_period"`
	ProjectileSpeed    float64       `yaml:"projectile_speed"` // world units per second
	ProjectileLifetime time.Duration `yaml:"projectile_lifetime"`
	Damage             int           `yaml:"damage"`
	Range              int           `yaml:"range"`  // hexes; 0 keeps the initial facing
	Facing             float64       `yaml:"facing"` // initial facing in degrees
}
