// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Library holds every enemy and building definition, keyed by ID.
// It is passed to the game explicitly; there is no package-level registry.
type Library struct {
	Enemies   map[string]EnemyDefinition
	Buildings map[string]BuildingDefinition
}

type libraryFile struct {
	Enemies   []EnemyDefinition    `yaml:"enemies"`
	Buildings []BuildingDefinition `yaml:"buildings"`
}

const (
	DefaultEnemyID    = "ENEMY_WALKER"
	DefaultBuildingID = "BUILDING_TURRET"
)

// DefaultLibrary returns the built-in definitions used when no file is given.
func DefaultLibrary() *Library {
	return &Library{
		Enemies: map[string]EnemyDefinition{
			DefaultEnemyID: {
				ID:     DefaultEnemyID,
				Name:   "Walker",
				Health: 30,
				Speed:  1.1,
				Visuals: Visuals{
					Color:        Color{R: 204, G: 179, B: 153, A: 255},
					RadiusFactor: 0.35,
				},
			},
		},
		Buildings: map[string]BuildingDefinition{
			DefaultBuildingID: {
				ID:   DefaultBuildingID,
				Name: "Turret",
				Combat: CombatStats{
					AttackPeriod:       800 * time.Millisecond,
					ProjectileSpeed:    3.0,
					ProjectileLifetime: 2 * time.Second,
					Damage:             10,
					Range:              4,
				},
				Visuals: Visuals{
					Color:        Color{R: 70, G: 130, B: 180, A: 255},
					RadiusFactor: 0.6,
					StrokeWidth:  2,
				},
			},
		},
	}
}

// LoadLibrary reads a YAML definitions file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d enemy and %d building definitions from %s", len(lib.Enemies), len(lib.Buildings), path)
	return lib, nil
}

// ParseLibrary decodes and validates YAML definitions.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Enemies:   make(map[string]EnemyDefinition, len(file.Enemies)),
		Buildings: make(map[string]BuildingDefinition, len(file.Buildings)),
	}
	for _, def := range file.Enemies {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		lib.Enemies[def.ID] = def
	}
	for _, def := range file.Buildings {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.Buildings[def.ID]; dup {
			return nil, fmt.Errorf("duplicate building definition %q", def.ID)
		}
		lib.Buildings[def.ID] = def
	}
	return lib, nil
}

func (d EnemyDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("enemy definition without id")
	case d.Speed <= 0:
		return fmt.Errorf("enemy %q: speed must be positive", d.ID)
	case d.Health <= 0:
		return fmt.Errorf("enemy %q: health must be positive", d.ID)
	}
	return nil
}

func (d BuildingDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("building definition without id")
	case d.Combat.AttackPeriod <= 0:
		return fmt.Errorf("building %q: attack_period must be positive", d.ID)
	case d.Combat.ProjectileSpeed < 0:
		return fmt.Errorf("building %q: projectile_speed must not be negative", d.ID)
	case d.Combat.ProjectileLifetime <= 0:
		return fmt.Errorf("building %q: projectile_lifetime must be positive", d.ID)
	case d.Combat.Range < 0:
		return fmt.Errorf("building %q: range must not be negative", d.ID)
	}
	return nil
}
