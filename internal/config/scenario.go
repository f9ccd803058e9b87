package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"go-hex-defense/internal/defs"
	"go-hex-defense/pkg/hexmap"
)

// Coord is an axial coordinate written as [q, r].
type Coord [2]int

func (c Coord) Hex() hexmap.Hex {
	return hexmap.Hex{Q: c[0], R: c[1]}
}

// Config describes one simulation scenario.
type Config struct {
	Map         MapConfig        `yaml:"map"`
	Route       RouteConfig      `yaml:"route"`
	Spawn       SpawnConfig      `yaml:"spawn"`
	Movement    MovementConfig   `yaml:"movement"`
	Terrain     TerrainConfig    `yaml:"terrain"`
	Buildings   []BuildingConfig `yaml:"buildings"`
	Definitions string           `yaml:"definitions"` // путь к файлу определений, относительно файла сценария
	TickStep    time.Duration    `yaml:"tick_step"`
	MaxDelta    time.Duration    `yaml:"max_delta"`
	DebugAddr   string           `yaml:"debug_addr"`
}

type MapConfig struct {
	Radius  int     `yaml:"radius"`
	Layout  string  `yaml:"layout"` // "flat" или "pointy"
	HexSize float64 `yaml:"hex_size"`
}

type RouteConfig struct {
	Waypoints []Coord `yaml:"waypoints"`
}

type SpawnConfig struct {
	Enemy      string        `yaml:"enemy"`
	Interval   time.Duration `yaml:"interval"`
	MaxWalkers int           `yaml:"max_walkers"`
}

type MovementConfig struct {
	ArrivalEpsilon float64 `yaml:"arrival_epsilon"`
}

type TerrainConfig struct {
	Blocked    []Coord `yaml:"blocked"`
	CostScript string  `yaml:"cost_script"`
}

type BuildingConfig struct {
	ID string `yaml:"id"`
	At Coord  `yaml:"at"`
}

// Default returns the built-in scenario.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Radius:  MapRadius,
			Layout:  "flat",
			HexSize: HexSize,
		},
		Route: RouteConfig{Waypoints: slices.Clone(DefaultWaypoints)},
		Spawn: SpawnConfig{
			Enemy:      defs.DefaultEnemyID,
			Interval:   SpawnInterval,
			MaxWalkers: MaxWalkers,
		},
		Movement:  MovementConfig{ArrivalEpsilon: ArrivalEpsilon},
		TickStep:  TickStep,
		MaxDelta:  MaxDeltaTime,
		DebugAddr: DebugAddr,
	}
}

// Load reads a YAML scenario on top of Default and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if cfg.Definitions != "" && !filepath.IsAbs(cfg.Definitions) {
		cfg.Definitions = filepath.Join(filepath.Dir(path), cfg.Definitions)
	}
	return cfg, nil
}

// Parse decodes a YAML scenario on top of Default and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Orientation returns the hex orientation named by Map.Layout.
func (c *Config) Orientation() hexmap.Orientation {
	if c.Map.Layout == "pointy" {
		return hexmap.Pointy
	}
	return hexmap.Flat
}

// Waypoints returns the route as hexes.
func (c *Config) Waypoints() []hexmap.Hex {
	out := make([]hexmap.Hex, len(c.Route.Waypoints))
	for i, w := range c.Route.Waypoints {
		out[i] = w.Hex()
	}
	return out
}

func (c *Config) Validate() error {
	var errs []error
	if c.Map.Radius < 0 {
		errs = append(errs, fmt.Errorf("map.radius must not be negative"))
	}
	if c.Map.Layout != "flat" && c.Map.Layout != "pointy" {
		errs = append(errs, fmt.Errorf("map.layout must be flat or pointy, got %q", c.Map.Layout))
	}
	if c.Map.HexSize <= 0 {
		errs = append(errs, fmt.Errorf("map.hex_size must be positive"))
	}
	if len(c.Route.Waypoints) == 0 {
		errs = append(errs, fmt.Errorf("route.waypoints must not be empty"))
	}
	for i, w := range c.Route.Waypoints {
		if w.Hex().Length() > c.Map.Radius {
			errs = append(errs, fmt.Errorf("route.waypoints[%d] %v is outside the map", i, w.Hex()))
		}
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval must be positive"))
	}
	if c.Spawn.MaxWalkers < 0 {
		errs = append(errs, fmt.Errorf("spawn.max_walkers must not be negative"))
	}
	if c.Movement.ArrivalEpsilon <= 0 {
		errs = append(errs, fmt.Errorf("movement.arrival_epsilon must be positive"))
	}
	if c.TickStep <= 0 {
		errs = append(errs, fmt.Errorf("tick_step must be positive"))
	}
	if c.MaxDelta <= 0 {
		errs = append(errs, fmt.Errorf("max_delta must be positive"))
	}
	if c.TickStep > c.MaxDelta {
		errs = append(errs, fmt.Errorf("tick_step %v exceeds max_delta %v", c.TickStep, c.MaxDelta))
	}
	for i, b := range c.Buildings {
		if b.At.Hex().Length() > c.Map.Radius {
			errs = append(errs, fmt.Errorf("buildings[%d] %v is outside the map", i, b.At.Hex()))
		}
	}
	return errors.Join(errs...)
}
