package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-hex-defense/pkg/hexmap"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Orientation() != hexmap.Flat {
		t.Fatal("default layout should be flat")
	}
	wp := cfg.Waypoints()
	if len(wp) != 4 || wp[0] != (hexmap.Hex{Q: 0, R: -13}) || wp[3] != (hexmap.Hex{Q: -9, R: 13}) {
		t.Fatalf("waypoints = %v", wp)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	doc := `
map:
  radius: 6
  layout: pointy
route:
  waypoints: [[0, -6], [0, 6]]
spawn:
  interval: 250ms
buildings:
  - id: BUILDING_TURRET
    at: [1, 1]
terrain:
  blocked: [[0, 0]]
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Map.Radius != 6 || cfg.Orientation() != hexmap.Pointy {
		t.Fatalf("map = %+v", cfg.Map)
	}
	if cfg.Map.HexSize != HexSize {
		t.Fatalf("hex size default lost: %v", cfg.Map.HexSize)
	}
	if len(cfg.Route.Waypoints) != 2 {
		t.Fatalf("waypoints = %v", cfg.Route.Waypoints)
	}
	if cfg.Spawn.Interval != 250*time.Millisecond || cfg.Spawn.MaxWalkers != MaxWalkers {
		t.Fatalf("spawn = %+v", cfg.Spawn)
	}
	if len(cfg.Buildings) != 1 || cfg.Buildings[0].At.Hex() != (hexmap.Hex{Q: 1, R: 1}) {
		t.Fatalf("buildings = %+v", cfg.Buildings)
	}
	if len(cfg.Terrain.Blocked) != 1 {
		t.Fatalf("terrain = %+v", cfg.Terrain)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"layout", "map: {layout: round}", "map.layout"},
		{"waypoint_outside", "map: {radius: 2}\nroute: {waypoints: [[0, 0], [5, 0]]}", "outside the map"},
		{"empty_route", "route: {waypoints: []}", "must not be empty"},
		{"epsilon", "movement: {arrival_epsilon: 0}", "arrival_epsilon"},
		{"interval", "spawn: {interval: 0s}", "spawn.interval"},
		{"tick_step", "tick_step: 1s\nmax_delta: 100ms", "exceeds max_delta"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.doc))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v, want %q", err, c.want)
			}
		})
	}
}

func TestLoadResolvesDefinitionsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte("definitions: defs.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Definitions != filepath.Join(dir, "defs.yaml") {
		t.Fatalf("definitions = %q", cfg.Definitions)
	}
	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	if err := os.WriteFile(path, []byte("enemies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Файлы, которые не отслеживаются, не должны давать событий.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("enemies: []\nbuildings: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != want {
			t.Fatalf("event for %q, want %q", got, want)
		}
	case err := <-w.Errors:
		t.Fatal(err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for the watched file")
	}
}
