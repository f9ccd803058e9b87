package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"go-hex-defense/internal/defs"
)

const walkerDefs = `
enemies:
  - id: ENEMY_WALKER
    name: Walker
    health: 30
    speed: 1.1
buildings:
  - id: BUILDING_TURRET
    name: Turret
    combat:
      attack_period: 800ms
      projectile_speed: 3
      projectile_lifetime: 2s
      damage: 10
      range: 4
`

const extraBuilding = `
  - id: BUILDING_SLOW
    name: Slow turret
    combat:
      attack_period: 1500ms
      projectile_speed: 2.5
      projectile_lifetime: 3s
      damage: 5
      range: 2
`

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	cfg, lib, path, err := LoadScenario("", "")
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Fatalf("definitions path = %q, want none", path)
	}
	if _, ok := lib.Buildings[defs.DefaultBuildingID]; !ok {
		t.Fatal("built-in library missing the turret")
	}
	if _, err := NewGame(cfg, lib); err != nil {
		t.Fatal(err)
	}
}

func TestLoadScenarioFollowsDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "defs.yaml"), walkerDefs+extraBuilding)
	writeFile(t, filepath.Join(dir, "scenario.yaml"), "definitions: defs.yaml\nmap:\n  radius: 13\n")

	_, lib, path, err := LoadScenario(filepath.Join(dir, "scenario.yaml"), "")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "defs.yaml") {
		t.Fatalf("definitions path = %q", path)
	}
	if _, ok := lib.Buildings["BUILDING_SLOW"]; !ok {
		t.Fatal("BUILDING_SLOW missing")
	}

	if _, _, _, err := LoadScenario(filepath.Join(dir, "missing.yaml"), ""); err == nil {
		t.Fatal("missing scenario loaded")
	}
	if _, _, _, err := LoadScenario("", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("missing definitions loaded")
	}
}

func TestWatchDefinitionsReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	writeFile(t, path, walkerDefs)

	_, lib, _, err := LoadScenario("", path)
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, nil)
	if err := g.ApplyDefinitions(lib); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := g.WatchDefinitions(ctx, path); err != nil {
		t.Fatal(err)
	}

	// Файл без врага спавна отклоняется, старые определения остаются.
	writeFile(t, path, "buildings: []\n")
	time.Sleep(300 * time.Millisecond)
	if ids := g.Definitions(); len(ids) != 1 {
		t.Fatalf("definitions after a bad reload = %v", ids)
	}

	writeFile(t, path, walkerDefs+extraBuilding)
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if slices.Contains(g.Definitions(), "BUILDING_SLOW") {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("definitions not reloaded: %v", g.Definitions())
}

func TestSampleScenarioRuns(t *testing.T) {
	cfg, lib, path, err := LoadScenario(filepath.Join("..", "..", "scenarios", "default.yaml"), "")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "defs.yaml" {
		t.Fatalf("definitions path = %q", path)
	}
	g, err := NewGame(cfg, lib)
	if err != nil {
		t.Fatal(err)
	}
	route := g.WalkerRoute()
	if len(route) == 0 {
		t.Fatal("sample scenario has no walker route")
	}
	for _, h := range cfg.Terrain.Blocked {
		if route.Contains(h.Hex()) {
			t.Fatalf("route crosses blocked hex %v", h.Hex())
		}
	}
	for i := 0; i < 100; i++ {
		g.Update(cfg.TickStep)
	}
	snap := g.Snapshot()
	if len(snap.Buildings) != 2 || len(snap.Walkers) == 0 {
		t.Fatalf("buildings = %d, walkers = %d", len(snap.Buildings), len(snap.Walkers))
	}
}
