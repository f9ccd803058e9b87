package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleDefs = `
enemies:
  - id: ENEMY_FAST
    name: Fast
    health: 20
    speed: 2.1
    visuals:
      color: "#ff0000"
      radius_factor: 0.3
buildings:
  - id: BUILDING_SLOW
    name: Slow turret
    combat:
      attack_period: 1500ms
      projectile_speed: 2.5
      projectile_lifetime: 3s
      damage: 5
      range: 2
      facing: 90
    visuals:
      color: "#3366ff80"
`

func TestParseLibrary(t *testing.T) {
	lib, err := ParseLibrary([]byte(sampleDefs))
	if err != nil {
		t.Fatal(err)
	}
	enemy, ok := lib.Enemies["ENEMY_FAST"]
	if !ok {
		t.Fatal("ENEMY_FAST missing")
	}
	if enemy.Speed != 2.1 || enemy.Health != 20 {
		t.Fatalf("enemy = %+v", enemy)
	}
	if enemy.Visuals.Color != (Color{R: 255, A: 255}) {
		t.Fatalf("color = %+v", enemy.Visuals.Color)
	}

	b, ok := lib.Buildings["BUILDING_SLOW"]
	if !ok {
		t.Fatal("BUILDING_SLOW missing")
	}
	if b.Combat.AttackPeriod != 1500*time.Millisecond || b.Combat.ProjectileLifetime != 3*time.Second {
		t.Fatalf("combat = %+v", b.Combat)
	}
	if b.Combat.Facing != 90 || b.Combat.Range != 2 {
		t.Fatalf("combat = %+v", b.Combat)
	}
	if b.Visuals.Color.A != 0x80 {
		t.Fatalf("alpha = %x", b.Visuals.Color.A)
	}
}

func TestParseLibraryRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"no_id", "enemies:\n  - speed: 1\n    health: 1\n", "without id"},
		{"zero_speed", "enemies:\n  - id: A\n    health: 1\n", "speed"},
		{"duplicate", "enemies:\n  - {id: A, speed: 1, health: 1}\n  - {id: A, speed: 1, health: 1}\n", "duplicate"},
		{"zero_period", "buildings:\n  - id: B\n    combat: {projectile_lifetime: 1s}\n", "attack_period"},
		{"bad_color", "enemies:\n  - id: A\n    speed: 1\n    health: 1\n    visuals: {color: \"#12\"}\n", "invalid color"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseLibrary([]byte(c.doc))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v, want it to mention %q", err, c.want)
			}
		})
	}
}

func TestLoadLibraryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.yaml")
	if err := os.WriteFile(path, []byte(sampleDefs), 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.Enemies) != 1 || len(lib.Buildings) != 1 {
		t.Fatalf("lib = %+v", lib)
	}
	if _, err := LoadLibrary(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestDefaultLibraryIsValid(t *testing.T) {
	lib := DefaultLibrary()
	for _, d := range lib.Enemies {
		if err := d.validate(); err != nil {
			t.Fatal(err)
		}
	}
	for _, d := range lib.Buildings {
		if err := d.validate(); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := lib.Buildings[DefaultBuildingID]; !ok {
		t.Fatal("default building missing")
	}
}
