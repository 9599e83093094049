// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ants.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp defs: %v", err)
	}
	return path
}

func TestLoadAntDefinitions_OverlaysNamedKinds(t *testing.T) {
	defer func() { AntLibrary = defaultAnts() }()

	path := writeDefs(t, `[
		{"name": "Thrower", "armor": 2, "food_cost": 5, "damage": 2, "max_range": 10, "blocks_path": true}
	]`)
	if err := LoadAntDefinitions(path); err != nil {
		t.Fatalf("LoadAntDefinitions: %v", err)
	}

	thrower := MustAnt("Thrower")
	if thrower.Armor != 2 || thrower.FoodCost != 5 || thrower.Damage != 2 {
		t.Fatalf("overlay not applied: %+v", thrower)
	}
	// Kinds the file does not mention keep their defaults.
	if wall := MustAnt("Wall"); wall.Armor != 4 {
		t.Fatalf("untouched kind changed: %+v", wall)
	}
}

func TestLoadAntDefinitions_RejectsUnknownKind(t *testing.T) {
	defer func() { AntLibrary = defaultAnts() }()

	path := writeDefs(t, `[{"name": "Dragon", "armor": 9}]`)
	if err := LoadAntDefinitions(path); err == nil {
		t.Fatal("unknown ant kind should be rejected")
	}
}

func TestLoadAntDefinitions_MissingFile(t *testing.T) {
	if err := LoadAntDefinitions(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestLoadAntDefinitions_BadJSON(t *testing.T) {
	path := writeDefs(t, `{not json`)
	if err := LoadAntDefinitions(path); err == nil {
		t.Fatal("malformed JSON should error")
	}
}

func TestMustAnt_PanicsOnMiss(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an unregistered kind")
		}
	}()
	MustAnt("Dragon")
}

func TestAntOrder_CoversLibrary(t *testing.T) {
	if len(AntOrder) != len(AntLibrary) {
		t.Fatalf("order lists %d kinds, library holds %d", len(AntOrder), len(AntLibrary))
	}
	for _, name := range AntOrder {
		if _, ok := AntLibrary[name]; !ok {
			t.Fatalf("ordered kind %q missing from the library", name)
		}
	}
}
