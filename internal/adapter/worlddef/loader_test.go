package worlddef

import (
	"errors"
	"testing"

	"ashfall/internal/domain/world"
)

const sampleYAML = `
start: start
traveler: {x: 25, y: 25}
zones:
  - key: start
    name: Dustbowl Crossing
    biome: wasteland
    width: 50
    height: 50
    danger: 1
    loot: 1.0
    enemies: 4
    exits:
      - dir: north
        to: ruins_south
        entry: {x: 25, y: 48}
  - key: ruins_south
    name: Shattered Quarter
    biome: ruins
    width: 50
    height: 50
    danger: 2
    loot: 1.4
    enemies: 6
    exits:
      - dir: south
        to: start
        entry: {x: 25, y: 1}
`

func TestLoadSampleDefinition(t *testing.T) {
	graph, def, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if def.Start != "start" {
		t.Fatalf("start zone %q", def.Start)
	}
	z, ok := graph.Get("start")
	if !ok {
		t.Fatalf("start zone missing from graph")
	}
	if z.Biome != world.BiomeWasteland || z.EnemyCount != 4 {
		t.Fatalf("zone fields lost: %+v", z)
	}
	if len(z.Exits) != 1 || z.Exits[0].Entry != (world.Point{X: 25, Y: 48}) {
		t.Fatalf("exit edge lost: %+v", z.Exits)
	}
}

func TestLoadRejectsUnknownDirection(t *testing.T) {
	bad := `
start: a
zones:
  - key: a
    name: A
    biome: forest
    width: 10
    height: 10
    exits:
      - dir: up
        to: a
        entry: {x: 1, y: 1}
`
	if _, _, err := Load([]byte(bad)); !errors.Is(err, world.ErrInvalidWorld) {
		t.Fatalf("expected ErrInvalidWorld, got %v", err)
	}
}

func TestLoadRejectsUnknownBiome(t *testing.T) {
	bad := `
start: a
zones:
  - key: a
    name: A
    biome: swamp
    width: 10
    height: 10
`
	if _, _, err := Load([]byte(bad)); !errors.Is(err, world.ErrInvalidWorld) {
		t.Fatalf("expected ErrInvalidWorld, got %v", err)
	}
}

func TestLoadRejectsMissingStart(t *testing.T) {
	bad := `
start: elsewhere
zones:
  - key: a
    name: A
    biome: forest
    width: 10
    height: 10
`
	if _, _, err := Load([]byte(bad)); !errors.Is(err, world.ErrInvalidWorld) {
		t.Fatalf("expected ErrInvalidWorld, got %v", err)
	}
}

func TestDefaultWorldBuilds(t *testing.T) {
	def := Default()
	graph, err := Build(def)
	if err != nil {
		t.Fatalf("default world must build: %v", err)
	}
	if len(graph.AllZones()) != 6 {
		t.Fatalf("default world has %d zones", len(graph.AllZones()))
	}
	// Every biome appears exactly once in the default world.
	seen := map[world.Biome]int{}
	for _, z := range graph.AllZones() {
		seen[z.Biome]++
	}
	for _, b := range world.Biomes {
		if seen[b] != 1 {
			t.Fatalf("biome %s appears %d times", b, seen[b])
		}
	}
}
