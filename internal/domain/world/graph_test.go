package world

import (
	"errors"
	"testing"
)

func twoZoneSet() []*ZoneRecord {
	return []*ZoneRecord{
		{
			Key: "start", Name: "Dustbowl Crossing", Biome: BiomeWasteland,
			Width: 50, Height: 50,
			Exits: []ExitEdge{{Direction: DirNorth, TargetKey: "ruins_south", Entry: Point{X: 25, Y: 48}}},
		},
		{
			Key: "ruins_south", Name: "Shattered Quarter", Biome: BiomeRuins,
			Width: 50, Height: 50,
			Exits: []ExitEdge{{Direction: DirSouth, TargetKey: "start", Entry: Point{X: 25, Y: 1}}},
		},
	}
}

func TestBuildGraphAssignsSeeds(t *testing.T) {
	g, err := BuildGraph(twoZoneSet())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	z, ok := g.Get("start")
	if !ok {
		t.Fatalf("start zone missing")
	}
	if z.Seed != SeedForKey("start") {
		t.Fatalf("seed %d not derived from key", z.Seed)
	}
}

func TestBuildGraphRejectsUnknownExitTarget(t *testing.T) {
	records := twoZoneSet()
	records[0].Exits[0].TargetKey = "nowhere"
	if _, err := BuildGraph(records); !errors.Is(err, ErrInvalidWorld) {
		t.Fatalf("expected ErrInvalidWorld, got %v", err)
	}
}

func TestBuildGraphRejectsBadDimensions(t *testing.T) {
	records := twoZoneSet()
	records[1].Height = 0
	if _, err := BuildGraph(records); !errors.Is(err, ErrInvalidWorld) {
		t.Fatalf("expected ErrInvalidWorld, got %v", err)
	}
}

func TestBuildGraphRejectsEntryOutOfBounds(t *testing.T) {
	records := twoZoneSet()
	records[0].Exits[0].Entry = Point{X: 25, Y: 50}
	if _, err := BuildGraph(records); !errors.Is(err, ErrInvalidWorld) {
		t.Fatalf("expected ErrInvalidWorld, got %v", err)
	}
}

func TestSetActiveMarksVisited(t *testing.T) {
	g, err := BuildGraph(twoZoneSet())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	prev, ok := g.SetActive("start")
	if !ok || prev != "" {
		t.Fatalf("first SetActive: prev=%q ok=%v", prev, ok)
	}
	if z, _ := g.Get("start"); !z.Visited {
		t.Fatalf("active zone should be marked visited")
	}

	prev, ok = g.SetActive("ruins_south")
	if !ok || prev != "start" {
		t.Fatalf("second SetActive: prev=%q ok=%v", prev, ok)
	}

	// Absent key is a silent no-op.
	prev, ok = g.SetActive("nowhere")
	if ok {
		t.Fatalf("absent key must not activate")
	}
	if prev != "ruins_south" || g.Active().Key != "ruins_south" {
		t.Fatalf("active pointer moved on absent key")
	}
}

func TestGridWalkability(t *testing.T) {
	g := NewGrid(4, 3, TileGrass)
	g.Set(1, 1, TileWater)
	if g.Walkable(1, 1) {
		t.Fatalf("water should block")
	}
	if !g.Walkable(0, 0) {
		t.Fatalf("grass should walk")
	}
	if g.Walkable(-1, 0) || g.Walkable(4, 2) {
		t.Fatalf("out of bounds should block")
	}
	if g.At(99, 99) != TileStoneWall {
		t.Fatalf("out-of-bounds read should present a wall")
	}
}
