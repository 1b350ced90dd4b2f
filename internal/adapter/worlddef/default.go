package worlddef

import "ashfall/internal/domain/world"

// Default returns the built-in world used when no definition file is
// configured: six zones, one per biome, hung off the starting crossing.
func Default() Definition {
	return Definition{
		Start:    "start",
		Traveler: world.Point{X: 25, Y: 25},
		Zones: []ZoneDef{
			{
				Key: "start", Name: "Dustbowl Crossing", Biome: "wasteland",
				Width: 50, Height: 50, Danger: 1, Loot: 1, Enemies: 4,
				Exits: []ExitDef{
					{Dir: "north", To: "ruins_south", Entry: world.Point{X: 25, Y: 48}},
					{Dir: "east", To: "deep_forest", Entry: world.Point{X: 1, Y: 25}},
					{Dir: "south", To: "haven", Entry: world.Point{X: 25, Y: 1}},
					{Dir: "west", To: "old_caverns", Entry: world.Point{X: 48, Y: 25}},
				},
			},
			{
				Key: "ruins_south", Name: "Shattered Quarter", Biome: "ruins",
				Width: 50, Height: 50, Danger: 2, Loot: 1.4, Enemies: 6,
				Exits: []ExitDef{
					{Dir: "south", To: "start", Entry: world.Point{X: 25, Y: 1}},
					{Dir: "north", To: "vault_lab", Entry: world.Point{X: 25, Y: 48}},
				},
			},
			{
				Key: "deep_forest", Name: "Bramblewood", Biome: "forest",
				Width: 50, Height: 50, Danger: 1.5, Loot: 1.2, Enemies: 5,
				Exits: []ExitDef{
					{Dir: "west", To: "start", Entry: world.Point{X: 48, Y: 25}},
				},
			},
			{
				Key: "old_caverns", Name: "Sunken Caverns", Biome: "cave",
				Width: 50, Height: 50, Danger: 3, Loot: 1.6, Enemies: 8,
				Exits: []ExitDef{
					{Dir: "east", To: "start", Entry: world.Point{X: 1, Y: 25}},
				},
			},
			{
				Key: "haven", Name: "Haven", Biome: "settlement",
				Width: 50, Height: 50, Danger: 0, Loot: 1, Enemies: 0, Merchant: true,
				Exits: []ExitDef{
					{Dir: "north", To: "start", Entry: world.Point{X: 25, Y: 48}},
				},
			},
			{
				Key: "vault_lab", Name: "Vault Annex", Biome: "laboratory",
				Width: 50, Height: 50, Danger: 4, Loot: 2, Enemies: 6,
				Exits: []ExitDef{
					{Dir: "south", To: "ruins_south", Entry: world.Point{X: 25, Y: 1}},
				},
			},
		},
	}
}
