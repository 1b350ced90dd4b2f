package observe

import "ashfall/internal/domain/world"

type ZoneView struct {
	Key            string      `json:"key"`
	Name           string      `json:"name"`
	Biome          string      `json:"biome"`
	DangerLevel    float64     `json:"danger_level"`
	LootMultiplier float64     `json:"loot_multiplier"`
	HasMerchant    bool        `json:"has_merchant"`
	Visited        bool        `json:"visited"`
	Traveler       world.Point `json:"traveler"`
}

type ZoneSummary struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Biome   string  `json:"biome"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Danger  float64 `json:"danger"`
	Visited bool    `json:"visited"`
	Exits   int     `json:"exits"`
}

type MapView struct {
	Zone       string          `json:"zone"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Tiles      [][]string      `json:"tiles"`
	Traveler   world.Point     `json:"traveler"`
	Creatures  []CreatureView  `json:"creatures,omitempty"`
	Characters []CharacterView `json:"characters,omitempty"`
}

type CreatureView struct {
	ID        int         `json:"id"`
	Archetype string      `json:"archetype"`
	Pos       world.Point `json:"pos"`
	HP        int         `json:"hp"`
	MaxHP     int         `json:"max_hp"`
	Aggro     bool        `json:"aggro"`
	State     string      `json:"state"`
}

type CharacterView struct {
	ID        int         `json:"id"`
	Archetype string      `json:"archetype"`
	Name      string      `json:"name"`
	Pos       world.Point `json:"pos"`
}
