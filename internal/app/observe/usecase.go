package observe

import (
	"context"
	"errors"

	"ashfall/internal/domain/creature"
	"ashfall/internal/domain/world"
)

var ErrNoResidentZone = errors.New("no resident zone")

// Session is the read surface the transition controller exposes.
type Session interface {
	ActiveZone() *world.ZoneRecord
	ActiveGrid() *world.Grid
	Creatures() []*creature.Creature
	Characters() []*creature.Character
	TravelerPos() world.Point
	ZoneList() []world.ZoneRecord
}

type UseCase struct {
	Session Session
}

// CurrentZone returns the UI view of the resident zone.
func (u UseCase) CurrentZone(_ context.Context) (ZoneView, error) {
	z := u.Session.ActiveZone()
	if z == nil {
		return ZoneView{}, ErrNoResidentZone
	}
	return ZoneView{
		Key:            z.Key,
		Name:           z.Name,
		Biome:          string(z.Biome),
		DangerLevel:    z.DangerLevel,
		LootMultiplier: z.LootMultiplier,
		HasMerchant:    z.HasMerchant,
		Visited:        z.Visited,
		Traveler:       u.Session.TravelerPos(),
	}, nil
}

// ListZones enumerates every defined zone for tooling and debug UI.
func (u UseCase) ListZones(_ context.Context) []ZoneSummary {
	zones := u.Session.ZoneList()
	out := make([]ZoneSummary, 0, len(zones))
	for _, z := range zones {
		out = append(out, ZoneSummary{
			Key:     z.Key,
			Name:    z.Name,
			Biome:   string(z.Biome),
			Width:   z.Width,
			Height:  z.Height,
			Danger:  z.DangerLevel,
			Visited: z.Visited,
			Exits:   len(z.Exits),
		})
	}
	return out
}

// MapView renders the resident grid plus entity positions.
func (u UseCase) MapView(_ context.Context) (MapView, error) {
	z := u.Session.ActiveZone()
	grid := u.Session.ActiveGrid()
	if z == nil || grid == nil {
		return MapView{}, ErrNoResidentZone
	}

	rows := make([][]string, grid.Height())
	for y := 0; y < grid.Height(); y++ {
		row := make([]string, grid.Width())
		for x := 0; x < grid.Width(); x++ {
			row[x] = string(grid.At(x, y))
		}
		rows[y] = row
	}

	view := MapView{
		Zone:     z.Key,
		Width:    grid.Width(),
		Height:   grid.Height(),
		Tiles:    rows,
		Traveler: u.Session.TravelerPos(),
	}
	for _, c := range u.Session.Creatures() {
		view.Creatures = append(view.Creatures, CreatureView{
			ID:        c.ID,
			Archetype: string(c.Archetype),
			Pos:       c.Pos,
			HP:        c.HP,
			MaxHP:     c.MaxHP,
			Aggro:     c.Aggro,
			State:     string(c.State),
		})
	}
	for _, c := range u.Session.Characters() {
		view.Characters = append(view.Characters, CharacterView{
			ID:        c.ID,
			Archetype: string(c.Archetype),
			Name:      c.Name,
			Pos:       c.Pos,
		})
	}
	return view, nil
}
