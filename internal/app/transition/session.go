package transition

import (
	"ashfall/internal/domain/creature"
	"ashfall/internal/domain/world"
)

// Read surface for gameplay collaborators. The returned creature and
// character instances are the live ones: combat and AI mutate their
// health, position and behavior state in place, and the next departure
// snapshot picks those writes up. Zone records come back as copies so
// readers never observe a half-applied activation.

func (c *Controller) ActiveZone() *world.ZoneRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	z := c.Graph.Active()
	if z == nil {
		return nil
	}
	view := *z
	return &view
}

func (c *Controller) ActiveGrid() *world.Grid {
	c.mu.Lock()
	defer c.mu.Unlock()
	z := c.Graph.Active()
	if z == nil {
		return nil
	}
	return c.grids[z.Key]
}

func (c *Controller) Creatures() []*creature.Creature {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creatures
}

func (c *Controller) Characters() []*creature.Character {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.characters
}

func (c *Controller) TravelerPos() world.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.traveler
}

// ZoneList copies every record in definition order.
func (c *Controller) ZoneList() []world.ZoneRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	zones := c.Graph.AllZones()
	out := make([]world.ZoneRecord, 0, len(zones))
	for _, z := range zones {
		out = append(out, *z)
	}
	return out
}

// MarkSlotCleared permanently retires a spawn slot in the active zone,
// for collaborators that destroy a spawn source for good.
func (c *Controller) MarkSlotCleared(p world.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if z := c.Graph.Active(); z != nil {
		z.ClearSlot(p)
	}
}
