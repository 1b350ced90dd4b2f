package world

import (
	"errors"
	"fmt"
)

var ErrInvalidWorld = errors.New("invalid world definition")

// Graph is the fixed collection of zone records and the directed exit
// edges between them. It is built once at startup and owned explicitly
// by the simulation that uses it; there is no process-wide registry.
type Graph struct {
	zones     map[string]*ZoneRecord
	order     []string
	activeKey string
}

// BuildGraph validates the zone set and wires it into a graph. A zone
// with non-positive dimensions, a duplicate key, an exit referencing an
// unknown target, or an entry point outside the target bounds is a
// configuration error and fails construction.
func BuildGraph(records []*ZoneRecord) (*Graph, error) {
	g := &Graph{zones: make(map[string]*ZoneRecord, len(records))}
	for _, z := range records {
		if z.Key == "" {
			return nil, fmt.Errorf("%w: zone with empty key", ErrInvalidWorld)
		}
		if _, dup := g.zones[z.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate zone key %q", ErrInvalidWorld, z.Key)
		}
		if z.Width <= 0 || z.Height <= 0 {
			return nil, fmt.Errorf("%w: zone %q has dimensions %dx%d", ErrInvalidWorld, z.Key, z.Width, z.Height)
		}
		if !z.Biome.Valid() {
			return nil, fmt.Errorf("%w: zone %q has unknown biome %q", ErrInvalidWorld, z.Key, z.Biome)
		}
		z.Seed = SeedForKey(z.Key)
		if z.ClearedSlots == nil {
			z.ClearedSlots = make(map[Point]bool)
		}
		g.zones[z.Key] = z
		g.order = append(g.order, z.Key)
	}
	for _, z := range records {
		for _, edge := range z.Exits {
			target, ok := g.zones[edge.TargetKey]
			if !ok {
				return nil, fmt.Errorf("%w: zone %q exit %s references unknown zone %q", ErrInvalidWorld, z.Key, edge.Direction, edge.TargetKey)
			}
			if edge.Entry.X < 0 || edge.Entry.X >= target.Width || edge.Entry.Y < 0 || edge.Entry.Y >= target.Height {
				return nil, fmt.Errorf("%w: zone %q exit %s entry point (%d,%d) outside %q bounds", ErrInvalidWorld, z.Key, edge.Direction, edge.Entry.X, edge.Entry.Y, edge.TargetKey)
			}
		}
	}
	return g, nil
}

func (g *Graph) Get(key string) (*ZoneRecord, bool) {
	z, ok := g.zones[key]
	return z, ok
}

// SetActive switches the active-zone pointer and marks the target
// visited. An absent key is a silent no-op. The previous key is returned
// so the caller can emit a transition notification.
func (g *Graph) SetActive(key string) (prev string, ok bool) {
	z, found := g.zones[key]
	if !found {
		return g.activeKey, false
	}
	prev = g.activeKey
	z.Visited = true
	g.activeKey = key
	return prev, true
}

// Active returns the currently resident zone, or nil before the first
// SetActive.
func (g *Graph) Active() *ZoneRecord {
	if g.activeKey == "" {
		return nil
	}
	return g.zones[g.activeKey]
}

// AllZones lists every record in definition order. Tooling only.
func (g *Graph) AllZones() []*ZoneRecord {
	out := make([]*ZoneRecord, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, g.zones[key])
	}
	return out
}
