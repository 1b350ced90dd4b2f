package spawn

import (
	"math/rand"

	"ashfall/internal/domain/creature"
	"ashfall/internal/domain/world"
)

// Per-concern seed offsets keep the hostile, passive and character
// placement sequences independent of each other; reordering one concern
// can never shift another's rolls.
const (
	hostileSeedOffset   = 7919
	passiveSeedOffset   = 104729
	characterSeedOffset = 1299709
)

const (
	maxRandomTries   = 30
	maxRingRadius    = 20
	placementMargin  = 3
	specialChanceCap = 0.15
	specialPerDanger = 0.03
)

// Result is one allocation pass: the live entities plus degraded-path
// counters the caller surfaces through logging and metrics.
type Result struct {
	Creatures  []*creature.Creature
	Characters []*creature.Character
	Fresh      bool

	RingFallbacks    int
	CornerFallbacks  int
	SkippedSnapshots int
}

// PlaceFresh runs first-visit placement for a zone. Placement is a pure
// function of the zone record and grid: every random draw comes from
// generators seeded by the stored zone seed plus a fixed per-concern
// offset, so re-running it for a never-visited zone reproduces the same
// archetypes at the same tiles.
func PlaceFresh(z *world.ZoneRecord, g *world.Grid) Result {
	res := Result{Fresh: true}
	occupied := make(map[world.Point]bool)
	rect := insetRect(z.Width, z.Height)
	nextID := 1

	hostileRNG := rand.New(rand.NewSource(z.Seed + hostileSeedOffset))
	for i := 0; i < z.EnemyCount; i++ {
		arch := pickHostile(hostileRNG, z.Biome, z.DangerLevel)
		pos := findSlot(hostileRNG, rect, z, g, occupied, &res)
		occupied[pos] = true
		c, err := creature.New(arch, pos, nextID, z.DangerLevel)
		if err != nil {
			continue
		}
		nextID++
		res.Creatures = append(res.Creatures, c)
	}

	passiveRNG := rand.New(rand.NewSource(z.Seed + passiveSeedOffset))
	lo, hi := creature.PassiveCountRange(z.Biome)
	count := lo
	if hi > lo {
		count += passiveRNG.Intn(hi - lo + 1)
	}
	for i := 0; i < count; i++ {
		arch := pickWeighted(passiveRNG, creature.PassiveTable(z.Biome))
		pos := findSlot(passiveRNG, rect, z, g, occupied, &res)
		occupied[pos] = true
		c, err := creature.New(arch, pos, nextID, 0)
		if err != nil {
			continue
		}
		nextID++
		res.Creatures = append(res.Creatures, c)
	}

	charRNG := rand.New(rand.NewSource(z.Seed + characterSeedOffset))
	if z.HasMerchant {
		pos := findSlot(charRNG, rect, z, g, occupied, &res)
		occupied[pos] = true
		res.Characters = append(res.Characters, &creature.Character{
			ID:        nextID,
			Archetype: creature.Merchant,
			Name:      "Trader " + creature.VillagerName(charRNG.Intn(8)),
			Pos:       pos,
		})
		nextID++
	}
	if z.Biome == world.BiomeSettlement {
		villagers := 1 + charRNG.Intn(3)
		for i := 0; i < villagers; i++ {
			pos := findSlot(charRNG, rect, z, g, occupied, &res)
			occupied[pos] = true
			res.Characters = append(res.Characters, &creature.Character{
				ID:        nextID,
				Archetype: creature.Villager,
				Name:      creature.VillagerName(charRNG.Intn(8)),
				Pos:       pos,
			})
			nextID++
		}
	}

	return res
}

// Restore rehydrates the zone's saved snapshots into live entities and
// clears both snapshot lists. No random placement happens on this path;
// a snapshot whose archetype tag is no longer defined is skipped rather
// than aborting the whole restoration.
func Restore(z *world.ZoneRecord) Result {
	res := Result{}
	nextID := 1
	for _, snap := range z.SavedCreatures {
		c, err := creature.FromSnapshot(snap, nextID)
		if err != nil {
			res.SkippedSnapshots++
			continue
		}
		nextID++
		res.Creatures = append(res.Creatures, c)
	}
	for _, snap := range z.SavedCharacters {
		c, err := creature.CharacterFromSnapshot(snap, nextID)
		if err != nil {
			res.SkippedSnapshots++
			continue
		}
		nextID++
		res.Characters = append(res.Characters, c)
	}
	z.SavedCreatures = nil
	z.SavedCharacters = nil
	return res
}

func pickHostile(rng *rand.Rand, biome world.Biome, danger float64) creature.Archetype {
	specials := creature.SpecialTable(biome)
	chance := danger * specialPerDanger
	if chance > specialChanceCap {
		chance = specialChanceCap
	}
	if len(specials) > 0 && rng.Float64() < chance {
		return specials[rng.Intn(len(specials))]
	}
	return pickWeighted(rng, creature.HostileTable(biome))
}

func pickWeighted(rng *rand.Rand, table []creature.Weighted) creature.Archetype {
	total := 0
	for _, w := range table {
		total += w.Weight
	}
	if total <= 0 {
		return ""
	}
	roll := rng.Intn(total)
	for _, w := range table {
		roll -= w.Weight
		if roll < 0 {
			return w.Archetype
		}
	}
	return table[len(table)-1].Archetype
}

type rect struct {
	minX, minY, w, h int
}

func insetRect(width, height int) rect {
	m := placementMargin
	if width <= 2*m || height <= 2*m {
		m = 0
	}
	return rect{minX: m, minY: m, w: width - 2*m, h: height - 2*m}
}

func (r rect) centre() world.Point {
	return world.Point{X: r.minX + r.w/2, Y: r.minY + r.h/2}
}

func (r rect) corner() world.Point {
	return world.Point{X: r.minX, Y: r.minY}
}

// findSlot is the two-tier placement search: up to 30 uniform samples
// inside the inset rectangle, then an expanding square-ring scan from
// its midpoint, then the rectangle corner as a last resort. It always
// terminates; the corner path accepts a rare overlap instead of failing
// the spawn.
func findSlot(rng *rand.Rand, r rect, z *world.ZoneRecord, g *world.Grid, occupied map[world.Point]bool, res *Result) world.Point {
	for try := 0; try < maxRandomTries; try++ {
		p := world.Point{X: r.minX + rng.Intn(r.w), Y: r.minY + rng.Intn(r.h)}
		if slotFree(p, z, g, occupied) {
			return p
		}
	}

	centre := r.centre()
	for radius := 1; radius <= maxRingRadius; radius++ {
		if p, ok := scanRing(centre, radius, z, g, occupied); ok {
			res.RingFallbacks++
			return p
		}
	}

	res.CornerFallbacks++
	return r.corner()
}

func slotFree(p world.Point, z *world.ZoneRecord, g *world.Grid, occupied map[world.Point]bool) bool {
	if occupied[p] || z.SlotCleared(p) {
		return false
	}
	return g == nil || g.Walkable(p.X, p.Y)
}

// scanRing walks the square ring at the given radius in a fixed order:
// top and bottom rows west to east, then the remaining side columns
// north to south.
func scanRing(centre world.Point, radius int, z *world.ZoneRecord, g *world.Grid, occupied map[world.Point]bool) (world.Point, bool) {
	for x := centre.X - radius; x <= centre.X+radius; x++ {
		for _, y := range []int{centre.Y - radius, centre.Y + radius} {
			p := world.Point{X: x, Y: y}
			if inZone(p, z) && slotFree(p, z, g, occupied) {
				return p, true
			}
		}
	}
	for y := centre.Y - radius + 1; y <= centre.Y+radius-1; y++ {
		for _, x := range []int{centre.X - radius, centre.X + radius} {
			p := world.Point{X: x, Y: y}
			if inZone(p, z) && slotFree(p, z, g, occupied) {
				return p, true
			}
		}
	}
	return world.Point{}, false
}

func inZone(p world.Point, z *world.ZoneRecord) bool {
	return p.X >= 0 && p.X < z.Width && p.Y >= 0 && p.Y < z.Height
}
