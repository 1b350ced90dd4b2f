package world

type Biome string

const (
	BiomeWasteland  Biome = "wasteland"
	BiomeRuins      Biome = "ruins"
	BiomeForest     Biome = "forest"
	BiomeCave       Biome = "cave"
	BiomeSettlement Biome = "settlement"
	BiomeLaboratory Biome = "laboratory"
)

// Biomes lists every valid biome tag, in a fixed order.
var Biomes = []Biome{
	BiomeWasteland,
	BiomeRuins,
	BiomeForest,
	BiomeCave,
	BiomeSettlement,
	BiomeLaboratory,
}

func (b Biome) Valid() bool {
	for _, known := range Biomes {
		if b == known {
			return true
		}
	}
	return false
}

// ExitEdge is a directed connection from a zone boundary to an entry
// point inside the target zone. Immutable once the graph is built.
type ExitEdge struct {
	Direction Direction `json:"direction"`
	TargetKey string    `json:"target_key"`
	Entry     Point     `json:"entry"`
}

// ZoneRecord carries the static definition of one zone plus the mutable
// state that survives the zone being non-resident: the visited flag,
// permanently cleared spawn slots, and the entity snapshots taken on
// departure. Records are created once at world-definition time and never
// destroyed during a session.
type ZoneRecord struct {
	Key            string
	Name           string
	Biome          Biome
	Width          int
	Height         int
	DangerLevel    float64
	LootMultiplier float64
	EnemyCount     int
	HasMerchant    bool
	Seed           int64
	Exits          []ExitEdge

	Visited         bool
	ClearedSlots    map[Point]bool
	SavedCreatures  []CreatureSnapshot
	SavedCharacters []CharacterSnapshot
}

// SeedForKey derives the zone seed from its key with a 32-bit FNV-1a
// fold. The default Go string hash is randomized per process, so it can
// never back a save-stable seed.
func SeedForKey(key string) int64 {
	var h uint32 = 2166136261
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return int64(h)
}

// ClearSlot marks a spawn slot as permanently unusable for placement.
func (z *ZoneRecord) ClearSlot(p Point) {
	if z.ClearedSlots == nil {
		z.ClearedSlots = make(map[Point]bool)
	}
	z.ClearedSlots[p] = true
}

func (z *ZoneRecord) SlotCleared(p Point) bool {
	return z.ClearedSlots[p]
}

// HasSavedEntities reports whether a departure left snapshots behind,
// which forces the restoration spawn path on the next entry.
func (z *ZoneRecord) HasSavedEntities() bool {
	return len(z.SavedCreatures) > 0 || len(z.SavedCharacters) > 0
}

// CheckExit returns the exit edge the traveler has reached, if any.
// Directions are checked in the fixed order North, South, West, East.
// A corner tile that would satisfy two exits at once is ambiguous and
// fires nothing; the position is re-checked every movement tick anyway.
func (z *ZoneRecord) CheckExit(pos Point, width, height int) (ExitEdge, bool) {
	var (
		found ExitEdge
		fired int
	)
	for _, dir := range DirectionOrder {
		if !atBoundary(dir, pos, width, height) {
			continue
		}
		for _, edge := range z.Exits {
			if edge.Direction != dir {
				continue
			}
			if fired == 0 {
				found = edge
			}
			fired++
			break
		}
	}
	if fired != 1 {
		return ExitEdge{}, false
	}
	return found, true
}

func atBoundary(dir Direction, pos Point, width, height int) bool {
	switch dir {
	case DirNorth:
		return pos.Y == 0
	case DirSouth:
		return pos.Y == height-1
	case DirWest:
		return pos.X == 0
	case DirEast:
		return pos.X == width-1
	default:
		return false
	}
}
