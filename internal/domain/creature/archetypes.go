package creature

import "ashfall/internal/domain/world"

type Archetype string

// Hostile archetypes.
const (
	ScavRat        Archetype = "scav_rat"
	RustHound      Archetype = "rust_hound"
	AshStalker     Archetype = "ash_stalker"
	FeralGhoul     Archetype = "feral_ghoul"
	RubbleCrawler  Archetype = "rubble_crawler"
	ThornBeast     Archetype = "thorn_beast"
	CaveLurker     Archetype = "cave_lurker"
	BroodSpider    Archetype = "brood_spider"
	Bandit         Archetype = "bandit"
	SecurityDrone  Archetype = "security_drone"
	LabAberration  Archetype = "lab_aberration"
	DustWraith     Archetype = "dust_wraith"
	VaultHorror    Archetype = "vault_horror"
	ChromeSentinel Archetype = "chrome_sentinel"
	Broodmother    Archetype = "broodmother"
)

// Passive archetypes.
const (
	DustHare    Archetype = "dust_hare"
	CarrionBird Archetype = "carrion_bird"
	MoleRat     Archetype = "mole_rat"
	GlowMoth    Archetype = "glow_moth"
	StrayDog    Archetype = "stray_dog"
)

// Non-hostile character archetypes.
const (
	Merchant Archetype = "merchant"
	Villager Archetype = "villager"
)

type archetypeDef struct {
	BaseHP int
}

var archetypeDefs = map[Archetype]archetypeDef{
	ScavRat:        {BaseHP: 8},
	RustHound:      {BaseHP: 14},
	AshStalker:     {BaseHP: 18},
	FeralGhoul:     {BaseHP: 20},
	RubbleCrawler:  {BaseHP: 12},
	ThornBeast:     {BaseHP: 16},
	CaveLurker:     {BaseHP: 15},
	BroodSpider:    {BaseHP: 10},
	Bandit:         {BaseHP: 22},
	SecurityDrone:  {BaseHP: 24},
	LabAberration:  {BaseHP: 26},
	DustWraith:     {BaseHP: 30},
	VaultHorror:    {BaseHP: 40},
	ChromeSentinel: {BaseHP: 36},
	Broodmother:    {BaseHP: 34},
	DustHare:       {BaseHP: 4},
	CarrionBird:    {BaseHP: 3},
	MoleRat:        {BaseHP: 5},
	GlowMoth:       {BaseHP: 2},
	StrayDog:       {BaseHP: 6},
	Merchant:       {BaseHP: 1},
	Villager:       {BaseHP: 1},
}

// Known reports whether the archetype tag is still valid. Snapshots that
// reference retired tags are skipped on restoration.
func Known(tag string) bool {
	_, ok := archetypeDefs[Archetype(tag)]
	return ok
}

type Weighted struct {
	Archetype Archetype
	Weight    int
}

var hostileTables = map[world.Biome][]Weighted{
	world.BiomeWasteland:  {{ScavRat, 4}, {RustHound, 3}, {AshStalker, 2}},
	world.BiomeRuins:      {{RubbleCrawler, 4}, {FeralGhoul, 3}, {Bandit, 2}},
	world.BiomeForest:     {{ThornBeast, 4}, {RustHound, 2}, {BroodSpider, 3}},
	world.BiomeCave:       {{CaveLurker, 4}, {BroodSpider, 3}, {MoleRat, 1}},
	world.BiomeSettlement: {{ScavRat, 3}, {Bandit, 1}},
	world.BiomeLaboratory: {{SecurityDrone, 3}, {LabAberration, 3}, {FeralGhoul, 1}},
}

var specialTables = map[world.Biome][]Archetype{
	world.BiomeWasteland:  {DustWraith},
	world.BiomeRuins:      {DustWraith, VaultHorror},
	world.BiomeForest:     {Broodmother},
	world.BiomeCave:       {Broodmother, VaultHorror},
	world.BiomeSettlement: {DustWraith},
	world.BiomeLaboratory: {ChromeSentinel, VaultHorror},
}

var passiveTables = map[world.Biome][]Weighted{
	world.BiomeWasteland:  {{DustHare, 3}, {CarrionBird, 2}},
	world.BiomeRuins:      {{CarrionBird, 3}, {MoleRat, 2}},
	world.BiomeForest:     {{DustHare, 3}, {GlowMoth, 2}, {StrayDog, 1}},
	world.BiomeCave:       {{MoleRat, 3}, {GlowMoth, 2}},
	world.BiomeSettlement: {{StrayDog, 3}, {DustHare, 1}},
	world.BiomeLaboratory: {{GlowMoth, 1}},
}

// passiveCountRange bounds how many passive creatures a biome spawns on
// a first visit; the exact count is drawn from the spawn RNG.
var passiveCountRange = map[world.Biome][2]int{
	world.BiomeWasteland:  {2, 5},
	world.BiomeRuins:      {1, 4},
	world.BiomeForest:     {4, 8},
	world.BiomeCave:       {1, 3},
	world.BiomeSettlement: {3, 6},
	world.BiomeLaboratory: {0, 2},
}

func HostileTable(biome world.Biome) []Weighted  { return hostileTables[biome] }
func SpecialTable(biome world.Biome) []Archetype { return specialTables[biome] }
func PassiveTable(biome world.Biome) []Weighted  { return passiveTables[biome] }

func PassiveCountRange(biome world.Biome) (int, int) {
	r := passiveCountRange[biome]
	return r[0], r[1]
}

// villagerNames feeds deterministic display names for settlement
// characters.
var villagerNames = []string{
	"Mara", "Tobin", "Edda", "Silas", "Wren", "Harlan", "Petra", "Joss",
}

func VillagerName(i int) string {
	return villagerNames[i%len(villagerNames)]
}
