package worlddef

import (
	"fmt"
	"os"

	"ashfall/internal/domain/world"

	"gopkg.in/yaml.v3"
)

// Definition is the declarative world file: the full zone graph plus
// the start zone and initial traveler position. Zones are defined once
// here; nothing is discovered at runtime.
type Definition struct {
	Start    string      `yaml:"start"`
	Traveler world.Point `yaml:"traveler"`
	Zones    []ZoneDef   `yaml:"zones"`
}

type ZoneDef struct {
	Key      string    `yaml:"key"`
	Name     string    `yaml:"name"`
	Biome    string    `yaml:"biome"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Danger   float64   `yaml:"danger"`
	Loot     float64   `yaml:"loot"`
	Enemies  int       `yaml:"enemies"`
	Merchant bool      `yaml:"merchant"`
	Exits    []ExitDef `yaml:"exits"`
}

type ExitDef struct {
	Dir   string      `yaml:"dir"`
	To    string      `yaml:"to"`
	Entry world.Point `yaml:"entry"`
}

// LoadFile reads and builds a world definition. Any malformed content
// is a configuration error; the engine must not start on it.
func LoadFile(path string) (*world.Graph, Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Definition{}, fmt.Errorf("read world definition: %w", err)
	}
	return Load(raw)
}

func Load(raw []byte) (*world.Graph, Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, Definition{}, fmt.Errorf("%w: %v", world.ErrInvalidWorld, err)
	}
	graph, err := Build(def)
	if err != nil {
		return nil, Definition{}, err
	}
	return graph, def, nil
}

// Build validates the definition and wires the zone graph.
func Build(def Definition) (*world.Graph, error) {
	if len(def.Zones) == 0 {
		return nil, fmt.Errorf("%w: no zones defined", world.ErrInvalidWorld)
	}
	records := make([]*world.ZoneRecord, 0, len(def.Zones))
	for _, zd := range def.Zones {
		z := &world.ZoneRecord{
			Key:            zd.Key,
			Name:           zd.Name,
			Biome:          world.Biome(zd.Biome),
			Width:          zd.Width,
			Height:         zd.Height,
			DangerLevel:    zd.Danger,
			LootMultiplier: zd.Loot,
			EnemyCount:     zd.Enemies,
			HasMerchant:    zd.Merchant,
		}
		for _, ed := range zd.Exits {
			dir, ok := world.ParseDirection(ed.Dir)
			if !ok {
				return nil, fmt.Errorf("%w: zone %q has unknown exit direction %q", world.ErrInvalidWorld, zd.Key, ed.Dir)
			}
			z.Exits = append(z.Exits, world.ExitEdge{
				Direction: dir,
				TargetKey: ed.To,
				Entry:     ed.Entry,
			})
		}
		records = append(records, z)
	}
	graph, err := world.BuildGraph(records)
	if err != nil {
		return nil, err
	}
	if _, ok := graph.Get(def.Start); !ok {
		return nil, fmt.Errorf("%w: start zone %q not defined", world.ErrInvalidWorld, def.Start)
	}
	return graph, nil
}
