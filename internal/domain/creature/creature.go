package creature

import (
	"errors"
	"fmt"

	"ashfall/internal/domain/world"
)

var ErrUnknownArchetype = errors.New("unknown archetype")

type BehaviorState string

const (
	StateIdle   BehaviorState = "idle"
	StatePatrol BehaviorState = "patrol"
	StateHunt   BehaviorState = "hunt"
	StateFlee   BehaviorState = "flee"
)

// Creature is a live hostile or passive instance in the resident zone.
// Health, position, aggro and behavior state are mutable so combat and
// AI collaborators can write them back before the next snapshot.
type Creature struct {
	ID        int
	Archetype Archetype
	Pos       world.Point
	HP        int
	MaxHP     int
	Aggro     bool
	State     BehaviorState
}

// Character is a live non-hostile character such as a merchant. No
// combat fields.
type Character struct {
	ID        int
	Archetype Archetype
	Name      string
	Pos       world.Point
}

// New builds a live creature at full toughness for the given danger
// level. Danger scales hit points linearly above the archetype base.
func New(arch Archetype, pos world.Point, id int, danger float64) (*Creature, error) {
	def, ok := archetypeDefs[arch]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, arch)
	}
	hp := ScaledHP(def.BaseHP, danger)
	return &Creature{
		ID:        id,
		Archetype: arch,
		Pos:       pos,
		HP:        hp,
		MaxHP:     hp,
		State:     StateIdle,
	}, nil
}

// ScaledHP applies the zone danger multiplier to an archetype's base
// toughness.
func ScaledHP(base int, danger float64) int {
	if danger < 0 {
		danger = 0
	}
	return base + int(float64(base)*0.25*danger)
}

func (c *Creature) Alive() bool {
	return c.HP > 0
}

// Snapshot captures the creature's essential state for suspension while
// its zone is non-resident.
func (c *Creature) Snapshot() world.CreatureSnapshot {
	return world.CreatureSnapshot{
		Archetype: string(c.Archetype),
		Pos:       c.Pos,
		HP:        c.HP,
		Aggro:     c.Aggro,
		State:     string(c.State),
	}
}

// FromSnapshot rehydrates a live creature from a saved snapshot. An
// archetype tag that is no longer defined yields ErrUnknownArchetype so
// the caller can skip the single entry instead of aborting restoration.
func FromSnapshot(s world.CreatureSnapshot, id int) (*Creature, error) {
	def, ok := archetypeDefs[Archetype(s.Archetype)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, s.Archetype)
	}
	state := BehaviorState(s.State)
	if state == "" {
		state = StateIdle
	}
	return &Creature{
		ID:        id,
		Archetype: Archetype(s.Archetype),
		Pos:       s.Pos,
		HP:        s.HP,
		MaxHP:     def.BaseHP,
		Aggro:     s.Aggro,
		State:     state,
	}, nil
}

func (c *Character) Snapshot() world.CharacterSnapshot {
	return world.CharacterSnapshot{
		Archetype: string(c.Archetype),
		Name:      c.Name,
		Pos:       c.Pos,
	}
}

func CharacterFromSnapshot(s world.CharacterSnapshot, id int) (*Character, error) {
	if _, ok := archetypeDefs[Archetype(s.Archetype)]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, s.Archetype)
	}
	return &Character{
		ID:        id,
		Archetype: Archetype(s.Archetype),
		Name:      s.Name,
		Pos:       s.Pos,
	}, nil
}
