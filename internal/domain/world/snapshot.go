package world

import "time"

// CreatureSnapshot captures the essential state of one living creature
// when its zone is departed. Snapshots are consumed (and cleared) the
// next time the zone is entered.
type CreatureSnapshot struct {
	Archetype string `json:"archetype"`
	Pos       Point  `json:"pos"`
	HP        int    `json:"hp"`
	Aggro     bool   `json:"aggro"`
	State     string `json:"state"`
}

// CharacterSnapshot is the non-combat equivalent for non-hostile
// characters such as merchants.
type CharacterSnapshot struct {
	Archetype string `json:"archetype"`
	Name      string `json:"name"`
	Pos       Point  `json:"pos"`
}

// TransitionEvent records one completed zone transition for external
// consumers and the event log.
type TransitionEvent struct {
	FromKey    string    `json:"from_key"`
	ToKey      string    `json:"to_key"`
	Fresh      bool      `json:"fresh"`
	OccurredAt time.Time `json:"occurred_at"`
}
