package model

import "time"

// ZoneState persists the mutable slice of a zone record. Snapshot lists
// and cleared slots are stored as JSON blobs; the static definition
// never touches the database.
type ZoneState struct {
	ZoneKey      string `gorm:"primaryKey;column:zone_key"`
	Visited      bool
	ClearedSlots []byte `gorm:"column:cleared_slots"`
	Creatures    []byte
	Characters   []byte
	UpdatedAt    time.Time
}

func (ZoneState) TableName() string { return "zone_states" }

type TransitionEvent struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	FromKey    string
	ToKey      string
	Fresh      bool
	OccurredAt time.Time
}

func (TransitionEvent) TableName() string { return "transition_events" }
