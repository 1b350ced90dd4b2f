package ports

import (
	"context"

	"ashfall/internal/domain/world"
)

// ZoneStateRecord is the persisted slice of a ZoneRecord: only the
// state that mutates across visits. Static definition fields stay in
// the world-definition file and are never written back.
type ZoneStateRecord struct {
	ZoneKey      string
	Visited      bool
	ClearedSlots []world.Point
	Creatures    []world.CreatureSnapshot
	Characters   []world.CharacterSnapshot
}

// ZoneStateRepository is the external serialization collaborator for
// zone state. Save is an upsert; GetByZoneKey returns ErrNotFound for a
// zone that was never persisted.
type ZoneStateRepository interface {
	GetByZoneKey(ctx context.Context, zoneKey string) (ZoneStateRecord, error)
	Save(ctx context.Context, rec ZoneStateRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, events []world.TransitionEvent) error
	ListRecent(ctx context.Context, limit int) ([]world.TransitionEvent, error)
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
