package memory

import (
	"context"

	"ashfall/internal/app/ports"
)

type ZoneStateRepo struct {
	store *Store
}

func NewZoneStateRepo(store *Store) ZoneStateRepo {
	return ZoneStateRepo{store: store}
}

// GetByZoneKey is called from hydration, never inside RunInTx, so it
// takes the read lock itself.
func (r ZoneStateRepo) GetByZoneKey(_ context.Context, zoneKey string) (ports.ZoneStateRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.states[zoneKey]
	if !ok {
		return ports.ZoneStateRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

func (r ZoneStateRepo) Save(_ context.Context, rec ports.ZoneStateRecord) error {
	r.store.states[rec.ZoneKey] = rec
	return nil
}
