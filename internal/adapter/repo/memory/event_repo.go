package memory

import (
	"context"

	"ashfall/internal/domain/world"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []world.TransitionEvent) error {
	r.store.events = append(r.store.events, events...)
	return nil
}

// ListRecent is called straight from the read path, never inside
// RunInTx, so it takes the read lock itself.
func (r EventRepo) ListRecent(_ context.Context, limit int) ([]world.TransitionEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if limit <= 0 {
		limit = 20
	}
	n := len(r.store.events)
	if limit > n {
		limit = n
	}
	out := make([]world.TransitionEvent, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.store.events[i])
	}
	return out, nil
}
