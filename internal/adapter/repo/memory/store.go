package memory

import (
	"sync"

	"ashfall/internal/app/ports"
	"ashfall/internal/domain/world"
)

// Store backs the in-memory repositories. Writes go through
// TxManager.RunInTx, which holds the write lock across the whole
// closure, so Save and Append must not lock on their own. Reads that
// run outside a transaction take the read lock themselves.
type Store struct {
	mu     sync.RWMutex
	states map[string]ports.ZoneStateRecord
	events []world.TransitionEvent
}

func NewStore() *Store {
	return &Store{
		states: make(map[string]ports.ZoneStateRecord),
	}
}

func (s *Store) SeedState(rec ports.ZoneStateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[rec.ZoneKey] = rec
}
