package inmemory

import "sync"

type Snapshot struct {
	TransitionTotal    uint64 `json:"transition_total"`
	TransitionFresh    uint64 `json:"transition_fresh"`
	TransitionRestored uint64 `json:"transition_restored"`
	FreshSpawns        uint64 `json:"fresh_spawns"`
	RestoredSpawns     uint64 `json:"restored_spawns"`
	DegradedPlacements uint64 `json:"degraded_placements"`
	SkippedSnapshots   uint64 `json:"skipped_snapshots"`
}

type Recorder struct {
	mu       sync.Mutex
	fresh    uint64
	restored uint64
	spawned  uint64
	revived  uint64
	degraded uint64
	skipped  uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordTransition(fresh bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fresh {
		r.fresh++
	} else {
		r.restored++
	}
}

func (r *Recorder) RecordFreshSpawns(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spawned += uint64(count)
}

func (r *Recorder) RecordRestoredSpawns(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revived += uint64(count)
}

func (r *Recorder) RecordDegradedPlacement() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.degraded++
}

func (r *Recorder) RecordSkippedSnapshot() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		TransitionTotal:    r.fresh + r.restored,
		TransitionFresh:    r.fresh,
		TransitionRestored: r.restored,
		FreshSpawns:        r.spawned,
		RestoredSpawns:     r.revived,
		DegradedPlacements: r.degraded,
		SkippedSnapshots:   r.skipped,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
