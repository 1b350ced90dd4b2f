package ports

import "ashfall/internal/domain/world"

// ZoneNotifier fans transition events out to in-process collaborators
// (camera recentre, fog-of-war reveal, UI). Implementations must not
// block: notifications fire inside the single-tick transition protocol.
type ZoneNotifier interface {
	TransitionCompleted(prevKey, newKey string)
	ZoneLoaded(zone *world.ZoneRecord)
}
