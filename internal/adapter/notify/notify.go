package notify

import (
	"github.com/sirupsen/logrus"

	"ashfall/internal/app/ports"
	"ashfall/internal/domain/world"
)

// Fanout delivers each notification to every registered subscriber in
// order. Subscribers run on the caller's goroutine, so they must
// return quickly.
type Fanout struct {
	subscribers []ports.ZoneNotifier
}

func NewFanout(subscribers ...ports.ZoneNotifier) *Fanout {
	return &Fanout{subscribers: subscribers}
}

func (f *Fanout) Subscribe(n ports.ZoneNotifier) {
	f.subscribers = append(f.subscribers, n)
}

func (f *Fanout) TransitionCompleted(prevKey, newKey string) {
	for _, n := range f.subscribers {
		n.TransitionCompleted(prevKey, newKey)
	}
}

func (f *Fanout) ZoneLoaded(zone *world.ZoneRecord) {
	for _, n := range f.subscribers {
		n.ZoneLoaded(zone)
	}
}

// LogNotifier is the default subscriber: it mirrors camera and
// interface consumers that only need to know the resident zone moved.
type LogNotifier struct {
	Log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) LogNotifier {
	return LogNotifier{Log: log}
}

func (n LogNotifier) TransitionCompleted(prevKey, newKey string) {
	n.Log.WithFields(logrus.Fields{
		"from": prevKey,
		"to":   newKey,
	}).Info("zone transition completed")
}

func (n LogNotifier) ZoneLoaded(zone *world.ZoneRecord) {
	n.Log.WithFields(logrus.Fields{
		"zone":   zone.Key,
		"biome":  string(zone.Biome),
		"danger": zone.DangerLevel,
	}).Info("zone loaded")
}
