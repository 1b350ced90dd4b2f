package transition

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ashfall/internal/app/ports"
	"ashfall/internal/domain/creature"
	"ashfall/internal/domain/spawn"
	"ashfall/internal/domain/terrain"
	"ashfall/internal/domain/world"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotStarted  = errors.New("transition controller not started")
	ErrUnknownZone = errors.New("unknown zone key")
)

// Controller owns the resident-zone state: the live tile grid, the live
// creature and character instances, and the traveler position. It runs
// the transition protocol synchronously within one simulation tick.
// The HTTP adapter serves requests concurrently, so every exported
// method takes the session lock.
type Controller struct {
	Graph     *world.Graph
	StateRepo ports.ZoneStateRepository
	Events    ports.EventRepository
	Tx        ports.TxManager
	Notifier  ports.ZoneNotifier
	Metrics   ports.WorldMetrics
	Log       *logrus.Logger
	Now       func() time.Time

	mu         sync.Mutex
	grids      map[string]*world.Grid
	creatures  []*creature.Creature
	characters []*creature.Character
	traveler   world.Point
	started    bool
}

// Start makes the start zone resident: hydrates any persisted zone
// state, activates the zone, generates or restores it, and places the
// traveler. Must be called exactly once before Execute or MoveTraveler.
func (c *Controller) Start(ctx context.Context, startKey string, traveler world.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grids == nil {
		c.grids = make(map[string]*world.Grid)
	}
	if err := c.hydrate(ctx); err != nil {
		return fmt.Errorf("hydrate zone state: %w", err)
	}

	z, ok := c.Graph.Get(startKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownZone, startKey)
	}
	visitedBefore := z.Visited
	c.Graph.SetActive(startKey)
	c.enterZone(z, visitedBefore)
	c.traveler = clampToZone(traveler, z)
	c.started = true

	if err := c.persistZone(ctx, z); err != nil {
		// Without this save a restart before the first transition would
		// re-run fresh placement in the start zone.
		c.logger().WithError(err).WithField("zone", z.Key).Warn("persist start zone state")
	}

	if c.Notifier != nil {
		c.Notifier.ZoneLoaded(z)
	}
	c.logger().WithFields(logrus.Fields{
		"zone":      z.Key,
		"biome":     z.Biome,
		"creatures": len(c.creatures),
	}).Info("start zone resident")
	return nil
}

// Execute runs the transition protocol for one exit edge: snapshot the
// departing zone's living entities, switch the active zone, generate or
// restore the target, place the traveler at the recorded entry point,
// persist, and notify. An edge whose target key is absent no-ops rather
// than leaving the traveler outside the grid.
func (c *Controller) Execute(ctx context.Context, req Request) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.execute(ctx, req)
}

func (c *Controller) execute(ctx context.Context, req Request) (Response, error) {
	if !c.started {
		return Response{}, ErrNotStarted
	}
	departing := c.Graph.Active()
	target, ok := c.Graph.Get(req.Edge.TargetKey)
	if !ok {
		c.logger().WithFields(logrus.Fields{
			"from":   departing.Key,
			"target": req.Edge.TargetKey,
		}).Error("exit edge references unknown zone; transition skipped")
		return Response{CurrentZone: departing.Key, Traveler: c.traveler}, nil
	}

	c.snapshotDeparting(departing)

	visitedBefore := target.Visited
	prev, _ := c.Graph.SetActive(target.Key)
	fresh := c.enterZone(target, visitedBefore)
	c.traveler = clampToZone(req.Edge.Entry, target)

	if err := c.persistTransition(ctx, departing, target, fresh); err != nil {
		// Persistence failure degrades the save, not gameplay.
		c.logger().WithError(err).WithField("zone", target.Key).Warn("persist transition state")
	}

	if c.Metrics != nil {
		c.Metrics.RecordTransition(fresh)
	}
	if c.Notifier != nil {
		c.Notifier.TransitionCompleted(prev, target.Key)
		c.Notifier.ZoneLoaded(target)
	}
	c.logger().WithFields(logrus.Fields{
		"from":       prev,
		"to":         target.Key,
		"fresh":      fresh,
		"creatures":  len(c.creatures),
		"characters": len(c.characters),
	}).Info("zone transition complete")

	return Response{
		Transitioned: true,
		PreviousZone: prev,
		CurrentZone:  target.Key,
		Fresh:        fresh,
		Traveler:     c.traveler,
		Creatures:    len(c.creatures),
		Characters:   len(c.characters),
	}, nil
}

// MoveTraveler advances the traveler one tile and, if the step lands on
// a boundary with a matching exit, runs the transition. This is the
// surface the player-control collaborator polls every movement tick.
func (c *Controller) MoveTraveler(ctx context.Context, dir world.Direction) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return Response{}, ErrNotStarted
	}
	z := c.Graph.Active()
	d := dir.Delta()
	next := world.Point{X: c.traveler.X + d.X, Y: c.traveler.Y + d.Y}

	grid := c.grids[z.Key]
	if !grid.Walkable(next.X, next.Y) {
		return Response{CurrentZone: z.Key, Traveler: c.traveler}, nil
	}
	c.traveler = next

	if edge, ok := z.CheckExit(c.traveler, z.Width, z.Height); ok {
		return c.execute(ctx, Request{Edge: edge})
	}
	return Response{Moved: true, CurrentZone: z.Key, Traveler: c.traveler}, nil
}

// CheckExit reports the exit edge the traveler currently satisfies.
func (c *Controller) CheckExit() (world.ExitEdge, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return world.ExitEdge{}, false
	}
	z := c.Graph.Active()
	return z.CheckExit(c.traveler, z.Width, z.Height)
}

// enterZone makes the target resident and reports whether the fresh
// placement path ran. Fresh placement happens at most once per zone:
// any earlier visit, in this session or a persisted one, routes through
// restoration.
func (c *Controller) enterZone(z *world.ZoneRecord, visitedBefore bool) bool {
	grid, ok := c.grids[z.Key]
	if !ok {
		grid = terrain.GenerateForZone(z)
		c.grids[z.Key] = grid
	}

	var res spawn.Result
	if visitedBefore || z.HasSavedEntities() {
		res = spawn.Restore(z)
		if c.Metrics != nil {
			c.Metrics.RecordRestoredSpawns(len(res.Creatures) + len(res.Characters))
		}
	} else {
		res = spawn.PlaceFresh(z, grid)
		if c.Metrics != nil {
			c.Metrics.RecordFreshSpawns(len(res.Creatures) + len(res.Characters))
		}
	}
	c.reportDegraded(z.Key, res)
	c.creatures = res.Creatures
	c.characters = res.Characters
	return res.Fresh
}

// snapshotDeparting overwrites the departing record's saved-state lists
// with every still-living entity. Dead creatures are dropped here; this
// is the only write path for those lists.
func (c *Controller) snapshotDeparting(z *world.ZoneRecord) {
	saved := make([]world.CreatureSnapshot, 0, len(c.creatures))
	for _, cr := range c.creatures {
		if cr.Alive() {
			saved = append(saved, cr.Snapshot())
		}
	}
	chars := make([]world.CharacterSnapshot, 0, len(c.characters))
	for _, ch := range c.characters {
		chars = append(chars, ch.Snapshot())
	}
	z.SavedCreatures = saved
	z.SavedCharacters = chars
	c.creatures = nil
	c.characters = nil
}

// persistTransition writes both zone records and the transition event
// in one transaction. The arriving zone is stored as a snapshot of its
// current live entities so a restart restores exactly what was live.
func (c *Controller) persistTransition(ctx context.Context, departed, arrived *world.ZoneRecord, fresh bool) error {
	if c.StateRepo == nil {
		return nil
	}
	event := world.TransitionEvent{
		FromKey:    departed.Key,
		ToKey:      arrived.Key,
		Fresh:      fresh,
		OccurredAt: c.now(),
	}
	save := func(ctx context.Context) error {
		if err := c.StateRepo.Save(ctx, recordFor(departed, nil, nil)); err != nil {
			return err
		}
		if err := c.StateRepo.Save(ctx, recordFor(arrived, c.creatures, c.characters)); err != nil {
			return err
		}
		if c.Events != nil {
			return c.Events.Append(ctx, []world.TransitionEvent{event})
		}
		return nil
	}
	if c.Tx != nil {
		return c.Tx.RunInTx(ctx, save)
	}
	return save(ctx)
}

// persistZone saves one zone's mutable state as a snapshot of the
// current live entities. Used at start, where no transition event
// belongs.
func (c *Controller) persistZone(ctx context.Context, z *world.ZoneRecord) error {
	if c.StateRepo == nil {
		return nil
	}
	save := func(ctx context.Context) error {
		return c.StateRepo.Save(ctx, recordFor(z, c.creatures, c.characters))
	}
	if c.Tx != nil {
		return c.Tx.RunInTx(ctx, save)
	}
	return save(ctx)
}

// hydrate loads persisted mutable state into the zone records before
// the first activation.
func (c *Controller) hydrate(ctx context.Context) error {
	if c.StateRepo == nil {
		return nil
	}
	for _, z := range c.Graph.AllZones() {
		rec, err := c.StateRepo.GetByZoneKey(ctx, z.Key)
		if errors.Is(err, ports.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		z.Visited = rec.Visited
		for _, p := range rec.ClearedSlots {
			z.ClearSlot(p)
		}
		z.SavedCreatures = rec.Creatures
		z.SavedCharacters = rec.Characters
	}
	return nil
}

func (c *Controller) reportDegraded(zoneKey string, res spawn.Result) {
	if res.RingFallbacks > 0 || res.CornerFallbacks > 0 {
		if c.Metrics != nil {
			for i := 0; i < res.RingFallbacks+res.CornerFallbacks; i++ {
				c.Metrics.RecordDegradedPlacement()
			}
		}
		c.logger().WithFields(logrus.Fields{
			"zone":    zoneKey,
			"rings":   res.RingFallbacks,
			"corners": res.CornerFallbacks,
		}).Warn("spawn placement degraded")
	}
	if res.SkippedSnapshots > 0 {
		if c.Metrics != nil {
			for i := 0; i < res.SkippedSnapshots; i++ {
				c.Metrics.RecordSkippedSnapshot()
			}
		}
		c.logger().WithFields(logrus.Fields{
			"zone":    zoneKey,
			"skipped": res.SkippedSnapshots,
		}).Warn("snapshot entries skipped during restoration")
	}
}

func recordFor(z *world.ZoneRecord, live []*creature.Creature, chars []*creature.Character) ports.ZoneStateRecord {
	rec := ports.ZoneStateRecord{
		ZoneKey: z.Key,
		Visited: z.Visited,
	}
	for p := range z.ClearedSlots {
		rec.ClearedSlots = append(rec.ClearedSlots, p)
	}
	if live == nil && chars == nil {
		rec.Creatures = z.SavedCreatures
		rec.Characters = z.SavedCharacters
		return rec
	}
	for _, cr := range live {
		if cr.Alive() {
			rec.Creatures = append(rec.Creatures, cr.Snapshot())
		}
	}
	for _, ch := range chars {
		rec.Characters = append(rec.Characters, ch.Snapshot())
	}
	return rec
}

func clampToZone(p world.Point, z *world.ZoneRecord) world.Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.X >= z.Width {
		p.X = z.Width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= z.Height {
		p.Y = z.Height - 1
	}
	return p
}

func (c *Controller) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
