package transition

import (
	"context"
	"sync"
	"testing"

	"ashfall/internal/app/ports"
	"ashfall/internal/domain/world"
)

func testRecords() []*world.ZoneRecord {
	return []*world.ZoneRecord{
		{
			Key: "start", Name: "Dustbowl Crossing", Biome: world.BiomeWasteland,
			Width: 50, Height: 50, DangerLevel: 1, LootMultiplier: 1, EnemyCount: 4,
			Exits: []world.ExitEdge{
				{Direction: world.DirNorth, TargetKey: "ruins_south", Entry: world.Point{X: 25, Y: 48}},
			},
		},
		{
			Key: "ruins_south", Name: "Shattered Quarter", Biome: world.BiomeRuins,
			Width: 50, Height: 50, DangerLevel: 2, LootMultiplier: 1.2, EnemyCount: 6,
			Exits: []world.ExitEdge{
				{Direction: world.DirSouth, TargetKey: "start", Entry: world.Point{X: 25, Y: 1}},
			},
		},
	}
}

func testController(t *testing.T) *Controller {
	t.Helper()
	g, err := world.BuildGraph(testRecords())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	return &Controller{Graph: g}
}

func mustStart(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.Start(context.Background(), "start", world.Point{X: 25, Y: 25}); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

func TestStartRunsFreshPlacement(t *testing.T) {
	c := testController(t)
	mustStart(t, c)

	if c.ActiveZone().Key != "start" {
		t.Fatalf("active zone %q", c.ActiveZone().Key)
	}
	if c.ActiveGrid() == nil {
		t.Fatalf("resident zone must have a live grid")
	}
	if len(c.Creatures()) < 4 {
		t.Fatalf("expected at least the 4 hostile slots, got %d", len(c.Creatures()))
	}
	if !c.ActiveZone().Visited {
		t.Fatalf("start zone should be marked visited")
	}
}

func TestTransitionPlacesTravelerAtEntryPoint(t *testing.T) {
	c := testController(t)
	mustStart(t, c)

	edge, ok := c.ActiveZone().CheckExit(world.Point{X: 25, Y: 0}, 50, 50)
	if !ok {
		t.Fatalf("north exit should fire at row 0")
	}
	resp, err := c.Execute(context.Background(), Request{Edge: edge})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !resp.Transitioned || resp.CurrentZone != "ruins_south" || resp.PreviousZone != "start" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Traveler != (world.Point{X: 25, Y: 48}) {
		t.Fatalf("traveler at %v, want declared entry point (25,48)", resp.Traveler)
	}
}

func TestSnapshotExcludesDeadAndRestoresSurvivors(t *testing.T) {
	c := testController(t)
	mustStart(t, c)

	live := c.Creatures()
	if len(live) < 4 {
		t.Fatalf("need at least 4 creatures, got %d", len(live))
	}
	live[0].HP = 0
	live[1].HP = 0
	survivors := len(live) - 2
	wantPos := live[2].Pos
	live[2].HP = 3
	live[2].Aggro = true

	// Depart north, then come straight back.
	if _, err := c.Execute(context.Background(), Request{Edge: c.ActiveZone().Exits[0]}); err != nil {
		t.Fatalf("depart: %v", err)
	}
	startZone, _ := c.Graph.Get("start")
	if got := len(startZone.SavedCreatures); got != survivors {
		t.Fatalf("snapshot holds %d creatures, want %d survivors", got, survivors)
	}

	resp, err := c.Execute(context.Background(), Request{Edge: c.ActiveZone().Exits[0]})
	if err != nil {
		t.Fatalf("return: %v", err)
	}
	if resp.Fresh {
		t.Fatalf("return visit must use the restoration path")
	}
	if len(c.Creatures()) != survivors {
		t.Fatalf("restored %d creatures, want %d", len(c.Creatures()), survivors)
	}
	var found bool
	for _, cr := range c.Creatures() {
		if cr.Pos == wantPos && cr.HP == 3 && cr.Aggro {
			found = true
		}
	}
	if !found {
		t.Fatalf("survivor state not restored at %v", wantPos)
	}
	if startZone.HasSavedEntities() {
		t.Fatalf("snapshots must be consumed on restoration")
	}
}

func TestFreshPlacementAtMostOncePerZone(t *testing.T) {
	c := testController(t)
	mustStart(t, c)

	// Wipe the start zone entirely, then leave and return twice.
	for _, cr := range c.Creatures() {
		cr.HP = 0
	}
	ctx := context.Background()
	if _, err := c.Execute(ctx, Request{Edge: c.ActiveZone().Exits[0]}); err != nil {
		t.Fatalf("depart: %v", err)
	}
	resp, err := c.Execute(ctx, Request{Edge: c.ActiveZone().Exits[0]})
	if err != nil {
		t.Fatalf("return: %v", err)
	}
	if resp.Fresh {
		t.Fatalf("cleared zone must not respawn fresh creatures")
	}
	if len(c.Creatures()) != 0 {
		t.Fatalf("cleared zone restored %d creatures", len(c.Creatures()))
	}
}

func TestFirstVisitPlacementIsDeterministicAcrossSessions(t *testing.T) {
	run := func() []world.Point {
		g, err := world.BuildGraph(testRecords())
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}
		c := &Controller{Graph: g}
		mustStart(t, c)
		out := make([]world.Point, 0, len(c.Creatures()))
		for _, cr := range c.Creatures() {
			out = append(out, cr.Pos)
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("placement counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestUnknownExitTargetNoOps(t *testing.T) {
	c := testController(t)
	mustStart(t, c)

	before := len(c.Creatures())
	resp, err := c.Execute(context.Background(), Request{
		Edge: world.ExitEdge{Direction: world.DirNorth, TargetKey: "nowhere", Entry: world.Point{X: 1, Y: 1}},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Transitioned {
		t.Fatalf("unknown target must not transition")
	}
	if c.ActiveZone().Key != "start" || len(c.Creatures()) != before {
		t.Fatalf("resident state disturbed by no-op transition")
	}
}

func TestExecuteBeforeStartFails(t *testing.T) {
	c := testController(t)
	if _, err := c.Execute(context.Background(), Request{}); err != ErrNotStarted {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestPersistenceRoundTripAcrossControllers(t *testing.T) {
	repo := &fakeZoneStateRepo{records: map[string]ports.ZoneStateRecord{}}
	ctx := context.Background()

	g1, err := world.BuildGraph(testRecords())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	c1 := &Controller{Graph: g1, StateRepo: repo}
	mustStart(t, c1)
	c1.Creatures()[0].HP = 0
	firstCount := len(c1.Creatures())
	if _, err := c1.Execute(ctx, Request{Edge: c1.ActiveZone().Exits[0]}); err != nil {
		t.Fatalf("depart: %v", err)
	}

	// A new session over the same store must see the persisted state.
	g2, err := world.BuildGraph(testRecords())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	c2 := &Controller{Graph: g2, StateRepo: repo}
	mustStart(t, c2)
	if len(c2.Creatures()) != firstCount-1 {
		t.Fatalf("restart restored %d creatures, want %d", len(c2.Creatures()), firstCount-1)
	}
}

func TestMoveTravelerBlocksAndTransitions(t *testing.T) {
	records := []*world.ZoneRecord{
		{
			Key: "haven", Name: "Haven", Biome: world.BiomeSettlement,
			Width: 20, Height: 20, EnemyCount: 0,
			Exits: []world.ExitEdge{
				{Direction: world.DirWest, TargetKey: "start", Entry: world.Point{X: 18, Y: 10}},
			},
		},
		{
			Key: "start", Name: "Dustbowl Crossing", Biome: world.BiomeWasteland,
			Width: 20, Height: 20, EnemyCount: 0,
			Exits: []world.ExitEdge{
				{Direction: world.DirEast, TargetKey: "haven", Entry: world.Point{X: 1, Y: 10}},
			},
		},
	}
	g, err := world.BuildGraph(records)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	c := &Controller{Graph: g}
	if err := c.Start(context.Background(), "haven", world.Point{X: 2, Y: 10}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// The settlement path row is walkable all the way to the west edge.
	resp, err := c.MoveTraveler(context.Background(), world.DirWest)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !resp.Moved || resp.Traveler.X != 1 {
		t.Fatalf("expected a plain step, got %+v", resp)
	}

	resp, err = c.MoveTraveler(context.Background(), world.DirWest)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !resp.Transitioned || resp.CurrentZone != "start" {
		t.Fatalf("boundary step should transition west, got %+v", resp)
	}
	if resp.Traveler != (world.Point{X: 18, Y: 10}) {
		t.Fatalf("traveler at %v, want west exit entry point", resp.Traveler)
	}
}

func TestNotifierReceivesTransition(t *testing.T) {
	c := testController(t)
	n := &fakeNotifier{}
	c.Notifier = n
	mustStart(t, c)
	if n.loaded != 1 {
		t.Fatalf("start should emit one zone-loaded, got %d", n.loaded)
	}

	if _, err := c.Execute(context.Background(), Request{Edge: c.ActiveZone().Exits[0]}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n.prev != "start" || n.next != "ruins_south" {
		t.Fatalf("notification carried (%q,%q)", n.prev, n.next)
	}
}

type fakeZoneStateRepo struct {
	mu      sync.Mutex
	records map[string]ports.ZoneStateRecord
}

func (r *fakeZoneStateRepo) GetByZoneKey(_ context.Context, key string) (ports.ZoneStateRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[key]
	if !ok {
		return ports.ZoneStateRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

func (r *fakeZoneStateRepo) Save(_ context.Context, rec ports.ZoneStateRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ZoneKey] = rec
	return nil
}

type fakeNotifier struct {
	prev, next string
	loaded     int
}

func (n *fakeNotifier) TransitionCompleted(prevKey, newKey string) {
	n.prev, n.next = prevKey, newKey
}

func (n *fakeNotifier) ZoneLoaded(_ *world.ZoneRecord) { n.loaded++ }

var _ ports.ZoneStateRepository = (*fakeZoneStateRepo)(nil)
var _ ports.ZoneNotifier = (*fakeNotifier)(nil)

func TestStartPersistsStartZone(t *testing.T) {
	repo := &fakeZoneStateRepo{records: map[string]ports.ZoneStateRecord{}}
	g, err := world.BuildGraph(testRecords())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	c := &Controller{Graph: g, StateRepo: repo}
	mustStart(t, c)

	rec, ok := repo.records["start"]
	if !ok {
		t.Fatalf("start zone state not persisted at startup")
	}
	if !rec.Visited {
		t.Fatalf("persisted start zone must be marked visited")
	}
	if len(rec.Creatures) != len(c.Creatures()) {
		t.Fatalf("persisted %d creatures, live %d", len(rec.Creatures), len(c.Creatures()))
	}
}

func TestRestartBeforeTransitionDoesNotRespawn(t *testing.T) {
	repo := &fakeZoneStateRepo{records: map[string]ports.ZoneStateRecord{}}
	g1, err := world.BuildGraph(testRecords())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	c1 := &Controller{Graph: g1, StateRepo: repo}
	mustStart(t, c1)

	// Every creature placed at startup dies before any transition; the
	// store reflects that the zone was cleared.
	rec := repo.records["start"]
	rec.Creatures = nil
	repo.records["start"] = rec

	g2, err := world.BuildGraph(testRecords())
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	c2 := &Controller{Graph: g2, StateRepo: repo}
	mustStart(t, c2)
	if got := len(c2.Creatures()); got != 0 {
		t.Fatalf("restart re-ran fresh placement: %d creatures in a cleared zone", got)
	}
}

func TestConcurrentMovesAndReads(t *testing.T) {
	records := []*world.ZoneRecord{
		{
			Key: "haven", Name: "Haven", Biome: world.BiomeSettlement,
			Width: 20, Height: 20, EnemyCount: 0,
			Exits: []world.ExitEdge{
				{Direction: world.DirWest, TargetKey: "start", Entry: world.Point{X: 18, Y: 10}},
			},
		},
		{
			Key: "start", Name: "Dustbowl Crossing", Biome: world.BiomeWasteland,
			Width: 20, Height: 20, EnemyCount: 0,
			Exits: []world.ExitEdge{
				{Direction: world.DirEast, TargetKey: "haven", Entry: world.Point{X: 1, Y: 10}},
			},
		},
	}
	g, err := world.BuildGraph(records)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	repo := &fakeZoneStateRepo{records: map[string]ports.ZoneStateRecord{}}
	c := &Controller{Graph: g, StateRepo: repo}
	if err := c.Start(context.Background(), "haven", world.Point{X: 10, Y: 10}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for _, dir := range []world.Direction{world.DirWest, world.DirEast} {
		wg.Add(1)
		go func(d world.Direction) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if _, err := c.MoveTraveler(ctx, d); err != nil {
					t.Errorf("MoveTraveler(%s): %v", d, err)
					return
				}
			}
		}(dir)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = c.TravelerPos()
			_ = c.Creatures()
			_ = c.ActiveGrid()
			_, _ = c.CheckExit()
			if z := c.ActiveZone(); z == nil {
				t.Errorf("no active zone during reads")
				return
			}
			for _, z := range c.ZoneList() {
				_ = z.Visited
			}
		}
	}()
	wg.Wait()

	z := c.ActiveZone()
	pos := c.TravelerPos()
	if pos.X < 0 || pos.X >= z.Width || pos.Y < 0 || pos.Y >= z.Height {
		t.Fatalf("traveler %v outside %q bounds", pos, z.Key)
	}
}
