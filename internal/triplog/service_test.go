package triplog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dgennetten/trailsMapper/internal/kv"
	"github.com/dgennetten/trailsMapper/internal/stream"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := kv.NewRedisStore(client)
	return NewService(store, nil), store
}

func TestLoadSeedsAndPersists(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	trips, err := svc.List(ctx, "dev-1", SortByDate, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != len(seedTrips) {
		t.Fatalf("expected seed collection, got %d", len(trips))
	}
	for _, trip := range trips {
		if trip.ID == "" {
			t.Fatalf("seed records must get ids assigned")
		}
	}

	// the seed must be stored immediately so subsequent loads are stable
	raw, ok, err := store.Get(ctx, "trailsMapper.trips:dev-1")
	if err != nil || !ok {
		t.Fatalf("expected persisted seed: %v", err)
	}
	var stored []Trip
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored seed malformed: %v", err)
	}
	if len(stored) != len(seedTrips) {
		t.Fatalf("unexpected stored seed size")
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if err := store.Set(ctx, "trailsMapper.trips:dev-1", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	trips, err := svc.List(ctx, "dev-1", SortByDate, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != len(seedTrips) {
		t.Fatalf("expected seed fallback, got %d trips", len(trips))
	}
}

func TestRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before, err := svc.List(ctx, "dev-1", SortByDate, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	after, err := svc.List(ctx, "dev-1", SortByDate, false)
	if err != nil {
		t.Fatalf("list again: %v", err)
	}
	if len(before) != len(after) {
		t.Fatalf("round trip changed length")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("round trip changed record %d: %+v != %+v", i, before[i], after[i])
		}
	}
}

func TestAddSeedsTodayAtHead(t *testing.T) {
	svc, _ := newTestService(t)
	svc.now = func() time.Time { return time.Date(2031, 1, 2, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	trip, err := svc.Add(ctx, "dev-1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if trip.Date != "2031-01-02" {
		t.Fatalf("expected today's date, got %s", trip.Date)
	}
	if trip.ID == "" {
		t.Fatalf("expected id assigned at creation")
	}
	if trip.Trail != "" || trip.Partners != "" || trip.TreesCleared != "" {
		t.Fatalf("expected blank fields")
	}

	trips, err := svc.List(ctx, "dev-1", SortByDate, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if trips[0].ID != trip.ID {
		t.Fatalf("latest-dated trip must sort to the head")
	}
}

func TestSortSemantics(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedJSON, _ := json.Marshal([]Trip{
		{ID: "1", Date: "2024-06-16", Trail: "young gulch", TreesCleared: "2"},
		{ID: "2", Date: "2024-05-01", Trail: "Hewlett Gulch", TreesCleared: "41"},
		{ID: "3", Date: "2024-06-16", Trail: "Greyrock", TreesCleared: ""},
	})
	if err := store.Set(ctx, "trailsMapper.trips:dev-1", string(seedJSON)); err != nil {
		t.Fatalf("set: %v", err)
	}

	byDate, _ := svc.List(ctx, "dev-1", SortByDate, false)
	if byDate[0].ID != "2" {
		t.Fatalf("expected earliest date first")
	}
	// equal dates keep insertion order
	if byDate[1].ID != "1" || byDate[2].ID != "3" {
		t.Fatalf("expected stable tie-break on date")
	}

	byTrail, _ := svc.List(ctx, "dev-1", SortByTrail, false)
	if byTrail[0].ID != "3" || byTrail[1].ID != "2" || byTrail[2].ID != "1" {
		t.Fatalf("expected case-insensitive trail sort, got %v %v %v", byTrail[0].ID, byTrail[1].ID, byTrail[2].ID)
	}

	byTrees, _ := svc.List(ctx, "dev-1", SortByTrees, true)
	if byTrees[0].ID != "2" || byTrees[1].ID != "1" || byTrees[2].ID != "3" {
		t.Fatalf("expected numeric trees sort")
	}
}

func TestTotals(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedJSON, _ := json.Marshal([]Trip{
		{ID: "1", TreesCleared: "2"},
		{ID: "2", TreesCleared: ""},
		{ID: "3", TreesCleared: "41"},
	})
	if err := store.Set(ctx, "trailsMapper.trips:dev-1", string(seedJSON)); err != nil {
		t.Fatalf("set: %v", err)
	}

	totals, err := svc.Totals(ctx, "dev-1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Trips != 3 || totals.TreesCleared != 43 {
		t.Fatalf("expected 3 trips / 43 trees, got %+v", totals)
	}
}

func TestParseTrees(t *testing.T) {
	cases := map[string]int{"41": 41, " 7 ": 7, "": 0, "a few": 0, "-3": 0}
	for in, want := range cases {
		if got := parseTrees(in); got != want {
			t.Fatalf("parseTrees(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestDuplicateTupleEditsStayIsolated(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// two records sharing date and trail name; only stable ids tell them apart
	seedJSON, _ := json.Marshal([]Trip{
		{ID: "first", Date: "2024-06-16", Trail: "Hewlett Gulch", TreesCleared: "5"},
		{ID: "second", Date: "2024-06-16", Trail: "Hewlett Gulch", TreesCleared: "9"},
	})
	if err := store.Set(ctx, "trailsMapper.trips:dev-1", string(seedJSON)); err != nil {
		t.Fatalf("set: %v", err)
	}

	_, err := svc.Update(ctx, "dev-1", "second", Trip{
		Date: "2024-06-16", Trail: "Hewlett Gulch", TreesCleared: "10",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	trips, _ := svc.List(ctx, "dev-1", SortByDate, false)
	for _, trip := range trips {
		switch trip.ID {
		case "first":
			if trip.TreesCleared != "5" {
				t.Fatalf("editing the second duplicate mutated the first")
			}
		case "second":
			if trip.TreesCleared != "10" {
				t.Fatalf("edit did not apply to the targeted record")
			}
		}
	}

	if err := svc.Delete(ctx, "dev-1", "first"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	trips, _ = svc.List(ctx, "dev-1", SortByDate, false)
	if len(trips) != 1 || trips[0].ID != "second" {
		t.Fatalf("delete removed the wrong duplicate")
	}
}

func TestUpdateDeleteNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, "dev-1", "missing", Trip{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "dev-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveBroadcastsTotals(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	hub := stream.NewHub(nil)
	ws := hub.Register("dev-1")
	defer hub.Unregister(ws)

	svc := NewService(kv.NewRedisStore(client), hub)
	if _, err := svc.Add(context.Background(), "dev-1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	select {
	case msg := <-ws.Send:
		var event struct {
			Event  string `json:"event"`
			Totals Totals `json:"totals"`
		}
		if err := json.Unmarshal(msg, &event); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if event.Event != "triplog.changed" {
			t.Fatalf("unexpected event %s", event.Event)
		}
		if event.Totals.Trips != len(seedTrips)+1 {
			t.Fatalf("totals must reflect the persisted collection")
		}
	case <-time.After(time.Second):
		t.Fatalf("expected change broadcast")
	}
}
