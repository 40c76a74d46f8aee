package session

import (
	"context"
	"testing"

	"github.com/dgennetten/trailsMapper/internal/catalog"
	"github.com/dgennetten/trailsMapper/internal/gate"
	"github.com/dgennetten/trailsMapper/internal/kv"
	"github.com/dgennetten/trailsMapper/internal/triplog"
	"github.com/dgennetten/trailsMapper/internal/viewport"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestManager(t *testing.T) (*Manager, *triplog.Service, kv.Store) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := kv.NewRedisStore(client)
	gateSvc, err := gate.NewService("", "crosscut", "jwt-secret", store)
	if err != nil {
		t.Fatalf("gate service: %v", err)
	}
	tripSvc := triplog.NewService(store, nil)
	return NewManager(catalog.CanyonLakesTrails, gateSvc, tripSvc), tripSvc, store
}

func TestSelectionClearedWhenFilteredOut(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	if !mgr.Select(ctx, "dev-1", "hewlett-gulch") {
		t.Fatalf("expected selection to succeed")
	}
	view := mgr.View(ctx, "dev-1")
	if view.Selected == nil || view.Selected.ID != "hewlett-gulch" {
		t.Fatalf("expected hewlett-gulch selected")
	}

	// Hewlett Gulch is Easy; switching the tag to difficult filters it out
	mgr.SetTag(ctx, "dev-1", "difficult")
	view = mgr.View(ctx, "dev-1")
	if view.Selected != nil {
		t.Fatalf("selection must be cleared when filtered out")
	}
}

func TestSelectionClearedByQueryChange(t *testing.T) {
	trails := []catalog.Trail{
		{ID: "green-ridge", Name: "Green Ridge Loop", Difficulty: catalog.Easy, Latitude: 40.6, Longitude: -105.4},
	}
	mgr := NewManager(trails, nil, nil)
	ctx := context.Background()

	mgr.SetQuery(ctx, "dev-1", "ridge")
	view := mgr.View(ctx, "dev-1")
	if len(view.Trails) != 1 {
		t.Fatalf("expected query to match Green Ridge Loop")
	}

	mgr.Select(ctx, "dev-1", "green-ridge")
	mgr.SetTag(ctx, "dev-1", "difficult")
	view = mgr.View(ctx, "dev-1")
	if view.Selected != nil {
		t.Fatalf("expected selection cleared")
	}
	if len(view.Trails) != 0 {
		t.Fatalf("expected empty filtered set")
	}
	if view.Intent.Kind != viewport.FitBounds || *view.Intent.Bounds != viewport.FallbackBounds {
		t.Fatalf("empty set must frame the district fallback")
	}
}

func TestSelectionNarrowsMarkersAndFliesTo(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	mgr.Select(ctx, "dev-1", "greyrock")
	view := mgr.View(ctx, "dev-1")
	if len(view.Trails) != 1 || view.Trails[0].ID != "greyrock" {
		t.Fatalf("selection must narrow markers to the selected trail")
	}
	if view.Intent.Kind != viewport.FlyTo {
		t.Fatalf("expected flyTo camera, got %s", view.Intent.Kind)
	}

	mgr.Select(ctx, "dev-1", "")
	view = mgr.View(ctx, "dev-1")
	if view.Selected != nil {
		t.Fatalf("expected selection cleared")
	}
	if view.Intent.Kind != viewport.FitBounds {
		t.Fatalf("expected fitBounds after clearing selection")
	}
	if len(view.Trails) != len(catalog.CanyonLakesTrails) {
		t.Fatalf("expected all markers back")
	}
}

func TestSelectUnknownTrail(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	if mgr.Select(context.Background(), "dev-1", "nope") {
		t.Fatalf("expected selection of unknown trail to fail")
	}
}

func TestTripsTagShowsAllMarkers(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	mgr.SetTag(ctx, "dev-1", TagTrips)
	view := mgr.View(ctx, "dev-1")
	if view.Tag != TagTrips {
		t.Fatalf("expected trips tag retained")
	}
	if len(view.Trails) != len(catalog.CanyonLakesTrails) {
		t.Fatalf("trips mode must not hide map markers")
	}
}

func TestSelectTripTrailFuzzy(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	if !mgr.SelectTripTrail(ctx, "dev-1", "hewlett gulch with the crew") {
		t.Fatalf("expected fuzzy match")
	}
	view := mgr.View(ctx, "dev-1")
	if view.Selected == nil || view.Selected.ID != "hewlett-gulch" {
		t.Fatalf("expected hewlett-gulch selected")
	}

	// a miss leaves the selection unchanged
	if mgr.SelectTripTrail(ctx, "dev-1", "Quandary Peak") {
		t.Fatalf("expected no match")
	}
	view = mgr.View(ctx, "dev-1")
	if view.Selected == nil || view.Selected.ID != "hewlett-gulch" {
		t.Fatalf("failed match must not clear selection")
	}
}

func TestPendingActionLifecycle(t *testing.T) {
	mgr, tripSvc, _ := newTestManager(t)
	ctx := context.Background()

	before, err := tripSvc.Totals(ctx, "dev-1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}

	result, err := mgr.RequestMutation(ctx, "dev-1", Action{Op: OpAdd})
	if err != nil {
		t.Fatalf("request mutation: %v", err)
	}
	if result.Executed {
		t.Fatalf("locked device must queue, not execute")
	}
	if !mgr.View(ctx, "dev-1").HasPending {
		t.Fatalf("expected pending action")
	}

	// wrong password: nothing executes, pending retained for retry
	if _, _, err := mgr.Unlock(ctx, "dev-1", "chainsaw", false); err != gate.ErrWrongPassword {
		t.Fatalf("expected wrong password error, got %v", err)
	}
	if !mgr.View(ctx, "dev-1").HasPending {
		t.Fatalf("wrong password must retain the pending action")
	}
	mid, _ := tripSvc.Totals(ctx, "dev-1")
	if mid.Trips != before.Trips {
		t.Fatalf("wrong password must execute nothing")
	}

	// correct password: exactly one pending action runs and clears
	token, result, err := mgr.Unlock(ctx, "dev-1", "crosscut", false)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if token == "" {
		t.Fatalf("expected device token")
	}
	if !result.Executed || result.Trip == nil {
		t.Fatalf("expected pending add to execute")
	}
	if mgr.View(ctx, "dev-1").HasPending {
		t.Fatalf("pending action must clear after execution")
	}
	after, _ := tripSvc.Totals(ctx, "dev-1")
	if after.Trips != before.Trips+1 {
		t.Fatalf("expected exactly one add, got %d -> %d", before.Trips, after.Trips)
	}

	// a second unlock has nothing left to run
	_, result, err = mgr.Unlock(ctx, "dev-1", "crosscut", false)
	if err != nil {
		t.Fatalf("unlock again: %v", err)
	}
	if result.Executed {
		t.Fatalf("no pending action should remain")
	}
}

func TestCancelDiscardsPending(t *testing.T) {
	mgr, tripSvc, _ := newTestManager(t)
	ctx := context.Background()

	if _, err := mgr.RequestMutation(ctx, "dev-1", Action{Op: OpAdd}); err != nil {
		t.Fatalf("request mutation: %v", err)
	}
	mgr.CancelUnlock(ctx, "dev-1")
	if mgr.View(ctx, "dev-1").HasPending {
		t.Fatalf("cancel must discard the pending action")
	}

	before, _ := tripSvc.Totals(ctx, "dev-1")
	if _, _, err := mgr.Unlock(ctx, "dev-1", "crosscut", false); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	after, _ := tripSvc.Totals(ctx, "dev-1")
	if after.Trips != before.Trips {
		t.Fatalf("cancelled action must never execute")
	}
}

func TestAuthenticatedMutationsRunImmediately(t *testing.T) {
	mgr, tripSvc, _ := newTestManager(t)
	ctx := context.Background()

	if _, _, err := mgr.Unlock(ctx, "dev-1", "crosscut", false); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	before, err := tripSvc.Totals(ctx, "dev-1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}

	result, err := mgr.RequestMutation(ctx, "dev-1", Action{Op: OpAdd})
	if err != nil {
		t.Fatalf("request mutation: %v", err)
	}
	if !result.Executed || result.Trip == nil {
		t.Fatalf("unlocked device must execute immediately")
	}

	updated, err := mgr.RequestMutation(ctx, "dev-1", Action{
		Op:     OpUpdate,
		TripID: result.Trip.ID,
		Trip:   triplog.Trip{Date: result.Trip.Date, Trail: "Greyrock Trail", TreesCleared: "3"},
	})
	if err != nil || !updated.Executed {
		t.Fatalf("update: %v", err)
	}
	if updated.Trip.Trail != "Greyrock Trail" {
		t.Fatalf("unexpected update result")
	}

	if _, err := mgr.RequestMutation(ctx, "dev-1", Action{Op: OpDelete, TripID: result.Trip.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	totals, _ := tripSvc.Totals(ctx, "dev-1")
	if totals.Trips != before.Trips {
		t.Fatalf("add then delete must leave the collection unchanged, got %d", totals.Trips)
	}
}

func TestRememberedDeviceSkipsPrompt(t *testing.T) {
	mgr, _, store := newTestManager(t)
	ctx := context.Background()

	if err := store.Set(ctx, "trailsMapper.remembered:dev-9", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	view := mgr.View(ctx, "dev-9")
	if !view.Authenticated || !view.Remembered {
		t.Fatalf("remembered device must start authenticated")
	}

	result, err := mgr.RequestMutation(ctx, "dev-9", Action{Op: OpAdd})
	if err != nil || !result.Executed {
		t.Fatalf("remembered device must mutate without prompting: %v", err)
	}
}

func TestUnknownOp(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	if _, _, err := mgr.Unlock(ctx, "dev-1", "crosscut", false); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := mgr.RequestMutation(ctx, "dev-1", Action{Op: "rename"}); err != ErrUnknownOp {
		t.Fatalf("expected ErrUnknownOp, got %v", err)
	}
}
