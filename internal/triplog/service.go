package triplog

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgennetten/trailsMapper/internal/kv"
	"github.com/dgennetten/trailsMapper/internal/stream"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("trip not found")

// Service owns the persisted trip collection. All reads and writes go
// through it; other components observe changes via the stream hub.
type Service struct {
	kv  kv.Store
	hub *stream.Hub
	now func() time.Time
}

func NewService(store kv.Store, hub *stream.Hub) *Service {
	return &Service{kv: store, hub: hub, now: time.Now}
}

func tripsKey(deviceID string) string {
	return "trailsMapper.trips:" + deviceID
}

// load returns the device's collection, falling back to the seed list when
// nothing is stored or the stored data is malformed. The seed (and any
// legacy records missing an id) are persisted right away so subsequent
// loads are stable.
func (s *Service) load(ctx context.Context, deviceID string) ([]Trip, error) {
	raw, ok, err := s.kv.Get(ctx, tripsKey(deviceID))
	if err != nil {
		return nil, err
	}

	var trips []Trip
	if !ok || json.Unmarshal([]byte(raw), &trips) != nil {
		trips = make([]Trip, len(seedTrips))
		copy(trips, seedTrips)
	}

	assigned := false
	for i := range trips {
		if trips[i].ID == "" {
			trips[i].ID = uuid.NewString()
			assigned = true
		}
	}
	if !ok || assigned {
		if err := s.persist(ctx, deviceID, trips); err != nil {
			return nil, err
		}
	}
	return trips, nil
}

func (s *Service) persist(ctx context.Context, deviceID string, trips []Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, tripsKey(deviceID), string(data))
}

// List returns the collection sorted by the given key. Ties keep insertion
// order. Dates compare as raw ISO strings (zero-padded YYYY-MM-DD sorts
// correctly lexicographically), trail names case-insensitively, trees by
// parsed count.
func (s *Service) List(ctx context.Context, deviceID, sortBy string, desc bool) ([]Trip, error) {
	trips, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	less := func(a, b Trip) bool {
		switch sortBy {
		case SortByTrail:
			return strings.ToLower(a.Trail) < strings.ToLower(b.Trail)
		case SortByTrees:
			return parseTrees(a.TreesCleared) < parseTrees(b.TreesCleared)
		default:
			return a.Date < b.Date
		}
	}
	sort.SliceStable(trips, func(i, j int) bool {
		if desc {
			return less(trips[j], trips[i])
		}
		return less(trips[i], trips[j])
	})
	return trips, nil
}

// Add appends a record seeded with today's date and blank fields. The
// caller puts it straight into edit mode.
func (s *Service) Add(ctx context.Context, deviceID string) (Trip, error) {
	trips, err := s.load(ctx, deviceID)
	if err != nil {
		return Trip{}, err
	}

	trip := Trip{
		ID:   uuid.NewString(),
		Date: s.now().Format("2006-01-02"),
	}
	trips = append(trips, trip)

	if err := s.save(ctx, deviceID, trips); err != nil {
		return Trip{}, err
	}
	return trip, nil
}

// Update replaces the record with the given id. The id is the only lookup
// key, so two trips sharing a date and trail name stay independent.
func (s *Service) Update(ctx context.Context, deviceID, id string, patch Trip) (Trip, error) {
	trips, err := s.load(ctx, deviceID)
	if err != nil {
		return Trip{}, err
	}

	for i := range trips {
		if trips[i].ID == id {
			patch.ID = id
			trips[i] = patch
			if err := s.save(ctx, deviceID, trips); err != nil {
				return Trip{}, err
			}
			return patch, nil
		}
	}
	return Trip{}, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, deviceID, id string) error {
	trips, err := s.load(ctx, deviceID)
	if err != nil {
		return err
	}

	kept := trips[:0]
	found := false
	for _, trip := range trips {
		if trip.ID == id {
			found = true
			continue
		}
		kept = append(kept, trip)
	}
	if !found {
		return ErrNotFound
	}
	return s.save(ctx, deviceID, kept)
}

func (s *Service) Totals(ctx context.Context, deviceID string) (Totals, error) {
	trips, err := s.load(ctx, deviceID)
	if err != nil {
		return Totals{}, err
	}
	return totalsOf(trips), nil
}

// save persists the collection, then recomputes totals and broadcasts the
// change. Persist strictly precedes the totals recompute so a subscriber
// never observes totals ahead of durable state.
func (s *Service) save(ctx context.Context, deviceID string, trips []Trip) error {
	if err := s.persist(ctx, deviceID, trips); err != nil {
		return err
	}

	if s.hub != nil {
		payload, _ := json.Marshal(map[string]any{
			"event":  "triplog.changed",
			"totals": totalsOf(trips),
		})
		s.hub.Broadcast(deviceID, payload)
	}
	return nil
}

func totalsOf(trips []Trip) Totals {
	t := Totals{Trips: len(trips)}
	for _, trip := range trips {
		t.TreesCleared += parseTrees(trip.TreesCleared)
	}
	return t
}

// parseTrees reads the free-text trees-cleared field; blank or non-numeric
// counts as zero.
func parseTrees(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
