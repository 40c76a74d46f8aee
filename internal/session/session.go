// Package session is the page controller: it owns the transient per-device
// UI state (search, filter tag, selection, trip sort, unlock state) and
// reconciles it into a single view with one camera command per change.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dgennetten/trailsMapper/internal/catalog"
	"github.com/dgennetten/trailsMapper/internal/gate"
	"github.com/dgennetten/trailsMapper/internal/triplog"
	"github.com/dgennetten/trailsMapper/internal/viewport"
)

const (
	TagAll   = "all"
	TagTrips = "trips"
)

const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

var ErrUnknownOp = errors.New("unknown mutation op")

// Action is a deferred trip-log mutation queued behind the auth gate.
type Action struct {
	Op     string       `json:"op"`
	TripID string       `json:"trip_id,omitempty"`
	Trip   triplog.Trip `json:"trip,omitempty"`
}

// State is transient and page-scoped; it never outlives the process.
type State struct {
	Query         string
	Tag           string
	SelectedID    string
	SortKey       string
	SortDesc      bool
	Authenticated bool
	Remembered    bool
	Pending       *Action
}

// View is the reconciled read model handed to the frontend.
type View struct {
	Query         string          `json:"query"`
	Tag           string          `json:"tag"`
	Selected      *catalog.Trail  `json:"selected,omitempty"`
	Trails        []catalog.Trail `json:"trails"`
	Intent        viewport.Intent `json:"camera"`
	SortKey       string          `json:"sortKey"`
	SortDesc      bool            `json:"sortDesc"`
	Authenticated bool            `json:"authenticated"`
	Remembered    bool            `json:"remembered"`
	HasPending    bool            `json:"hasPending"`
}

type Manager struct {
	trails []catalog.Trail
	gate   *gate.Service
	trips  *triplog.Service

	mu     sync.RWMutex
	states map[string]*State
}

func NewManager(trails []catalog.Trail, gateSvc *gate.Service, tripSvc *triplog.Service) *Manager {
	return &Manager{
		trails: trails,
		gate:   gateSvc,
		trips:  tripSvc,
		states: map[string]*State{},
	}
}

func (m *Manager) state(ctx context.Context, deviceID string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.states[deviceID]; ok {
		return st
	}
	st := &State{
		Tag:      TagAll,
		SortKey:  triplog.SortByDate,
		SortDesc: true,
	}
	if m.gate != nil && m.gate.Remembered(ctx, deviceID) {
		st.Remembered = true
		st.Authenticated = true
	}
	m.states[deviceID] = st
	return st
}

// filtered returns the trails matching the current query and tag. The
// trips tab is a view-mode marker, not a difficulty: the map keeps showing
// the whole filtered catalog while the trip table is up.
func (m *Manager) filtered(st *State) []catalog.Trail {
	tag := st.Tag
	if tag == TagTrips {
		tag = TagAll
	}
	return catalog.Filter(m.trails, st.Query, tag)
}

// reconcile enforces the selection invariant: a selected trail that fell
// out of the filtered set is cleared, never silently retained.
func (m *Manager) reconcile(st *State) {
	if st.SelectedID == "" {
		return
	}
	for _, t := range m.filtered(st) {
		if t.ID == st.SelectedID {
			return
		}
	}
	st.SelectedID = ""
}

func (m *Manager) View(ctx context.Context, deviceID string) View {
	st := m.state(ctx, deviceID)

	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := m.filtered(st)
	selected := catalog.ByID(m.trails, st.SelectedID)

	// a selection narrows the displayed markers to that trail only
	markers := filtered
	if selected != nil {
		markers = []catalog.Trail{*selected}
	}
	if markers == nil {
		markers = []catalog.Trail{}
	}

	return View{
		Query:         st.Query,
		Tag:           st.Tag,
		Selected:      selected,
		Trails:        markers,
		Intent:        viewport.Plan(selected, filtered),
		SortKey:       st.SortKey,
		SortDesc:      st.SortDesc,
		Authenticated: st.Authenticated,
		Remembered:    st.Remembered,
		HasPending:    st.Pending != nil,
	}
}

func (m *Manager) SetQuery(ctx context.Context, deviceID, query string) {
	st := m.state(ctx, deviceID)
	m.mu.Lock()
	st.Query = query
	m.reconcile(st)
	m.mu.Unlock()
}

func (m *Manager) SetTag(ctx context.Context, deviceID, tag string) {
	st := m.state(ctx, deviceID)
	m.mu.Lock()
	if tag == "" {
		tag = TagAll
	}
	st.Tag = tag
	m.reconcile(st)
	m.mu.Unlock()
}

func (m *Manager) SetSort(ctx context.Context, deviceID, key string, desc bool) {
	st := m.state(ctx, deviceID)
	m.mu.Lock()
	st.SortKey = key
	st.SortDesc = desc
	m.mu.Unlock()
}

// Select sets the selection when the trail exists; an empty id clears it.
func (m *Manager) Select(ctx context.Context, deviceID, trailID string) bool {
	st := m.state(ctx, deviceID)
	m.mu.Lock()
	defer m.mu.Unlock()

	if trailID == "" {
		st.SelectedID = ""
		return true
	}
	if catalog.ByID(m.trails, trailID) == nil {
		return false
	}
	st.SelectedID = trailID
	return true
}

// SelectTripTrail jumps from a trip's free-text trail name to the matching
// catalog entry. No match is a silent no-op.
func (m *Manager) SelectTripTrail(ctx context.Context, deviceID, name string) bool {
	trail := catalog.Match(m.trails, name)
	if trail == nil {
		return false
	}
	st := m.state(ctx, deviceID)
	m.mu.Lock()
	st.SelectedID = trail.ID
	m.mu.Unlock()
	return true
}
