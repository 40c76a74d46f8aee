package session

import (
	"context"

	"github.com/dgennetten/trailsMapper/internal/triplog"
)

// MutationResult reports what a gated mutation produced once it ran.
type MutationResult struct {
	Executed bool          `json:"executed"`
	Trip     *triplog.Trip `json:"trip,omitempty"`
}

// RequestMutation runs the trip-log mutation when the device is already
// unlocked; otherwise it becomes the single pending action, replacing any
// earlier one, and waits for Unlock.
func (m *Manager) RequestMutation(ctx context.Context, deviceID string, action Action) (MutationResult, error) {
	st := m.state(ctx, deviceID)

	m.mu.Lock()
	if !st.Authenticated {
		pending := action
		st.Pending = &pending
		m.mu.Unlock()
		return MutationResult{Executed: false}, nil
	}
	m.mu.Unlock()

	return m.execute(ctx, deviceID, action)
}

// Unlock submits the shared secret. Success authenticates the device and
// executes exactly one pending action, clearing it. A wrong password
// executes nothing and keeps the pending action so the user can retry.
func (m *Manager) Unlock(ctx context.Context, deviceID, password string, remember bool) (string, MutationResult, error) {
	token, err := m.gate.Unlock(ctx, deviceID, password, remember)
	if err != nil {
		return "", MutationResult{}, err
	}

	st := m.state(ctx, deviceID)
	m.mu.Lock()
	st.Authenticated = true
	st.Remembered = st.Remembered || remember
	pending := st.Pending
	st.Pending = nil
	m.mu.Unlock()

	if pending == nil {
		return token, MutationResult{Executed: false}, nil
	}
	result, err := m.execute(ctx, deviceID, *pending)
	return token, result, err
}

// CancelUnlock discards the pending action without touching anything else.
func (m *Manager) CancelUnlock(ctx context.Context, deviceID string) {
	st := m.state(ctx, deviceID)
	m.mu.Lock()
	st.Pending = nil
	m.mu.Unlock()
}

func (m *Manager) execute(ctx context.Context, deviceID string, action Action) (MutationResult, error) {
	switch action.Op {
	case OpAdd:
		trip, err := m.trips.Add(ctx, deviceID)
		if err != nil {
			return MutationResult{}, err
		}
		return MutationResult{Executed: true, Trip: &trip}, nil
	case OpUpdate:
		trip, err := m.trips.Update(ctx, deviceID, action.TripID, action.Trip)
		if err != nil {
			return MutationResult{}, err
		}
		return MutationResult{Executed: true, Trip: &trip}, nil
	case OpDelete:
		if err := m.trips.Delete(ctx, deviceID, action.TripID); err != nil {
			return MutationResult{}, err
		}
		return MutationResult{Executed: true}, nil
	default:
		return MutationResult{}, ErrUnknownOp
	}
}
