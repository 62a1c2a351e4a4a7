package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"giveaway/internal/model"
)

// Memory is an in-memory implementation of the store interfaces. It
// backs the unit tests and can serve as a no-database fallback. Records
// are stored by value, so callers never share mutable state with the
// store; list order follows insertion order.
type Memory struct {
	mu          sync.RWMutex
	pickups     map[string]model.Pickup
	pickupIDs   []string
	submissions map[string]model.Submission
	subIDs      []string
	charities   map[string]model.Charity
}

func NewMemory() *Memory {
	return &Memory{
		pickups:     make(map[string]model.Pickup),
		submissions: make(map[string]model.Submission),
		charities:   make(map[string]model.Charity),
	}
}

func (m *Memory) CreatePickup(_ context.Context, p model.Pickup) (model.Pickup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = model.StatusPending
	}
	p.CreatedAt = time.Now()

	m.pickups[p.ID] = p
	m.pickupIDs = append(m.pickupIDs, p.ID)
	return p, nil
}

func (m *Memory) ListPickups(_ context.Context) ([]model.Pickup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pickups := make([]model.Pickup, 0, len(m.pickupIDs))
	for _, id := range m.pickupIDs {
		pickups = append(pickups, m.pickups[id])
	}
	return pickups, nil
}

func (m *Memory) GetPickupByID(_ context.Context, id string) (model.Pickup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.pickups[id]
	if !ok {
		return model.Pickup{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) UpdatePickupStatus(_ context.Context, id string, status model.Status) (model.Pickup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pickups[id]
	if !ok {
		return model.Pickup{}, ErrNotFound
	}
	p.Status = status
	m.pickups[id] = p
	return p, nil
}

func (m *Memory) CountPickups(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.pickups), nil
}

func (m *Memory) CreateSubmission(_ context.Context, s model.Submission) (model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()

	m.submissions[s.ID] = s
	m.subIDs = append(m.subIDs, s.ID)
	return s, nil
}

func (m *Memory) ListSubmissions(_ context.Context) ([]model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subs := make([]model.Submission, 0, len(m.subIDs))
	for _, id := range m.subIDs {
		subs = append(subs, m.submissions[id])
	}
	return subs, nil
}

func (m *Memory) DeleteSubmission(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.submissions[id]; !ok {
		return ErrNotFound
	}
	delete(m.submissions, id)
	for i, sid := range m.subIDs {
		if sid == id {
			m.subIDs = append(m.subIDs[:i], m.subIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) CreateCharity(_ context.Context, c model.Charity) (model.Charity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()

	m.charities[c.ID] = c
	return c, nil
}

func (m *Memory) GetCharityByEmail(_ context.Context, email string) (model.Charity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.charities {
		if c.Email == email {
			return c, nil
		}
	}
	return model.Charity{}, ErrNotFound
}
