package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"giveaway/internal/logger"
	"giveaway/internal/model"
	"giveaway/internal/store"
)

var ErrInvalidStatus = errors.New("invalid pickup status")

// PickupService is the read/update API over the pickup store.
type PickupService struct {
	store store.PickupStore
	log   logger.Logger

	seedMu sync.Mutex
}

func NewPickupService(st store.PickupStore, log logger.Logger) *PickupService {
	return &PickupService{store: st, log: log}
}

// ListPickups returns all pickups, seeding the demo set first if the
// store is empty so a fresh deployment has visible content.
func (s *PickupService) ListPickups(ctx context.Context) ([]model.Pickup, error) {
	if err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.store.ListPickups(ctx)
}

// EnsureSeeded inserts the demo pickups if and only if the store holds
// no records. Safe to call repeatedly; normally invoked once at startup
// so the read path never has to seed.
func (s *PickupService) EnsureSeeded(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	count, err := s.store.CountPickups(ctx)
	if err != nil {
		return fmt.Errorf("count pickups: %w", err)
	}
	if count > 0 {
		return nil
	}

	demo := demoPickups("")
	for _, p := range demo {
		if _, err := s.store.CreatePickup(ctx, p); err != nil {
			return fmt.Errorf("seed pickup: %w", err)
		}
	}
	s.log.Info("seeded demo pickups", logger.Int("count", len(demo)))

	return nil
}

// PatchStatus validates the target status, then replaces only the
// status field of the addressed record. Any of the three enum values is
// accepted regardless of the current status; the store decides nothing
// about ordering.
func (s *PickupService) PatchStatus(ctx context.Context, id, status string) (model.Pickup, error) {
	st, err := model.ParseStatus(status)
	if err != nil {
		return model.Pickup{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := s.store.UpdatePickupStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Pickup{}, err
		}
		return model.Pickup{}, fmt.Errorf("update status: %w", err)
	}

	return updated, nil
}

// demoPickups is the fixed bootstrap set: three records spanning all
// three statuses.
func demoPickups(charityID string) []model.Pickup {
	return []model.Pickup{
		{
			DonorName:     "John Doe",
			Location:      "123 Main St, Demo City, 12345",
			Items:         "Clothes, Books",
			PreferredDate: "Monday 10:00 AM",
			Contact:       "555-0123",
			Status:        model.StatusPending,
			CharityID:     charityID,
		},
		{
			DonorName:     "Jane Smith",
			Location:      "456 Oak Ave, Demo City, 12345",
			Items:         "Furniture, Electronics",
			PreferredDate: "Tuesday 2:00 PM",
			Contact:       "555-0124",
			Status:        model.StatusScheduled,
			CharityID:     charityID,
		},
		{
			DonorName:     "Bob Wilson",
			Location:      "789 Pine Rd, Demo City, 12345",
			Items:         "Toys, Kitchen Items",
			PreferredDate: "Wednesday 3:00 PM",
			Contact:       "555-0125",
			Status:        model.StatusCompleted,
			CharityID:     charityID,
		},
	}
}
