package service

import (
	"context"
	"errors"
	"fmt"

	"giveaway/internal/model"
	"giveaway/internal/store"
)

const (
	demoCharityName     = "Demo Charity"
	demoCharityEmail    = "charity@demo.com"
	demoCharityPassword = "charity123"
	demoCharityLocation = "Demo City"
)

// SampleService creates the demo charity plus its three pickups, the
// POST /api/sample-data behavior.
type SampleService struct {
	auth      *CharityAuth
	charities store.CharityStore
	pickups   store.PickupStore
}

func NewSampleService(auth *CharityAuth, charities store.CharityStore, pickups store.PickupStore) *SampleService {
	return &SampleService{auth: auth, charities: charities, pickups: pickups}
}

// CreateSampleData inserts the demo charity (reusing it if it already
// exists) and three pickups bound to it, one per status.
func (s *SampleService) CreateSampleData(ctx context.Context) error {
	charity, err := s.demoCharity(ctx)
	if err != nil {
		return err
	}

	for _, p := range demoPickups(charity.ID) {
		if _, err := s.pickups.CreatePickup(ctx, p); err != nil {
			return fmt.Errorf("create sample pickup: %w", err)
		}
	}

	return nil
}

func (s *SampleService) demoCharity(ctx context.Context) (*model.Charity, error) {
	existing, err := s.charities.GetCharityByEmail(ctx, demoCharityEmail)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get demo charity: %w", err)
	}

	return s.auth.Create(ctx, demoCharityName, demoCharityEmail, demoCharityPassword, demoCharityLocation)
}
