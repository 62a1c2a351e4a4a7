package service

import (
	"context"
	"errors"
	"fmt"

	"giveaway/internal/model"
	"giveaway/internal/store"
)

var ErrEmptySubmission = errors.New("empty submission")

// IntakeService turns a donor form submission into a stored raw
// submission plus a derived pickup record.
type IntakeService struct {
	submissions store.SubmissionStore
	pickups     store.PickupStore
}

func NewIntakeService(subs store.SubmissionStore, pickups store.PickupStore) *IntakeService {
	return &IntakeService{submissions: subs, pickups: pickups}
}

type IntakeResult struct {
	SubmissionID string
	PickupID     string
}

// Submit persists the raw submission verbatim, then the pickup derived
// from it. The pair must land together: if the pickup insert fails the
// stored submission is deleted again so no half-pair survives.
func (s *IntakeService) Submit(ctx context.Context, sub model.Submission) (*IntakeResult, error) {
	if sub.IsEmpty() {
		return nil, ErrEmptySubmission
	}

	saved, err := s.submissions.CreateSubmission(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	pickup, err := s.pickups.CreatePickup(ctx, pickupFromSubmission(sub))
	if err != nil {
		if delErr := s.submissions.DeleteSubmission(ctx, saved.ID); delErr != nil {
			return nil, fmt.Errorf("save pickup: %w (submission cleanup also failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("save pickup: %w", err)
	}

	return &IntakeResult{SubmissionID: saved.ID, PickupID: pickup.ID}, nil
}

func (s *IntakeService) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	return s.submissions.ListSubmissions(ctx)
}

// pickupFromSubmission composes the dashboard display strings from the
// raw form fields. Donors without an organisation name show as
// "Anonymous".
func pickupFromSubmission(sub model.Submission) model.Pickup {
	donor := sub.Organisation
	if donor == "" {
		donor = "Anonymous"
	}

	return model.Pickup{
		DonorName:     donor,
		Location:      fmt.Sprintf("%s, %s, %s", sub.Street, sub.City, sub.Postcode),
		Items:         fmt.Sprintf("%s (%d bags)", sub.Type, sub.Bags),
		PreferredDate: fmt.Sprintf("%s %s", sub.Day, sub.Time),
		Contact:       sub.Phone,
		Status:        model.StatusPending,
		Notes:         sub.Notes,
	}
}
