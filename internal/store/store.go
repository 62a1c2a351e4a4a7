package store

import (
	"context"
	"errors"

	"giveaway/internal/model"
)

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("record not found")

// PickupStore owns pickup records. All mutation goes through the
// id-addressed update path; UpdatePickupStatus must be atomic with
// respect to concurrent updates on the same id.
type PickupStore interface {
	CreatePickup(ctx context.Context, p model.Pickup) (model.Pickup, error)
	ListPickups(ctx context.Context) ([]model.Pickup, error)
	GetPickupByID(ctx context.Context, id string) (model.Pickup, error)
	UpdatePickupStatus(ctx context.Context, id string, status model.Status) (model.Pickup, error)
	CountPickups(ctx context.Context) (int, error)
}

// SubmissionStore owns raw donor submissions.
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, s model.Submission) (model.Submission, error)
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
}

type CharityStore interface {
	CreateCharity(ctx context.Context, c model.Charity) (model.Charity, error)
	GetCharityByEmail(ctx context.Context, email string) (model.Charity, error)
}
