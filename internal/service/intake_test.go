package service

import (
	"context"
	"errors"
	"testing"

	"giveaway/internal/model"
	"giveaway/internal/store"
)

func TestSubmitComposesPickup(t *testing.T) {
	mem := store.NewMemory()
	svc := NewIntakeService(mem, mem)
	ctx := context.Background()

	res, err := svc.Submit(ctx, model.Submission{
		Organisation: "Acme",
		Street:       "1 Rd",
		City:         "X",
		Postcode:     "11",
		Type:         "Clothes",
		Bags:         2,
		Day:          "Mon",
		Time:         "10am",
		Phone:        "555",
	})
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if res.SubmissionID == "" || res.PickupID == "" {
		t.Fatalf("Submit() returned incomplete result: %+v", res)
	}

	pickup, err := mem.GetPickupByID(ctx, res.PickupID)
	if err != nil {
		t.Fatalf("GetPickupByID() error: %v", err)
	}

	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"donorName", pickup.DonorName, "Acme"},
		{"location", pickup.Location, "1 Rd, X, 11"},
		{"items", pickup.Items, "Clothes (2 bags)"},
		{"preferredDate", pickup.PreferredDate, "Mon 10am"},
		{"contact", pickup.Contact, "555"},
		{"status", string(pickup.Status), "pending"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.field, tt.got, tt.want)
		}
	}
}

func TestSubmitAnonymousDonor(t *testing.T) {
	mem := store.NewMemory()
	svc := NewIntakeService(mem, mem)
	ctx := context.Background()

	res, err := svc.Submit(ctx, model.Submission{Street: "1 Rd", City: "X", Postcode: "11"})
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	pickup, _ := mem.GetPickupByID(ctx, res.PickupID)
	if pickup.DonorName != "Anonymous" {
		t.Errorf("donorName = %q, want Anonymous", pickup.DonorName)
	}
}

func TestSubmitEmptyPayload(t *testing.T) {
	mem := store.NewMemory()
	svc := NewIntakeService(mem, mem)

	_, err := svc.Submit(context.Background(), model.Submission{})
	if !errors.Is(err, ErrEmptySubmission) {
		t.Errorf("Submit() error = %v, want ErrEmptySubmission", err)
	}

	subs, _ := mem.ListSubmissions(context.Background())
	if len(subs) != 0 {
		t.Error("rejected submission must not be persisted")
	}
}

// failingPickupStore wraps the memory store but refuses pickup inserts.
type failingPickupStore struct {
	*store.Memory
}

func (f *failingPickupStore) CreatePickup(ctx context.Context, p model.Pickup) (model.Pickup, error) {
	return model.Pickup{}, errors.New("disk full")
}

func TestSubmitCompensatesWhenPickupInsertFails(t *testing.T) {
	mem := store.NewMemory()
	svc := NewIntakeService(mem, &failingPickupStore{Memory: mem})
	ctx := context.Background()

	_, err := svc.Submit(ctx, model.Submission{Organisation: "Acme", Bags: 1})
	if err == nil {
		t.Fatal("Submit() should fail when the pickup insert fails")
	}

	subs, _ := mem.ListSubmissions(ctx)
	if len(subs) != 0 {
		t.Errorf("submission left behind after pickup insert failed: %d records", len(subs))
	}
	pickups, _ := mem.ListPickups(ctx)
	if len(pickups) != 0 {
		t.Errorf("pickup left behind after failed submit: %d records", len(pickups))
	}
}
