package service

import (
	"context"
	"errors"
	"testing"

	"giveaway/internal/store"
)

func TestCharityAuthVerify(t *testing.T) {
	mem := store.NewMemory()
	auth := NewCharityAuth(mem)
	ctx := context.Background()

	created, err := auth.Create(ctx, "Demo Charity", "charity@demo.com", "charity123", "Demo City")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		charity, err := auth.Verify(ctx, "charity@demo.com", "charity123")
		if err != nil {
			t.Fatalf("Verify() error: %v", err)
		}
		if charity.ID != created.ID {
			t.Errorf("Verify() id = %q, want %q", charity.ID, created.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Verify(ctx, "charity@demo.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Verify(ctx, "nobody@demo.com", "charity123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestSampleDataReusesDemoCharity(t *testing.T) {
	mem := store.NewMemory()
	auth := NewCharityAuth(mem)
	svc := NewSampleService(auth, mem, mem)
	ctx := context.Background()

	if err := svc.CreateSampleData(ctx); err != nil {
		t.Fatalf("CreateSampleData() error: %v", err)
	}
	if err := svc.CreateSampleData(ctx); err != nil {
		t.Fatalf("CreateSampleData() second call error: %v", err)
	}

	charity, err := mem.GetCharityByEmail(ctx, "charity@demo.com")
	if err != nil {
		t.Fatalf("demo charity missing: %v", err)
	}

	pickups, _ := mem.ListPickups(ctx)
	if len(pickups) != 6 {
		t.Errorf("two sample-data calls created %d pickups, want 6", len(pickups))
	}
	for _, p := range pickups {
		if p.CharityID != charity.ID {
			t.Errorf("sample pickup %s not bound to demo charity", p.ID)
		}
	}
}
