package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"giveaway/internal/model"
	"giveaway/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks a charity credential pair and returns the
// authenticated principal. The dashboard only depends on this interface,
// so a different auth backend can be swapped in without touching it.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*model.Charity, error)
}

// CharityAuth verifies credentials against bcrypt hashes in the charity
// store.
type CharityAuth struct {
	store store.CharityStore
}

func NewCharityAuth(st store.CharityStore) *CharityAuth {
	return &CharityAuth{store: st}
}

func (a *CharityAuth) Verify(ctx context.Context, email, password string) (*model.Charity, error) {
	charity, err := a.store.GetCharityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get charity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(charity.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &charity, nil
}

// Create hashes the password and stores a new charity.
func (a *CharityAuth) Create(ctx context.Context, name, email, password, location string) (*model.Charity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	charity, err := a.store.CreateCharity(ctx, model.Charity{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Location:     location,
	})
	if err != nil {
		return nil, fmt.Errorf("insert charity: %w", err)
	}

	return &charity, nil
}
