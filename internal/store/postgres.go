package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"giveaway/internal/model"
)

// Postgres implements the store interfaces on top of database/sql.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) CreatePickup(ctx context.Context, pk model.Pickup) (model.Pickup, error) {
	status := pk.Status
	if status == "" {
		status = model.StatusPending
	}

	var charityID interface{}
	if pk.CharityID != "" {
		charityID = pk.CharityID
	}

	row := p.db.QueryRowContext(ctx, `
		INSERT INTO pickups (donor_name, location, items, preferred_date, contact, status, notes, charity_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, pk.DonorName, pk.Location, pk.Items, pk.PreferredDate, pk.Contact, status, pk.Notes, charityID)

	if err := row.Scan(&pk.ID, &pk.CreatedAt); err != nil {
		return model.Pickup{}, fmt.Errorf("insert pickup: %w", err)
	}
	pk.Status = status

	return pk, nil
}

func (p *Postgres) ListPickups(ctx context.Context) ([]model.Pickup, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, donor_name, location, items, preferred_date, contact, status, notes, COALESCE(charity_id::text, ''), created_at
		FROM pickups
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query pickups: %w", err)
	}
	defer rows.Close()

	var pickups []model.Pickup
	for rows.Next() {
		var pk model.Pickup
		if err := rows.Scan(&pk.ID, &pk.DonorName, &pk.Location, &pk.Items, &pk.PreferredDate,
			&pk.Contact, &pk.Status, &pk.Notes, &pk.CharityID, &pk.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pickup: %w", err)
		}
		pickups = append(pickups, pk)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return pickups, nil
}

func (p *Postgres) GetPickupByID(ctx context.Context, id string) (model.Pickup, error) {
	row := p.db.QueryRowContext(ctx, `
		SELECT id, donor_name, location, items, preferred_date, contact, status, notes, COALESCE(charity_id::text, ''), created_at
		FROM pickups
		WHERE id = $1
	`, id)

	var pk model.Pickup
	err := row.Scan(&pk.ID, &pk.DonorName, &pk.Location, &pk.Items, &pk.PreferredDate,
		&pk.Contact, &pk.Status, &pk.Notes, &pk.CharityID, &pk.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Pickup{}, ErrNotFound
		}
		return model.Pickup{}, fmt.Errorf("get pickup: %w", err)
	}

	return pk, nil
}

// UpdatePickupStatus replaces only the status field. The single UPDATE
// is atomic per row, so concurrent updates to the same id serialize.
func (p *Postgres) UpdatePickupStatus(ctx context.Context, id string, status model.Status) (model.Pickup, error) {
	row := p.db.QueryRowContext(ctx, `
		UPDATE pickups
		SET status = $1
		WHERE id = $2
		RETURNING id, donor_name, location, items, preferred_date, contact, status, notes, COALESCE(charity_id::text, ''), created_at
	`, status, id)

	var pk model.Pickup
	err := row.Scan(&pk.ID, &pk.DonorName, &pk.Location, &pk.Items, &pk.PreferredDate,
		&pk.Contact, &pk.Status, &pk.Notes, &pk.CharityID, &pk.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Pickup{}, ErrNotFound
		}
		return model.Pickup{}, fmt.Errorf("update pickup: %w", err)
	}

	return pk, nil
}

func (p *Postgres) CountPickups(ctx context.Context) (int, error) {
	var count int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pickups`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pickups: %w", err)
	}
	return count, nil
}

func (p *Postgres) CreateSubmission(ctx context.Context, s model.Submission) (model.Submission, error) {
	row := p.db.QueryRowContext(ctx, `
		INSERT INTO submissions (type, bags, help_groups, location, organisation, street, city, postcode, phone, day, time_slot, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`, s.Type, s.Bags, strings.Join(s.HelpGroups, ","), s.Location, s.Organisation,
		s.Street, s.City, s.Postcode, s.Phone, s.Day, s.Time, s.Notes)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return model.Submission{}, fmt.Errorf("insert submission: %w", err)
	}

	return s, nil
}

func (p *Postgres) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, type, bags, help_groups, location, organisation, street, city, postcode, phone, day, time_slot, notes, created_at
		FROM submissions
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		var s model.Submission
		var groups string
		if err := rows.Scan(&s.ID, &s.Type, &s.Bags, &groups, &s.Location, &s.Organisation,
			&s.Street, &s.City, &s.Postcode, &s.Phone, &s.Day, &s.Time, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if groups != "" {
			s.HelpGroups = strings.Split(groups, ",")
		}
		subs = append(subs, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return subs, nil
}

func (p *Postgres) DeleteSubmission(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) CreateCharity(ctx context.Context, c model.Charity) (model.Charity, error) {
	row := p.db.QueryRowContext(ctx, `
		INSERT INTO charities (name, email, password_hash, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.Name, c.Email, c.PasswordHash, c.Location)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return model.Charity{}, fmt.Errorf("charity %q already exists: %w", c.Email, err)
		}
		return model.Charity{}, fmt.Errorf("insert charity: %w", err)
	}

	return c, nil
}

func (p *Postgres) GetCharityByEmail(ctx context.Context, email string) (model.Charity, error) {
	row := p.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, location, created_at
		FROM charities
		WHERE email = $1
	`, email)

	var c model.Charity
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Location, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Charity{}, ErrNotFound
		}
		return model.Charity{}, fmt.Errorf("get charity: %w", err)
	}

	return c, nil
}
