package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/common"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/oklog/ulid/v2"
)

// CreateDonor stores a new donor. An empty ID is filled with a ULID and a
// zero CreatedAt with the current time; both are written back to donor.
func (s *SQLiteStorage) CreateDonor(ctx context.Context, donor *model.Donor) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDonor(donor); err != nil {
		return err
	}

	if donor.ID == "" {
		donor.ID = ulid.Make().String()
	}
	if donor.CreatedAt.IsZero() {
		donor.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO donors (id, name, email, created_at)
		VALUES (?, ?, ?, ?)
	`, donor.ID, donor.Name, nullString(donor.Email), donor.CreatedAt.UTC())
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: donor %s", common.ErrDuplicateEntry, donor.ID)
		}
		return fmt.Errorf("failed to create donor: %w", err)
	}
	return nil
}

// GetDonor returns the donor with the given ID, or common.ErrNotFound.
func (s *SQLiteStorage) GetDonor(ctx context.Context, id string) (*model.Donor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, created_at FROM donors WHERE id = ?
	`, id)

	donor, err := scanDonor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: donor %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}
	return donor, nil
}

// ListDonors returns every donor ordered by creation time.
func (s *SQLiteStorage) ListDonors(ctx context.Context) ([]model.Donor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, created_at FROM donors ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var donors []model.Donor
	for rows.Next() {
		donor, err := scanDonor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donor: %w", err)
		}
		donors = append(donors, *donor)
	}
	return donors, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDonor(row scanner) (*model.Donor, error) {
	var (
		donor model.Donor
		email sql.NullString
	)
	if err := row.Scan(&donor.ID, &donor.Name, &email, &donor.CreatedAt); err != nil {
		return nil, err
	}
	donor.Email = email.String
	return &donor, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
