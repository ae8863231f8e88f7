package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/common"
	"github.com/Veraticus/ewaste-impact/internal/model"
)

// GetBadges returns the badge catalog ordered by ID.
func (s *SQLiteStorage) GetBadges(ctx context.Context) ([]model.Badge, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, COALESCE(description, '') FROM badges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Badge
	for rows.Next() {
		var b model.Badge
		if err := rows.Scan(&b.ID, &b.Name, &b.Description); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetAwardedBadges returns the badges donorID holds, oldest award first.
func (s *SQLiteStorage) GetAwardedBadges(ctx context.Context, donorID string) ([]model.AwardedBadge, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(donorID, "donorID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT donor_id, badge_id, awarded_at FROM donor_badges
		WHERE donor_id = ?
		ORDER BY awarded_at, badge_id
	`, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query awarded badges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.AwardedBadge
	for rows.Next() {
		var a model.AwardedBadge
		if err := rows.Scan(&a.DonorID, &a.BadgeID, &a.AwardedAt); err != nil {
			return nil, fmt.Errorf("failed to scan awarded badge: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AwardBadge records that a donor earned a badge. Awarding the same badge
// twice yields common.ErrDuplicateEntry.
func (s *SQLiteStorage) AwardBadge(ctx context.Context, award model.AwardedBadge) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(award.DonorID, "donorID"); err != nil {
		return err
	}
	if award.AwardedAt.IsZero() {
		award.AwardedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO donor_badges (donor_id, badge_id, awarded_at) VALUES (?, ?, ?)
	`, award.DonorID, award.BadgeID, award.AwardedAt.UTC())
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: donor %s or badge %d", ErrUnknownBadge, award.DonorID, award.BadgeID)
	case isConstraintViolation(err):
		return fmt.Errorf("%w: badge %d for donor %s", common.ErrDuplicateEntry, award.BadgeID, award.DonorID)
	default:
		return fmt.Errorf("failed to award badge: %w", err)
	}
}
