// Package service defines the interfaces shared between the application's
// layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

// DonationFilter narrows a donation query. Zero fields do not filter.
type DonationFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Verified  *bool
	DonorID   string
	Type      model.DeviceType
	Limit     int
	Offset    int
}

// Storage defines the contract for the persistence layer. Donor identity is
// always an explicit argument.
type Storage interface {
	// Donor operations
	CreateDonor(ctx context.Context, donor *model.Donor) error
	GetDonor(ctx context.Context, id string) (*model.Donor, error)
	ListDonors(ctx context.Context) ([]model.Donor, error)

	// Donation operations
	SaveDonations(ctx context.Context, donorID string, donations []model.Donation) error
	GetDonations(ctx context.Context, filter DonationFilter) ([]model.Donation, error)
	GetDonationHistory(ctx context.Context, donorID string) ([]model.Device, error)
	SetVerified(ctx context.Context, deviceID string, verified bool) error

	// Badge operations
	GetBadges(ctx context.Context) ([]model.Badge, error)
	GetAwardedBadges(ctx context.Context, donorID string) ([]model.AwardedBadge, error)
	AwardBadge(ctx context.Context, award model.AwardedBadge) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// HorizonSeries is the bucketed history for one horizon.
type HorizonSeries struct {
	Buckets []model.Bucket
	Horizon model.Horizon
}

// ImpactReport is everything exported about one donor's impact.
type ImpactReport struct {
	GeneratedAt   time.Time
	Donor         model.Donor
	PolicyVersion string
	Equivalency   string
	Series        []HorizonSeries
	Lifetime      model.SubmissionTotal
}

// ReportWriter publishes impact reports to an external destination.
type ReportWriter interface {
	Write(ctx context.Context, report *ImpactReport) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
