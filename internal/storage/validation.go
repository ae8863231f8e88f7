// Package storage persists donors, donated devices and badges in SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/service"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrEmptySlice     = errors.New("slice cannot be empty")
	ErrInvalidDonor   = errors.New("invalid donor")
	ErrInvalidDevice  = errors.New("invalid device")
	ErrInvalidFilter  = errors.New("invalid donation filter")
	ErrUnknownBadge   = errors.New("unknown badge")
	ErrNegativeImpact = errors.New("negative impact value")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateDonor(donor *model.Donor) error {
	if donor == nil {
		return fmt.Errorf("%w: donor", ErrNilParameter)
	}
	if strings.TrimSpace(donor.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDonor)
	}
	if donor.Email != "" && !strings.Contains(donor.Email, "@") {
		return fmt.Errorf("%w: malformed email %q", ErrInvalidDonor, donor.Email)
	}
	return nil
}

func validateDonations(donations []model.Donation) error {
	if donations == nil {
		return fmt.Errorf("%w: donations", ErrNilParameter)
	}
	if len(donations) == 0 {
		return fmt.Errorf("%w: donations", ErrEmptySlice)
	}
	for i := range donations {
		if err := validateDonation(&donations[i]); err != nil {
			return fmt.Errorf("donation at index %d: %w", i, err)
		}
	}
	return nil
}

func validateDonation(d *model.Donation) error {
	dev := d.Device
	if !dev.Type.Valid() {
		return fmt.Errorf("%w: device type %q", ErrInvalidDevice, dev.Type)
	}
	if !dev.Condition.Valid() {
		return fmt.Errorf("%w: condition %q", ErrInvalidDevice, dev.Condition)
	}
	if math.IsNaN(dev.Weight) || math.IsInf(dev.Weight, 0) || dev.Weight <= 0 {
		return fmt.Errorf("%w: weight %v", ErrInvalidDevice, dev.Weight)
	}
	if !dev.Donated() {
		return fmt.Errorf("%w: missing donation date", ErrInvalidDevice)
	}
	for _, m := range model.Materials {
		if d.Impact.Materials.Get(m) < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeImpact, m)
		}
	}
	if d.Impact.CO2 < 0 {
		return fmt.Errorf("%w: co2", ErrNegativeImpact)
	}
	return nil
}

func validateFilter(filter service.DonationFilter) error {
	if filter.Limit < 0 || filter.Offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidFilter)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return fmt.Errorf("%w: end date %v is before start date %v", ErrInvalidFilter, *filter.EndDate, *filter.StartDate)
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return fmt.Errorf("%w: device type %q", ErrInvalidFilter, filter.Type)
	}
	return nil
}
