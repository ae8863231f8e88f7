// Package impact converts donated devices into material and emissions
// figures and aggregates donation histories into time-bucketed series.
//
// Every function in this package is pure: results depend only on the
// arguments and the policy the Calculator was built with, and no state is
// kept between calls.
package impact

import (
	"errors"
	"fmt"
	"math"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/policy"
)

var (
	// ErrInvalidWeight indicates a non-positive or non-finite device weight.
	ErrInvalidWeight = errors.New("invalid device weight")
	// ErrMissingDonationDate indicates a history record that was never dated.
	ErrMissingDonationDate = errors.New("missing donation date")
	// ErrNilPolicy indicates a Calculator built without coefficient tables.
	ErrNilPolicy = errors.New("nil policy")
)

// Calculator applies a coefficient policy to devices and donation histories.
type Calculator struct {
	policy *policy.Policy
}

// NewCalculator returns a Calculator for the given policy. The policy is
// validated once here so every later calculation can rely on its invariants.
func NewCalculator(p *policy.Policy) (*Calculator, error) {
	if p == nil {
		return nil, ErrNilPolicy
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{policy: p}, nil
}

// Policy returns the coefficient tables in use.
func (c *Calculator) Policy() *policy.Policy {
	return c.policy
}

// Assess returns both the composition and the emissions estimate for a device.
func (c *Calculator) Assess(device model.Device) (model.DeviceImpact, error) {
	materials, err := c.Compose(device)
	if err != nil {
		return model.DeviceImpact{}, err
	}
	co2, err := c.EstimateEmissions(device)
	if err != nil {
		return model.DeviceImpact{}, err
	}
	return model.DeviceImpact{Materials: materials, CO2: co2}, nil
}

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}
	return nil
}
