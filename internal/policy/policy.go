// Package policy holds the coefficient tables that drive material and
// emissions calculations. Tables are plain data so they can be swapped from a
// YAML file or replaced in tests without touching the calculation code.
package policy

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

// ErrInvalidPolicy indicates a policy table that violates its invariants.
var ErrInvalidPolicy = errors.New("invalid policy")

// Policy is the full set of coefficient tables.
type Policy struct {
	// Materials maps a device type to the fraction of its weight in each category.
	Materials map[model.DeviceType]model.MaterialComposition `yaml:"materials"`

	// Recovery scales individual material fractions by device condition.
	// Materials absent from a condition's row are recovered in full.
	Recovery map[model.Condition]map[model.Material]float64 `yaml:"recovery"`

	// EmissionFactors is pounds of CO2e per pound of device.
	EmissionFactors map[model.DeviceType]float64 `yaml:"emission_factors"`

	// EmissionMultipliers reflects reuse versus shredding for each condition.
	EmissionMultipliers map[model.Condition]float64 `yaml:"emission_multipliers"`

	Version string `yaml:"version"`
}

// Fractions returns the material fraction row for a device type.
func (p *Policy) Fractions(dt model.DeviceType) (model.MaterialComposition, error) {
	row, ok := p.Materials[dt]
	if !ok {
		return model.MaterialComposition{}, fmt.Errorf("%w: %q has no material table", model.ErrUnknownDeviceType, dt)
	}
	return row, nil
}

// RecoveryFactor returns the multiplier for one material under a condition.
func (p *Policy) RecoveryFactor(c model.Condition, m model.Material) (float64, error) {
	row, ok := p.Recovery[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no recovery table", model.ErrUnknownCondition, c)
	}
	if f, ok := row[m]; ok {
		return f, nil
	}
	return 1, nil
}

// EmissionFactor returns pounds of CO2e per pound for a device type.
func (p *Policy) EmissionFactor(dt model.DeviceType) (float64, error) {
	f, ok := p.EmissionFactors[dt]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no emission factor", model.ErrUnknownDeviceType, dt)
	}
	return f, nil
}

// EmissionMultiplier returns the condition multiplier applied to emissions.
func (p *Policy) EmissionMultiplier(c model.Condition) (float64, error) {
	f, ok := p.EmissionMultipliers[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no emission multiplier", model.ErrUnknownCondition, c)
	}
	return f, nil
}

// Validate checks every table invariant. A valid policy guarantees that a
// decomposed device never weighs more than the device itself.
func (p *Policy) Validate() error {
	if len(p.Materials) == 0 {
		return fmt.Errorf("%w: no material table", ErrInvalidPolicy)
	}
	if len(p.Recovery) == 0 {
		return fmt.Errorf("%w: no recovery table", ErrInvalidPolicy)
	}

	for _, dt := range sortedKeys(p.Materials) {
		if !dt.Valid() {
			return fmt.Errorf("%w: materials has unknown device type %q", ErrInvalidPolicy, dt)
		}
		row := p.Materials[dt]
		for _, m := range model.Materials {
			if err := checkUnit(row.Get(m)); err != nil {
				return fmt.Errorf("%w: materials[%s].%s %v", ErrInvalidPolicy, dt, m, err)
			}
		}
		if total := row.Total(); total > 1 {
			return fmt.Errorf("%w: materials[%s] fractions sum to %v", ErrInvalidPolicy, dt, total)
		}
		if _, ok := p.EmissionFactors[dt]; !ok {
			return fmt.Errorf("%w: %s has materials but no emission factor", ErrInvalidPolicy, dt)
		}
	}

	for _, c := range sortedKeys(p.Recovery) {
		if !c.Valid() {
			return fmt.Errorf("%w: recovery has unknown condition %q", ErrInvalidPolicy, c)
		}
		for _, m := range sortedKeys(p.Recovery[c]) {
			f := p.Recovery[c][m]
			if !m.Valid() {
				return fmt.Errorf("%w: recovery[%s] has unknown material %q", ErrInvalidPolicy, c, m)
			}
			if err := checkUnit(f); err != nil {
				return fmt.Errorf("%w: recovery[%s].%s %v", ErrInvalidPolicy, c, m, err)
			}
		}
		if _, ok := p.EmissionMultipliers[c]; !ok {
			return fmt.Errorf("%w: %s has recovery but no emission multiplier", ErrInvalidPolicy, c)
		}
	}

	for dt, f := range p.EmissionFactors {
		if !dt.Valid() {
			return fmt.Errorf("%w: emission_factors has unknown device type %q", ErrInvalidPolicy, dt)
		}
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: emission_factors[%s] = %v", ErrInvalidPolicy, dt, f)
		}
	}
	for c, f := range p.EmissionMultipliers {
		if !c.Valid() {
			return fmt.Errorf("%w: emission_multipliers has unknown condition %q", ErrInvalidPolicy, c)
		}
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: emission_multipliers[%s] = %v", ErrInvalidPolicy, c, f)
		}
		if _, ok := p.Recovery[c]; !ok {
			return fmt.Errorf("%w: %s has an emission multiplier but no recovery table", ErrInvalidPolicy, c)
		}
	}

	return nil
}

func checkUnit(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("must be within [0, 1], got %v", f)
	}
	return nil
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
