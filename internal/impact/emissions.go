package impact

import "github.com/Veraticus/ewaste-impact/internal/model"

// EstimateEmissions returns the net CO2-equivalent mass, in pounds, attributed
// to a device: the type's per-pound factor times weight, scaled by the
// condition multiplier.
func (c *Calculator) EstimateEmissions(device model.Device) (float64, error) {
	if err := validateWeight(device.Weight); err != nil {
		return 0, err
	}

	factor, err := c.policy.EmissionFactor(device.Type)
	if err != nil {
		return 0, err
	}
	multiplier, err := c.policy.EmissionMultiplier(device.Condition)
	if err != nil {
		return 0, err
	}

	return factor * device.Weight * multiplier, nil
}
