package impact

import (
	"math"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

// Compose decomposes a device into the nine material categories, in pounds.
// Every category is present in the result; categories a device type does not
// contain are zero. The categories never sum to more than the device weight.
func (c *Calculator) Compose(device model.Device) (model.MaterialComposition, error) {
	if err := validateWeight(device.Weight); err != nil {
		return model.MaterialComposition{}, err
	}

	fractions, err := c.policy.Fractions(device.Type)
	if err != nil {
		return model.MaterialComposition{}, err
	}

	var out model.MaterialComposition
	for _, m := range model.Materials {
		recovery, err := c.policy.RecoveryFactor(device.Condition, m)
		if err != nil {
			return model.MaterialComposition{}, err
		}
		out.Set(m, fractions.Get(m)*recovery*device.Weight)
	}
	trimExcess(&out, device.Weight)
	return out, nil
}

// trimExcess takes rounding overshoot of the total above weight out of the
// largest category. Validated fraction rows sum to at most one, so the
// overshoot is a few ulps.
func trimExcess(out *model.MaterialComposition, weight float64) {
	for total := out.Total(); total > weight; total = out.Total() {
		largest := model.Materials[0]
		for _, m := range model.Materials[1:] {
			if out.Get(m) > out.Get(largest) {
				largest = m
			}
		}

		v := out.Get(largest)
		next := math.Max(v-(total-weight), 0)
		if next == v {
			next = math.Nextafter(v, 0)
		}
		out.Set(largest, next)
	}
}
