package impact

import (
	"fmt"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

// Totalize sums composition and emissions over a submission batch. Devices do
// not need a donation date. The first device that cannot be assessed fails
// the whole batch.
func (c *Calculator) Totalize(devices []model.Device) (model.SubmissionTotal, error) {
	var total model.SubmissionTotal
	for i, d := range devices {
		imp, err := c.Assess(d)
		if err != nil {
			return model.SubmissionTotal{}, fmt.Errorf("submission device %d: %w", i, err)
		}
		total.Materials = total.Materials.Add(imp.Materials)
		total.CO2 += imp.CO2
		total.Weight += d.Weight
		total.Devices++
	}
	return total, nil
}
