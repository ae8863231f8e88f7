package model

// SubmissionTotal is the combined impact of a batch of devices.
type SubmissionTotal struct {
	Materials MaterialComposition
	CO2       float64
	Weight    float64
	Devices   int
}

// ImpactSlice is one segment of the donation breakdown chart.
type ImpactSlice struct {
	Label   string
	Value   float64
	Percent float64
}

// Slice labels for the breakdown chart.
const (
	SliceMetals   = "Metals"
	SlicePlastics = "Plastics"
	SliceCO2      = "CO2 Emissions"
)

// Slices returns the Metals, Plastics and CO2 Emissions segments with each
// segment's share of their combined value. Percentages are zero when the
// total is zero.
func (s SubmissionTotal) Slices() []ImpactSlice {
	slices := []ImpactSlice{
		{Label: SliceMetals, Value: s.Materials.Metals()},
		{Label: SlicePlastics, Value: s.Materials.Plastic},
		{Label: SliceCO2, Value: s.CO2},
	}

	var sum float64
	for _, sl := range slices {
		sum += sl.Value
	}
	if sum == 0 {
		return slices
	}
	for i := range slices {
		slices[i].Percent = slices[i].Value / sum * 100
	}
	return slices
}

// IsZero reports whether the total carries no impact at all.
func (s SubmissionTotal) IsZero() bool {
	return s.Devices == 0 && s.Weight == 0 && s.CO2 == 0 && s.Materials == (MaterialComposition{})
}

// DeviceImpact is the calculated impact of a single device.
type DeviceImpact struct {
	Materials MaterialComposition
	CO2       float64
}

// Donation pairs a persisted device with the impact computed when it was donated.
type Donation struct {
	Impact DeviceImpact
	Device Device
}
