// Package greenops translates emission figures into everyday equivalencies.
//
// The impact engine reports CO2 in pounds. Donors relate more easily to
// "miles not driven" than to a mass of gas, so this package converts the
// pounds to kilograms and divides by EPA per-activity factors.
package greenops

import "fmt"

// EquivalencyType is a category of everyday activity.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota
	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged
	// EquivalencyTreeSeedlings is tree seedlings grown for ten years.
	EquivalencyTreeSeedlings
)

func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", int(e))
	}
}

// EquivalencyResult is one calculated equivalency.
type EquivalencyResult struct {
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
	Value          float64         `json:"value"`
	Type           EquivalencyType `json:"type"`
}

// EquivalencyOutput holds every equivalency for one emissions figure.
type EquivalencyOutput struct {
	// DisplayText is prose for the CLI and TUI, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	DisplayText string `json:"display_text"`
	// CompactText fits a table cell, e.g. "(≈ 781 mi, 18,248 phones)".
	CompactText string              `json:"compact_text"`
	Results     []EquivalencyResult `json:"results"`
	InputLbs    float64             `json:"input_lbs"`
	InputKg     float64             `json:"input_kg"`
	IsEmpty     bool                `json:"is_empty"`
}
