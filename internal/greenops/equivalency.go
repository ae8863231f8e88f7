package greenops

import (
	"fmt"
	"math"
)

// LbsToKg converts a CO2 mass in pounds to kilograms.
func LbsToKg(lbs float64) (float64, error) {
	if math.IsInf(lbs, 0) || math.IsNaN(lbs) {
		return 0, ErrCalculationOverflow
	}
	if lbs < 0 {
		return 0, ErrNegativeValue
	}
	kg := lbs * PoundsToKg
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}

// Calculate returns the everyday equivalencies of co2Lbs pounds of CO2.
//
// Figures under MinEquivalencyThresholdKg yield an empty output carrying the
// converted input and no error.
func Calculate(co2Lbs float64) (EquivalencyOutput, error) {
	kg, err := LbsToKg(co2Lbs)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputLbs: co2Lbs, InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	trees := kg / EPATreeSeedlingFactor

	milesText := formatEquivalencyValue(miles)
	phonesText := formatEquivalencyValue(phones)

	results := []EquivalencyResult{
		{Type: EquivalencyMilesDriven, Value: miles, FormattedValue: milesText, Label: "miles driven"},
		{Type: EquivalencySmartphonesCharged, Value: phones, FormattedValue: phonesText, Label: "smartphones charged"},
		{Type: EquivalencyTreeSeedlings, Value: trees, FormattedValue: FormatFloat(trees, 1), Label: "tree seedlings grown for 10 years"},
	}

	return EquivalencyOutput{
		InputLbs: co2Lbs,
		InputKg:  kg,
		Results:  results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			milesText, phonesText),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", milesText, phonesText),
	}, nil
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
