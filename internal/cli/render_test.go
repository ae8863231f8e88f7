package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderComposition(t *testing.T) {
	var total model.SubmissionTotal
	total.Devices = 2
	total.Weight = 12.5
	total.CO2 = 50
	total.Materials.Set(model.MaterialFerrousMetal, 3)
	total.Materials.Set(model.MaterialPlastic, 2)

	out := RenderComposition(total)

	for _, want := range []string{
		"Devices:", "12.5 lbs",
		"Metals", "Plastics", "CO2 Emissions",
		"Ferrous Metals", "Plastic",
		"Equivalent to driving",
	} {
		assert.Contains(t, out, want)
	}
	// Metals 3 of 55 combined.
	assert.Contains(t, out, "5.5%")
	assert.NotContains(t, out, "Copper")
}

func TestRenderComposition_Empty(t *testing.T) {
	assert.Contains(t, RenderComposition(model.SubmissionTotal{}), "No devices.")
}

func TestRenderComposition_SmallCO2HasNoEquivalency(t *testing.T) {
	total := model.SubmissionTotal{Devices: 1, Weight: 1, CO2: 0.5}
	assert.NotContains(t, RenderComposition(total), "Equivalent to")
}

func TestRenderBuckets(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	buckets := []model.Bucket{
		{Label: "Q1", PeriodStart: start, PeriodEnd: start.AddDate(0, 3, 0), Devices: 3, Weight: 1234.5, Metals: 2, CO2: 10},
		{Label: "Q2", PeriodStart: start.AddDate(0, 3, 0), PeriodEnd: start.AddDate(0, 6, 0)},
	}

	out := RenderBuckets(buckets)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Period")
	assert.Contains(t, lines[1], "Q1")
	assert.Contains(t, lines[1], "1,234.5")
	assert.Contains(t, lines[2], "Q2")
}

func TestRenderBuckets_Empty(t *testing.T) {
	assert.Contains(t, RenderBuckets(nil), "No donations")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"long cell", "x"}, {"s", "y"}})
	lines := strings.Split(out, "\n")

	assert.Equal(t, strings.Index(lines[1], "x"), strings.Index(lines[2], "y"))
	assert.Equal(t, strings.Index(lines[0], "B"), strings.Index(lines[1], "x"))
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Submission", "body text")
	assert.Contains(t, out, "Submission")
	assert.Contains(t, out, "body text")
}

func TestRenderDonations(t *testing.T) {
	donations := []model.Donation{
		{
			Device: model.Device{
				ID: "D1", Type: model.DeviceLaptop, Manufacturer: "Dell",
				Condition: model.ConditionWorking, Weight: 5,
				DateDonated: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Verified: true,
			},
			Impact: model.DeviceImpact{CO2: 1.4},
		},
		{
			Device: model.Device{
				ID: "D2", Type: model.DeviceTablet, Condition: model.ConditionNotWorking,
				Weight: 1, DateDonated: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	out := RenderDonations(donations)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Verified")
	assert.Contains(t, lines[1], "2024-03-09")
	assert.Contains(t, lines[1], "Dell Laptop")
	assert.Contains(t, lines[1], SuccessIcon)
	assert.Contains(t, lines[2], "Tablet")
	assert.NotContains(t, lines[2], SuccessIcon)
}

func TestRenderDonations_Empty(t *testing.T) {
	assert.Contains(t, RenderDonations(nil), "No donations match.")
}
