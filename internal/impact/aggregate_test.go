package impact

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aggregationNow is the fixed reference instant used across bucketing tests.
var aggregationNow = time.Date(2024, time.August, 15, 12, 0, 0, 0, time.UTC)

func donated(id string, dt model.DeviceType, weight float64, when time.Time) model.Device {
	return model.Device{
		ID:          id,
		Type:        dt,
		Condition:   model.ConditionNotWorking,
		Weight:      weight,
		DateDonated: when,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func labels(buckets []model.Bucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.Label
	}
	return out
}

func mustAssess(t *testing.T, calc *Calculator, d model.Device) model.DeviceImpact {
	t.Helper()
	imp, err := calc.Assess(d)
	require.NoError(t, err)
	return imp
}

func TestAggregate_QuarterAlwaysFourBuckets(t *testing.T) {
	calc := newTestCalculator(t)

	histories := map[string][]model.Device{
		"empty":      nil,
		"other year": {donated("a", model.DeviceLaptop, 5, day(2019, 3, 3))},
		"current":    {donated("b", model.DeviceLaptop, 5, day(2024, 5, 3))},
	}

	for name, history := range histories {
		t.Run(name, func(t *testing.T) {
			buckets, err := calc.Aggregate(history, model.HorizonQuarter, aggregationNow)
			require.NoError(t, err)
			require.Len(t, buckets, 4)
			assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4"}, labels(buckets))
			assert.Equal(t, day(2024, 1, 1), buckets[0].PeriodStart)
			assert.Equal(t, day(2025, 1, 1), buckets[3].PeriodEnd)
		})
	}
}

func TestAggregate_QuarterSumsCurrentYearOnly(t *testing.T) {
	calc := newTestCalculator(t)
	history := []model.Device{
		donated("q1", model.DeviceLaptop, 5, day(2024, 2, 10)),
		donated("q3a", model.DeviceDesktop, 20, day(2024, 7, 4)),
		donated("q3b", model.DeviceCRTMonitor, 30, day(2024, 9, 30)),
		donated("old", model.DeviceLaptop, 5, day(2023, 11, 1)),
		donated("older", model.DeviceTablet, 1.2, day(2020, 2, 1)),
	}

	buckets, err := calc.Aggregate(history, model.HorizonQuarter, aggregationNow)
	require.NoError(t, err)

	var wantMetals, gotMetals float64
	for _, d := range history {
		if d.DateDonated.Year() != 2024 {
			continue
		}
		wantMetals += mustAssess(t, calc, d).Materials.Metals()
	}
	for _, b := range buckets {
		gotMetals += b.Metals
	}
	assert.InDelta(t, wantMetals, gotMetals, 1e-9)

	q1 := mustAssess(t, calc, history[0])
	assert.InDelta(t, q1.Materials.Metals(), buckets[0].Metals, 1e-12)
	assert.InDelta(t, q1.Materials.Plastic, buckets[0].Plastics, 1e-12)
	assert.InDelta(t, q1.CO2, buckets[0].CO2, 1e-12)
	assert.Equal(t, 1, buckets[0].Devices)

	assert.Zero(t, buckets[1].Metals)
	assert.Zero(t, buckets[1].Devices)
	assert.Equal(t, 2, buckets[2].Devices)
	assert.InDelta(t, 50.0, buckets[2].Weight, 1e-12)
	assert.Zero(t, buckets[3].CO2)
}

func TestAggregate_BoundaryBelongsToLaterBucket(t *testing.T) {
	calc := newTestCalculator(t)
	history := []model.Device{
		donated("start-q2", model.DeviceLaptop, 5, day(2024, 4, 1)),
		donated("end-q1", model.DeviceLaptop, 5, day(2024, 4, 1).Add(-time.Nanosecond)),
	}

	buckets, err := calc.Aggregate(history, model.HorizonQuarter, aggregationNow)
	require.NoError(t, err)
	assert.Equal(t, 1, buckets[0].Devices)
	assert.Equal(t, 1, buckets[1].Devices)
}

func TestAggregate_OneYear(t *testing.T) {
	calc := newTestCalculator(t)
	history := []model.Device{
		donated("too-old", model.DeviceLaptop, 5, day(2023, 8, 31)),
		donated("first", model.DeviceLaptop, 5, day(2023, 9, 1)),
		donated("current", model.DeviceLaptop, 5, day(2024, 8, 2)),
		donated("future", model.DeviceLaptop, 5, day(2024, 9, 1)),
	}

	buckets, err := calc.Aggregate(history, model.HorizonOneYear, aggregationNow)
	require.NoError(t, err)
	require.Len(t, buckets, 12)

	assert.Equal(t, "Sep 2023", buckets[0].Label)
	assert.Equal(t, "Aug 2024", buckets[11].Label)
	assert.Equal(t, 1, buckets[0].Devices)
	assert.Equal(t, 1, buckets[11].Devices)

	total := 0
	for i, b := range buckets {
		total += b.Devices
		if i > 0 {
			assert.Equal(t, buckets[i-1].PeriodEnd, b.PeriodStart, "buckets must be contiguous")
		}
	}
	assert.Equal(t, 2, total)
}

func TestAggregate_OneYearAcrossYearEnd(t *testing.T) {
	calc := newTestCalculator(t)
	now := time.Date(2025, time.January, 31, 23, 0, 0, 0, time.UTC)

	buckets, err := calc.Aggregate(nil, model.HorizonOneYear, now)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Feb 2024", "Mar 2024", "Apr 2024", "May 2024", "Jun 2024", "Jul 2024",
		"Aug 2024", "Sep 2024", "Oct 2024", "Nov 2024", "Dec 2024", "Jan 2025",
	}, labels(buckets))
}

func TestAggregate_FiveYears(t *testing.T) {
	calc := newTestCalculator(t)
	history := []model.Device{
		donated("excluded", model.DeviceDesktop, 20, day(2019, 12, 31)),
		donated("first", model.DeviceDesktop, 20, day(2020, 1, 1)),
		donated("last", model.DeviceDesktop, 20, day(2024, 12, 31)),
	}

	buckets, err := calc.Aggregate(history, model.HorizonFiveYears, aggregationNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"2020", "2021", "2022", "2023", "2024"}, labels(buckets))
	assert.Equal(t, 1, buckets[0].Devices)
	assert.Equal(t, 0, buckets[2].Devices)
	assert.Equal(t, 1, buckets[4].Devices)
}

func TestAggregate_AllTimeScenario(t *testing.T) {
	calc := newTestCalculator(t)
	a := donated("a", model.DeviceLaptop, 5, day(2023, 2, 1))
	b := donated("b", model.DeviceFlatPanelTelevision, 40, day(2024, 2, 1))

	buckets, err := calc.Aggregate([]model.Device{b, a}, model.HorizonAllTime, aggregationNow)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, []string{"2023", "2024"}, labels(buckets))

	for i, d := range []model.Device{a, b} {
		imp := mustAssess(t, calc, d)
		assert.InDelta(t, imp.Materials.Metals(), buckets[i].Metals, 1e-12)
		assert.InDelta(t, imp.Materials.Plastic, buckets[i].Plastics, 1e-12)
		assert.InDelta(t, imp.CO2, buckets[i].CO2, 1e-12)
		assert.Equal(t, 1, buckets[i].Devices)
	}
}

func TestAggregate_AllTimeCountsDistinctYears(t *testing.T) {
	calc := newTestCalculator(t)

	buckets, err := calc.Aggregate(nil, model.HorizonAllTime, aggregationNow)
	require.NoError(t, err)
	assert.Empty(t, buckets)

	history := []model.Device{
		donated("a", model.DeviceLaptop, 5, day(2016, 6, 1)),
		donated("b", model.DeviceLaptop, 5, day(2016, 9, 1)),
		donated("c", model.DeviceLaptop, 5, day(2021, 1, 1)),
		donated("d", model.DeviceLaptop, 5, day(2031, 1, 1)),
	}
	buckets, err = calc.Aggregate(history, model.HorizonAllTime, aggregationNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"2016", "2021", "2031"}, labels(buckets))
	assert.Equal(t, 2, buckets[0].Devices)

	devices := 0
	for _, bk := range buckets {
		devices += bk.Devices
	}
	assert.Equal(t, len(history), devices, "all time admits every record")
}

func TestAggregate_SwitchingHorizonsIsIdempotent(t *testing.T) {
	calc := newTestCalculator(t)
	history := []model.Device{
		donated("a", model.DeviceLaptop, 5, day(2024, 2, 1)),
		donated("b", model.DevicePrinter, 14, day(2022, 6, 1)),
		donated("c", model.DeviceSmartphone, 0.3, day(2024, 7, 9)),
	}
	snapshot := append([]model.Device(nil), history...)

	first, err := calc.Aggregate(history, model.HorizonQuarter, aggregationNow)
	require.NoError(t, err)
	_, err = calc.Aggregate(history, model.HorizonFiveYears, aggregationNow)
	require.NoError(t, err)
	again, err := calc.Aggregate(history, model.HorizonQuarter, aggregationNow)
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.Equal(t, snapshot, history, "aggregation must not modify the history")
}

func TestAggregate_UsesLocationOfNow(t *testing.T) {
	calc := newTestCalculator(t)
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, est)

	// 03:00 UTC on Jan 1 is still Dec 31 in EST.
	history := []model.Device{donated("nye", model.DeviceLaptop, 5, time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC))}

	quarters, err := calc.Aggregate(history, model.HorizonQuarter, now)
	require.NoError(t, err)
	for _, b := range quarters {
		assert.Zero(t, b.Devices, "record belongs to the previous year in EST")
	}

	years, err := calc.Aggregate(history, model.HorizonAllTime, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023"}, labels(years))
}

func TestAggregate_FailsFast(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		wantErr error
		name    string
		errMsg  string
		history []model.Device
	}{
		{
			name: "unknown device type outside horizon",
			history: []model.Device{
				donated("ok", model.DeviceLaptop, 5, day(2024, 2, 1)),
				donated("bad", "Toaster", 5, day(2001, 2, 1)),
			},
			wantErr: model.ErrUnknownDeviceType,
			errMsg:  "history record 1 (bad)",
		},
		{
			name:    "unknown condition",
			history: []model.Device{{ID: "x", Type: model.DeviceLaptop, Condition: "Mint", Weight: 5, DateDonated: day(2024, 1, 5)}},
			wantErr: model.ErrUnknownCondition,
			errMsg:  "history record 0 (x)",
		},
		{
			name:    "invalid weight",
			history: []model.Device{donated("w", model.DeviceLaptop, 0, day(2024, 1, 5))},
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "missing donation date",
			history: []model.Device{donated("undated", model.DeviceLaptop, 5, time.Time{})},
			wantErr: ErrMissingDonationDate,
			errMsg:  "undated",
		},
	}

	for _, tt := range tests {
		for _, h := range model.Horizons {
			t.Run(fmt.Sprintf("%s/%s", tt.name, h), func(t *testing.T) {
				buckets, err := calc.Aggregate(tt.history, h, aggregationNow)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, buckets)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			})
		}
	}
}

func TestAggregate_UnknownHorizon(t *testing.T) {
	calc := newTestCalculator(t)
	_, err := calc.Aggregate(nil, model.Horizon(42), aggregationNow)
	assert.ErrorIs(t, err, model.ErrUnknownHorizon)
}

func TestAggregate_ConcurrentCalls(t *testing.T) {
	calc := newTestCalculator(t)
	history := []model.Device{
		donated("a", model.DeviceLaptop, 5, day(2024, 2, 1)),
		donated("b", model.DeviceDesktop, 22, day(2023, 10, 12)),
	}

	want := make(map[model.Horizon][]model.Bucket)
	for _, h := range model.Horizons {
		buckets, err := calc.Aggregate(history, h, aggregationNow)
		require.NoError(t, err)
		want[h] = buckets
	}

	var wg sync.WaitGroup
	results := make([][]model.Bucket, 40)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buckets, err := calc.Aggregate(history, model.Horizons[i%len(model.Horizons)], aggregationNow)
			if err == nil {
				results[i] = buckets
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want[model.Horizons[i%len(model.Horizons)]], got)
	}
}

func TestBoundaries(t *testing.T) {
	assert.Len(t, Boundaries(model.HorizonQuarter, aggregationNow), 4)
	assert.Len(t, Boundaries(model.HorizonOneYear, aggregationNow), 12)
	assert.Len(t, Boundaries(model.HorizonFiveYears, aggregationNow), 5)
	assert.Nil(t, Boundaries(model.HorizonAllTime, aggregationNow))

	for _, h := range []model.Horizon{model.HorizonQuarter, model.HorizonOneYear, model.HorizonFiveYears} {
		buckets := Boundaries(h, aggregationNow)
		assert.NotEqual(t, -1, locate(buckets, aggregationNow), "%s buckets must include now", h)
		for _, b := range buckets {
			assert.Zero(t, b.Devices)
			assert.True(t, b.PeriodStart.Before(b.PeriodEnd))
		}
	}
}
