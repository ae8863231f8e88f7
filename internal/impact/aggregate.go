package impact

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

const (
	quartersPerYear = 4
	monthsPerYear   = 12
	fiveYearSpan    = 5
)

// Aggregate partitions a donation history into the buckets of a horizon and
// sums metals, plastics and emissions per bucket. now anchors bounded
// horizons and supplies the location used for calendar boundaries.
//
// Bounded horizons always return their full set of buckets, zero-filled, and
// silently drop records outside the span. All Time returns one bucket per
// distinct donation year, ascending, and no buckets for an empty history.
//
// Every record is assessed before any bucketing happens; the first record
// that cannot be assessed (or carries no donation date) fails the whole call,
// whether or not the horizon would have included it.
func (c *Calculator) Aggregate(history []model.Device, horizon model.Horizon, now time.Time) ([]model.Bucket, error) {
	if !horizon.Valid() {
		return nil, fmt.Errorf("%w: %d", model.ErrUnknownHorizon, int(horizon))
	}

	assessed, err := c.assessHistory(history)
	if err != nil {
		return nil, err
	}

	var buckets []model.Bucket
	if horizon == model.HorizonAllTime {
		buckets = yearBucketsFor(assessed, now.Location())
	} else {
		buckets = Boundaries(horizon, now)
	}

	for _, a := range assessed {
		i := locate(buckets, a.date)
		if i < 0 {
			continue
		}
		b := &buckets[i]
		b.Metals += a.impact.Materials.Metals()
		b.Plastics += a.impact.Materials.Plastic
		b.CO2 += a.impact.CO2
		b.Weight += a.weight
		b.Devices++
	}

	return buckets, nil
}

// Boundaries returns the empty, contiguous buckets of a bounded horizon
// anchored at now. All Time has no data-independent boundaries and yields nil.
func Boundaries(horizon model.Horizon, now time.Time) []model.Bucket {
	loc := now.Location()
	year, month, _ := now.Date()

	switch horizon {
	case model.HorizonQuarter:
		buckets := make([]model.Bucket, 0, quartersPerYear)
		for q := range quartersPerYear {
			start := time.Date(year, time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
			buckets = append(buckets, model.Bucket{
				Label:       "Q" + strconv.Itoa(q+1),
				PeriodStart: start,
				PeriodEnd:   start.AddDate(0, 3, 0),
			})
		}
		return buckets

	case model.HorizonOneYear:
		first := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, -(monthsPerYear - 1), 0)
		buckets := make([]model.Bucket, 0, monthsPerYear)
		for i := range monthsPerYear {
			start := first.AddDate(0, i, 0)
			buckets = append(buckets, model.Bucket{
				Label:       start.Format("Jan 2006"),
				PeriodStart: start,
				PeriodEnd:   start.AddDate(0, 1, 0),
			})
		}
		return buckets

	case model.HorizonFiveYears:
		buckets := make([]model.Bucket, 0, fiveYearSpan)
		for y := year - fiveYearSpan + 1; y <= year; y++ {
			buckets = append(buckets, yearBucket(y, loc))
		}
		return buckets

	default:
		return nil
	}
}

type assessedRecord struct {
	date   time.Time
	impact model.DeviceImpact
	weight float64
}

func (c *Calculator) assessHistory(history []model.Device) ([]assessedRecord, error) {
	out := make([]assessedRecord, 0, len(history))
	for i, d := range history {
		if !d.Donated() {
			return nil, fmt.Errorf("history record %d (%s): %w", i, d.ID, ErrMissingDonationDate)
		}
		imp, err := c.Assess(d)
		if err != nil {
			return nil, fmt.Errorf("history record %d (%s): %w", i, d.ID, err)
		}
		out = append(out, assessedRecord{date: d.DateDonated, impact: imp, weight: d.Weight})
	}
	return out, nil
}

func yearBucketsFor(records []assessedRecord, loc *time.Location) []model.Bucket {
	years := make(map[int]struct{})
	for _, r := range records {
		years[r.date.In(loc).Year()] = struct{}{}
	}

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	buckets := make([]model.Bucket, 0, len(sorted))
	for _, y := range sorted {
		buckets = append(buckets, yearBucket(y, loc))
	}
	return buckets
}

func yearBucket(year int, loc *time.Location) model.Bucket {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return model.Bucket{
		Label:       strconv.Itoa(year),
		PeriodStart: start,
		PeriodEnd:   start.AddDate(1, 0, 0),
	}
}

// locate returns the index of the bucket containing t, or -1. Buckets must be
// ordered and non-overlapping.
func locate(buckets []model.Bucket, t time.Time) int {
	i := sort.Search(len(buckets), func(i int) bool {
		return t.Before(buckets[i].PeriodEnd)
	})
	if i < len(buckets) && buckets[i].Contains(t) {
		return i
	}
	return -1
}
