package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownHorizon indicates an unrecognized horizon name.
var ErrUnknownHorizon = errors.New("unknown horizon")

// Horizon selects the time window used to aggregate a donation history.
type Horizon int

// Aggregation horizons.
const (
	HorizonQuarter Horizon = iota
	HorizonOneYear
	HorizonFiveYears
	HorizonAllTime
)

// Horizons lists every horizon in selector order.
var Horizons = []Horizon{HorizonQuarter, HorizonOneYear, HorizonFiveYears, HorizonAllTime}

func (h Horizon) String() string {
	switch h {
	case HorizonQuarter:
		return "Quarter"
	case HorizonOneYear:
		return "1 Year"
	case HorizonFiveYears:
		return "5 Years"
	case HorizonAllTime:
		return "All Time"
	default:
		return fmt.Sprintf("Horizon(%d)", int(h))
	}
}

// Next returns the horizon that follows h, wrapping around after All Time.
func (h Horizon) Next() Horizon {
	return Horizons[(int(h)+1)%len(Horizons)]
}

// Prev returns the horizon before h, wrapping around before Quarter.
func (h Horizon) Prev() Horizon {
	return Horizons[(int(h)+len(Horizons)-1)%len(Horizons)]
}

// Valid reports whether h is a known horizon.
func (h Horizon) Valid() bool {
	return h >= HorizonQuarter && h <= HorizonAllTime
}

// ParseHorizon resolves a horizon from user input such as "quarter", "1y" or "all".
func ParseHorizon(s string) (Horizon, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quarter", "q":
		return HorizonQuarter, nil
	case "1y", "year", "one-year", "1 year":
		return HorizonOneYear, nil
	case "5y", "five-years", "5 years":
		return HorizonFiveYears, nil
	case "all", "all-time", "all time":
		return HorizonAllTime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHorizon, s)
	}
}

// Bucket is one time slice of an aggregated donation history.
// The period is half open: [PeriodStart, PeriodEnd).
type Bucket struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Label       string
	Metals      float64
	Plastics    float64
	CO2         float64
	Weight      float64
	Devices     int
}

// Contains reports whether t falls inside the bucket period.
func (b *Bucket) Contains(t time.Time) bool {
	return !t.Before(b.PeriodStart) && t.Before(b.PeriodEnd)
}
