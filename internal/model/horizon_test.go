package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseHorizon(t *testing.T) {
	tests := []struct {
		input   string
		want    Horizon
		wantErr bool
	}{
		{input: "quarter", want: HorizonQuarter},
		{input: "Q", want: HorizonQuarter},
		{input: "1y", want: HorizonOneYear},
		{input: "1 Year", want: HorizonOneYear},
		{input: "5y", want: HorizonFiveYears},
		{input: "all", want: HorizonAllTime},
		{input: "All Time", want: HorizonAllTime},
		{input: "decade", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHorizon(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownHorizon) {
					t.Fatalf("ParseHorizon(%q) error = %v, want ErrUnknownHorizon", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHorizon(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHorizon_NextCycles(t *testing.T) {
	h := HorizonQuarter
	seen := []Horizon{h}
	for range len(Horizons) {
		h = h.Next()
		seen = append(seen, h)
	}

	want := []Horizon{HorizonQuarter, HorizonOneYear, HorizonFiveYears, HorizonAllTime, HorizonQuarter}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle position %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestHorizon_PrevUndoesNext(t *testing.T) {
	for _, h := range Horizons {
		if got := h.Next().Prev(); got != h {
			t.Errorf("%v.Next().Prev() = %v", h, got)
		}
	}
	if HorizonQuarter.Prev() != HorizonAllTime {
		t.Errorf("Quarter.Prev() = %v, want All Time", HorizonQuarter.Prev())
	}
}

func TestHorizon_String(t *testing.T) {
	if HorizonOneYear.String() != "1 Year" {
		t.Errorf("unexpected string %q", HorizonOneYear.String())
	}
	if Horizon(9).Valid() {
		t.Error("out of range horizon reported valid")
	}
	if Horizon(9).String() != "Horizon(9)" {
		t.Errorf("unexpected fallback %q", Horizon(9).String())
	}
}

func TestBucket_ContainsIsHalfOpen(t *testing.T) {
	b := Bucket{
		PeriodStart: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	if !b.Contains(b.PeriodStart) {
		t.Error("bucket should contain its start instant")
	}
	if b.Contains(b.PeriodEnd) {
		t.Error("bucket should not contain its end instant")
	}
	if !b.Contains(b.PeriodEnd.Add(-time.Nanosecond)) {
		t.Error("bucket should contain the instant before its end")
	}
}
