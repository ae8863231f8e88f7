package badges

import (
	"testing"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(awards []Award) []int {
	out := make([]int, len(awards))
	for i, a := range awards {
		out[i] = a.Badge.ID
	}
	return out
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		start time.Time
		end   time.Time
		name  string
		want  int
	}{
		{
			name:  "same instant",
			start: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "one day short of a month",
			start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 4, 9, 23, 59, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "exactly one month",
			start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "earlier time of day on anniversary",
			start: time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 4, 10, 6, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "across year end",
			start: time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "end before start",
			start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "short month",
			start: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.start, tt.end))
		})
	}
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)
	device := func(weight float64) model.Device {
		return model.Device{Type: model.DeviceLaptop, Condition: model.ConditionWorking, Weight: weight, DateDonated: now}
	}

	tests := []struct {
		name    string
		donor   model.Donor
		history []model.Device
		awarded []model.AwardedBadge
		want    []int
	}{
		{
			name:  "new donor with nothing donated",
			donor: model.Donor{ID: "d", CreatedAt: now},
		},
		{
			name:    "first donation",
			donor:   model.Donor{ID: "d", CreatedAt: now.Add(-time.Hour)},
			history: []model.Device{device(5)},
			want:    []int{FirstDonation},
		},
		{
			name:    "hundred pounds across several donations",
			donor:   model.Donor{ID: "d", CreatedAt: now},
			history: []model.Device{device(40), device(35), device(25)},
			want:    []int{FirstDonation, HundredPounds},
		},
		{
			name:    "just under a hundred pounds",
			donor:   model.Donor{ID: "d", CreatedAt: now},
			history: []model.Device{device(99.9)},
			want:    []int{FirstDonation},
		},
		{
			name:  "one month member",
			donor: model.Donor{ID: "d", CreatedAt: now.AddDate(0, -1, 0)},
			want:  []int{OneMonthMember},
		},
		{
			name:  "two month member earns both membership badges",
			donor: model.Donor{ID: "d", CreatedAt: now.AddDate(0, -2, -3)},
			want:  []int{OneMonthMember, TwoMonthMember},
		},
		{
			name:    "already awarded badges are not repeated",
			donor:   model.Donor{ID: "d", CreatedAt: now.AddDate(0, -2, 0)},
			history: []model.Device{device(5)},
			awarded: []model.AwardedBadge{
				{DonorID: "d", BadgeID: FirstDonation},
				{DonorID: "d", BadgeID: OneMonthMember},
			},
			want: []int{TwoMonthMember},
		},
		{
			name:  "unknown creation date grants no membership",
			donor: model.Donor{ID: "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.donor, tt.history, tt.awarded, now)
			assert.Equal(t, len(tt.want), len(got))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, ids(got))
			}
			for _, a := range got {
				assert.NotEmpty(t, a.Message)
			}
		})
	}
}

func TestEvaluate_Messages(t *testing.T) {
	now := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	got := Evaluate(model.Donor{CreatedAt: now.AddDate(0, -1, 0)}, nil, nil, now)
	require.Len(t, got, 1)
	assert.Equal(t, "one_month_member", got[0].Badge.Name)
	assert.Equal(t, "Happy 1 month on the site! You just unlocked the 1 month badge", got[0].Message)
}

func TestLookup(t *testing.T) {
	b, ok := Lookup(TwoMonthMember)
	require.True(t, ok)
	assert.Equal(t, "two_month_member", b.Name)

	_, ok = Lookup(3)
	assert.False(t, ok)
}
