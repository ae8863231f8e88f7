// Package badges decides which achievements a donor has newly earned.
package badges

import (
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

// Badge IDs. Membership badges keep the identifiers existing award rows use.
const (
	FirstDonation  = 1
	HundredPounds  = 2
	OneMonthMember = 5
	TwoMonthMember = 6
)

// HundredPoundsThreshold is the cumulative donated weight, in pounds, that
// earns the HundredPounds badge.
const HundredPoundsThreshold = 100.0

// Catalog lists every badge a donor can earn, ordered by ID.
var Catalog = []model.Badge{
	{ID: FirstDonation, Name: "first_donation", Description: "Donated a first device"},
	{ID: HundredPounds, Name: "hundred_pounds", Description: "Donated 100 pounds of electronics"},
	{ID: OneMonthMember, Name: "one_month_member", Description: "Member for one month"},
	{ID: TwoMonthMember, Name: "two_month_member", Description: "Member for two months"},
}

// Award is a badge earned by the current evaluation, with the message shown
// to the donor.
type Award struct {
	Message string
	Badge   model.Badge
}

// Lookup returns the catalog entry for id.
func Lookup(id int) (model.Badge, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return model.Badge{}, false
}

type rule struct {
	earned  func(facts) bool
	message string
	id      int
}

type facts struct {
	months    int
	donations int
	pounds    float64
}

//nolint:gochecknoglobals // fixed rule table
var rules = []rule{
	{
		id:      FirstDonation,
		message: "Thanks for your first donation! You just unlocked the first donation badge",
		earned:  func(f facts) bool { return f.donations > 0 },
	},
	{
		id:      HundredPounds,
		message: "You've kept 100 pounds of electronics out of landfill! You just unlocked the 100 pounds badge",
		earned:  func(f facts) bool { return f.pounds >= HundredPoundsThreshold },
	},
	{
		id:      OneMonthMember,
		message: "Happy 1 month on the site! You just unlocked the 1 month badge",
		earned:  func(f facts) bool { return f.months >= 1 },
	},
	{
		id:      TwoMonthMember,
		message: "Happy 2 months on the site! You just unlocked the 2 months badge",
		earned:  func(f facts) bool { return f.months >= 2 },
	},
}

// Evaluate returns the badges donor has earned as of now that are not in
// awarded. history is the donor's full donation history, including any
// devices just submitted. The result is ordered by badge ID.
func Evaluate(donor model.Donor, history []model.Device, awarded []model.AwardedBadge, now time.Time) []Award {
	have := make(map[int]struct{}, len(awarded))
	for _, a := range awarded {
		have[a.BadgeID] = struct{}{}
	}

	f := facts{donations: len(history)}
	if !donor.CreatedAt.IsZero() {
		f.months = MonthsBetween(donor.CreatedAt, now)
	}
	for _, d := range history {
		f.pounds += d.Weight
	}

	var out []Award
	for _, r := range rules {
		if _, ok := have[r.id]; ok || !r.earned(f) {
			continue
		}
		b, _ := Lookup(r.id)
		out = append(out, Award{Badge: b, Message: r.message})
	}
	return out
}

// MonthsBetween returns the number of whole calendar months from start to
// end, in end's location. It is zero when end precedes start.
func MonthsBetween(start, end time.Time) int {
	start = start.In(end.Location())
	if end.Before(start) {
		return 0
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	months := (ey-sy)*12 + int(em-sm)

	if ed < sd || (ed == sd && clock(end) < clock(start)) {
		months--
	}
	return max(months, 0)
}

func clock(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}
