package sheets

import (
	"fmt"

	"github.com/Veraticus/ewaste-impact/internal/service"
)

// ReportLayout is the cell grid for one report plus the rows that start a
// section, which get bold formatting.
type ReportLayout struct {
	Values      [][]any
	SectionRows []int
}

func (l *ReportLayout) section(title string) {
	l.Values = append(l.Values, []any{})
	l.SectionRows = append(l.SectionRows, len(l.Values))
	l.Values = append(l.Values, []any{title})
}

// BuildReport lays out an impact report: a title, lifetime totals, the
// lifetime material breakdown, then one block per horizon.
func BuildReport(report *service.ImpactReport) ReportLayout {
	var layout ReportLayout

	name := report.Donor.Name
	if name == "" {
		name = report.Donor.ID
	}
	layout.Values = append(layout.Values,
		[]any{"E-Waste Impact Report", name},
		[]any{"Generated", report.GeneratedAt.Format("2006-01-02 15:04 MST"), "Policy", report.PolicyVersion},
	)

	lifetime := report.Lifetime
	layout.section("Lifetime")
	layout.Values = append(layout.Values,
		[]any{"Devices", lifetime.Devices},
		[]any{"Weight (lbs)", round2(lifetime.Weight)},
		[]any{"Metals (lbs)", round2(lifetime.Materials.Metals())},
		[]any{"Plastics (lbs)", round2(lifetime.Materials.Plastic)},
		[]any{"CO2 (lbs)", round2(lifetime.CO2)},
	)
	if report.Equivalency != "" {
		layout.Values = append(layout.Values, []any{"", report.Equivalency})
	}

	layout.section("Materials")
	layout.Values = append(layout.Values, []any{"Material", "Pounds", "Share"})
	for _, row := range materialRows(lifetime) {
		layout.Values = append(layout.Values, row.values())
	}

	for _, series := range report.Series {
		layout.section(fmt.Sprintf("%s History", series.Horizon))
		layout.Values = append(layout.Values, bucketHeader)
		if len(series.Buckets) == 0 {
			layout.Values = append(layout.Values, []any{"No donations"})
			continue
		}
		for _, b := range series.Buckets {
			layout.Values = append(layout.Values, bucketRow{b}.values())
		}
	}

	return layout
}
