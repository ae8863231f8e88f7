package sheets

import (
	"github.com/Veraticus/ewaste-impact/internal/greenops"
	"github.com/Veraticus/ewaste-impact/internal/model"
)

// Column headers of a bucket block.
var bucketHeader = []any{"Period", "Start", "Devices", "Weight (lbs)", "Metals (lbs)", "Plastics (lbs)", "CO2 (lbs)"}

// sheetColumns is the widest row the report writes.
const sheetColumns = 7

// materialRow is one line of the lifetime composition table.
type materialRow struct {
	Label  string
	Pounds float64
	Share  float64
}

func (r materialRow) values() []any {
	return []any{r.Label, round2(r.Pounds), greenops.FormatFloat(r.Share*100, 1) + "%"}
}

// bucketRow is one line of a horizon block.
type bucketRow struct {
	model.Bucket
}

func (r bucketRow) values() []any {
	return []any{
		r.Label,
		r.PeriodStart.Format("2006-01-02"),
		r.Devices,
		round2(r.Weight),
		round2(r.Metals),
		round2(r.Plastics),
		round2(r.CO2),
	}
}

func materialRows(total model.SubmissionTotal) []materialRow {
	sum := total.Materials.Total()
	rows := make([]materialRow, 0, len(model.Materials))
	for _, m := range model.Materials {
		row := materialRow{Label: m.Label(), Pounds: total.Materials.Get(m)}
		if sum > 0 {
			row.Share = row.Pounds / sum
		}
		rows = append(rows, row)
	}
	return rows
}
