package cli

import (
	"strings"

	"github.com/Veraticus/ewaste-impact/internal/greenops"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderComposition renders a submission total: device count and weight,
// the Metals/Plastics/CO2 breakdown with shares, the non-zero materials, and
// the everyday equivalency of the CO2 figure.
func RenderComposition(total model.SubmissionTotal) string {
	if total.IsZero() {
		return SubtleStyle.Render("No devices.")
	}

	var b strings.Builder
	b.WriteString(BoldStyle.Render("Devices: ") + greenops.FormatNumber(int64(total.Devices)))
	b.WriteString("   ")
	b.WriteString(BoldStyle.Render("Weight: ") + greenops.FormatPounds(total.Weight))
	b.WriteString("\n\n")

	breakdown := [][]string{}
	for _, slice := range total.Slices() {
		label := slice.Label
		if style, ok := SliceStyles[label]; ok {
			label = style.Render(label)
		}
		breakdown = append(breakdown, []string{
			label,
			greenops.FormatPounds(slice.Value),
			greenops.FormatFloat(slice.Percent, 1) + "%",
		})
	}
	b.WriteString(renderTable([]string{"Impact", "Amount", "Share"}, breakdown))

	materials := [][]string{}
	for _, m := range model.Materials {
		if v := total.Materials.Get(m); v > 0 {
			materials = append(materials, []string{m.Label(), greenops.FormatPounds(v)})
		}
	}
	if len(materials) > 0 {
		b.WriteString("\n\n")
		b.WriteString(renderTable([]string{"Material", "Recovered"}, materials))
	}

	if eq, err := greenops.Calculate(total.CO2); err == nil && !eq.IsEmpty {
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render(eq.DisplayText))
	}

	return b.String()
}

// RenderBuckets renders an aggregated series as a table, one row per bucket.
func RenderBuckets(buckets []model.Bucket) string {
	if len(buckets) == 0 {
		return SubtleStyle.Render("No donations in this period.")
	}

	rows := make([][]string, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, []string{
			bucket.Label,
			greenops.FormatNumber(int64(bucket.Devices)),
			greenops.FormatFloat(bucket.Weight, 1),
			greenops.FormatFloat(bucket.Metals, 1),
			greenops.FormatFloat(bucket.Plastics, 1),
			greenops.FormatFloat(bucket.CO2, 1),
		})
	}
	return renderTable([]string{"Period", "Devices", "Weight", "Metals", "Plastics", "CO2"}, rows)
}

// renderTable lays out rows in left-aligned columns sized to their widest cell.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(header, widths, TableHeaderStyle))
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths, TableCellStyle))
	}
	return strings.Join(lines, "\n")
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		pad := max(widths[i]-lipgloss.Width(cell), 0)
		rendered[i] = style.Render(cell + strings.Repeat(" ", pad))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderDonations renders stored donations one per row, the way staff review
// them: date, device, condition, weight, CO2 and verification mark.
func RenderDonations(donations []model.Donation) string {
	if len(donations) == 0 {
		return SubtleStyle.Render("No donations match.")
	}

	rows := make([][]string, 0, len(donations))
	for _, d := range donations {
		mark := SubtleStyle.Render("-")
		if d.Device.Verified {
			mark = SuccessStyle.Render(SuccessIcon)
		}
		device := string(d.Device.Type)
		if d.Device.Manufacturer != "" {
			device = d.Device.Manufacturer + " " + device
		}
		rows = append(rows, []string{
			d.Device.ID,
			d.Device.DateDonated.Format("2006-01-02"),
			device,
			string(d.Device.Condition),
			greenops.FormatFloat(d.Device.Weight, 1),
			greenops.FormatFloat(d.Impact.CO2, 1),
			mark,
		})
	}
	return renderTable([]string{"ID", "Date", "Device", "Condition", "Weight", "CO2", "Verified"}, rows)
}
