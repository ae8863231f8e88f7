package tui

import (
	"fmt"

	"github.com/Veraticus/ewaste-impact/internal/greenops"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// View renders the explorer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderTitle(),
		m.renderTabs(),
		"",
	}

	switch {
	case m.lastError != nil:
		sections = append(sections, m.theme.StatusError.Render("Error: "+m.lastError.Error()))
	case m.loading:
		sections = append(sections, m.theme.Subtitle.Render("Aggregating..."))
	case len(m.buckets) == 0:
		sections = append(sections, m.theme.Subtitle.Render("No donations yet."))
	default:
		sections = append(sections, m.table.View(), "", m.renderSummary())
	}

	sections = append(sections, "", m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	name := m.donor.Name
	if name == "" {
		name = m.donor.ID
	}
	return m.theme.Title.Render("Donation impact") + " " + m.theme.Subtitle.Render(name)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(model.Horizons))
	for _, h := range model.Horizons {
		style := m.theme.Tab
		if h == m.horizon {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(h.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSummary totals the visible buckets and adds the CO2 equivalency.
func (m Model) renderSummary() string {
	var devices int
	var weight, co2 float64
	for _, b := range m.buckets {
		devices += b.Devices
		weight += b.Weight
		co2 += b.CO2
	}

	summary := fmt.Sprintf("%s: %s devices, %s, %s CO2",
		m.horizon, greenops.FormatNumber(int64(devices)),
		greenops.FormatPounds(weight), greenops.FormatPounds(co2))

	if eq, err := greenops.Calculate(co2); err == nil && !eq.IsEmpty {
		summary += " " + eq.CompactText
	}
	return m.theme.Summary.Render(summary)
}

func columnsFor(width int) []table.Column {
	period := max(width-5*10-8, 12)
	return []table.Column{
		{Title: "Period", Width: period},
		{Title: "Devices", Width: 8},
		{Title: "Weight", Width: 10},
		{Title: "Metals", Width: 10},
		{Title: "Plastics", Width: 10},
		{Title: "CO2", Width: 10},
	}
}

func rowsFor(buckets []model.Bucket) []table.Row {
	rows := make([]table.Row, len(buckets))
	for i, b := range buckets {
		rows[i] = table.Row{
			b.Label,
			greenops.FormatNumber(int64(b.Devices)),
			greenops.FormatFloat(b.Weight, 1),
			greenops.FormatFloat(b.Metals, 1),
			greenops.FormatFloat(b.Plastics, 1),
			greenops.FormatFloat(b.CO2, 1),
		}
	}
	return rows
}
