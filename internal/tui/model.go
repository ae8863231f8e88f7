// Package tui implements the interactive donation history explorer.
package tui

import (
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// Aggregator groups a donation history into buckets for a horizon.
type Aggregator interface {
	Aggregate(history []model.Device, horizon model.Horizon, now time.Time) ([]model.Bucket, error)
}

// chromeHeight is the number of lines around the table: title, tabs,
// summary, help and spacing.
const chromeHeight = 9

// Model holds the explorer state.
type Model struct {
	theme      themes.Theme
	aggregator Aggregator
	lastError  error
	now        func() time.Time
	help       help.Model
	donor      model.Donor
	keymap     KeyMap
	history    []model.Device
	buckets    []model.Bucket
	table      table.Model
	width      int
	height     int
	horizon    model.Horizon
	loading    bool
	quitting   bool
}

// NewModel creates an explorer over history. The history is never
// filtered; every horizon is aggregated from the full slice.
func NewModel(agg Aggregator, donor model.Donor, history []model.Device, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := table.New(
		table.WithColumns(columnsFor(cfg.Width)),
		table.WithFocused(true),
		table.WithHeight(max(cfg.Height-chromeHeight, 3)),
	)
	s := table.DefaultStyles()
	s.Header = cfg.Theme.TableHeader
	s.Selected = cfg.Theme.Selected
	t.SetStyles(s)

	return Model{
		theme:      cfg.Theme,
		aggregator: agg,
		now:        cfg.Now,
		help:       help.New(),
		donor:      donor,
		keymap:     DefaultKeyMap(),
		history:    history,
		table:      t,
		width:      cfg.Width,
		height:     cfg.Height,
		horizon:    cfg.Horizon,
		loading:    true,
	}
}

// Init aggregates the starting horizon.
func (m Model) Init() tea.Cmd {
	return m.aggregate(m.horizon)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextHorizon):
			return m.switchHorizon(m.horizon.Next())
		case key.Matches(msg, m.keymap.PrevHorizon):
			return m.switchHorizon(m.horizon.Prev())
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(columnsFor(msg.Width))
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil

	case aggregatedMsg:
		// Ignore results for a horizon the user has already left.
		if msg.horizon != m.horizon {
			return m, nil
		}
		m.loading = false
		m.lastError = msg.err
		m.buckets = msg.buckets
		m.table.SetRows(rowsFor(msg.buckets))
		m.table.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Horizon returns the horizon on screen.
func (m Model) Horizon() model.Horizon {
	return m.horizon
}

// Buckets returns the buckets on screen.
func (m Model) Buckets() []model.Bucket {
	return m.buckets
}

// Err returns the last aggregation error, if any.
func (m Model) Err() error {
	return m.lastError
}

func (m Model) switchHorizon(h model.Horizon) (tea.Model, tea.Cmd) {
	m.horizon = h
	m.loading = true
	return m, m.aggregate(h)
}

func (m Model) aggregate(h model.Horizon) tea.Cmd {
	agg, history, now := m.aggregator, m.history, m.now()
	return func() tea.Msg {
		buckets, err := agg.Aggregate(history, h, now)
		return aggregatedMsg{horizon: h, buckets: buckets, err: err}
	}
}
