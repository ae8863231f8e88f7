package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/ewaste-impact/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the explorer until the user quits or ctx is canceled.
func Run(ctx context.Context, agg Aggregator, donor model.Donor, history []model.Device, opts ...Option) error {
	if agg == nil {
		return fmt.Errorf("aggregator is required")
	}

	p := tea.NewProgram(
		NewModel(agg, donor, history, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
