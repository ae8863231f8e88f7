package tui

import (
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme   themes.Theme
	Now     func() time.Time
	Width   int
	Height  int
	Horizon model.Horizon
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:   themes.Default,
		Now:     time.Now,
		Width:   80,
		Height:  24,
		Horizon: model.HorizonQuarter,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock sets the source of "now" used to place buckets.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithHorizon sets the horizon shown first.
func WithHorizon(h model.Horizon) Option {
	return func(c *Config) {
		c.Horizon = h
	}
}
