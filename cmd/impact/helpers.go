package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/config"
	"github.com/Veraticus/ewaste-impact/internal/impact"
	"github.com/Veraticus/ewaste-impact/internal/policy"
	"github.com/Veraticus/ewaste-impact/internal/storage"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.DatabasePath()
	slog.Debug("opening database", "path", dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// loadCalculator builds a calculator from policy.path, or the built-in
// policy when unset.
func loadCalculator() (*impact.Calculator, error) {
	p, err := policy.LoadOrDefault(config.PolicyPath())
	if err != nil {
		return nil, err
	}
	return impact.NewCalculator(p)
}

// location returns the zone dates are read and bucketed in: the timezone
// setting, or the local zone.
func location() (*time.Location, error) {
	name := viper.GetString("timezone")
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// nowIn returns the current time in the configured zone.
func nowIn() (time.Time, error) {
	loc, err := location()
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().In(loc), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
