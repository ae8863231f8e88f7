// Package testutil provides shared fixtures for tests that need a database.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/service"
	"github.com/Veraticus/ewaste-impact/internal/storage"
)

// TestDB is a migrated in-memory database for one test.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database. It automatically
// handles migrations and cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// MustCreateDonor stores a donor created at createdAt or fails the test.
func (db *TestDB) MustCreateDonor(name string, createdAt time.Time) *model.Donor {
	db.t.Helper()
	donor := &model.Donor{Name: name, CreatedAt: createdAt}
	if err := db.Storage.CreateDonor(context.Background(), donor); err != nil {
		db.t.Fatalf("failed to seed donor %q: %v", name, err)
	}
	return donor
}

// MustSaveDonations stores donations for donorID or fails the test.
func (db *TestDB) MustSaveDonations(donorID string, donations ...model.Donation) {
	db.t.Helper()
	if err := db.Storage.SaveDonations(context.Background(), donorID, donations); err != nil {
		db.t.Fatalf("failed to seed donations: %v", err)
	}
}
