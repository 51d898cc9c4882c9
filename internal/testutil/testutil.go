package testutil

import (
	"database/sql"
	"io/fs"
	"sort"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/migrations"
)

// NewTestDB creates an in-memory SQLite database with the full schema applied
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	files, err := fs.Glob(migrations.GetFS(), "*.sql")
	if err != nil {
		t.Fatalf("Failed to list migrations: %v", err)
	}
	sort.Strings(files)

	for _, file := range files {
		script, err := fs.ReadFile(migrations.GetFS(), file)
		if err != nil {
			t.Fatalf("Failed to read migration %s: %v", file, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			t.Fatalf("Failed to apply migration %s: %v", file, err)
		}
	}

	return db
}

// CleanupDB closes the test database
func CleanupDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}

// NewTestAlert builds a plausible earthquake alert from an official source
func NewTestAlert(id string) *alert.EmergencyAlert {
	return &alert.EmergencyAlert{
		ID:      id,
		Content: "Earthquake of magnitude 6.2 reported. Evacuate to designated shelters and follow official instructions.",
		Source: alert.Source{
			ID:       "ndma-delhi",
			Name:     "NDMA Official",
			Kind:     alert.SourceOfficial,
			Verified: true,
		},
		Location: alert.Location{
			Lat:     28.6139,
			Lng:     77.2090,
			Address: "New Delhi",
			Radius:  25,
		},
		Category:  alert.CategoryEarthquake,
		Severity:  alert.SeverityHigh,
		Timestamp: time.Now().UnixMilli(),
	}
}
