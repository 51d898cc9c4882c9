package store

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sort"

	"github.com/suraksha-net/suraksha/migrations"
)

// Migrate applies all embedded schema migrations in filename order.
func Migrate(db *sql.DB) error {
	files, err := fs.Glob(migrations.GetFS(), "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := fs.ReadFile(migrations.GetFS(), name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return nil
}
