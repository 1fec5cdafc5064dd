package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates the full-text GIN index used by trip label
// search. Custom SQL that the Ent schema does not express.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_trips_display_name_gin
		ON trips USING gin(to_tsvector('english', display_name))`)
	if err != nil {
		return fmt.Errorf("failed to create display_name GIN index: %w", err)
	}

	return nil
}
