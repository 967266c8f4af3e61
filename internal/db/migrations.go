package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_import_clearance_flag_to_jobs",
		Up:      migrationV1,
	},
}

// RunMigrations applies any migrations newer than the recorded version.
func RunMigrations() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	applied := map[int]bool{}
	rows, err := database.Query("SELECT version FROM schema_version")
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return err
		}
		applied[v] = true
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := m.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}

	return nil
}

// migrationV1 adds the import-clearance flag to jobs created before the
// clearance board existed.
func migrationV1(database *sql.DB) error {
	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info('jobs') WHERE name = 'is_import_clearance'",
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = database.Exec("ALTER TABLE jobs ADD COLUMN is_import_clearance INTEGER NOT NULL DEFAULT 0")
	return err
}
