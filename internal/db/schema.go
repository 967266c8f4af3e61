package db

// SchemaSQL is the complete schema for fresh dispatch installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(): if repository code references a column that
// doesn't exist here, tests fail immediately with "no such column" instead of
// drifting silently.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Jobs (relocation jobs moving through request -> approval -> dispatch)
CREATE TABLE IF NOT EXISTS jobs (
	job_no TEXT PRIMARY KEY,
	title TEXT,
	shipper_name TEXT,
	location TEXT,
	shipment_details TEXT,
	description TEXT,
	priority TEXT NOT NULL CHECK(priority IN ('LOW', 'MEDIUM', 'HIGH')) DEFAULT 'LOW',
	agent_name TEXT,
	loading_type TEXT,
	main_category TEXT,
	sub_category TEXT,
	shuttle INTEGER NOT NULL DEFAULT 0,
	long_carry INTEGER NOT NULL DEFAULT 0,
	special_requests TEXT,
	volume_cbm REAL NOT NULL DEFAULT 0,
	job_time TEXT,
	job_date TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('PENDING_ADD', 'PENDING_DELETE', 'ACTIVE', 'COMPLETED', 'REJECTED')),
	is_locked INTEGER NOT NULL DEFAULT 0,
	assigned_to TEXT,
	is_warehouse_activity INTEGER NOT NULL DEFAULT 0,
	is_import_clearance INTEGER NOT NULL DEFAULT 0,
	team_leader TEXT,
	vehicle TEXT,
	writer_crew TEXT,
	requester_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_jobs_date ON jobs(job_date);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);

-- Personnel (crew registry)
CREATE TABLE IF NOT EXISTS personnel (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('Team Leader', 'Writer Crew')),
	status TEXT NOT NULL CHECK(status IN ('Available', 'Annual Leave', 'Sick Leave', 'Personal Leave')) DEFAULT 'Available',
	emirates_id TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Vehicles (fleet registry)
CREATE TABLE IF NOT EXISTS vehicles (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	plate TEXT NOT NULL UNIQUE,
	status TEXT NOT NULL CHECK(status IN ('Available', 'Out of Service', 'Maintenance')) DEFAULT 'Available',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Daily job ceilings (capacity policy)
CREATE TABLE IF NOT EXISTS daily_limits (
	date TEXT PRIMARY KEY,
	job_limit INTEGER NOT NULL CHECK(job_limit >= 0),
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Holiday blackout dates (capacity policy)
CREATE TABLE IF NOT EXISTS holidays (
	date TEXT PRIMARY KEY,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the schema on a fresh database and records all
// migrations as applied. On an existing database it runs pending migrations.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	var name string
	err = database.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&name)
	if err != nil {
		// Fresh install: create everything and mark migrations applied
		if _, err := database.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = database.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
