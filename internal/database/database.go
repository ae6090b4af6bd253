package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection
func New(dsn string) (*DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	// Initialize tables and run migrations
	if err := db.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	if err := db.migrateSchema(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// createTables creates the necessary tables
func (db *DB) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS user_times (
		user_id BIGINT NOT NULL,
		username TEXT NOT NULL,
		join_date DATE NOT NULL,
		last_join_time TIMESTAMPTZ,
		leave_date DATE,
		last_leave_time TIMESTAMPTZ,
		total_duration BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, join_date)
	)`

	if _, err := db.conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// migrateSchema upgrades tables left behind by older deployments, which had
// no primary key, TIME-typed clock columns and an INTERVAL duration.
func (db *DB) migrateSchema() error {
	migrations := []string{
		`ALTER TABLE user_times ADD COLUMN IF NOT EXISTS leave_date DATE`,
		`ALTER TABLE user_times ADD COLUMN IF NOT EXISTS last_leave_time TIMESTAMPTZ`,

		// Convert an INTERVAL total_duration to BIGINT nanoseconds
		`DO $$
		BEGIN
			IF EXISTS (
				SELECT 1 FROM information_schema.columns
				WHERE table_name = 'user_times' AND column_name = 'total_duration' AND data_type = 'interval'
			) THEN
				ALTER TABLE user_times ALTER COLUMN total_duration DROP DEFAULT;
				ALTER TABLE user_times ALTER COLUMN total_duration TYPE BIGINT
					USING (EXTRACT(EPOCH FROM total_duration) * 1000000000)::BIGINT;
				ALTER TABLE user_times ALTER COLUMN total_duration SET DEFAULT 0;
			END IF;
		END$$;`,

		// Convert TIME clock columns to TIMESTAMPTZ anchored on the row's dates
		`DO $$
		BEGIN
			IF EXISTS (
				SELECT 1 FROM information_schema.columns
				WHERE table_name = 'user_times' AND column_name = 'last_join_time' AND data_type LIKE 'time with%'
			) THEN
				ALTER TABLE user_times ALTER COLUMN last_join_time TYPE TIMESTAMPTZ
					USING (join_date + last_join_time);
				ALTER TABLE user_times ALTER COLUMN last_leave_time TYPE TIMESTAMPTZ
					USING (leave_date + last_leave_time);
			END IF;
		END$$;`,

		// Collapse duplicate (user_id, join_date) rows and enforce the key
		`DELETE FROM user_times a USING user_times b
			WHERE a.ctid < b.ctid AND a.user_id = b.user_id AND a.join_date = b.join_date`,
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE contype = 'p' AND conrelid = 'user_times'::regclass
			) THEN
				ALTER TABLE user_times ADD CONSTRAINT user_times_pkey PRIMARY KEY (user_id, join_date);
			END IF;
		END$$;`,
	}

	for _, migration := range migrations {
		if _, err := db.conn.Exec(migration); err != nil {
			log.Printf("Warning: Migration failed (this might be expected): %v", err)
		}
	}

	return nil
}
