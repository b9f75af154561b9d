package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:gatebank.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/gatebank?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS progress_flags (
  user_id TEXT NOT NULL,
  question_uid TEXT NOT NULL,
  solved INTEGER NOT NULL DEFAULT 0,
  bookmarked INTEGER NOT NULL DEFAULT 0,
  updated_at INTEGER NOT NULL,
  PRIMARY KEY (user_id, question_uid)
);

CREATE TABLE IF NOT EXISTS attempt_log (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  question_uid TEXT NOT NULL,
  submission TEXT NOT NULL,        -- JSON payload as submitted
  status TEXT NOT NULL,            -- ok|invalid_input
  correct INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS attempt_log_user_question
  ON attempt_log (user_id, question_uid, created_at);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS progress_flags (
  user_id TEXT NOT NULL,
  question_uid TEXT NOT NULL,
  solved BOOLEAN NOT NULL DEFAULT FALSE,
  bookmarked BOOLEAN NOT NULL DEFAULT FALSE,
  updated_at BIGINT NOT NULL,
  PRIMARY KEY (user_id, question_uid)
);

CREATE TABLE IF NOT EXISTS attempt_log (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  question_uid TEXT NOT NULL,
  submission TEXT NOT NULL,
  status TEXT NOT NULL,
  correct BOOLEAN NOT NULL DEFAULT FALSE,
  created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS attempt_log_user_question
  ON attempt_log (user_id, question_uid, created_at);
`
