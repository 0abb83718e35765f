package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection that stores user settings.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite file at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	d := &Database{DB: conn, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection. Safe on a nil receiver.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file backing the database.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
