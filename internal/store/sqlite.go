// Package store persists pill toggles between runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/glebarez/sqlite"

	"github.com/young1lin/pillrow/internal/pill"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database and creates tables if needed.
// The parent directory is created when missing.
func Open(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create state dir: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS toggles (
		id TEXT PRIMARY KEY,
		toggled_at INTEGER NOT NULL
	);
	`

	_, err := db.Exec(query)
	return err
}

// LoadToggles returns the saved toggle set. An empty database yields an empty set.
func (db *DB) LoadToggles() (pill.ToggleSet, error) {
	rows, err := db.Query("SELECT id FROM toggles ORDER BY toggled_at, id")
	if err != nil {
		return pill.ToggleSet{}, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return pill.ToggleSet{}, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return pill.ToggleSet{}, err
	}

	return pill.NewToggleSet(ids...), nil
}

// SaveToggles replaces the stored toggle set in one transaction
func (db *DB) SaveToggles(set pill.ToggleSet) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM toggles"); err != nil {
		return err
	}

	now := time.Now().Unix()
	for _, id := range set.IDs() {
		if _, err := tx.Exec("INSERT INTO toggles (id, toggled_at) VALUES (?, ?)", id, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
