package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// migration queries
	createTasksSnapshotTableSQL = `
  CREATE TABLE IF NOT EXISTS tasks_snapshot (
  position INTEGER NOT NULL,
  id INTEGER NOT NULL,
  task TEXT NOT NULL,
  finished INTEGER NOT NULL DEFAULT 0
  )`

	createNotesStateTableSQL = `
  CREATE TABLE IF NOT EXISTS notes_state (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  draft TEXT NOT NULL DEFAULT '',
  last_saved TEXT NOT NULL DEFAULT ''
  )`

	// snapshot queries
	clearTasksSnapshotSQL = `DELETE FROM tasks_snapshot`
	insertSnapshotTaskSQL = `INSERT INTO tasks_snapshot (position, id, task, finished) VALUES (?, ?, ?, ?)`
	getTasksSnapshotSQL   = `SELECT id, task, finished FROM tasks_snapshot ORDER BY position`

	// notes state queries
	upsertNotesStateSQL = `INSERT INTO notes_state (id, draft, last_saved) VALUES (1, ?, ?)
  ON CONFLICT(id) DO UPDATE SET draft = excluded.draft, last_saved = excluded.last_saved`
	getNotesStateSQL = `SELECT draft, last_saved FROM notes_state WHERE id = 1`
)

// Store keeps the client-side state that a browser page would hold in
// memory: the last successfully fetched task list and the notes editor's
// draft/baseline pair. The server stays authoritative for everything else.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	// ensure directory exists
	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db}

	// run migrations
	if err := store.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// runs migrations on initial start
func (s *Store) runMigrations() error {
	tables := []string{
		createTasksSnapshotTableSQL,
		createNotesStateTableSQL,
	}

	for _, tableSQL := range tables {
		if _, err := s.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// +------------------------+
// |                        |
// |    Task Snapshot       |
// |                        |
// +------------------------+

// SaveTaskSnapshot replaces the stored task list with the given one,
// keeping server order.
func (s *Store) SaveTaskSnapshot(tasks []Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(clearTasksSnapshotSQL); err != nil {
		return err
	}

	for i, t := range tasks {
		if _, err := tx.Exec(insertSnapshotTaskSQL, i, t.ID, t.Task, t.Finished); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadTaskSnapshot returns the last stored task list, nil if none was
// ever stored.
func (s *Store) LoadTaskSnapshot() ([]Task, error) {
	rows, err := s.db.Query(getTasksSnapshotSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Task, &t.Finished); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// +------------------------+
// |                        |
// |    Notes State         |
// |                        |
// +------------------------+

func (s *Store) SaveNotesState(draft, lastSaved string) error {
	_, err := s.db.Exec(upsertNotesStateSQL, draft, lastSaved)
	return err
}

// LoadNotesState returns the stored draft and last-saved baseline; both
// are empty when nothing was ever stored.
func (s *Store) LoadNotesState() (string, string, error) {
	var draft, lastSaved string
	err := s.db.QueryRow(getNotesStateSQL).Scan(&draft, &lastSaved)

	if err != nil {
		if err == sql.ErrNoRows {
			return "", "", nil
		}
		return "", "", err
	}
	return draft, lastSaved, nil
}
