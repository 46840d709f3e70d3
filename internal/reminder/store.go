package reminder

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed storage for accepted reminders.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at dbPath and ensures the
// reminders table exists.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createTable(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reminders (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			message      TEXT,
			remind_time  TEXT,
			is_important INTEGER,
			status       TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new reminder row with status "pending" and returns the
// assigned id. remindTime is the raw ISO string exactly as the user gave it,
// before any past-time resolution.
func (s *Store) Add(message, remindTime string, important bool) (int64, error) {
	imp := 0
	if important {
		imp = 1
	}

	result, err := s.db.Exec(`
		INSERT INTO reminders (message, remind_time, is_important, status)
		VALUES (?, ?, ?, ?)
	`, message, remindTime, imp, StatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted ID: %w", err)
	}
	return id, nil
}

// List returns all reminders, optionally filtered by status.
// Pass an empty string to list all.
func (s *Store) List(statusFilter string) ([]Record, error) {
	var rows *sql.Rows
	var err error

	if statusFilter != "" {
		rows, err = s.db.Query(`
			SELECT id, message, remind_time, is_important, status
			FROM reminders WHERE status = ? ORDER BY remind_time ASC
		`, statusFilter)
	} else {
		rows, err = s.db.Query(`
			SELECT id, message, remind_time, is_important, status
			FROM reminders ORDER BY remind_time ASC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Due returns all pending reminders whose raw remind_time is at or before
// the given naive ISO timestamp. Lexicographic comparison is valid because
// the column holds fixed-width ISO strings.
func (s *Store) Due(nowISO string) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, message, remind_time, is_important, status
		FROM reminders WHERE status = ? AND remind_time <= ? ORDER BY remind_time ASC
	`, StatusPending, nowISO)
	if err != nil {
		return nil, fmt.Errorf("failed to get due reminders: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Complete marks a reminder as completed.
func (s *Store) Complete(id int64) error {
	result, err := s.db.Exec(`
		UPDATE reminders SET status = ? WHERE id = ?
	`, StatusCompleted, id)
	if err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("reminder %d not found", id)
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var r Record
		var imp int

		if err := rows.Scan(&r.ID, &r.Message, &r.RemindTime, &imp, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		r.IsImportant = imp != 0

		records = append(records, r)
	}
	return records, rows.Err()
}
