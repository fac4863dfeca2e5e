// ABOUTME: Run-history persistence for agentmode
// ABOUTME: SQLite database under an XDG-compliant data directory
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"

	"github.com/GaneshEEE/agentmode/internal/models"
)

// Storage manages the append-only run history
type Storage struct {
	basePath string
	db       *sql.DB
	mu       sync.Mutex // Serializes writes
}

// NewStorage initializes storage under ~/.local/share/agentmode (or the
// given dir when non-empty). Respects XDG_DATA_HOME for testing.
func NewStorage(dataDir string) (*Storage, error) {
	basePath := dataDir
	if basePath == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = xdg.DataHome
		}
		basePath = filepath.Join(dataHome, "agentmode")
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", basePath, err)
	}

	dbPath := filepath.Join(basePath, "history.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		goal TEXT NOT NULL,
		space TEXT NOT NULL,
		pages TEXT NOT NULL,
		tabs TEXT NOT NULL,
		reasoning TEXT NOT NULL DEFAULT '',
		succeeded INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{basePath: basePath, db: db}, nil
}

// BasePath returns the data directory in use
func (s *Storage) BasePath() string {
	return s.basePath
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveEntry appends one run to the history
func (s *Storage) SaveEntry(entry *models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pagesJSON, err := json.Marshal(entry.Pages)
	if err != nil {
		return fmt.Errorf("failed to marshal pages: %w", err)
	}
	tabsJSON, err := json.Marshal(entry.Tabs)
	if err != nil {
		return fmt.Errorf("failed to marshal tabs: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, goal, space, pages, tabs, reasoning, succeeded, failed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Goal, entry.Space, string(pagesJSON), string(tabsJSON),
		entry.Reasoning, entry.Succeeded, entry.Failed, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// ListEntries returns the most recent runs, newest first
func (s *Storage) ListEntries(limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT run_id, goal, space, pages, tabs, reasoning, succeeded, failed, created_at
		 FROM runs ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// GetEntry returns one run by ID
func (s *Storage) GetEntry(id string) (*models.HistoryEntry, error) {
	row := s.db.QueryRow(
		`SELECT run_id, goal, space, pages, tabs, reasoning, succeeded, failed, created_at
		 FROM runs WHERE run_id = ?`, id)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Count returns the number of stored runs
func (s *Storage) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (*models.HistoryEntry, error) {
	var entry models.HistoryEntry
	var pagesJSON, tabsJSON string
	var createdAt time.Time

	err := row.Scan(&entry.ID, &entry.Goal, &entry.Space, &pagesJSON, &tabsJSON,
		&entry.Reasoning, &entry.Succeeded, &entry.Failed, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(pagesJSON), &entry.Pages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pages: %w", err)
	}
	if err := json.Unmarshal([]byte(tabsJSON), &entry.Tabs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tabs: %w", err)
	}
	entry.CreatedAt = createdAt
	return &entry, nil
}
