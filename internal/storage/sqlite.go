// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run modes as stored in the database.
const (
	ModeCampaign = "campaign"
	ModeInfinite = "infinite"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run represents a single finished run.
type Run struct {
	ID           int64
	Mode         string // "campaign" or "infinite"
	Score        int    // player points in the final match
	LevelReached int    // 1-based level for campaign runs, 0 for infinite
	Won          bool   // campaign cleared; always false for infinite
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (mode, score, level_reached, won) VALUES (?, ?, ?, ?)",
		run.Mode, run.Score, run.LevelReached, run.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given mode.
// Results are ordered by score descending.
func (s *Store) TopRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, level_reached, won, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// AllRuns retrieves all runs for the given mode (no limit).
func (s *Store) AllRuns(mode string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, score, level_reached, won, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC`,
		mode,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &r.LevelReached, &r.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestScore returns the highest score for the given mode.
// Returns 0 if no runs exist.
func (s *Store) BestScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// CampaignWins returns how many campaign runs cleared all levels.
func (s *Store) CampaignWins() (int, error) {
	var wins int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM runs WHERE mode = ? AND won = 1",
		ModeCampaign,
	).Scan(&wins)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query campaign wins: %w", err)
	}
	return wins, nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a run mode.
type ModeStats struct {
	Mode       string
	RunsCount  int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
