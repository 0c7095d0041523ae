// Package storage provides SQLite-based persistence for level progress and
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// levelIndexKey is the progress key holding the next level to play.
const levelIndexKey = "level_index"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// LevelResult is the outcome of one level attempt.
type LevelResult struct {
	ID             int64
	LevelID        string
	Mode           string // registry game ID, e.g. "busjam" or "busjam_zen"
	Won            bool
	TimeLeft       time.Duration
	Elapsed        time.Duration
	BusesCompleted int
	BusesTotal     int
	CreatedAt      time.Time
}

// LevelStats contains aggregated results for one level.
type LevelStats struct {
	LevelID      string
	Plays        int
	Wins         int
	BestTimeLeft time.Duration
	FastestWin   time.Duration
	LastPlayed   time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// One connection serializes writers from concurrent SSH sessions.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			won INTEGER NOT NULL,
			time_left_ms INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			buses_completed INTEGER NOT NULL DEFAULT 0,
			buses_total INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_level_id ON level_results(level_id);
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

// LevelIndex returns the saved index of the next level to play.
// Returns 0 if nothing has been saved.
func (s *Store) LevelIndex() (int, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM progress WHERE key = ?", levelIndexKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query level index: %w", err)
	}
	return value, nil
}

// SetLevelIndex saves the index of the next level to play.
func (s *Store) SetLevelIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("storage: negative level index %d", index)
	}
	_, err := s.db.Exec(
		`INSERT INTO progress (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		levelIndexKey, index,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level index: %w", err)
	}
	return nil
}

// AdvanceLevel records that the level at index was won. The saved index
// only moves forward, so replaying an earlier level does not lose
// progress. It returns the saved index afterwards.
func (s *Store) AdvanceLevel(index int) (int, error) {
	current, err := s.LevelIndex()
	if err != nil {
		return 0, err
	}
	if index+1 <= current {
		return current, nil
	}
	if err := s.SetLevelIndex(index + 1); err != nil {
		return 0, err
	}
	return index + 1, nil
}

// ResetProgress clears the saved level index and all results.
func (s *Store) ResetProgress() error {
	if _, err := s.db.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM level_results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SaveResult records a level attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r LevelResult) (int64, error) {
	won := 0
	if r.Won {
		won = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO level_results
		 (level_id, mode, won, time_left_ms, elapsed_ms, buses_completed, buses_total)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.LevelID, r.Mode, won,
		r.TimeLeft.Milliseconds(), r.Elapsed.Milliseconds(),
		r.BusesCompleted, r.BusesTotal,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentResults retrieves the latest results, newest first. An empty
// levelID returns results for every level.
func (s *Store) RecentResults(levelID string, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, mode, won, time_left_ms, elapsed_ms, buses_completed, buses_total, created_at
		 FROM level_results
		 WHERE ? = '' OR level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var won int
		var timeLeft, elapsed int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Mode, &won, &timeLeft, &elapsed,
			&r.BusesCompleted, &r.BusesTotal, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.TimeLeft = time.Duration(timeLeft) * time.Millisecond
		r.Elapsed = time.Duration(elapsed) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// AllLevelStats retrieves aggregated results for every played level.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(MAX(CASE WHEN won = 1 THEN time_left_ms END), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN elapsed_ms END), 0),
		        MAX(created_at)
		 FROM level_results
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var best, fastest int64
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Plays, &st.Wins, &best, &fastest, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTimeLeft = time.Duration(best) * time.Millisecond
		st.FastestWin = time.Duration(fastest) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
