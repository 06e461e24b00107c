// Package storage provides SQLite-based persistence for completed golf
// rounds. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundEntry represents a single completed hole. Strokes is the score;
// lower is better.
type RoundEntry struct {
	ID        int64
	LevelID   string
	BallType  string
	Strokes   int
	Par       int
	CreatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			ball_type TEXT NOT NULL DEFAULT 'standard',
			strokes INTEGER NOT NULL,
			par INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_level_id ON rounds(level_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(level_id, strokes ASC);
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

// SaveRound records a completed hole.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(levelID, ballType string, strokes, par int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (level_id, ball_type, strokes, par) VALUES (?, ?, ?, ?)",
		levelID, ballType, strokes, par,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestRounds retrieves the top N rounds for the given level.
// Results are ordered by strokes ascending: fewest strokes first.
func (s *Store) BestRounds(levelID string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, ball_type, strokes, par, created_at
		 FROM rounds
		 WHERE level_id = ?
		 ORDER BY strokes ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// AllRounds retrieves all rounds for the given level (no limit).
func (s *Store) AllRounds(levelID string) ([]RoundEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, ball_type, strokes, par, created_at
		 FROM rounds
		 WHERE level_id = ?
		 ORDER BY strokes ASC`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// scanRounds reads round rows into entries.
func scanRounds(rows *sql.Rows) ([]RoundEntry, error) {
	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.BallType, &e.Strokes, &e.Par, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string datetime values
// returned by the sqlite driver.
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

// BestStrokes returns the lowest stroke count recorded for the level.
// Returns 0 if no rounds exist.
func (s *Store) BestStrokes(levelID string) (int, error) {
	var strokes sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(strokes) FROM rounds WHERE level_id = ?",
		levelID,
	).Scan(&strokes)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best strokes: %w", err)
	}

	if !strokes.Valid {
		return 0, nil
	}

	return int(strokes.Int64), nil
}

// ClearRounds deletes all rounds for the given level.
func (s *Store) ClearRounds(levelID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID     string
	RoundsCount int
	BestStrokes int
	AvgStrokes  float64
	LastPlayed  time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(strokes), 0), COALESCE(AVG(strokes), 0)
		 FROM rounds WHERE level_id = ?`,
		levelID,
	).Scan(&stats.RoundsCount, &stats.BestStrokes, &stats.AvgStrokes)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE level_id = ? ORDER BY created_at DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllLevelsStats retrieves statistics for all levels that have been played.
func (s *Store) GetAllLevelsStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(strokes), AVG(strokes), MAX(created_at)
		 FROM rounds
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all levels stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.RoundsCount, &ls.BestStrokes, &ls.AvgStrokes, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTimestamp(lastPlayed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
