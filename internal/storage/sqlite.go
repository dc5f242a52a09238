// Package storage provides SQLite-based persistence for the session journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// DefaultPath is the session journal location used when none is configured.
const DefaultPath = "~/.pong/sessions.db"

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// Session is one finished play session.
type Session struct {
	ID          int64
	Variant     string // Simulator ID, e.g. "classic"
	Frontend    string // "tui", "window" or "ssh"
	Seed        int64
	Duration    time.Duration
	Frames      uint64
	WallBounces int
	PaddleHits  int
	CreatedAt   time.Time
}

// VariantStats contains aggregated statistics for one variant.
type VariantStats struct {
	Variant       string
	Sessions      int
	TotalFrames   int64
	TotalDuration time.Duration
	WallBounces   int64
	PaddleHits    int64
	MostHits      int
	LastPlayed    time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			frontend TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			wall_bounces INTEGER NOT NULL DEFAULT 0,
			paddle_hits INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_variant ON sessions(variant);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.Variant == "" {
		return 0, errors.New("storage: session without variant")
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (variant, frontend, seed, duration_ms, frames, wall_bounces, paddle_hits)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.Variant,
		sess.Frontend,
		sess.Seed,
		sess.Duration.Milliseconds(),
		int64(sess.Frames),
		sess.WallBounces,
		sess.PaddleHits,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty variant matches every variant.
func (s *Store) RecentSessions(variant string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, frontend, seed, duration_ms, frames, wall_bounces, paddle_hits, created_at
		 FROM sessions
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess       Session
			durationMS int64
			frames     int64
			createdAt  any
		)
		if err := rows.Scan(
			&sess.ID,
			&sess.Variant,
			&sess.Frontend,
			&sess.Seed,
			&durationMS,
			&frames,
			&sess.WallBounces,
			&sess.PaddleHits,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		sess.Duration = time.Duration(durationMS) * time.Millisecond
		sess.Frames = uint64(frames)
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes all sessions of the given variant.
func (s *Store) ClearSessions(variant string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// GetVariantStats retrieves aggregated statistics for a specific variant.
// A variant without sessions yields zero stats.
func (s *Store) GetVariantStats(variant string) (*VariantStats, error) {
	all, err := s.queryStats("WHERE variant = ?", variant)
	if err != nil {
		return nil, err
	}
	if st, ok := all[variant]; ok {
		return st, nil
	}
	return &VariantStats{Variant: variant}, nil
}

// GetAllVariantStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllVariantStats() (map[string]*VariantStats, error) {
	return s.queryStats("")
}

func (s *Store) queryStats(where string, args ...any) (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), SUM(frames), SUM(duration_ms),
		        SUM(wall_bounces), SUM(paddle_hits), MAX(paddle_hits), MAX(created_at)
		 FROM sessions `+where+`
		 GROUP BY variant`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var (
			st         VariantStats
			durationMS int64
			lastPlayed any
		)
		if err := rows.Scan(
			&st.Variant,
			&st.Sessions,
			&st.TotalFrames,
			&durationMS,
			&st.WallBounces,
			&st.PaddleHits,
			&st.MostHits,
			&lastPlayed,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		st.TotalDuration = time.Duration(durationMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Variant] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
