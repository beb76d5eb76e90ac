// Package storage provides SQLite-based persistence for played sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is the format timestamps are stored in, always UTC.
const timeLayout = "2006-01-02 15:04:05"

// ErrNoSession is returned when a session ID is unknown.
var ErrNoSession = errors.New("storage: no such session")

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Session is one run of the game from start to quit.
type Session struct {
	ID        string
	Mode      string // "solo", "versus", "ssh" or "sim"
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is running
	Score1    int
	Score2    int
	Rounds    int
}

// Ended reports whether EndSession was called.
func (s Session) Ended() bool {
	return !s.EndedAt.IsZero()
}

// RoundRecord is one finished round.
type RoundRecord struct {
	SessionID string
	Round     int
	Winner    string // "left" or "right"
	Tick      uint64 // Frame the round ended on
	Score1    int    // Counters after the round
	Score2    int
	CreatedAt time.Time
}

// Totals aggregates every stored session.
type Totals struct {
	Sessions  int
	Rounds    int
	LeftWins  int
	RightWins int
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

	store := &Store{db: db, now: time.Now}
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
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			round INTEGER NOT NULL,
			winner TEXT NOT NULL,
			tick INTEGER NOT NULL,
			score1 INTEGER NOT NULL,
			score2 INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id, round);
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

func (s *Store) stamp() string {
	return s.now().UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp. The driver may hand back either a
// string or a time.Time depending on how the column was written.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// StartSession records a new session and returns its ID.
func (s *Store) StartSession(mode string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, mode, started_at) VALUES (?, ?, ?)",
		id, mode, s.stamp(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// RecordRound stores a finished round and updates the session's running score.
func (s *Store) RecordRound(r RoundRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	res, err := tx.Exec(
		"UPDATE sessions SET score1 = ?, score2 = ? WHERE id = ?",
		r.Score1, r.Score2, r.SessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNoSession, r.SessionID)
	}

	_, err = tx.Exec(
		`INSERT INTO rounds (session_id, round, winner, tick, score1, score2, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Round, r.Winner, int64(r.Tick), r.Score1, r.Score2, s.stamp(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return nil
}

// EndSession marks a session finished with its final score.
func (s *Store) EndSession(id string, score1, score2 int) error {
	res, err := s.db.Exec(
		"UPDATE sessions SET ended_at = ?, score1 = ?, score2 = ? WHERE id = ?",
		s.stamp(), score1, score2, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	return nil
}

// RecentSessions returns the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.mode, s.started_at, s.ended_at, s.score1, s.score2,
		        (SELECT COUNT(*) FROM rounds r WHERE r.session_id = s.id)
		 FROM sessions s
		 ORDER BY s.started_at DESC, s.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var startedAt, endedAt any
		if err := rows.Scan(&sess.ID, &sess.Mode, &startedAt, &endedAt,
			&sess.Score1, &sess.Score2, &sess.Rounds); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = parseTime(startedAt)
		sess.EndedAt = parseTime(endedAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// Rounds returns every round of a session in play order.
func (s *Store) Rounds(sessionID string) ([]RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT session_id, round, winner, tick, score1, score2, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY round, id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var tick int64
		var createdAt any
		if err := rows.Scan(&r.SessionID, &r.Round, &r.Winner, &tick,
			&r.Score1, &r.Score2, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Tick = uint64(tick)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// Totals returns counts across all sessions.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&t.Sessions); err != nil {
		return t, fmt.Errorf("storage: cannot count sessions: %w", err)
	}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END), 0)
		 FROM rounds`,
	).Scan(&t.Rounds, &t.LeftWins, &t.RightWins)
	if err != nil {
		return t, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return t, nil
}
