// Package store persists privacy-conscious page view and terminal session
// records in sqlite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Retention is how long visitor data is kept.
const Retention = 365 * 24 * time.Hour

// Visit is one tracked page view. The address is stored hashed only.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one mounted terminal widget.
type Session struct {
	ID         string     `json:"id"`
	HashedIP   string     `json:"hashed_ip"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Phase      string     `json:"phase"`
	Fallback   bool       `json:"fallback"`
	Lines      int        `json:"lines"`
}

type Stats struct {
	TotalVisits       int64     `json:"total_visits"`
	UniqueVisitors    int64     `json:"unique_visitors"`
	VisitsToday       int64     `json:"visits_today"`
	VisitsThisWeek    int64     `json:"visits_this_week"`
	TotalSessions     int64     `json:"total_sessions"`
	CompletedSessions int64     `json:"completed_sessions"`
	CanceledSessions  int64     `json:"canceled_sessions"`
	FallbackSessions  int64     `json:"fallback_sessions"`
	RecentSessions    []Session `json:"recent_sessions"`
	RecentVisits      []Visit   `json:"recent_visits"`
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors(timestamp);
CREATE TABLE IF NOT EXISTS terminal_sessions (
	id TEXT PRIMARY KEY,
	hashed_ip TEXT NOT NULL,
	started_at INTEGER NOT NULL,
	finished_at INTEGER,
	phase TEXT NOT NULL DEFAULT 'idle',
	fallback INTEGER NOT NULL DEFAULT 0,
	lines INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS terminal_sessions_started ON terminal_sessions(started_at);
`

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.UnixMilli())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *Store) StartSession(ctx context.Context, id, hashedIP string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO terminal_sessions (id, hashed_ip, started_at)
		VALUES (?, ?, ?)
	`, id, hashedIP, at.UnixMilli())
	if err != nil {
		return fmt.Errorf("start session %s: %w", id, err)
	}
	return nil
}

func (s *Store) FinishSession(ctx context.Context, id, phase string, fallback bool, lines int, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE terminal_sessions
		SET finished_at = ?, phase = ?, fallback = ?, lines = ?
		WHERE id = ?
	`, at.UnixMilli(), phase, fallback, lines, id)
	if err != nil {
		return fmt.Errorf("finish session %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish session %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// Cleanup deletes visitor and session records older than cutoff and
// returns how many rows were removed.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64
	for _, q := range []string{
		`DELETE FROM visitors WHERE timestamp < ?`,
		`DELETE FROM terminal_sessions WHERE started_at < ?`,
	} {
		res, err := s.db.ExecContext(ctx, q, cutoff.UnixMilli())
		if err != nil {
			return total, fmt.Errorf("cleanup: %w", err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// Stats aggregates the dashboard figures relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{today.UnixMilli()}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{week.UnixMilli()}},
		{&stats.TotalSessions, `SELECT COUNT(*) FROM terminal_sessions`, nil},
		{&stats.CompletedSessions, `SELECT COUNT(*) FROM terminal_sessions WHERE phase = 'done'`, nil},
		{&stats.CanceledSessions, `SELECT COUNT(*) FROM terminal_sessions WHERE phase = 'canceled'`, nil},
		{&stats.FallbackSessions, `SELECT COUNT(*) FROM terminal_sessions WHERE fallback = 1`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.RecentSessions, err = s.RecentSessions(ctx, 20); err != nil {
		return nil, err
	}
	if stats.RecentVisits, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.UnixMilli(ts).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (s *Store) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, started_at, finished_at, phase, fallback, lines
		FROM terminal_sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var started int64
		var finished sql.NullInt64
		if err := rows.Scan(&sess.ID, &sess.HashedIP, &started, &finished, &sess.Phase, &sess.Fallback, &sess.Lines); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.StartedAt = time.UnixMilli(started).UTC()
		if finished.Valid {
			at := time.UnixMilli(finished.Int64).UTC()
			sess.FinishedAt = &at
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
