package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focustimer/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  duration INTEGER NOT NULL,
  source TEXT NOT NULL,
  PRIMARY KEY (user_id, id)
);
CREATE INDEX IF NOT EXISTS sessions_user_start ON sessions (user_id, start_time DESC);
CREATE TABLE IF NOT EXISTS settings (
  user_id TEXT PRIMARY KEY,
  weekly_goal REAL NOT NULL,
  exit_fullscreen_on_pause INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, userID string) ([]models.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, start_time, end_time, duration, source
FROM sessions WHERE user_id = ? ORDER BY start_time DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	out := []models.Session{}
	for rows.Next() {
		var (
			sess       models.Session
			start, end string
		)
		if err := rows.Scan(&sess.ID, &start, &end, &sess.Duration, &sess.Source); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if sess.StartTime, err = parseTime(start); err != nil {
			return nil, err
		}
		if sess.EndTime, err = parseTime(end); err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, userID string, session *models.Session) error {
	if err := prepareInsert(session); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions (id, user_id, start_time, end_time, duration, source)
VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID,
		userID,
		formatTime(session.StartTime),
		formatTime(session.EndTime),
		session.Duration,
		session.Source,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateSession
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, userID, sessionID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ? AND user_id = ?`, sessionID, userID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}

func (s *SQLiteStore) GetSettings(ctx context.Context, userID string) (models.Settings, error) {
	var settings models.Settings
	err := s.db.QueryRowContext(ctx,
		`SELECT weekly_goal, exit_fullscreen_on_pause FROM settings WHERE user_id = ?`, userID,
	).Scan(&settings.WeeklyGoal, &settings.ExitFullscreenOnPause)
	if errors.Is(err, sql.ErrNoRows) {
		settings = models.DefaultSettings()
		if err := s.SaveSettings(ctx, userID, settings); err != nil {
			return models.Settings{}, err
		}
		return settings, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, userID string, settings models.Settings) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO settings (user_id, weekly_goal, exit_fullscreen_on_pause)
VALUES (?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
  weekly_goal=excluded.weekly_goal,
  exit_fullscreen_on_pause=excluded.exit_fullscreen_on_pause`,
		userID, settings.WeeklyGoal, settings.ExitFullscreenOnPause,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM settings WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	def := models.DefaultSettings()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO settings (user_id, weekly_goal, exit_fullscreen_on_pause) VALUES (?, ?, ?)`,
		userID, def.WeeklyGoal, def.ExitFullscreenOnPause,
	); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
