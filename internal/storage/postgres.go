package storage

import (
	"context"
	"errors"
	"fmt"

	"focustimer/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	store := &PostgresStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

func (p *PostgresStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  start_time TIMESTAMPTZ NOT NULL,
  end_time TIMESTAMPTZ NOT NULL,
  duration INTEGER NOT NULL,
  source TEXT NOT NULL,
  PRIMARY KEY (user_id, id)
);
CREATE INDEX IF NOT EXISTS sessions_user_start ON sessions (user_id, start_time DESC);
CREATE TABLE IF NOT EXISTS settings (
  user_id TEXT PRIMARY KEY,
  weekly_goal DOUBLE PRECISION NOT NULL,
  exit_fullscreen_on_pause BOOLEAN NOT NULL
);
`
	if _, err := p.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (p *PostgresStore) List(ctx context.Context, userID string) ([]models.Session, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, start_time, end_time, duration, source FROM sessions WHERE user_id = $1 ORDER BY start_time DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	out := []models.Session{}
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.StartTime, &s.EndTime, &s.Duration, &s.Source); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) Insert(ctx context.Context, userID string, session *models.Session) error {
	if err := prepareInsert(session); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx, `INSERT INTO sessions (id, user_id, start_time, end_time, duration, source) VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, userID, session.StartTime, session.EndTime, session.Duration, session.Source)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.ErrDuplicateSession
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, userID, sessionID string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1 AND user_id = $2`, sessionID, userID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}

func (p *PostgresStore) GetSettings(ctx context.Context, userID string) (models.Settings, error) {
	var s models.Settings
	err := p.pool.QueryRow(ctx, `SELECT weekly_goal, exit_fullscreen_on_pause FROM settings WHERE user_id = $1`, userID).
		Scan(&s.WeeklyGoal, &s.ExitFullscreenOnPause)
	if errors.Is(err, pgx.ErrNoRows) {
		s = models.DefaultSettings()
		if err := p.SaveSettings(ctx, userID, s); err != nil {
			return models.Settings{}, err
		}
		return s, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return s, nil
}

func (p *PostgresStore) SaveSettings(ctx context.Context, userID string, settings models.Settings) error {
	_, err := p.pool.Exec(ctx, `
INSERT INTO settings (user_id, weekly_goal, exit_fullscreen_on_pause) VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
  weekly_goal = EXCLUDED.weekly_goal,
  exit_fullscreen_on_pause = EXCLUDED.exit_fullscreen_on_pause`,
		userID, settings.WeeklyGoal, settings.ExitFullscreenOnPause)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (p *PostgresStore) Clear(ctx context.Context, userID string) error {
	def := models.DefaultSettings()
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("clear sessions: %w", err)
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO settings (user_id, weekly_goal, exit_fullscreen_on_pause) VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
  weekly_goal = EXCLUDED.weekly_goal,
  exit_fullscreen_on_pause = EXCLUDED.exit_fullscreen_on_pause`,
			userID, def.WeeklyGoal, def.ExitFullscreenOnPause); err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
		return nil
	})
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
