// Package storage holds the session store contract and its backends.
package storage

import (
	"context"
	"fmt"
	"time"

	"focustimer/internal/models"

	"github.com/google/uuid"
)

// SessionStore persists sessions and settings per user. List returns sessions
// ordered by start time, newest first.
type SessionStore interface {
	List(ctx context.Context, userID string) ([]models.Session, error)
	Insert(ctx context.Context, userID string, session *models.Session) error
	Delete(ctx context.Context, userID, sessionID string) error
	GetSettings(ctx context.Context, userID string) (models.Settings, error)
	SaveSettings(ctx context.Context, userID string, settings models.Settings) error
	Clear(ctx context.Context, userID string) error
	Close() error
}

// prepareInsert validates the session and fills the id and source defaults.
func prepareInsert(session *models.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Source == "" {
		session.Source = models.SourceWeb
	}
	return nil
}

// timeLayout is fixed width so stored UTC timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
