package models

import (
	"errors"
	"time"
)

const (
	SourceWeb      = "web"
	SourceLocal    = "local"
	SourceImported = "imported"
	SourceTUI      = "tui"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrDuplicateSession = errors.New("session already exists")
	ErrInvalidSession   = errors.New("invalid session")
)

// Session is a completed focus period. Duration is kept as given and is not
// derived from EndTime-StartTime.
type Session struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"`
	Source    string    `json:"source"`
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrInvalidSession
	}
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return errors.Join(ErrInvalidSession, errors.New("start and end time are required"))
	}
	if s.EndTime.Before(s.StartTime) {
		return errors.Join(ErrInvalidSession, errors.New("end time before start time"))
	}
	if s.Duration < 0 {
		return errors.Join(ErrInvalidSession, errors.New("negative duration"))
	}
	return nil
}

// ByStartDesc orders sessions newest first.
type ByStartDesc []Session

func (b ByStartDesc) Len() int      { return len(b) }
func (b ByStartDesc) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b ByStartDesc) Less(i, j int) bool {
	if b[i].StartTime.Equal(b[j].StartTime) {
		return b[i].ID > b[j].ID
	}
	return b[i].StartTime.After(b[j].StartTime)
}
