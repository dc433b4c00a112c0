package services

import (
	"context"
	"fmt"

	"focustimer/internal/models"
	"focustimer/internal/providers"
	"focustimer/internal/storage"
	"focustimer/internal/structures"

	"go.uber.org/atomic"
)

// SessionServiceInterface applies the degradation policy over the store:
// reads log and fall back to empty or default values, writes log and return
// the error. Every successful write advances Generation.
type SessionServiceInterface interface {
	List(ctx context.Context) []models.Session
	Insert(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
	Settings(ctx context.Context) models.Settings
	SaveSettings(ctx context.Context, settings models.Settings) error
	Clear(ctx context.Context) error
	Generation() uint64
	UserID() string
}

type SessionService struct {
	store      storage.SessionStore
	userID     string
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	generation atomic.Uint64
}

func NewSessionService(conf *structures.Config, store storage.SessionStore, logger providers.Logger, metrics providers.MetricsProviderInterface) SessionServiceInterface {
	return &SessionService{
		store:   store,
		userID:  conf.User.ID,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *SessionService) UserID() string {
	return s.userID
}

func (s *SessionService) Generation() uint64 {
	return s.generation.Load()
}

func (s *SessionService) List(ctx context.Context) []models.Session {
	sessions, err := s.store.List(ctx, s.userID)
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Error loading sessions: %s", err)
		return []models.Session{}
	}
	s.metrics.SetSessionsTotal(len(sessions))
	return sessions
}

func (s *SessionService) Insert(ctx context.Context, session *models.Session) error {
	if err := s.store.Insert(ctx, s.userID, session); err != nil {
		s.logger.Errorf(providers.TypeStore, "Error saving session: %s", err)
		return fmt.Errorf("insert session: %w", err)
	}
	s.generation.Inc()
	s.logger.Debugf(providers.TypeStore, "Session %s saved (%ds, %s)", session.ID, session.Duration, session.Source)
	return nil
}

func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, s.userID, sessionID); err != nil {
		s.logger.Errorf(providers.TypeStore, "Error deleting session %s: %s", sessionID, err)
		return fmt.Errorf("delete session: %w", err)
	}
	s.generation.Inc()
	return nil
}

func (s *SessionService) Settings(ctx context.Context) models.Settings {
	settings, err := s.store.GetSettings(ctx, s.userID)
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Error loading settings: %s", err)
		return models.DefaultSettings()
	}
	return settings
}

func (s *SessionService) SaveSettings(ctx context.Context, settings models.Settings) error {
	if err := s.store.SaveSettings(ctx, s.userID, settings); err != nil {
		s.logger.Errorf(providers.TypeStore, "Error saving settings: %s", err)
		return fmt.Errorf("save settings: %w", err)
	}
	s.generation.Inc()
	return nil
}

func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx, s.userID); err != nil {
		s.logger.Errorf(providers.TypeStore, "Error clearing data: %s", err)
		return fmt.Errorf("clear data: %w", err)
	}
	s.generation.Inc()
	s.metrics.SetSessionsTotal(0)
	return nil
}
