package services

import (
	"context"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/structures"
	"focustimer/internal/timestats"
)

type StatsServiceInterface interface {
	Weekly(ctx context.Context, now time.Time) models.WeeklyProgress
	Daily(ctx context.Context, now time.Time) []models.DailyStats
	Hourly(ctx context.Context) []models.HourlyStats
	HeatMap(ctx context.Context) []models.HeatMapData
	Summary(ctx context.Context, now time.Time) models.StatsSummary
}

// StatsService recomputes every view from the full session history. The
// reference instant is moved into the display location first.
type StatsService struct {
	sessions SessionServiceInterface
	locale   timestats.Locale
	location *time.Location
}

func NewStatsService(conf *structures.Config, sessions SessionServiceInterface) StatsServiceInterface {
	return &StatsService{
		sessions: sessions,
		locale:   timestats.LookupLocale(conf.Display.Locale),
		location: conf.Location(),
	}
}

func (s *StatsService) Weekly(ctx context.Context, now time.Time) models.WeeklyProgress {
	goal := s.sessions.Settings(ctx).WeeklyGoal
	return timestats.WeeklyProgress(s.sessions.List(ctx), goal, now.In(s.location), s.locale)
}

func (s *StatsService) Daily(ctx context.Context, now time.Time) []models.DailyStats {
	return timestats.DailyStats(s.sessions.List(ctx), now.In(s.location), s.locale)
}

func (s *StatsService) Hourly(ctx context.Context) []models.HourlyStats {
	return timestats.HourlyStats(s.sessions.List(ctx), s.location)
}

func (s *StatsService) HeatMap(ctx context.Context) []models.HeatMapData {
	return timestats.HeatMapData(s.sessions.List(ctx), s.location)
}

func (s *StatsService) Summary(ctx context.Context, now time.Time) models.StatsSummary {
	goal := s.sessions.Settings(ctx).WeeklyGoal
	return timestats.Summary(s.sessions.List(ctx), goal, now.In(s.location), s.locale)
}
