package timer

import (
	"focustimer/internal/providers"
	"focustimer/internal/services"
	"focustimer/internal/structures"
)

// NewTimerProvider builds the daemon's timer over the session service.
func NewTimerProvider(conf *structures.Config, sessions services.SessionServiceInterface, notifier providers.NotifierProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) *Timer {
	return New(Options{
		Recorder:          sessions,
		Settings:          sessions,
		Screen:            NewFlagScreen(),
		Notifier:          notifier,
		Metrics:           metrics,
		Logger:            logger,
		Source:            conf.Timer.Source,
		MinSessionSeconds: conf.Timer.MinSessionSeconds,
	})
}
