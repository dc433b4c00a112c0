package tui

import (
	"focustimer/internal/models"
	"focustimer/internal/providers"
	"focustimer/internal/services"
	"focustimer/internal/structures"
	"focustimer/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits. Sessions recorded here are tagged with the
// tui source.
func Run(conf *structures.Config, sessions services.SessionServiceInterface, stats services.StatsServiceInterface, notifier providers.NotifierProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) error {
	screen := timer.NewFlagScreen()
	t := timer.New(timer.Options{
		Recorder:          sessions,
		Settings:          sessions,
		Screen:            screen,
		Notifier:          notifier,
		Metrics:           metrics,
		Logger:            logger,
		Source:            models.SourceTUI,
		MinSessionSeconds: conf.Timer.MinSessionSeconds,
	})

	_, err := tea.NewProgram(NewModel(t, screen, stats)).Run()
	return err
}
