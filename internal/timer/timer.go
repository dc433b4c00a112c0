// Package timer is the focus stopwatch: Idle, Running and Paused states
// driven by a one second tick, saving completed sessions on stop.
package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/providers"
	"focustimer/internal/timestats"
)

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Outcome is the result of StopAndSave.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeSaved
	OutcomeTooShort
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return providers.OutcomeSaved
	case OutcomeTooShort:
		return providers.OutcomeTooShort
	case OutcomeFailed:
		return providers.OutcomeFailed
	default:
		return "ignored"
	}
}

const (
	DefaultMinSessionSeconds = 5

	saveTimeout = 10 * time.Second

	successTTL = 4 * time.Second
	errorTTL   = 4 * time.Second
	warningTTL = 3 * time.Second

	msgSaved     = "Sesión guardada exitosamente: %s"
	msgSaveError = "Error al guardar la sesión. Inténtalo de nuevo."
	msgTooShort  = "Sesión muy corta (menos de %d segundos). No se guardó."
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Recorder stores a completed session.
type Recorder interface {
	Insert(ctx context.Context, session *models.Session) error
}

// SettingsSource is read on every pause so a changed preference applies
// immediately.
type SettingsSource interface {
	Settings(ctx context.Context) models.Settings
}

type Options struct {
	Clock             Clock
	Recorder          Recorder
	Settings          SettingsSource
	Screen            Screen
	Notifier          providers.NotifierProviderInterface
	Metrics           providers.MetricsProviderInterface
	Logger            providers.Logger
	Source            string
	MinSessionSeconds int
}

type Snapshot struct {
	State        string               `json:"state"`
	Elapsed      int                  `json:"elapsed"`
	Display      string               `json:"display"`
	StartTime    *time.Time           `json:"startTime,omitempty"`
	Fullscreen   bool                 `json:"fullscreen"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// Timer is safe for concurrent use. Store writes and screen changes happen
// outside the lock.
type Timer struct {
	mu           sync.Mutex
	state        State
	elapsed      int
	startTime    time.Time
	notification *models.Notification

	clock      Clock
	recorder   Recorder
	settings   SettingsSource
	screen     Screen
	notifier   providers.NotifierProviderInterface
	metrics    providers.MetricsProviderInterface
	logger     providers.Logger
	source     string
	minSeconds int
}

func New(opts Options) *Timer {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Screen == nil {
		opts.Screen = NewFlagScreen()
	}
	if opts.MinSessionSeconds <= 0 {
		opts.MinSessionSeconds = DefaultMinSessionSeconds
	}
	if opts.Source == "" {
		opts.Source = models.SourceWeb
	}
	return &Timer{
		clock:      opts.Clock,
		recorder:   opts.Recorder,
		settings:   opts.Settings,
		screen:     opts.Screen,
		notifier:   opts.Notifier,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		source:     opts.Source,
		minSeconds: opts.MinSessionSeconds,
	}
}

// Start begins a session from Idle or resumes from Paused.
func (t *Timer) Start(_ context.Context) {
	t.mu.Lock()
	switch t.state {
	case Running:
		t.mu.Unlock()
		return
	case Idle:
		t.startTime = t.clock.Now()
		t.elapsed = 0
	}
	fromIdle := t.state == Idle
	t.state = Running
	elapsed := t.elapsed
	t.mu.Unlock()

	if fromIdle {
		t.enterFullscreen()
	}
	t.metrics.ObserveTimer(Running.String(), elapsed)
	t.logger.Debugf(providers.TypeTimer, "Timer running (elapsed %ds)", elapsed)
}

// Tick advances elapsed by one second while running.
func (t *Timer) Tick() {
	t.mu.Lock()
	if t.state != Running {
		t.mu.Unlock()
		return
	}
	t.elapsed++
	elapsed := t.elapsed
	t.mu.Unlock()

	t.metrics.ObserveTimer(Running.String(), elapsed)
}

func (t *Timer) Pause(ctx context.Context) {
	t.mu.Lock()
	if t.state != Running {
		t.mu.Unlock()
		return
	}
	t.state = Paused
	elapsed := t.elapsed
	t.mu.Unlock()

	t.metrics.ObserveTimer(Paused.String(), elapsed)
	if t.settings != nil && t.settings.Settings(ctx).ExitFullscreenOnPause {
		t.exitFullscreen()
	}
}

// Reset zeroes a paused session and restarts its clock. It does nothing in
// any other state.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Paused {
		return
	}
	t.elapsed = 0
	t.startTime = t.clock.Now()
	t.metrics.ObserveTimer(Paused.String(), 0)
}

// StopAndSave ends the current session. The timer is back to Idle before the
// store write begins, so the write runs detached from ctx cancellation and is
// bounded by saveTimeout instead. The call returns once the write has
// finished.
func (t *Timer) StopAndSave(ctx context.Context) (Outcome, error) {
	t.mu.Lock()
	if t.state == Idle {
		t.mu.Unlock()
		return OutcomeIgnored, nil
	}
	start, elapsed := t.startTime, t.elapsed
	t.state = Idle
	t.elapsed = 0
	t.startTime = time.Time{}
	t.mu.Unlock()

	t.exitFullscreen()
	t.metrics.ObserveTimer(Idle.String(), 0)

	if elapsed < t.minSeconds {
		t.notify(models.NotificationWarning, fmt.Sprintf(msgTooShort, t.minSeconds), warningTTL)
		t.metrics.IncSessionsRecorded(providers.OutcomeTooShort)
		return OutcomeTooShort, nil
	}

	session := &models.Session{
		StartTime: start,
		EndTime:   t.clock.Now(),
		Duration:  elapsed,
		Source:    t.source,
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	if err := t.recorder.Insert(writeCtx, session); err != nil {
		t.notify(models.NotificationError, msgSaveError, errorTTL)
		t.metrics.IncSessionsRecorded(providers.OutcomeFailed)
		return OutcomeFailed, err
	}

	t.notify(models.NotificationSuccess, fmt.Sprintf(msgSaved, timestats.FormatDurationDetailed(elapsed)), successTTL)
	t.metrics.IncSessionsRecorded(providers.OutcomeSaved)
	return OutcomeSaved, nil
}

// ToggleFullscreen flips the screen mode in any state.
func (t *Timer) ToggleFullscreen() {
	if t.screen.IsFullscreen() {
		t.exitFullscreen()
		return
	}
	t.enterFullscreen()
}

func (t *Timer) DismissNotification() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notification = nil
}

func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		State:      t.state.String(),
		Elapsed:    t.elapsed,
		Display:    timestats.FormatClock(t.elapsed),
		Fullscreen: t.screen.IsFullscreen(),
	}
	if t.state != Idle {
		start := t.startTime
		snap.StartTime = &start
	}
	if t.notification != nil && !t.notification.Expired(t.clock.Now()) {
		n := *t.notification
		snap.Notification = &n
	}
	return snap
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Timer) notify(kind models.NotificationKind, message string, ttl time.Duration) {
	n := models.Notification{Kind: kind, Message: message, TTL: ttl, CreatedAt: t.clock.Now()}
	t.mu.Lock()
	t.notification = &n
	t.mu.Unlock()
	if t.notifier != nil {
		t.notifier.Notify(n)
	}
}

func (t *Timer) enterFullscreen() {
	if err := t.screen.EnterFullscreen(); err != nil {
		t.logger.Debugf(providers.TypeTimer, "Enter fullscreen failed: %s", err)
	}
}

func (t *Timer) exitFullscreen() {
	if err := t.screen.ExitFullscreen(); err != nil {
		t.logger.Debugf(providers.TypeTimer, "Exit fullscreen failed: %s", err)
	}
}
