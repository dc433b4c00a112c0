// Package tui is the terminal stopwatch. It drives the same Timer as the
// HTTP daemon and maps fullscreen onto the terminal's alternate screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/services"
	"focustimer/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

type tickMsg time.Time

type stoppedMsg struct {
	outcome timer.Outcome
	err     error
}

type weeklyMsg models.WeeklyProgress

// Model is the bubbletea model around a Timer. The timer's screen is only a
// flag; Update reconciles it with the alternate screen after every message.
type Model struct {
	timer  *timer.Timer
	screen timer.Screen
	stats  services.StatsServiceInterface
	now    func() time.Time

	alt      bool
	weekly   models.WeeklyProgress
	saving   bool
	quitting bool
	width    int
}

func NewModel(t *timer.Timer, screen timer.Screen, stats services.StatsServiceInterface) Model {
	return Model{
		timer:  t,
		screen: screen,
		stats:  stats,
		now:    time.Now,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadWeekly() tea.Cmd {
	return func() tea.Msg {
		return weeklyMsg(m.stats.Weekly(context.Background(), m.now()))
	}
}

func (m Model) stop() tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.timer.StopAndSave(context.Background())
		return stoppedMsg{outcome: outcome, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.loadWeekly())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		m.timer.Tick()
		cmds = append(cmds, tick())

	case weeklyMsg:
		m.weekly = models.WeeklyProgress(msg)

	case stoppedMsg:
		m.saving = false
		if m.quitting {
			return m, tea.Quit
		}
		cmds = append(cmds, m.loadWeekly())

	case tea.KeyMsg:
		if cmd := m.handleKey(msg.String()); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if cmd := m.syncScreen(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKey applies a key press to the timer and returns any async work.
func (m *Model) handleKey(key string) tea.Cmd {
	if m.saving {
		return nil
	}
	switch key {
	case " ":
		if m.timer.State() == timer.Running {
			m.timer.Pause(context.Background())
		} else {
			m.timer.Start(context.Background())
		}
	case "r":
		m.timer.Reset()
	case "f":
		m.timer.ToggleFullscreen()
	case "esc":
		if m.screen.IsFullscreen() {
			m.timer.ToggleFullscreen()
			return nil
		}
		m.timer.DismissNotification()
	case "s":
		if m.timer.State() != timer.Idle {
			m.saving = true
			return m.stop()
		}
		m.timer.DismissNotification()
	case "q", "ctrl+c":
		m.quitting = true
		if m.timer.State() != timer.Idle {
			m.saving = true
			return m.stop()
		}
		return tea.Quit
	}
	return nil
}

func (m *Model) syncScreen() tea.Cmd {
	want := m.screen.IsFullscreen()
	if want == m.alt {
		return nil
	}
	m.alt = want
	if want {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

func (m Model) View() string {
	if m.quitting && !m.saving {
		return ""
	}
	snap := m.timer.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Focus Timer"))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Render(snap.Display))
	b.WriteString("\n")
	b.WriteString(stateStyle.Render(stateLabel(snap.State)))
	b.WriteString("\n\n")
	b.WriteString(m.progressView())
	b.WriteString("\n")
	if snap.Notification != nil {
		b.WriteString("\n")
		b.WriteString(noticeView(*snap.Notification))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space start/pausa · s detener y guardar · r reiniciar · f/esc pantalla completa · q salir"))

	if m.alt && m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

func (m Model) progressView() string {
	filled := int(m.weekly.Percentage / 100 * progressWidth)
	filled = min(max(filled, 0), progressWidth)
	bar := barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", progressWidth-filled))
	return fmt.Sprintf("Semana %s - %s  %s %.1f%%  (%.1fh, faltan %.1fh)",
		m.weekly.WeekStart, m.weekly.WeekEnd, bar, m.weekly.Percentage, m.weekly.TotalHours, m.weekly.RemainingHours)
}

func stateLabel(state string) string {
	switch state {
	case timer.Running.String():
		return "En curso"
	case timer.Paused.String():
		return "En pausa"
	default:
		return "Detenido"
	}
}

func noticeView(n models.Notification) string {
	color := success
	switch n.Kind {
	case models.NotificationError:
		color = failure
	case models.NotificationWarning:
		color = warning
	}
	return noticeStyle.Foreground(color).Render(n.Message)
}
