package controllers

import (
	"fmt"
	"net/http"
	"time"

	"focustimer/internal/services"
	"focustimer/internal/timer"
)

type HealthController struct {
	sessions  services.SessionServiceInterface
	timer     *timer.Timer
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	TimerState    string  `json:"timer_state"`
	Generation    uint64  `json:"generation"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		TimerState:    hc.timer.State().String(),
		Generation:    hc.sessions.Generation(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(sessions services.SessionServiceInterface, t *timer.Timer) *HealthController {
	return &HealthController{
		sessions:  sessions,
		timer:     t,
		startTime: time.Now(),
	}
}
