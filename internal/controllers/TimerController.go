package controllers

import (
	"net/http"

	"focustimer/internal/providers"
	"focustimer/internal/timer"
)

// TimerController drives the shared server-side stopwatch. Every transition
// answers with the resulting snapshot.
type TimerController struct {
	logger providers.Logger
	timer  *timer.Timer
}

func NewTimerController(logger providers.Logger, t *timer.Timer) *TimerController {
	return &TimerController{logger: logger, timer: t}
}

type stopResponse struct {
	Outcome string         `json:"outcome"`
	Timer   timer.Snapshot `json:"timer"`
}

func (tc *TimerController) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, tc.timer.Snapshot())
}

func (tc *TimerController) Start(w http.ResponseWriter, r *http.Request) {
	tc.timer.Start(r.Context())
	writeJSON(w, http.StatusOK, tc.timer.Snapshot())
}

func (tc *TimerController) Pause(w http.ResponseWriter, r *http.Request) {
	tc.timer.Pause(r.Context())
	writeJSON(w, http.StatusOK, tc.timer.Snapshot())
}

func (tc *TimerController) Reset(w http.ResponseWriter, _ *http.Request) {
	tc.timer.Reset()
	writeJSON(w, http.StatusOK, tc.timer.Snapshot())
}

func (tc *TimerController) Fullscreen(w http.ResponseWriter, _ *http.Request) {
	tc.timer.ToggleFullscreen()
	writeJSON(w, http.StatusOK, tc.timer.Snapshot())
}

// Stop saves the session. A failed save still leaves the timer idle and is
// reported as a 500 carrying the snapshot with its error notification.
func (tc *TimerController) Stop(w http.ResponseWriter, r *http.Request) {
	outcome, err := tc.timer.StopAndSave(r.Context())
	status := http.StatusOK
	if err != nil {
		tc.logger.Errorf(providers.TypeTimer, "Stop and save failed: %s", err)
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, stopResponse{Outcome: outcome.String(), Timer: tc.timer.Snapshot()})
}
