package controllers

import (
	"net/http"

	"focustimer/internal/models"
	"focustimer/internal/services"
)

type SettingsController struct {
	sessions services.SessionServiceInterface
}

func NewSettingsController(sessions services.SessionServiceInterface) *SettingsController {
	return &SettingsController{sessions: sessions}
}

func (sc *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sc.sessions.Settings(r.Context()))
}

func (sc *SettingsController) Put(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := decodeBody(w, r, &settings); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if err := services.ValidateSettings(settings); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := sc.sessions.SaveSettings(r.Context(), settings); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
