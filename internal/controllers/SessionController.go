package controllers

import (
	"net/http"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/providers"
	"focustimer/internal/services"
	"focustimer/internal/structures"
	"focustimer/internal/timestats"
)

type SessionController struct {
	logger   providers.Logger
	sessions services.SessionServiceInterface
	locale   timestats.Locale
	location *time.Location
}

func NewSessionController(conf *structures.Config, logger providers.Logger, sessions services.SessionServiceInterface) *SessionController {
	return &SessionController{
		logger:   logger,
		sessions: sessions,
		locale:   timestats.LookupLocale(conf.Display.Locale),
		location: conf.Location(),
	}
}

// List returns the sessions newest first, optionally narrowed by ?q= matched
// against the rendered start date.
func (sc *SessionController) List(w http.ResponseWriter, r *http.Request) {
	list := sc.sessions.List(r.Context())
	list = services.FilterByDate(list, r.URL.Query().Get("q"), sc.locale, sc.location)
	writeJSON(w, http.StatusOK, list)
}

func (sc *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	var session models.Session
	if err := decodeBody(w, r, &session); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if err := sc.sessions.Insert(r.Context(), &session); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (sc *SessionController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id parameter")
		return
	}
	if err := sc.sessions.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear removes every session and resets settings to their defaults.
func (sc *SessionController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := sc.sessions.Clear(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	sc.logger.Infof(providers.TypeStore, "All data cleared for user %s", sc.sessions.UserID())
	w.WriteHeader(http.StatusNoContent)
}
