package services

import (
	"strings"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/timestats"
)

// FilterByDate keeps the sessions whose start date, rendered d/M/yyyy in
// loc, contains query. An empty query keeps everything.
func FilterByDate(sessions []models.Session, query string, locale timestats.Locale, loc *time.Location) []models.Session {
	query = strings.TrimSpace(query)
	if query == "" {
		return sessions
	}
	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if strings.Contains(locale.Date(s.StartTime.In(loc)), query) {
			out = append(out, s)
		}
	}
	return out
}
