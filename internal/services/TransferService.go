package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/providers"
	"focustimer/internal/structures"
	"focustimer/internal/timestats"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

var ErrMalformedBackup = errors.New("malformed backup")

var csvHeader = []string{"Fecha", "Inicio", "Fin", "Duración (min)"}

const (
	demoDays        = 14
	demoMinSessions = 2
	demoMaxSessions = 4
	demoFirstHour   = 9
	demoHourSpan    = 8
	demoMinDuration = 30 * 60
	demoDurationMax = 60 * 60
)

type TransferServiceInterface interface {
	ExportCSV(ctx context.Context, w io.Writer) error
	ExportJSON(ctx context.Context, w io.Writer, now time.Time) error
	ImportJSON(ctx context.Context, r io.Reader) (models.ImportResult, error)
	LoadDemo(ctx context.Context, now time.Time, rng *rand.Rand) (int, error)
}

type TransferService struct {
	sessions SessionServiceInterface
	logger   providers.Logger
	locale   timestats.Locale
	location *time.Location
}

func NewTransferService(conf *structures.Config, sessions SessionServiceInterface, logger providers.Logger) TransferServiceInterface {
	return &TransferService{
		sessions: sessions,
		logger:   logger,
		locale:   timestats.LookupLocale(conf.Display.Locale),
		location: conf.Location(),
	}
}

func CSVFileName(now time.Time) string {
	return "focustimer-sessions-" + now.Format(time.DateOnly) + ".csv"
}

func JSONFileName(now time.Time) string {
	return "focustimer-backup-" + now.Format(time.DateOnly) + ".json"
}

// ExportCSV writes one row per session, newest first, with wall-clock fields
// in the display location and the duration in whole minutes.
func (t *TransferService) ExportCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range t.sessions.List(ctx) {
		start := s.StartTime.In(t.location)
		end := s.EndTime.In(t.location)
		row := []string{
			t.locale.Date(start),
			t.locale.Clock(start),
			t.locale.Clock(end),
			strconv.Itoa(int(math.Round(float64(s.Duration) / 60))),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (t *TransferService) ExportJSON(ctx context.Context, w io.Writer, now time.Time) error {
	settings := t.sessions.Settings(ctx)
	backup := models.Backup{
		Sessions:   t.sessions.List(ctx),
		Settings:   &settings,
		ExportDate: now.UTC(),
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ImportJSON inserts every session of a backup one by one. A parse failure
// or a null document writes nothing. Duplicate or invalid sessions are skipped and counted; a
// store failure aborts with what was imported so far.
func (t *TransferService) ImportJSON(ctx context.Context, r io.Reader) (models.ImportResult, error) {
	var result models.ImportResult

	var backup *models.Backup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return result, fmt.Errorf("%w: %s", ErrMalformedBackup, err)
	}
	if backup == nil {
		return result, fmt.Errorf("%w: null document", ErrMalformedBackup)
	}

	for i := range backup.Sessions {
		s := backup.Sessions[i]
		if s.Source == "" {
			s.Source = models.SourceImported
		}
		err := t.sessions.Insert(ctx, &s)
		switch {
		case err == nil:
			result.Imported++
		case errors.Is(err, models.ErrDuplicateSession), errors.Is(err, models.ErrInvalidSession):
			t.logger.Warnf(providers.TypeStore, "Skipping imported session %q: %s", s.ID, err)
			result.Skipped++
		default:
			return result, err
		}
	}

	if backup.Settings != nil {
		if err := ValidateSettings(*backup.Settings); err != nil {
			t.logger.Warnf(providers.TypeStore, "Ignoring imported settings: %s", err)
			return result, nil
		}
		if err := t.sessions.SaveSettings(ctx, *backup.Settings); err != nil {
			return result, err
		}
		result.SettingsSaved = true
	}

	t.logger.Infof(providers.TypeStore, "Imported %d sessions, skipped %d", result.Imported, result.Skipped)
	return result, nil
}

// LoadDemo adds two weeks of sample sessions ending the day before now.
func (t *TransferService) LoadDemo(ctx context.Context, now time.Time, rng *rand.Rand) (int, error) {
	now = now.In(t.location)
	first := now.AddDate(0, 0, -demoDays)

	added := 0
	for day := 0; day < demoDays; day++ {
		d := first.AddDate(0, 0, day)
		count := demoMinSessions + rng.IntN(demoMaxSessions-demoMinSessions+1)
		for i := 0; i < count; i++ {
			start := time.Date(d.Year(), d.Month(), d.Day(), demoFirstHour+rng.IntN(demoHourSpan), rng.IntN(60), 0, 0, t.location)
			duration := demoMinDuration + rng.IntN(demoDurationMax)
			session := &models.Session{
				ID:        uuid.NewString(),
				StartTime: start,
				EndTime:   start.Add(time.Duration(duration) * time.Second),
				Duration:  duration,
				Source:    models.SourceLocal,
			}
			if err := t.sessions.Insert(ctx, session); err != nil {
				return added, err
			}
			added++
		}
	}
	return added, nil
}
