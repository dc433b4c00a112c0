package services

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/testutil"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransferService(store *testutil.MockStore) (TransferServiceInterface, *SessionService) {
	svc, _, _ := newSessionService(store)
	return NewTransferService(testConfig(), svc, &testutil.MockLogger{}), svc
}

func TestExportCSV_Format(t *testing.T) {
	store := &testutil.MockStore{Sessions: []models.Session{
		sess("a", time.Date(2026, 3, 5, 9, 4, 5, 0, time.UTC), 30*time.Minute),
		{ID: "b", StartTime: time.Date(2026, 3, 6, 14, 0, 0, 0, time.UTC), EndTime: time.Date(2026, 3, 6, 14, 1, 29, 0, time.UTC), Duration: 89},
	}}
	tr, _ := newTransferService(store)

	var buf bytes.Buffer
	require.NoError(t, tr.ExportCSV(context.Background(), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Fecha,Inicio,Fin,Duración (min)", lines[0])
	assert.Equal(t, "6/3/2026,14:00:00,14:01:29,1", lines[1])
	assert.Equal(t, "5/3/2026,09:04:05,09:34:05,30", lines[2])
}

func TestExportCSV_RoundsMinutes(t *testing.T) {
	start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	store := &testutil.MockStore{Sessions: []models.Session{
		{ID: "a", StartTime: start, EndTime: start.Add(90 * time.Second), Duration: 90},
	}}
	tr, _ := newTransferService(store)

	var buf bytes.Buffer
	require.NoError(t, tr.ExportCSV(context.Background(), &buf))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), ",2"))
}

func TestExportCSV_EmptyHasHeaderOnly(t *testing.T) {
	tr, _ := newTransferService(&testutil.MockStore{})

	var buf bytes.Buffer
	require.NoError(t, tr.ExportCSV(context.Background(), &buf))
	assert.Equal(t, "Fecha,Inicio,Fin,Duración (min)\n", buf.String())
}

func TestExportJSON_Envelope(t *testing.T) {
	goal := models.Settings{WeeklyGoal: 25, ExitFullscreenOnPause: false}
	store := &testutil.MockStore{
		Settings: &goal,
		Sessions: []models.Session{sess("a", refNow, time.Hour)},
	}
	tr, _ := newTransferService(store)

	var buf bytes.Buffer
	require.NoError(t, tr.ExportJSON(context.Background(), &buf, refNow))
	assert.Contains(t, buf.String(), "\n  \"sessions\"")

	var backup models.Backup
	require.NoError(t, json.Unmarshal(buf.Bytes(), &backup))
	require.Len(t, backup.Sessions, 1)
	assert.Equal(t, "a", backup.Sessions[0].ID)
	require.NotNil(t, backup.Settings)
	assert.Equal(t, 25.0, backup.Settings.WeeklyGoal)
	assert.True(t, backup.ExportDate.Equal(refNow))
}

func TestExportThenImport_RoundTrip(t *testing.T) {
	src := &testutil.MockStore{Sessions: []models.Session{
		sess("a", refNow, time.Hour),
		sess("b", refNow.Add(-24*time.Hour), 20*time.Minute),
	}}
	exporter, _ := newTransferService(src)
	var buf bytes.Buffer
	require.NoError(t, exporter.ExportJSON(context.Background(), &buf, refNow))

	dst := &testutil.MockStore{}
	importer, svc := newTransferService(dst)
	res, err := importer.ImportJSON(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.True(t, res.SettingsSaved)

	list := svc.List(context.Background())
	require.Len(t, list, 2)
	assert.Equal(t, 3600, list[0].Duration)
	assert.Equal(t, 1200, list[1].Duration)
	assert.True(t, list[1].StartTime.Equal(refNow.Add(-24*time.Hour)))
}

func TestImportJSON_DefaultsSourceAndSkipsDuplicates(t *testing.T) {
	store := &testutil.MockStore{Sessions: []models.Session{sess("dup", refNow, time.Minute)}}
	tr, _ := newTransferService(store)

	payload := `{"sessions":[
		{"id":"dup","startTime":"2026-10-20T09:00:00Z","endTime":"2026-10-20T09:10:00Z","duration":600},
		{"startTime":"2026-10-20T10:00:00Z","endTime":"2026-10-20T10:10:00Z","duration":600},
		{"id":"bad","startTime":"2026-10-20T11:00:00Z","endTime":"2026-10-20T10:00:00Z","duration":600}
	]}`
	res, err := tr.ImportJSON(context.Background(), strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	assert.False(t, res.SettingsSaved)

	require.Len(t, store.Sessions, 2)
	assert.Equal(t, models.SourceImported, store.Sessions[1].Source)
}

func TestImportJSON_ParseFailureWritesNothing(t *testing.T) {
	store := &testutil.MockStore{}
	tr, _ := newTransferService(store)

	_, err := tr.ImportJSON(context.Background(), strings.NewReader(`{"sessions": [`))
	assert.ErrorIs(t, err, ErrMalformedBackup)
	assert.Equal(t, 0, store.InsertCalls)
	assert.Equal(t, 0, store.SaveCalls)
}

func TestImportJSON_NullDocumentIsMalformed(t *testing.T) {
	store := &testutil.MockStore{}
	tr, _ := newTransferService(store)

	_, err := tr.ImportJSON(context.Background(), strings.NewReader(`null`))
	assert.ErrorIs(t, err, ErrMalformedBackup)
	assert.Equal(t, 0, store.InsertCalls)
	assert.Equal(t, 0, store.SaveCalls)
}

func TestImportJSON_EmptyObjectImportsNothing(t *testing.T) {
	store := &testutil.MockStore{}
	tr, _ := newTransferService(store)

	res, err := tr.ImportJSON(context.Background(), strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Imported)
	assert.False(t, res.SettingsSaved)
}

func TestImportJSON_InvalidSettingsIgnored(t *testing.T) {
	store := &testutil.MockStore{}
	tr, _ := newTransferService(store)

	res, err := tr.ImportJSON(context.Background(), strings.NewReader(`{"sessions":[],"settings":{"weeklyGoal":500}}`))
	require.NoError(t, err)
	assert.False(t, res.SettingsSaved)
	assert.Equal(t, 0, store.SaveCalls)
}

func TestImportJSON_StoreFailureAborts(t *testing.T) {
	boom := errors.New("db down")
	store := &testutil.MockStore{InsertErr: boom}
	tr, _ := newTransferService(store)

	payload := `{"sessions":[{"startTime":"2026-10-20T10:00:00Z","endTime":"2026-10-20T10:10:00Z","duration":600},{"startTime":"2026-10-20T11:00:00Z","endTime":"2026-10-20T11:10:00Z","duration":600}]}`
	res, err := tr.ImportJSON(context.Background(), strings.NewReader(payload))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 1, store.InsertCalls)
}

func TestLoadDemo_ShapeOfData(t *testing.T) {
	store := &testutil.MockStore{}
	tr, svc := newTransferService(store)

	n, err := tr.LoadDemo(context.Background(), refNow, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 14*2)
	assert.LessOrEqual(t, n, 14*4)
	assert.Equal(t, uint64(n), svc.Generation())

	perDay := map[string]int{}
	for _, s := range store.Sessions {
		assert.Equal(t, models.SourceLocal, s.Source)
		assert.GreaterOrEqual(t, s.Duration, 30*60)
		assert.Less(t, s.Duration, 90*60)
		assert.GreaterOrEqual(t, s.StartTime.Hour(), 9)
		assert.LessOrEqual(t, s.StartTime.Hour(), 16)
		assert.True(t, s.StartTime.Before(refNow))
		assert.False(t, s.StartTime.Before(refNow.AddDate(0, 0, -14).Truncate(24*time.Hour)))
		assert.Equal(t, s.Duration, int(s.EndTime.Sub(s.StartTime).Seconds()))
		perDay[s.StartTime.Format(time.DateOnly)]++
	}
	assert.Len(t, perDay, 14)
	for _, c := range perDay {
		assert.GreaterOrEqual(t, c, 2)
		assert.LessOrEqual(t, c, 4)
	}
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "focustimer-sessions-2026-10-21.csv", CSVFileName(refNow))
	assert.Equal(t, "focustimer-backup-2026-10-21.json", JSONFileName(refNow))
}
