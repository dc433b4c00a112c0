package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionController(store *testutil.MockStore) *SessionController {
	return NewSessionController(testConfig(), &mockLogger{}, newSessions(store))
}

func TestSessionList_NewestFirst(t *testing.T) {
	store := &testutil.MockStore{Sessions: []models.Session{
		session("old", refNow.Add(-48*time.Hour), time.Hour),
		session("new", refNow.Add(-time.Hour), 30*time.Minute),
	}}
	sc := newSessionController(store)

	rr := do(sc.List, http.MethodGet, "/sessions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestSessionList_EmptyIsArray(t *testing.T) {
	sc := newSessionController(&testutil.MockStore{})

	rr := do(sc.List, http.MethodGet, "/sessions", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSessionList_StoreFailureDegrades(t *testing.T) {
	sc := newSessionController(&testutil.MockStore{ListErr: errors.New("db down")})

	rr := do(sc.List, http.MethodGet, "/sessions", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSessionList_DateQuery(t *testing.T) {
	store := &testutil.MockStore{Sessions: []models.Session{
		session("a", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), time.Hour),
		session("b", time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC), time.Hour),
	}}
	sc := newSessionController(store)

	rr := do(sc.List, http.MethodGet, "/sessions?q=20/10", "")
	var got []models.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestSessionCreate_Created(t *testing.T) {
	store := &testutil.MockStore{}
	sc := newSessionController(store)

	body := `{"startTime":"2026-10-21T09:00:00Z","endTime":"2026-10-21T10:00:00Z","duration":3600}`
	rr := do(sc.Create, http.MethodPost, "/sessions", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 3600, got.Duration)
	assert.Len(t, store.Sessions, 1)
}

func TestSessionCreate_BadJSON(t *testing.T) {
	store := &testutil.MockStore{}
	sc := newSessionController(store)

	rr := do(sc.Create, http.MethodPost, "/sessions", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, store.InsertCalls)
}

func TestSessionCreate_EndBeforeStart(t *testing.T) {
	sc := newSessionController(&testutil.MockStore{})

	body := `{"startTime":"2026-10-21T10:00:00Z","endTime":"2026-10-21T09:00:00Z","duration":60}`
	rr := do(sc.Create, http.MethodPost, "/sessions", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestSessionCreate_Duplicate(t *testing.T) {
	store := &testutil.MockStore{Sessions: []models.Session{session("s1", refNow, time.Hour)}}
	sc := newSessionController(store)

	body := `{"id":"s1","startTime":"2026-10-21T09:00:00Z","endTime":"2026-10-21T10:00:00Z","duration":3600}`
	rr := do(sc.Create, http.MethodPost, "/sessions", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestSessionCreate_StoreFailure(t *testing.T) {
	sc := newSessionController(&testutil.MockStore{InsertErr: errors.New("disk full")})

	body := `{"startTime":"2026-10-21T09:00:00Z","endTime":"2026-10-21T10:00:00Z","duration":3600}`
	rr := do(sc.Create, http.MethodPost, "/sessions", body)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "disk full")
}

func TestSessionDelete(t *testing.T) {
	store := &testutil.MockStore{Sessions: []models.Session{session("s1", refNow, time.Hour)}}
	sc := newSessionController(store)

	rr := do(sc.Delete, http.MethodDelete, "/sessions?id=s1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, store.Sessions)

	rr = do(sc.Delete, http.MethodDelete, "/sessions?id=s1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionDelete_MissingID(t *testing.T) {
	sc := newSessionController(&testutil.MockStore{})

	rr := do(sc.Delete, http.MethodDelete, "/sessions", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionClear(t *testing.T) {
	goal := models.Settings{WeeklyGoal: 20}
	store := &testutil.MockStore{
		Sessions: []models.Session{session("s1", refNow, time.Hour)},
		Settings: &goal,
	}
	sc := newSessionController(store)

	rr := do(sc.Clear, http.MethodDelete, "/data", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, store.Sessions)
	assert.Equal(t, models.DefaultSettings(), *store.Settings)
}

func TestSessionClear_StoreFailure(t *testing.T) {
	sc := newSessionController(&testutil.MockStore{ClearErr: errors.New("locked")})

	rr := do(sc.Clear, http.MethodDelete, "/data", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
