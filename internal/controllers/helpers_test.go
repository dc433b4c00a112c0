package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/providers"
	"focustimer/internal/services"
	"focustimer/internal/structures"
	"focustimer/internal/testutil"
	"focustimer/internal/timer"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache                     { return &mockCache{data: make(map[string][]byte)} }
func (m *mockCache) Get(key string) ([]byte, bool) { v, ok := m.data[key]; return v, ok }
func (m *mockCache) Set(key string, value []byte)  { m.data[key] = value }

type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// --- helpers ---

// refNow is Wednesday 21 October 2026, noon UTC.
var refNow = time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC)

func testConfig() *structures.Config {
	return &structures.Config{
		User:    structures.UserConfig{ID: "u1"},
		Display: structures.DisplayConfig{Locale: "es", Timezone: "UTC"},
	}
}

func newSessions(store *testutil.MockStore) services.SessionServiceInterface {
	return services.NewSessionService(testConfig(), store, &mockLogger{}, &testutil.MockMetrics{})
}

func newTestTimer(sessions services.SessionServiceInterface, clock *mockClock) *timer.Timer {
	return timer.New(timer.Options{
		Clock:    clock,
		Recorder: sessions,
		Settings: sessions,
		Notifier: &testutil.MockNotifier{},
		Metrics:  &testutil.MockMetrics{},
		Logger:   &mockLogger{},
	})
}

func session(id string, start time.Time, d time.Duration) models.Session {
	return models.Session{ID: id, StartTime: start, EndTime: start.Add(d), Duration: int(d.Seconds()), Source: models.SourceWeb}
}

func do(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}
