package testutil

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"focustimer/internal/models"
	"focustimer/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu     sync.Mutex
	Logs   []LogEntry
	Closed bool
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() { m.Closed = true }

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                  sync.Mutex
	Requests            int
	CacheHits           int
	CacheMisses         int
	PersistenceObserved int
	SessionsTotal       int
	Recorded            map[string]int
	TimerState          string
	TimerElapsed        int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses(_ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceObserved++
}
func (m *MockMetrics) SetSessionsTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsTotal = count
}
func (m *MockMetrics) IncSessionsRecorded(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Recorded == nil {
		m.Recorded = make(map[string]int)
	}
	m.Recorded[outcome]++
}
func (m *MockMetrics) ObserveTimer(state string, elapsedSeconds int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TimerState = state
	m.TimerElapsed = elapsedSeconds
}

// MockNotifier implements providers.NotifierProviderInterface.
type MockNotifier struct {
	mu            sync.Mutex
	Notifications []models.Notification
}

func (m *MockNotifier) Notify(n models.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, n)
}

func (m *MockNotifier) Last() (models.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Notifications) == 0 {
		return models.Notification{}, false
	}
	return m.Notifications[len(m.Notifications)-1], true
}

// MockSnapshotSource implements interfaces.SnapshotSourceInterface.
type MockSnapshotSource struct {
	mu       sync.Mutex
	Snapshot *models.Snapshot
	PutCalls map[string]*models.UserData
}

func (m *MockSnapshotSource) GetSnapshot() *models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Snapshot == nil {
		return &models.Snapshot{Version: models.SnapshotVersion, Users: map[string]*models.UserData{}}
	}
	return m.Snapshot
}

func (m *MockSnapshotSource) PutUserData(userID string, data *models.UserData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutCalls == nil {
		m.PutCalls = make(map[string]*models.UserData)
	}
	m.PutCalls[userID] = data
}

// MockStore implements storage.SessionStore over plain slices. The *Err
// fields make the matching call fail.
type MockStore struct {
	mu          sync.Mutex
	Sessions    []models.Session
	Settings    *models.Settings
	ListErr     error
	InsertErr   error
	DeleteErr   error
	SettingsErr error
	SaveErr     error
	ClearErr    error
	InsertCalls int
	SaveCalls   int
	// InsertCtxErr is ctx.Err() as seen by the last Insert.
	InsertCtxErr error
	nextID      int
}

func (m *MockStore) List(_ context.Context, _ string) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := append(make([]models.Session, 0, len(m.Sessions)), m.Sessions...)
	sort.Sort(models.ByStartDesc(out))
	return out, nil
}

func (m *MockStore) Insert(ctx context.Context, _ string, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls++
	m.InsertCtxErr = ctx.Err()
	if m.InsertErr != nil {
		return m.InsertErr
	}
	if err := session.Validate(); err != nil {
		return err
	}
	for _, s := range m.Sessions {
		if session.ID != "" && s.ID == session.ID {
			return models.ErrDuplicateSession
		}
	}
	if session.ID == "" {
		m.nextID++
		session.ID = "mock-" + strconv.Itoa(m.nextID)
	}
	m.Sessions = append(m.Sessions, *session)
	return nil
}

// MockRecorder exposes a MockStore as a single-user session recorder. Like a
// real driver it refuses to write once ctx is done.
type MockRecorder struct {
	*MockStore
	UserID string
}

func (r *MockRecorder) Insert(ctx context.Context, session *models.Session) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return r.MockStore.Insert(ctx, r.UserID, session)
}

func (m *MockStore) Delete(_ context.Context, _ string, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, s := range m.Sessions {
		if s.ID == sessionID {
			m.Sessions = append(m.Sessions[:i], m.Sessions[i+1:]...)
			return nil
		}
	}
	return models.ErrSessionNotFound
}

func (m *MockStore) GetSettings(_ context.Context, _ string) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SettingsErr != nil {
		return models.Settings{}, m.SettingsErr
	}
	if m.Settings == nil {
		def := models.DefaultSettings()
		m.Settings = &def
	}
	return *m.Settings, nil
}

func (m *MockStore) SaveSettings(_ context.Context, _ string, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Settings = &settings
	return nil
}

func (m *MockStore) Clear(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Sessions = nil
	def := models.DefaultSettings()
	m.Settings = &def
	return nil
}

func (m *MockStore) Close() error { return nil }
