package storage

import (
	"context"
	"sort"
	"sync"

	"focustimer/internal/models"
)

type userBucket struct {
	sessions map[string]models.Session
	settings *models.Settings
}

// MemoryStore keeps everything in process memory. It doubles as the snapshot
// source for the file backend.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*userBucket
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*userBucket)}
}

func (m *MemoryStore) bucket(userID string) *userBucket {
	b, ok := m.users[userID]
	if !ok {
		b = &userBucket{sessions: make(map[string]models.Session)}
		m.users[userID] = b
	}
	return b
}

func (m *MemoryStore) List(_ context.Context, userID string) ([]models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.users[userID]
	if !ok {
		return []models.Session{}, nil
	}
	out := make([]models.Session, 0, len(b.sessions))
	for _, s := range b.sessions {
		out = append(out, s)
	}
	sort.Sort(models.ByStartDesc(out))
	return out, nil
}

func (m *MemoryStore) Insert(_ context.Context, userID string, session *models.Session) error {
	if err := prepareInsert(session); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.bucket(userID)
	if _, exists := b.sessions[session.ID]; exists {
		return models.ErrDuplicateSession
	}
	b.sessions[session.ID] = *session
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.users[userID]
	if !ok {
		return models.ErrSessionNotFound
	}
	if _, exists := b.sessions[sessionID]; !exists {
		return models.ErrSessionNotFound
	}
	delete(b.sessions, sessionID)
	return nil
}

func (m *MemoryStore) GetSettings(_ context.Context, userID string) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.bucket(userID)
	if b.settings == nil {
		def := models.DefaultSettings()
		b.settings = &def
	}
	return *b.settings, nil
}

func (m *MemoryStore) SaveSettings(_ context.Context, userID string, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.bucket(userID)
	b.settings = &settings
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	def := models.DefaultSettings()
	m.users[userID] = &userBucket{
		sessions: make(map[string]models.Session),
		settings: &def,
	}
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// GetSnapshot copies the whole store.
func (m *MemoryStore) GetSnapshot() *models.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := &models.Snapshot{
		Version: models.SnapshotVersion,
		Users:   make(map[string]*models.UserData, len(m.users)),
	}
	for userID, b := range m.users {
		data := &models.UserData{Sessions: make([]models.Session, 0, len(b.sessions))}
		for _, s := range b.sessions {
			data.Sessions = append(data.Sessions, s)
		}
		sort.Sort(models.ByStartDesc(data.Sessions))
		if b.settings != nil {
			settings := *b.settings
			data.Settings = &settings
		}
		snap.Users[userID] = data
	}
	return snap
}

// PutUserData replaces one user's data, used when restoring a snapshot.
func (m *MemoryStore) PutUserData(userID string, data *models.UserData) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := &userBucket{sessions: make(map[string]models.Session, len(data.Sessions))}
	for _, s := range data.Sessions {
		b.sessions[s.ID] = s
	}
	if data.Settings != nil {
		settings := *data.Settings
		b.settings = &settings
	}
	m.users[userID] = b
}

// Count returns how many sessions are held across all users.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, b := range m.users {
		n += len(b.sessions)
	}
	return n
}
