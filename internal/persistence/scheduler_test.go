package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"focustimer/internal/structures"
	"focustimer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(filePath string) *structures.Config {
	return &structures.Config{
		Store: structures.StoreConfig{
			Driver:       "file",
			SnapshotPath: filePath,
			SaveInterval: 1 * time.Second,
		},
		User: structures.UserConfig{ID: "u1"},
	}
}

func newTestScheduler(path string, comp *testutil.MockCompressor, src *testutil.MockSnapshotSource) (*Scheduler, *testutil.MockMetrics) {
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	fm := NewFileManager(comp, src, logger)
	return NewScheduler(testConfig(path), logger, fm, metrics).(*Scheduler), metrics
}

func TestScheduler_PersistThenRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focustimer.dat")

	s, metrics := newTestScheduler(path, &testutil.MockCompressor{}, &testutil.MockSnapshotSource{Snapshot: sampleSnapshot()})
	require.NoError(t, s.Persist())
	assert.Equal(t, 1, metrics.PersistenceObserved)

	dst := &testutil.MockSnapshotSource{}
	s2, _ := newTestScheduler(path, &testutil.MockCompressor{}, dst)
	require.NoError(t, s2.Restore())
	assert.Contains(t, dst.PutCalls, "u1")
}

func TestScheduler_Restore_FileNotExist(t *testing.T) {
	s, _ := newTestScheduler("/nonexistent/file.dat", &testutil.MockCompressor{}, &testutil.MockSnapshotSource{})
	assert.NoError(t, s.Restore())
}

func TestScheduler_Restore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.dat")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	s, _ := newTestScheduler(path, &testutil.MockCompressor{}, &testutil.MockSnapshotSource{})
	assert.Error(t, s.Restore())
}

func TestScheduler_Persist_WriteError(t *testing.T) {
	comp := &testutil.MockCompressor{
		CompressFn: func(b []byte) ([]byte, error) {
			return nil, errors.New("compress error")
		},
	}
	s, metrics := newTestScheduler(filepath.Join(t.TempDir(), "x.dat"), comp, &testutil.MockSnapshotSource{})

	assert.Error(t, s.Persist())
	assert.Equal(t, 1, metrics.PersistenceObserved)
}

func TestScheduler_StopNilCron(t *testing.T) {
	s, _ := newTestScheduler("/tmp/unused.dat", &testutil.MockCompressor{}, &testutil.MockSnapshotSource{})
	// Should not panic with nil cron
	s.Stop()
}

func TestScheduler_InitWritesPeriodically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periodic.dat")

	s, _ := newTestScheduler(path, &testutil.MockCompressor{}, &testutil.MockSnapshotSource{Snapshot: sampleSnapshot()})
	s.Init()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond)
}
