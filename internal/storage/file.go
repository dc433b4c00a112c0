package storage

import (
	"fmt"

	"focustimer/internal/persistence"
	"focustimer/internal/persistence/interfaces"
	"focustimer/internal/providers"
	"focustimer/internal/structures"
)

// FileStore is a MemoryStore restored from and periodically written to a
// zstd-compressed snapshot file.
type FileStore struct {
	*MemoryStore
	fileManager *persistence.FileManager
	scheduler   interfaces.SchedulerInterface
}

func NewFileStore(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (*FileStore, error) {
	compressor, err := persistence.NewZstdCompressor()
	if err != nil {
		return nil, err
	}

	mem := NewMemoryStore()
	fm := persistence.NewFileManager(compressor, mem, logger)
	scheduler := persistence.NewScheduler(conf, logger, fm, metrics)

	if err := scheduler.Restore(); err != nil {
		fm.Close()
		return nil, fmt.Errorf("restore snapshot %s: %w", conf.Store.SnapshotPath, err)
	}
	logger.Infof(providers.TypeStore, "Restored %d sessions from %s", mem.Count(), conf.Store.SnapshotPath)

	scheduler.Init()

	return &FileStore{
		MemoryStore: mem,
		fileManager: fm,
		scheduler:   scheduler,
	}, nil
}

// Close stops the periodic writer and flushes a final snapshot.
func (f *FileStore) Close() error {
	f.scheduler.Stop()
	err := f.scheduler.Persist()
	f.fileManager.Close()
	return err
}
