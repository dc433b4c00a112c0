package persistence

import (
	"sync"
	"time"

	"focustimer/internal/persistence/interfaces"
	"focustimer/internal/providers"
	"focustimer/internal/structures"

	"github.com/roylee0704/gron"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Store.SaveInterval), func() {
		if err := s.save(); err != nil {
			s.logger.Errorf(providers.TypeStore, "Error while persisting data: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeStore, "Persisted data to file %s", s.config.Store.SnapshotPath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.Store.SnapshotPath, s.config.User.ID)
}

func (s *Scheduler) Persist() error {
	s.logger.Infof(providers.TypeStore, "Persisting sessions to file...")
	if err := s.save(); err != nil {
		s.logger.Errorf(providers.TypeStore, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func (s *Scheduler) save() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Store.SnapshotPath)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return err
}

func NewScheduler(config *structures.Config, logger providers.Logger, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
