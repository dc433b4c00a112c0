package storage

import (
	"context"
	"fmt"

	"focustimer/internal/providers"
	"focustimer/internal/structures"
)

// NewStore opens the backend selected by store.driver. The cleanup func
// closes it and logs a failed final flush.
func NewStore(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (SessionStore, func(), error) {
	ctx := context.Background()

	var (
		store SessionStore
		err   error
	)
	switch conf.Store.Driver {
	case "memory":
		store = NewMemoryStore()
	case "file":
		store, err = NewFileStore(conf, logger, metrics)
	case "sqlite":
		store, err = NewSQLiteStore(ctx, conf.Store.DSN)
	case "postgres":
		store, err = NewPostgresStore(ctx, conf.Store.DSN)
	default:
		err = fmt.Errorf("unknown store driver %q", conf.Store.Driver)
	}
	if err != nil {
		logger.Errorf(providers.TypeStore, "Failed to open %s store: %s", conf.Store.Driver, err)
		return nil, nil, err
	}
	logger.Infof(providers.TypeStore, "Session store ready (driver=%s)", conf.Store.Driver)

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Errorf(providers.TypeStore, "Failed to close store: %s", err)
		}
	}
	return store, cleanup, nil
}
