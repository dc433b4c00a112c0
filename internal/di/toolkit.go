package di

import (
	"focustimer/internal/providers"
	"focustimer/internal/services"
	"focustimer/internal/structures"
)

// Toolkit is the service graph without the HTTP layer, used by the CLI and
// the terminal UI.
type Toolkit struct {
	Conf     *structures.Config
	Logger   providers.Logger
	Metrics  providers.MetricsProviderInterface
	Notifier providers.NotifierProviderInterface
	Sessions services.SessionServiceInterface
	Stats    services.StatsServiceInterface
	Transfer services.TransferServiceInterface
}
