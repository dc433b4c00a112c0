package providers

import (
	"errors"
	"fmt"
	"time"

	"focustimer/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.String())
	}

	switch cv.conf.Store.Driver {
	case "sqlite", "postgres":
		if cv.conf.Store.DSN == "" {
			return fmt.Errorf("invalid config: store.dsn is required for driver %s", cv.conf.Store.Driver)
		}
	case "file":
		if cv.conf.Store.SnapshotPath == "" {
			return errors.New("invalid config: store.snapshotPath is required for driver file")
		}
	}

	if tz := cv.conf.Display.Timezone; tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("invalid config: display.timezone: %w", err)
		}
	}
	return nil
}

func normalizeSeconds(d time.Duration) time.Duration {
	if d > 0 && d < time.Second {
		return d * time.Second
	}
	return d
}
