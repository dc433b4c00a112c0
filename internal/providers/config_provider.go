package providers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"focustimer/internal/structures"

	"github.com/spf13/viper"
)

const AppName = "FocusTimer"

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8095)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "data/focustimer.db")
	v.SetDefault("store.snapshotPath", "data/focustimer.dat")
	v.SetDefault("store.saveInterval", 30)
	v.SetDefault("user.id", "00000000-0000-0000-0000-000000000001")
	v.SetDefault("display.locale", "es")
	v.SetDefault("display.timezone", "")
	v.SetDefault("timer.source", "web")
	v.SetDefault("timer.minSessionSeconds", 5)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "logs")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 8)
	v.SetDefault("cache.ttl", 60)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("notifications.desktop", false)
}

// NewConfigProvider reads the YAML file at flags.ConfigPath. A missing file
// is not an error: defaults and environment overrides still apply.
func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("logger.level", "FOCUSTIMER_LOG_LEVEL")
	_ = v.BindEnv("store.driver", "FOCUSTIMER_STORE_DRIVER")
	_ = v.BindEnv("store.dsn", "FOCUSTIMER_STORE_DSN")
	_ = v.BindEnv("user.id", "FOCUSTIMER_USER_ID")
	_ = v.BindEnv("webServer.port", "FOCUSTIMER_PORT")
	_ = v.BindEnv("cache.enabled", "FOCUSTIMER_CACHE_ENABLED")
	_ = v.BindEnv("display.timezone", "FOCUSTIMER_TIMEZONE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	// Bare integers in YAML are seconds, as in the scheduler.
	conf.Store.SaveInterval = normalizeSeconds(conf.Store.SaveInterval)
	conf.Cache.TTL = normalizeSeconds(conf.Cache.TTL)

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(conf.Logger.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
