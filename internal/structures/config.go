package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1|max:65535"`
}

type StoreConfig struct {
	Driver       string        `yaml:"driver" validate:"required|in:memory,file,sqlite,postgres"`
	DSN          string        `yaml:"dsn"`
	SnapshotPath string        `yaml:"snapshotPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type UserConfig struct {
	ID string `yaml:"id" validate:"required"`
}

type DisplayConfig struct {
	Locale   string `yaml:"locale" validate:"required|in:es,en"`
	Timezone string `yaml:"timezone"`
}

type TimerConfig struct {
	Source            string `yaml:"source" validate:"required"`
	MinSessionSeconds int    `yaml:"minSessionSeconds" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type NotificationsConfig struct {
	Desktop bool `yaml:"desktop"`
}

type Config struct {
	AppName       string
	Debug         bool
	Path          string
	WebServer     Server              `yaml:"webServer"`
	Store         StoreConfig         `yaml:"store"`
	User          UserConfig          `yaml:"user"`
	Display       DisplayConfig       `yaml:"display"`
	Timer         TimerConfig         `yaml:"timer"`
	Logger        LoggerConfig        `yaml:"logger"`
	Cache         CacheConfig         `yaml:"cache"`
	Metrics       MetricsConfig       `yaml:"metrics"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// Location resolves Display.Timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	if c.Display.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
