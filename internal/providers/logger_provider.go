package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"focustimer/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeTimer
	TypeStore
)

var typeFiles = map[TypeEnum]string{
	TypeApp:   "app.log",
	TypeGet:   "get.log",
	TypePost:  "post.log",
	TypeTimer: "timer.log",
	TypeStore: "store.log",
}

func (t TypeEnum) String() string {
	switch t {
	case TypeGet:
		return "get"
	case TypePost:
		return "post"
	case TypeTimer:
		return "timer"
	case TypeStore:
		return "store"
	default:
		return "app"
	}
}

// GetLogTypeByRequestType maps write methods to the post log and everything
// else to the get log.
func GetLogTypeByRequestType(method string) TypeEnum {
	switch method {
	case "POST", "PUT", "DELETE", "PATCH":
		return TypePost
	default:
		return TypeGet
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	mu      sync.Mutex
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(typeFiles))}
	for t, name := range typeFiles {
		path := filepath.Join(conf.Logger.Dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
		if err != nil {
			lp.Close()
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		lp.files = append(lp.files, f)

		var w io.Writer = f
		if conf.Debug {
			w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		}
		lp.loggers[t] = zerolog.New(w).Level(level).With().Timestamp().Str("type", t.String()).Logger()
	}
	return lp, nil
}

func (lp *LogProvider) get(t TypeEnum) *zerolog.Logger {
	l, ok := lp.loggers[t]
	if !ok {
		l = lp.loggers[TypeApp]
	}
	return &l
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	for _, f := range lp.files {
		_ = f.Close()
	}
	lp.files = nil
}

// NewConsoleLogger writes every type to w. The CLI reports errors through it
// before a config, and so a log directory, is known.
func NewConsoleLogger(w io.Writer, level string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	base := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).Level(lvl).With().Timestamp().Logger()
	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(typeFiles))}
	for t := range typeFiles {
		lp.loggers[t] = base.With().Str("type", t.String()).Logger()
	}
	return lp
}
