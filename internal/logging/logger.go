package logging

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on tool settings.
// The level follows log_level (NETCFG_LOG_LEVEL) at logging time, so values
// loaded from dotenv files after startup still apply.
func NewLogger(v *viper.Viper) *slog.Logger {
	return New(os.Stderr, settingsLevel{v: v}, v.GetBool("debug"))
}

// settingsLevel resolves the level from viper on every check
type settingsLevel struct {
	v *viper.Viper
}

func (l settingsLevel) Level() slog.Level {
	if l.v.GetBool("debug") {
		return slog.LevelDebug
	}
	return ParseLevel(l.v.GetString("log_level"))
}

// New creates a text logger writing to w
func New(w io.Writer, level slog.Leveler, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a NETCFG_LOG_LEVEL value to a slog level, defaulting to info
func ParseLevel(val string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	if idx := strings.Index(file, "netcfg/"); idx != -1 {
		return file[idx+len("netcfg/"):]
	}
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/"); idx != -1 {
		if idx2 := strings.LastIndex(file, f[:idx]); idx2 != -1 {
			return file[idx2+len(f[:idx])+1:]
		}
	}
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}
