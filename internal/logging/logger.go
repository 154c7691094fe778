// Package logging builds the slog loggers used across graftt.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level names accepted by ParseLevel.
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// ParseLevel converts a level name, in any case, to a slog level. An empty
// name means INFO.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case DEBUG:
		return slog.LevelDebug, nil
	case INFO, "":
		return slog.LevelInfo, nil
	case WARN, "WARNING":
		return slog.LevelWarn, nil
	case ERROR:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a text logger writing to dest, or stderr when dest is nil.
// Unknown levels fall back to INFO.
func New(level string, dest io.Writer) *slog.Logger {
	if dest == nil {
		dest = os.Stderr
	}

	logLevel, _ := ParseLevel(level)

	handler := slog.NewTextHandler(dest, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}

			return a
		},
	})

	return slog.New(handler)
}
