package logging

import (
	"fmt"
	"io"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
)

const DefaultLevel = "warn"

// New builds the process logger. Output stays quiet at the default level so
// the CLI's own messages are the only thing a user sees.
func New(w io.Writer, level string) (hclog.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "rodomopo",
		Output: w,
		Level:  lvl,
	}), nil
}

// OrNull returns logger, or a discarding logger when it is nil.
func OrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}
