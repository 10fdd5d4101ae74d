package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/gravitrone/classdesk/internal/config"
	"github.com/gravitrone/classdesk/internal/logging"
)

// InitLogging installs the JSON logger subcommands write to w. The level
// comes from the saved config when there is one, else LOG_LEVEL.
func InitLogging(w io.Writer) *slog.Logger {
	level := os.Getenv(config.EnvLogLevel)
	if cfg, err := config.Load(); err == nil && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	return logging.Init(w, level)
}
