package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/ArcLab_Go/internal/config"
	"github.com/osse101/ArcLab_Go/internal/logger"
)

// SetupLogger installs the default logger. Output goes to stdout and, when
// cfg.LogDir is set, also to a fresh session file in that directory. The
// returned file is nil without a LogDir; otherwise the caller closes it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	logCfg := logger.ServerConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment)

	var (
		out     = stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", logCfg.Format)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"catalog_source", cfg.CatalogSource)

	return logFile, nil
}

// cleanupLogs deletes the oldest session files so at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to delete old log file %s: %v\n", name, err)
		}
	}
}
