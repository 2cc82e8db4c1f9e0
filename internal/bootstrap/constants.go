package bootstrap

import "time"

// Log file handling
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644

	// LogFileTimestampFormat names session files (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many older session files survive startup
	LogFileRetentionCount = 9
)

// ShutdownTimeout bounds how long in-flight requests may drain
const ShutdownTimeout = 15 * time.Second

// CatalogSyncJobName labels the periodic catalog import in logs
const CatalogSyncJobName = "catalog-sync"

// Log messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting ArcLab"
	LogMsgConfigurationLoaded = "Configuration loaded"

	LogMsgCatalogSourceUnset = "No catalog source configured, startup import skipped"
	LogMsgSyncingCatalog     = "Syncing catalog"
	LogMsgCatalogSynced      = "Catalog synced"
	LogMsgCatalogUnchanged   = "Catalog document unchanged, sync skipped"

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduled jobs"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	ErrMsgFailedOpenCatalog   = "failed to open catalog source"
	ErrMsgFailedSyncCatalog   = "failed to sync catalog"
)
