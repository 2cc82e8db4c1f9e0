package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that drains on shutdown, the HTTP server in practice
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer releases a resource that cannot fail to close, like a pgx pool
type Closer interface {
	Close()
}

// Halter is a background runner that stops without a deadline
type Halter interface {
	Stop()
}

// ShutdownComponents holds what GracefulShutdown tears down
type ShutdownComponents struct {
	Server    Stopper
	Scheduler Halter
	DBPool    Closer
}

// GracefulShutdown stops the server first so no new request reaches the
// database, then scheduled jobs, then closes the pool. Errors are logged and
// shutdown continues.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
