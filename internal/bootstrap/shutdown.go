package bootstrap

import (
	"context"
	"log/slog"

	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/scheduler"
	"github.com/funckode/funckode/internal/server"
	"github.com/funckode/funckode/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	MonthlyWorker      *worker.MonthlySelectionWorker
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop enqueueing new background jobs)
// 3. Worker pool (finish in-flight jobs)
// 4. Monthly selection worker (cancel pending timer, wait for in-flight run)
// 5. Event publisher (flush pending events to ensure consistency)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Stop the scheduler before the pool so nothing enqueues into a
	// stopping pool
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	// Shutdown the monthly worker to cancel its pending timer
	if components.MonthlyWorker != nil {
		if err := components.MonthlyWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	// Close the publisher last to flush pending events
	slog.Info(LogMsgShuttingDownEventPublisher)
	if components.ResilientPublisher != nil {
		if err := components.ResilientPublisher.Close(); err != nil {
			slog.Error(LogMsgPublisherCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
