package worker

import (
	"context"
	"sync"
	"time"

	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/toprank"
)

// MonthlySelectionWorker runs the top contributor selection shortly after each
// month rolls over (00:10 UTC on the 1st). The selection itself is idempotent,
// so a restart inside the window only re-runs a no-op.
type MonthlySelectionWorker struct {
	toprankService toprank.Service
	timer          *time.Timer
	shutdown       chan struct{}
	wg             sync.WaitGroup
	mu             sync.Mutex
}

// NewMonthlySelectionWorker creates a new MonthlySelectionWorker
func NewMonthlySelectionWorker(toprankService toprank.Service) *MonthlySelectionWorker {
	return &MonthlySelectionWorker{
		toprankService: toprankService,
		shutdown:       make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first run
func (w *MonthlySelectionWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next month boundary and schedules the run
func (w *MonthlySelectionWorker) scheduleNext() {
	duration := timeUntilNextSelection()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > 1*time.Hour {
		// Stage 1: Long-range (Standby). Wake up 45 minutes before the boundary.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		nextCheck := time.Now().UTC().Add(waitDuration)
		log.Info(LogMsgMonthlySelectionStandby, "next_check_at", nextCheck)
		return
	}

	// Stage 2: Final approach. Schedule the actual run.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early, reschedule for
		// the remaining time instead of running in the wrong month.
		rem := timeUntilNextSelection()
		if rem > 10*time.Second && rem < 27*24*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeSelection()
		w.scheduleNext() // Jumps back to Stage 1 for next month
	})
	w.mu.Unlock()

	nextRun := time.Now().UTC().Add(duration)
	log.Info(LogMsgMonthlySelectionApproach, "next_run_at", nextRun)
}

// executeSelection performs the selection in a tracked goroutine
func (w *MonthlySelectionWorker) executeSelection() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgMonthlySelectionStarting)

		selection, err := w.toprankService.RunMonthly(ctx)
		if err != nil {
			log.Error(LogMsgMonthlySelectionFailed, "error", err)
			return
		}

		log.Info(LogMsgMonthlySelectionCompleted,
			"month", selection.Month,
			"winner", selection.Username,
			"score", selection.Score,
			"awarded", selection.Awarded,
			"reason", selection.Reason)
	}()
}

// timeUntilNextSelection returns the duration until 00:10 UTC on the 1st of next month
func timeUntilNextSelection() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), 1, 0, 10, 0, 0, time.UTC).AddDate(0, 1, 0)
	return next.Sub(now)
}

// Shutdown gracefully shuts down the worker.
// Cancels the pending timer and waits for any in-flight selection to complete.
func (w *MonthlySelectionWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down monthly selection worker")

	// Signal shutdown to timer callback (safe to close once)
	select {
	case <-w.shutdown:
		// Already closed, nothing to do
	default:
		close(w.shutdown)
	}

	// Cancel pending timer
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending monthly selection")
	}
	w.mu.Unlock()

	// Wait for any in-flight selection to complete
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Monthly selection worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Monthly selection worker shutdown timeout, selection may still be running")
		return ctx.Err()
	}
}
