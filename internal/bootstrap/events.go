package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/funckode/funckode/internal/event"
)

// InitializeEventSystem creates and configures the event bus and resilient publisher.
// The in-memory bus delivers synchronously; the resilient publisher adds retry
// with exponential backoff and dead-letter logging on top of it.
// Returns the event bus, resilient publisher, and any error encountered.
func InitializeEventSystem() (event.Bus, *event.ResilientPublisher, error) {
	// Initialize Event Bus
	eventBus := event.NewMemoryBus()

	// Ensure dead-letter directory exists
	if err := os.MkdirAll(filepath.Dir(EventDefaultDeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	// Initialize Resilient Publisher with retry logic
	resilientPublisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: EventDefaultDeadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", EventDefaultDeadLetterPath)

	return eventBus, resilientPublisher, nil
}
