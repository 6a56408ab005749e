package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/funckode/funckode/internal/announce"
	"github.com/funckode/funckode/internal/artifact"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus  event.Bus
	Generator *artifact.Generator
	Announcer *announce.Announcer
}

// RegisterEventHandlers sets up all event subscribers.
// This includes:
// - Artifact generator (contributors table and SVG badge images)
// - Webhook announcer (badge, level, streak, and top contributor messages)
// - Metrics collector (for event-based metrics)
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) error {
	// Register artifact generator
	deps.Generator.Register(deps.EventBus)
	slog.Info(LogMsgArtifactGeneratorInit)

	// Register webhook announcer when configured
	if deps.Announcer.Enabled() {
		deps.Announcer.Register(ctx, deps.EventBus)
		slog.Info(LogMsgAnnouncerInit)
	} else {
		slog.Info(LogMsgAnnouncerDisabled)
	}

	// Register Metrics Collector
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
