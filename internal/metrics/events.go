package metrics

import (
	"context"

	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BadgeAwarded,
		event.LevelUp,
		event.StreakMilestone,
		event.TopContributorSelected,
		event.ProjectSubmitted,
		event.EventRSVPCreated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BadgeAwarded:
		payload, err := event.DecodePayload[event.BadgeAwardedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		BadgesAwarded.WithLabelValues(payload.BadgeType).Inc()

	case event.LevelUp:
		LevelUps.Inc()

	case event.StreakMilestone:
		StreakMilestones.Inc()

	case event.TopContributorSelected:
		TopContributorsSelected.Inc()

	case event.ProjectSubmitted:
		ProjectsSubmitted.Inc()

	case event.EventRSVPCreated:
		RSVPsCreated.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
