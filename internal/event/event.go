package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/funckode/funckode/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Common event types
const (
	BadgeAwarded    Type = "badge.awarded"
	LevelUp         Type = "level.up"
	StreakMilestone Type = "streak.milestone"

	// Monthly batch event types
	TopContributorSelected Type = "top_contributor.selected"

	// Platform event types
	ProjectSubmitted Type = "project.submitted"
	ProjectModerated Type = "project.moderated"
	EventRSVPCreated Type = "event.rsvp_created"
)

// Typed event payloads for type safety

// BadgeAwardedPayloadV1 is the typed payload for badge award events
type BadgeAwardedPayloadV1 struct {
	Username  string                 `json:"username"`
	BadgeType string                 `json:"badge_type"`
	XPAwarded int                    `json:"xp_awarded"`
	Evidence  map[string]interface{} `json:"evidence,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	Username  string `json:"username"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	XP        int    `json:"xp"`
	Timestamp int64  `json:"timestamp"`
}

// StreakMilestonePayloadV1 is the typed payload for streak milestone events
type StreakMilestonePayloadV1 struct {
	Username  string `json:"username"`
	Streak    int    `json:"streak"`
	Timestamp int64  `json:"timestamp"`
}

// TopContributorSelectedPayloadV1 is the typed payload for monthly selection events
type TopContributorSelectedPayloadV1 struct {
	Username  string `json:"username"`
	Score     int    `json:"score"`
	Month     string `json:"month"` // YYYY-MM of the scored window
	Timestamp int64  `json:"timestamp"`
}

// ProjectSubmittedPayloadV1 is the typed payload for project submission events
type ProjectSubmittedPayloadV1 struct {
	ProjectID int64  `json:"project_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Timestamp int64  `json:"timestamp"`
}

// ProjectModeratedPayloadV1 is the typed payload for project moderation events
type ProjectModeratedPayloadV1 struct {
	ProjectID int64  `json:"project_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// RSVPCreatedPayloadV1 is the typed payload for event RSVP events
type RSVPCreatedPayloadV1 struct {
	EventID   int64  `json:"event_id"`
	EventName string `json:"event_name"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewBadgeAwardedEvent creates a new badge awarded event with type-safe payload
func NewBadgeAwardedEvent(username string, badgeType domain.BadgeType, xpAwarded int, evidence map[string]interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeAwarded,
		Payload: BadgeAwardedPayloadV1{
			Username:  username,
			BadgeType: string(badgeType),
			XPAwarded: xpAwarded,
			Evidence:  evidence,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(username string, oldLevel, newLevel, xp int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			Username:  username,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			XP:        xp,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewStreakMilestoneEvent creates a new streak milestone event
func NewStreakMilestoneEvent(username string, streak int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StreakMilestone,
		Payload: StreakMilestonePayloadV1{
			Username:  username,
			Streak:    streak,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewTopContributorSelectedEvent creates a new monthly selection event
func NewTopContributorSelectedEvent(username string, score int, month string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TopContributorSelected,
		Payload: TopContributorSelectedPayloadV1{
			Username:  username,
			Score:     score,
			Month:     month,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewProjectSubmittedEvent creates a new project submission event
func NewProjectSubmittedEvent(projectID int64, title, author string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProjectSubmitted,
		Payload: ProjectSubmittedPayloadV1{
			ProjectID: projectID,
			Title:     title,
			Author:    author,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewProjectModeratedEvent creates a new project moderation event
func NewProjectModeratedEvent(projectID int64, title, author string, status domain.ProjectStatus) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProjectModerated,
		Payload: ProjectModeratedPayloadV1{
			ProjectID: projectID,
			Title:     title,
			Author:    author,
			Status:    string(status),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRSVPCreatedEvent creates a new RSVP event
func NewRSVPCreatedEvent(eventID int64, eventName, username string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EventRSVPCreated,
		Payload: RSVPCreatedPayloadV1{
			EventID:   eventID,
			EventName: eventName,
			Username:  username,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a failing handler does not stop the rest.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
