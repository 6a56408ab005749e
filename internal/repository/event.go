package repository

import (
	"context"
	"time"

	"github.com/funckode/funckode/internal/domain"
)

// CommunityEvent defines the interface for community event persistence
type CommunityEvent interface {
	// CreateEvent inserts the event and fills in its generated ID
	CreateEvent(ctx context.Context, event *domain.CommunityEvent) error
	GetEvent(ctx context.Context, id int64) (*domain.CommunityEvent, error)
	GetUpcomingEvents(ctx context.Context, after time.Time) ([]domain.CommunityEvent, error)
	GetAllEvents(ctx context.Context) ([]domain.CommunityEvent, error)

	// RSVP operations
	CreateRSVP(ctx context.Context, rsvp *domain.RSVP) error
	DeleteRSVP(ctx context.Context, eventID int64, username string) error
	GetRSVPsForEvent(ctx context.Context, eventID int64) ([]domain.RSVP, error)
	HasRSVP(ctx context.Context, eventID int64, username string) (bool, error)
}
