// Package communityevent implements scheduled community gatherings with
// per-username RSVPs. Attendance badges are granted separately through the
// award surface once an event has happened.
package communityevent

import (
	"context"
	"fmt"
	"time"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/metrics"
	"github.com/funckode/funckode/internal/repository"
)

// CreateInput carries a new event definition
type CreateInput struct {
	Name        string
	Description string
	Location    string
	StartsAt    time.Time
	CreatedBy   string
}

// Service defines the interface for community event operations
type Service interface {
	Create(ctx context.Context, input CreateInput) (*domain.CommunityEvent, error)
	Get(ctx context.Context, id int64) (*domain.CommunityEvent, error)
	ListUpcoming(ctx context.Context) ([]domain.CommunityEvent, error)
	ListAll(ctx context.Context) ([]domain.CommunityEvent, error)

	// RSVP records attendance intent; a repeat RSVP returns domain.ErrDuplicateRSVP
	RSVP(ctx context.Context, eventID int64, username string) (*domain.RSVP, error)
	CancelRSVP(ctx context.Context, eventID int64, username string) error
	Attendees(ctx context.Context, eventID int64) ([]domain.RSVP, error)
}

// service implements the Service interface
type service struct {
	repo      repository.CommunityEvent
	publisher event.Bus

	now func() time.Time
}

// NewService creates a new community event service
func NewService(repo repository.CommunityEvent, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create validates and stores a new event
func (s *service) Create(ctx context.Context, input CreateInput) (*domain.CommunityEvent, error) {
	if err := s.validateCreate(input); err != nil {
		return nil, err
	}

	communityEvent := &domain.CommunityEvent{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt.UTC(),
		CreatedBy:   input.CreatedBy,
	}

	if err := s.repo.CreateEvent(ctx, communityEvent); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgEventCreated, "eventId", communityEvent.ID, "name", communityEvent.Name)
	return communityEvent, nil
}

// Get returns one event with its RSVP count
func (s *service) Get(ctx context.Context, id int64) (*domain.CommunityEvent, error) {
	return s.repo.GetEvent(ctx, id)
}

// ListUpcoming returns events that have not started yet, soonest first
func (s *service) ListUpcoming(ctx context.Context) ([]domain.CommunityEvent, error) {
	return s.repo.GetUpcomingEvents(ctx, s.now().UTC())
}

// ListAll returns every event
func (s *service) ListAll(ctx context.Context) ([]domain.CommunityEvent, error) {
	return s.repo.GetAllEvents(ctx)
}

// RSVP records attendance intent and publishes the RSVP event
func (s *service) RSVP(ctx context.Context, eventID int64, username string) (*domain.RSVP, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}

	// Resolve the event first so a missing ID fails cleanly
	communityEvent, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	rsvp := &domain.RSVP{EventID: eventID, Username: username}
	if err := s.repo.CreateRSVP(ctx, rsvp); err != nil {
		return nil, err
	}

	metrics.RSVPsCreated.Inc()
	logger.FromContext(ctx).Info(LogMsgRSVPCreated, "eventId", eventID, "username", username)

	if s.publisher != nil {
		e := event.NewRSVPCreatedEvent(eventID, communityEvent.Name, username)
		if pubErr := s.publisher.Publish(ctx, e); pubErr != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "eventType", e.Type, "error", pubErr)
		}
	}

	return rsvp, nil
}

// CancelRSVP withdraws a previously recorded RSVP
func (s *service) CancelRSVP(ctx context.Context, eventID int64, username string) error {
	if username == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}

	if err := s.repo.DeleteRSVP(ctx, eventID, username); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgRSVPCancelled, "eventId", eventID, "username", username)
	return nil
}

// Attendees returns the RSVPs for one event in signup order
func (s *service) Attendees(ctx context.Context, eventID int64) ([]domain.RSVP, error) {
	return s.repo.GetRSVPsForEvent(ctx, eventID)
}

func (s *service) validateCreate(input CreateInput) error {
	switch {
	case input.Name == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	case len(input.Name) > MaxNameLength:
		return fmt.Errorf("%w: "+ErrMsgNameTooLong, domain.ErrInvalidInput, MaxNameLength)
	case input.StartsAt.IsZero():
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgStartRequired)
	case input.StartsAt.Before(s.now()):
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgStartInPast)
	case input.CreatedBy == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCreatedByRequired)
	}
	return nil
}
