package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/repository"
)

// uniqueViolation is the Postgres error code for duplicate keys
const uniqueViolation = "23505"

// EventRepository implements the community event repository for PostgreSQL
type EventRepository struct {
	db *pgxpool.Pool
}

var _ repository.CommunityEvent = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// CreateEvent inserts the event and fills in its generated ID
func (r *EventRepository) CreateEvent(ctx context.Context, event *domain.CommunityEvent) error {
	query := `
		INSERT INTO community_events (event_name, description, location, starts_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING event_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		event.Name, event.Description, event.Location, event.StartsAt, event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertEvent, err)
	}
	return nil
}

// GetEvent returns one event by ID with its RSVP count
func (r *EventRepository) GetEvent(ctx context.Context, id int64) (*domain.CommunityEvent, error) {
	query := eventSelect + ` WHERE e.event_id = $1 GROUP BY e.event_id`

	var e domain.CommunityEvent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Location, &e.StartsAt, &e.CreatedBy, &e.CreatedAt, &e.RSVPCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrEventNotFound, id)
		}
		return nil, fmt.Errorf(ErrMsgGetEvent, err)
	}
	return &e, nil
}

// GetUpcomingEvents returns events starting after the given time, soonest first
func (r *EventRepository) GetUpcomingEvents(ctx context.Context, after time.Time) ([]domain.CommunityEvent, error) {
	query := eventSelect + ` WHERE e.starts_at > $1 GROUP BY e.event_id ORDER BY e.starts_at ASC`
	return r.queryEvents(ctx, query, after)
}

// GetAllEvents returns every event, soonest first
func (r *EventRepository) GetAllEvents(ctx context.Context) ([]domain.CommunityEvent, error) {
	query := eventSelect + ` GROUP BY e.event_id ORDER BY e.starts_at ASC`
	return r.queryEvents(ctx, query)
}

// CreateRSVP records attendance intent. A second RSVP for the same
// (event, username) reports domain.ErrDuplicateRSVP; a missing event
// reports domain.ErrEventNotFound.
func (r *EventRepository) CreateRSVP(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO event_rsvps (event_id, username, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, rsvp.EventID, rsvp.Username).Scan(&rsvp.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == uniqueViolation:
				return fmt.Errorf("%w: event %d", domain.ErrDuplicateRSVP, rsvp.EventID)
			case pgErr.Code == "23503": // foreign key violation
				return fmt.Errorf("%w: %d", domain.ErrEventNotFound, rsvp.EventID)
			}
		}
		return fmt.Errorf(ErrMsgInsertRSVP, err)
	}
	return nil
}

// DeleteRSVP withdraws an RSVP, reporting domain.ErrRSVPNotFound when none exists
func (r *EventRepository) DeleteRSVP(ctx context.Context, eventID int64, username string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM event_rsvps WHERE event_id = $1 AND username = $2`, eventID, username)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteRSVP, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: event %d, username %s", domain.ErrRSVPNotFound, eventID, username)
	}
	return nil
}

// GetRSVPsForEvent returns the RSVPs for one event in signup order
func (r *EventRepository) GetRSVPsForEvent(ctx context.Context, eventID int64) ([]domain.RSVP, error) {
	rows, err := r.db.Query(ctx,
		`SELECT event_id, username, created_at FROM event_rsvps WHERE event_id = $1 ORDER BY created_at ASC`,
		eventID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRSVPs, err)
	}
	defer rows.Close()

	var rsvps []domain.RSVP
	for rows.Next() {
		var rsvp domain.RSVP
		if err := rows.Scan(&rsvp.EventID, &rsvp.Username, &rsvp.CreatedAt); err != nil {
			return nil, fmt.Errorf(ErrMsgListRSVPs, err)
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListRSVPs, err)
	}
	return rsvps, nil
}

// HasRSVP reports whether the username already RSVPed to the event
func (r *EventRepository) HasRSVP(ctx context.Context, eventID int64, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM event_rsvps WHERE event_id = $1 AND username = $2)`,
		eventID, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf(ErrMsgCheckRSVP, err)
	}
	return exists, nil
}

const eventSelect = `
	SELECT e.event_id, e.event_name, e.description, e.location, e.starts_at, e.created_by, e.created_at,
	       COUNT(r.username)::int AS rsvp_count
	FROM community_events e
	LEFT JOIN event_rsvps r ON r.event_id = e.event_id
`

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]domain.CommunityEvent, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListEvents, err)
	}
	defer rows.Close()

	var events []domain.CommunityEvent
	for rows.Next() {
		var e domain.CommunityEvent
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Location, &e.StartsAt, &e.CreatedBy, &e.CreatedAt, &e.RSVPCount,
		); err != nil {
			return nil, fmt.Errorf(ErrMsgScanEvent, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListEvents, err)
	}
	return events, nil
}
