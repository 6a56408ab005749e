package handler

import (
	"net/http"
	"time"

	"github.com/funckode/funckode/internal/communityevent"
	"github.com/funckode/funckode/internal/logger"
)

// CreateEventRequest represents a new community event
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=4000"`
	Location    string    `json:"location" validate:"max=200"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	CreatedBy   string    `json:"created_by" validate:"required,max=100"`
}

// RSVPRequest identifies one contributor's RSVP to an event
type RSVPRequest struct {
	EventID  int64  `json:"event_id" validate:"required,gt=0"`
	Username string `json:"username" validate:"required,max=100"`
}

// HandleGetEvents lists community events
// @Summary List events
// @Description Lists upcoming community events with RSVP counts; all=true includes past events
// @Tags events
// @Produce json
// @Param all query bool false "Include past events"
// @Success 200 {object} DataResponse
// @Router /events [get]
func HandleGetEvents(eventService communityevent.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			events interface{}
			err    error
		)
		if r.URL.Query().Get("all") == "true" {
			events, err = eventService.ListAll(r.Context())
		} else {
			events, err = eventService.ListUpcoming(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, "List events", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: events})
	}
}

// HandleGetAttendees lists the RSVPs for one event
// @Summary List event attendees
// @Description Lists RSVPs for an event in signup order
// @Tags events
// @Produce json
// @Param event_id query int true "Event ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/attendees [get]
func HandleGetAttendees(eventService communityevent.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := GetIDQueryParam(r, w, "event_id")
		if !ok {
			return
		}

		attendees, err := eventService.Attendees(r.Context(), eventID)
		if err != nil {
			respondServiceError(w, r, "List attendees", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: attendees})
	}
}

// HandleCreateEvent creates a community event
// @Summary Create an event
// @Description Schedules a new community event contributors can RSVP to
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event definition"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /events [post]
func HandleCreateEvent(eventService communityevent.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEventRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create event"); err != nil {
			return
		}

		created, err := eventService.Create(r.Context(), communityevent.CreateInput{
			Name:        req.Name,
			Description: req.Description,
			Location:    req.Location,
			StartsAt:    req.StartsAt,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			respondServiceError(w, r, "Create event", err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: "Event created", Data: created})
	}
}

// HandleCreateRSVP records an RSVP to an event
// @Summary RSVP to an event
// @Description Records a contributor's intent to attend an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body RSVPRequest true "RSVP"
// @Success 201 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /events/rsvp [post]
func HandleCreateRSVP(eventService communityevent.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RSVPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create RSVP"); err != nil {
			return
		}

		rsvp, err := eventService.RSVP(r.Context(), req.EventID, req.Username)
		if err != nil {
			respondServiceError(w, r, "Create RSVP", err)
			return
		}

		log.Info(LogMsgRSVPHandled, "eventId", req.EventID, "username", req.Username)
		respondJSON(w, http.StatusCreated, DataResponse{Message: "RSVP recorded", Data: rsvp})
	}
}

// HandleDeleteRSVP withdraws an RSVP
// @Summary Cancel an RSVP
// @Description Withdraws a contributor's RSVP from an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body RSVPRequest true "RSVP"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/rsvp [delete]
func HandleDeleteRSVP(eventService communityevent.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RSVPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cancel RSVP"); err != nil {
			return
		}

		if err := eventService.CancelRSVP(r.Context(), req.EventID, req.Username); err != nil {
			respondServiceError(w, r, "Cancel RSVP", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "RSVP cancelled"})
	}
}
