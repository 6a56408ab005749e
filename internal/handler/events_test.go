package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/funckode/funckode/internal/communityevent"
	"github.com/funckode/funckode/internal/domain"
)

// MockEventService mocks the communityevent.Service interface
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, input communityevent.CreateInput) (*domain.CommunityEvent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityEvent), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, id int64) (*domain.CommunityEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityEvent), args.Error(1)
}

func (m *MockEventService) ListUpcoming(ctx context.Context) ([]domain.CommunityEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommunityEvent), args.Error(1)
}

func (m *MockEventService) ListAll(ctx context.Context) ([]domain.CommunityEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommunityEvent), args.Error(1)
}

func (m *MockEventService) RSVP(ctx context.Context, eventID int64, username string) (*domain.RSVP, error) {
	args := m.Called(ctx, eventID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RSVP), args.Error(1)
}

func (m *MockEventService) CancelRSVP(ctx context.Context, eventID int64, username string) error {
	args := m.Called(ctx, eventID, username)
	return args.Error(0)
}

func (m *MockEventService) Attendees(ctx context.Context, eventID int64) ([]domain.RSVP, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RSVP), args.Error(1)
}

func TestHandleGetEvents(t *testing.T) {
	t.Run("Upcoming by default", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("ListUpcoming", mock.Anything).Return([]domain.CommunityEvent{
			{ID: 1, Name: "Go Meetup", RSVPCount: 3},
		}, nil)

		req := httptest.NewRequest("GET", "/events", nil)
		w := httptest.NewRecorder()

		HandleGetEvents(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Go Meetup"`)
		assert.Contains(t, w.Body.String(), `"rsvp_count":3`)
		mockSvc.AssertNotCalled(t, "ListAll")
	})

	t.Run("All events on request", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("ListAll", mock.Anything).Return([]domain.CommunityEvent{}, nil)

		req := httptest.NewRequest("GET", "/events?all=true", nil)
		w := httptest.NewRecorder()

		HandleGetEvents(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertNotCalled(t, "ListUpcoming")
	})
}

func TestHandleCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		startsAt := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)

		mockSvc := &MockEventService{}
		mockSvc.On("Create", mock.Anything, communityevent.CreateInput{
			Name:      "Hack Night",
			Location:  "online",
			StartsAt:  startsAt,
			CreatedBy: "alice",
		}).Return(&domain.CommunityEvent{ID: 5, Name: "Hack Night", StartsAt: startsAt}, nil)

		body := `{"name":"Hack Night","location":"online","starts_at":"2026-09-15T18:00:00Z","created_by":"alice"}`
		req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateEvent(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Hack Night"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing start time rejected", func(t *testing.T) {
		mockSvc := &MockEventService{}

		body := `{"name":"Hack Night","created_by":"alice"}`
		req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateEvent(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})

	t.Run("Past start maps to 400", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidInput)

		body := `{"name":"Hack Night","starts_at":"2020-01-01T00:00:00Z","created_by":"alice"}`
		req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateEvent(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleCreateRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("RSVP", mock.Anything, int64(5), "bob").Return(&domain.RSVP{EventID: 5, Username: "bob"}, nil)

		body := `{"event_id":5,"username":"bob"}`
		req := httptest.NewRequest("POST", "/events/rsvp", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateRSVP(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"bob"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Duplicate maps to 409", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("RSVP", mock.Anything, int64(5), "bob").Return(nil, domain.ErrDuplicateRSVP)

		body := `{"event_id":5,"username":"bob"}`
		req := httptest.NewRequest("POST", "/events/rsvp", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateRSVP(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already attending")
	})

	t.Run("Missing event maps to 404", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("RSVP", mock.Anything, int64(99), "bob").Return(nil, domain.ErrEventNotFound)

		body := `{"event_id":99,"username":"bob"}`
		req := httptest.NewRequest("POST", "/events/rsvp", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleCreateRSVP(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleDeleteRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("CancelRSVP", mock.Anything, int64(5), "bob").Return(nil)

		body := `{"event_id":5,"username":"bob"}`
		req := httptest.NewRequest("DELETE", "/events/rsvp", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleDeleteRSVP(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "RSVP cancelled")
		mockSvc.AssertExpectations(t)
	})

	t.Run("No RSVP maps to 404", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("CancelRSVP", mock.Anything, int64(5), "bob").Return(domain.ErrRSVPNotFound)

		body := `{"event_id":5,"username":"bob"}`
		req := httptest.NewRequest("DELETE", "/events/rsvp", strings.NewReader(body))
		w := httptest.NewRecorder()

		HandleDeleteRSVP(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetAttendees(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockEventService{}
		attendees := []domain.RSVP{
			{EventID: 5, Username: "alice"},
			{EventID: 5, Username: "bob"},
		}
		mockSvc.On("Attendees", mock.Anything, int64(5)).Return(attendees, nil)

		req := httptest.NewRequest("GET", "/events/attendees?event_id=5", nil)
		w := httptest.NewRecorder()

		HandleGetAttendees(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
		assert.Contains(t, w.Body.String(), "bob")
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing event ID", func(t *testing.T) {
		mockSvc := &MockEventService{}

		req := httptest.NewRequest("GET", "/events/attendees", nil)
		w := httptest.NewRecorder()

		HandleGetAttendees(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Attendees")
	})

	t.Run("Unknown event maps to 404", func(t *testing.T) {
		mockSvc := &MockEventService{}
		mockSvc.On("Attendees", mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

		req := httptest.NewRequest("GET", "/events/attendees?event_id=99", nil)
		w := httptest.NewRecorder()

		HandleGetAttendees(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
