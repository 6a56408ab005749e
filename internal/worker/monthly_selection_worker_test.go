package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/funckode/funckode/internal/toprank"
)

// MockToprankService for testing
type MockToprankService struct {
	mock.Mock
}

func (m *MockToprankService) RunMonthly(ctx context.Context) (*toprank.Selection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toprank.Selection), args.Error(1)
}

func (m *MockToprankService) SelectForMonth(ctx context.Context, year int, month time.Month) (*toprank.Selection, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toprank.Selection), args.Error(1)
}

func TestTimeUntilNextSelection(t *testing.T) {
	duration := timeUntilNextSelection()

	assert.Greater(t, duration, time.Duration(0))
	// Never further out than a full month plus the 10 minute offset
	assert.LessOrEqual(t, duration, 31*24*time.Hour+10*time.Minute)

	next := time.Now().UTC().Add(duration)
	assert.Equal(t, 1, next.Day())
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 10, next.Minute())
}

func TestMonthlySelectionWorker_ExecuteSelection(t *testing.T) {
	mockSvc := &MockToprankService{}
	mockSvc.On("RunMonthly", mock.Anything).Return(&toprank.Selection{
		Month:    "2026-07",
		Username: "alice",
		Score:    12,
		Awarded:  true,
	}, nil)

	w := NewMonthlySelectionWorker(mockSvc)
	w.executeSelection()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))

	mockSvc.AssertExpectations(t)
}

func TestMonthlySelectionWorker_ShutdownCancelsTimer(t *testing.T) {
	mockSvc := &MockToprankService{}

	w := NewMonthlySelectionWorker(mockSvc)
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))

	mockSvc.AssertNotCalled(t, "RunMonthly")
}

func TestMonthlySelectionWorker_SelectionFailureDoesNotPanic(t *testing.T) {
	mockSvc := &MockToprankService{}
	mockSvc.On("RunMonthly", mock.Anything).Return(nil, assert.AnError)

	w := NewMonthlySelectionWorker(mockSvc)
	w.executeSelection()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
}
