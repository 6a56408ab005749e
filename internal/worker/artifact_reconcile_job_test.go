package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/funckode/funckode/internal/domain"
)

type MockContributorRepo struct {
	mock.Mock
}

func (m *MockContributorRepo) Get(ctx context.Context, username string) (*domain.Contributor, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contributor), args.Error(1)
}

func (m *MockContributorRepo) Save(ctx context.Context, contributor *domain.Contributor) error {
	args := m.Called(ctx, contributor)
	return args.Error(0)
}

func (m *MockContributorRepo) GetAll(ctx context.Context) ([]domain.Contributor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contributor), args.Error(1)
}

func (m *MockContributorRepo) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Reconcile(ctx context.Context, contributors []domain.Contributor) error {
	args := m.Called(ctx, contributors)
	return args.Error(0)
}

func TestArtifactReconcileJob_RebuildsFromStore(t *testing.T) {
	records := []domain.Contributor{
		{Username: "alice", XP: 50},
		{Username: "bob", XP: 10},
	}

	repo := &MockContributorRepo{}
	repo.On("GetAll", mock.Anything).Return(records, nil)

	reconciler := &MockReconciler{}
	reconciler.On("Reconcile", mock.Anything, records).Return(nil)

	job := NewArtifactReconcileJob(repo, reconciler)
	err := job.Process(context.Background())

	require.NoError(t, err)
	repo.AssertExpectations(t)
	reconciler.AssertExpectations(t)
}

func TestArtifactReconcileJob_StoreErrorPropagates(t *testing.T) {
	repo := &MockContributorRepo{}
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("disk unavailable"))

	reconciler := &MockReconciler{}

	job := NewArtifactReconcileJob(repo, reconciler)
	err := job.Process(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk unavailable")
	reconciler.AssertNotCalled(t, "Reconcile")
}

func TestArtifactReconcileJob_RebuildErrorPropagates(t *testing.T) {
	repo := &MockContributorRepo{}
	repo.On("GetAll", mock.Anything).Return([]domain.Contributor{}, nil)

	reconciler := &MockReconciler{}
	reconciler.On("Reconcile", mock.Anything, mock.Anything).Return(errors.New("listing locked"))

	job := NewArtifactReconcileJob(repo, reconciler)
	err := job.Process(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing locked")
}

func TestArtifactReconcileJob_RunsOnPool(t *testing.T) {
	records := []domain.Contributor{{Username: "alice"}}

	repo := &MockContributorRepo{}
	repo.On("GetAll", mock.Anything).Return(records, nil)

	done := make(chan struct{})
	reconciler := &MockReconciler{}
	reconciler.On("Reconcile", mock.Anything, records).Run(func(mock.Arguments) {
		close(done)
	}).Return(nil)

	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(NewArtifactReconcileJob(repo, reconciler))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconcile job never ran on the pool")
	}
}
