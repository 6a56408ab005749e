package project

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
)

// mockProjectRepo is an in-memory repository.Project
type mockProjectRepo struct {
	projects map[int64]*domain.Project
	nextID   int64
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[int64]*domain.Project), nextID: 1}
}

func (m *mockProjectRepo) CreateProject(ctx context.Context, project *domain.Project) error {
	project.ID = m.nextID
	m.nextID++
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	clone := *project
	m.projects[project.ID] = &clone
	return nil
}

func (m *mockProjectRepo) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrProjectNotFound, id)
	}
	clone := *p
	return &clone, nil
}

func (m *mockProjectRepo) GetProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range m.projects {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) GetProjectsByAuthor(ctx context.Context, author string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range m.projects {
		if p.Author == author {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	p, ok := m.projects[id]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrProjectNotFound, id)
	}
	if p.Status != domain.ProjectPending {
		return fmt.Errorf("%w: %d", domain.ErrProjectModerated, id)
	}
	now := time.Now().UTC()
	p.Status = status
	p.ModeratedAt = &now
	return nil
}

// mockAwarder records orchestrator calls
type mockAwarder struct {
	awardErr  error
	awarded   []string
	badges    []domain.BadgeType
	evidences []map[string]interface{}
}

func (m *mockAwarder) AwardBadge(ctx context.Context, username string, badgeType domain.BadgeType, evidence map[string]interface{}) (*domain.AwardResult, error) {
	m.awarded = append(m.awarded, username)
	m.badges = append(m.badges, badgeType)
	m.evidences = append(m.evidences, evidence)
	if m.awardErr != nil {
		return nil, m.awardErr
	}
	return &domain.AwardResult{Username: username, Badge: badgeType}, nil
}

func (m *mockAwarder) GetContributor(ctx context.Context, username string) (*domain.Contributor, error) {
	return nil, domain.ErrContributorNotFound
}

func (m *mockAwarder) GetAllContributors(ctx context.Context) ([]domain.Contributor, error) {
	return nil, nil
}

type capturingBus struct {
	events []event.Event
}

func (b *capturingBus) Publish(ctx context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *capturingBus) Subscribe(eventType event.Type, handler event.Handler) {}

func validInput() SubmitInput {
	return SubmitInput{
		Title:   "Terminal Kanban",
		RepoURL: "https://github.com/alice/kanban",
		Tags:    []string{"go", "tui"},
		Author:  "alice",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	repo := newMockProjectRepo()
	bus := &capturingBus{}
	svc := NewService(repo, &mockAwarder{}, bus)

	p, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, domain.ProjectPending, p.Status)

	require.Len(t, bus.events, 1)
	assert.Equal(t, event.ProjectSubmitted, bus.events[0].Type)
	payload, err := event.DecodePayload[event.ProjectSubmittedPayloadV1](bus.events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.Author)
}

func TestSubmit_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockProjectRepo(), &mockAwarder{}, &capturingBus{})

	tests := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"missing title", func(in *SubmitInput) { in.Title = "" }},
		{"missing repo URL", func(in *SubmitInput) { in.RepoURL = "" }},
		{"missing author", func(in *SubmitInput) { in.Author = "" }},
		{"non-http repo URL", func(in *SubmitInput) { in.RepoURL = "git@github.com:alice/kanban.git" }},
		{"too many tags", func(in *SubmitInput) { in.Tags = make([]string, MaxTags+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Submit(ctx, input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestModerate_Approve(t *testing.T) {
	ctx := context.Background()
	repo := newMockProjectRepo()
	awarder := &mockAwarder{}
	bus := &capturingBus{}
	svc := NewService(repo, awarder, bus)

	p, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	moderated, err := svc.Moderate(ctx, p.ID, true)
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectApproved, moderated.Status)
	assert.NotNil(t, moderated.ModeratedAt)

	require.Len(t, awarder.awarded, 1)
	assert.Equal(t, "alice", awarder.awarded[0])
	assert.Equal(t, domain.BadgeProjectSubmitted, awarder.badges[0])
	assert.Equal(t, p.ID, awarder.evidences[0]["project_id"])

	require.Len(t, bus.events, 2)
	assert.Equal(t, event.ProjectModerated, bus.events[1].Type)
}

func TestModerate_RejectAwardsNothing(t *testing.T) {
	ctx := context.Background()
	repo := newMockProjectRepo()
	awarder := &mockAwarder{}
	svc := NewService(repo, awarder, &capturingBus{})

	p, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	moderated, err := svc.Moderate(ctx, p.ID, false)
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectRejected, moderated.Status)
	assert.Empty(t, awarder.awarded)
}

func TestModerate_OneWay(t *testing.T) {
	ctx := context.Background()
	repo := newMockProjectRepo()
	svc := NewService(repo, &mockAwarder{}, &capturingBus{})

	p, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Moderate(ctx, p.ID, true)
	require.NoError(t, err)

	_, err = svc.Moderate(ctx, p.ID, false)
	assert.ErrorIs(t, err, domain.ErrProjectModerated)
}

func TestModerate_DuplicateBadgeIsQuiet(t *testing.T) {
	ctx := context.Background()
	repo := newMockProjectRepo()
	awarder := &mockAwarder{awardErr: fmt.Errorf("award: %w", domain.ErrDuplicateBadge)}
	svc := NewService(repo, awarder, &capturingBus{})

	p, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	moderated, err := svc.Moderate(ctx, p.ID, true)
	require.NoError(t, err, "second-project approval is not an error")
	assert.Equal(t, domain.ProjectApproved, moderated.Status)
}

func TestList_DefaultsToApproved(t *testing.T) {
	ctx := context.Background()
	repo := newMockProjectRepo()
	svc := NewService(repo, &mockAwarder{}, &capturingBus{})

	p1, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Moderate(ctx, p1.ID, true)
	require.NoError(t, err)

	approved, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, p1.ID, approved[0].ID)

	pending, err := svc.List(ctx, domain.ProjectPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
