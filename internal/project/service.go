// Package project implements the community project showcase: submissions
// enter a pending moderation queue and move one-way to approved or rejected.
// Approval awards the submission badge through the gamification orchestrator.
package project

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/gamification"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/metrics"
	"github.com/funckode/funckode/internal/repository"
)

// SubmitInput carries a new project submission
type SubmitInput struct {
	Title       string
	Description string
	RepoURL     string
	Tags        []string
	Author      string
}

// Service defines the interface for project showcase operations
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	// List returns projects in one moderation state; empty status means approved
	List(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	ListByAuthor(ctx context.Context, author string) ([]domain.Project, error)
	// Moderate approves or rejects a pending project. Approval awards the
	// project_submitted badge to the author.
	Moderate(ctx context.Context, id int64, approve bool) (*domain.Project, error)
}

// service implements the Service interface
type service struct {
	repo      repository.Project
	gamif     gamification.Service
	publisher event.Bus
}

// NewService creates a new project service
func NewService(repo repository.Project, gamif gamification.Service, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		gamif:     gamif,
		publisher: publisher,
	}
}

// Submit validates and stores a new pending project
func (s *service) Submit(ctx context.Context, input SubmitInput) (*domain.Project, error) {
	log := logger.FromContext(ctx)

	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		RepoURL:     input.RepoURL,
		Tags:        input.Tags,
		Author:      input.Author,
		Status:      domain.ProjectPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf(ErrMsgSubmitFailed, err)
	}

	metrics.ProjectsSubmitted.Inc()
	log.Info(LogMsgProjectSubmitted, "projectId", project.ID, "author", project.Author)

	s.publish(ctx, event.NewProjectSubmittedEvent(project.ID, project.Title, project.Author))
	return project, nil
}

// Get returns one project by ID
func (s *service) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.GetProject(ctx, id)
}

// List returns projects in the given moderation state, defaulting to approved
func (s *service) List(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	if status == "" {
		status = domain.ProjectApproved
	}
	return s.repo.GetProjectsByStatus(ctx, status)
}

// ListByAuthor returns one contributor's submissions
func (s *service) ListByAuthor(ctx context.Context, author string) ([]domain.Project, error) {
	return s.repo.GetProjectsByAuthor(ctx, author)
}

// Moderate implements the one-way pending -> approved/rejected transition
func (s *service) Moderate(ctx context.Context, id int64, approve bool) (*domain.Project, error) {
	log := logger.FromContext(ctx)

	status := domain.ProjectRejected
	if approve {
		status = domain.ProjectApproved
	}

	if err := s.repo.UpdateProjectStatus(ctx, id, status); err != nil {
		return nil, err
	}

	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgModerateFailed, err)
	}

	log.Info(LogMsgProjectModerated, "projectId", id, "status", status)

	if approve {
		evidence := map[string]interface{}{"project_id": project.ID}
		_, err := s.gamif.AwardBadge(ctx, project.Author, domain.BadgeProjectSubmitted, evidence)
		switch {
		case errors.Is(err, domain.ErrDuplicateBadge):
			log.Info(LogMsgBadgeAwardSkipped, "author", project.Author)
		case err != nil:
			// Moderation already landed; the badge can be granted manually
			log.Error(LogMsgBadgeAwardFailed, "author", project.Author, "error", err)
		}
	}

	s.publish(ctx, event.NewProjectModeratedEvent(project.ID, project.Title, project.Author, status))
	return project, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "eventType", e.Type, "error", err)
	}
}

func validateSubmission(input SubmitInput) error {
	switch {
	case input.Title == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTitleRequired)
	case len(input.Title) > MaxTitleLength:
		return fmt.Errorf("%w: "+ErrMsgTitleTooLong, domain.ErrInvalidInput, MaxTitleLength)
	case input.RepoURL == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgRepoURLRequired)
	case input.Author == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgAuthorRequired)
	case len(input.Tags) > MaxTags:
		return fmt.Errorf("%w: "+ErrMsgTooManyTags, domain.ErrInvalidInput, MaxTags)
	}

	u, err := url.Parse(input.RepoURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidRepoURL)
	}
	return nil
}
