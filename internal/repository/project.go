package repository

import (
	"context"

	"github.com/funckode/funckode/internal/domain"
)

// Project defines the interface for showcase project persistence
type Project interface {
	// CreateProject inserts the project and fills in its generated ID
	CreateProject(ctx context.Context, project *domain.Project) error
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	GetProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	GetProjectsByAuthor(ctx context.Context, author string) ([]domain.Project, error)
	// UpdateProjectStatus moves a pending project to approved or rejected.
	// Returns domain.ErrProjectModerated when the project already left pending.
	UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
}
