// Package postgres implements the platform repositories (projects,
// community events, RSVPs) on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/repository"
)

// ProjectRepository implements the project repository for PostgreSQL
type ProjectRepository struct {
	db *pgxpool.Pool
}

var _ repository.Project = (*ProjectRepository)(nil)

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateProject inserts the project and fills in its generated ID
func (r *ProjectRepository) CreateProject(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (title, description, repo_url, tags, author, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING project_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		project.Title, project.Description, project.RepoURL, project.Tags,
		project.Author, domain.ProjectPending,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertProject, err)
	}

	project.Status = domain.ProjectPending
	return nil
}

// GetProject returns one project by ID
func (r *ProjectRepository) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	query := `
		SELECT project_id, title, description, repo_url, tags, author, status, created_at, moderated_at
		FROM projects
		WHERE project_id = $1
	`
	var p domain.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.RepoURL, &p.Tags,
		&p.Author, &p.Status, &p.CreatedAt, &p.ModeratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrProjectNotFound, id)
		}
		return nil, fmt.Errorf(ErrMsgGetProject, err)
	}
	return &p, nil
}

// GetProjectsByStatus returns projects in one moderation state, newest first
func (r *ProjectRepository) GetProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	query := `
		SELECT project_id, title, description, repo_url, tags, author, status, created_at, moderated_at
		FROM projects
		WHERE status = $1
		ORDER BY created_at DESC, project_id DESC
	`
	return r.queryProjects(ctx, query, status)
}

// GetProjectsByAuthor returns one contributor's submissions, newest first
func (r *ProjectRepository) GetProjectsByAuthor(ctx context.Context, author string) ([]domain.Project, error) {
	query := `
		SELECT project_id, title, description, repo_url, tags, author, status, created_at, moderated_at
		FROM projects
		WHERE author = $1
		ORDER BY created_at DESC, project_id DESC
	`
	return r.queryProjects(ctx, query, author)
}

// UpdateProjectStatus moves a pending project to approved or rejected.
// The WHERE clause enforces the one-way lifecycle: a project that already
// left pending is not updated and reports domain.ErrProjectModerated.
func (r *ProjectRepository) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	query := `
		UPDATE projects
		SET status = $1, moderated_at = NOW()
		WHERE project_id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, status, id, domain.ProjectPending)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateProjectStatus, err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish a missing project from one already moderated
		if _, err := r.GetProject(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: %d", domain.ErrProjectModerated, id)
	}
	return nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...interface{}) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListProjects, err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.RepoURL, &p.Tags,
			&p.Author, &p.Status, &p.CreatedAt, &p.ModeratedAt,
		); err != nil {
			return nil, fmt.Errorf(ErrMsgScanProject, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListProjects, err)
	}
	return projects, nil
}
