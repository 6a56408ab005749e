package repository

import (
	"context"

	"github.com/funckode/funckode/internal/domain"
)

// Contributor defines the interface for contributor record persistence
type Contributor interface {
	// Get returns the record for a username, or domain.ErrContributorNotFound
	Get(ctx context.Context, username string) (*domain.Contributor, error)
	// Save writes the full record, creating or replacing it atomically
	Save(ctx context.Context, contributor *domain.Contributor) error
	// GetAll returns every stored contributor record
	GetAll(ctx context.Context) ([]domain.Contributor, error)
	// Exists reports whether a record exists without loading it
	Exists(ctx context.Context, username string) (bool, error)
}
