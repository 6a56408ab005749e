package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/funckode/funckode/internal/database/badgefile"
	"github.com/funckode/funckode/internal/database/postgres"
	"github.com/funckode/funckode/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Contributor    repository.Contributor
	Project        repository.Project
	CommunityEvent repository.CommunityEvent
}

// InitializeRepositories creates all repository implementations.
// Contributor records live as one JSON file per username under badgesDir;
// projects and community events live in Postgres.
func InitializeRepositories(dbPool *pgxpool.Pool, badgesDir string) (*Repositories, error) {
	contributorStore, err := badgefile.NewStore(badgesDir)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Contributor:    contributorStore,
		Project:        postgres.NewProjectRepository(dbPool),
		CommunityEvent: postgres.NewEventRepository(dbPool),
	}, nil
}
