package worker

import (
	"context"
	"fmt"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/repository"
)

// artifactReconciler rebuilds display artifacts from contributor records
type artifactReconciler interface {
	Reconcile(ctx context.Context, contributors []domain.Contributor) error
}

// ArtifactReconcileJob rebuilds the contributors listing and badge images
// from the record store. It runs on the worker pool at a fixed interval so
// drift from manual edits heals without touching the award path.
type ArtifactReconcileJob struct {
	repo       repository.Contributor
	reconciler artifactReconciler
}

// NewArtifactReconcileJob creates a reconcile job over the given store and sinks
func NewArtifactReconcileJob(repo repository.Contributor, reconciler artifactReconciler) *ArtifactReconcileJob {
	return &ArtifactReconcileJob{repo: repo, reconciler: reconciler}
}

// Process implements Job
func (j *ArtifactReconcileJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgArtifactReconcileStarting)

	contributors, err := j.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf(ErrFmtReconcileLoad, err)
	}

	if err := j.reconciler.Reconcile(ctx, contributors); err != nil {
		return fmt.Errorf(ErrFmtReconcileRebuild, err)
	}

	log.Info(LogMsgArtifactReconcileCompleted, "contributors", len(contributors))
	return nil
}
