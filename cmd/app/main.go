package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/funckode/funckode/internal/announce"
	"github.com/funckode/funckode/internal/artifact"
	"github.com/funckode/funckode/internal/bootstrap"
	"github.com/funckode/funckode/internal/catalog"
	"github.com/funckode/funckode/internal/communityevent"
	"github.com/funckode/funckode/internal/config"
	"github.com/funckode/funckode/internal/database"
	"github.com/funckode/funckode/internal/feed"
	"github.com/funckode/funckode/internal/gamification"
	"github.com/funckode/funckode/internal/githubapi"
	"github.com/funckode/funckode/internal/project"
	"github.com/funckode/funckode/internal/scheduler"
	"github.com/funckode/funckode/internal/server"
	"github.com/funckode/funckode/internal/toprank"
	"github.com/funckode/funckode/internal/worker"
)

const (
	dbMaxConns        = 10
	dbMaxIdleTime     = 5 * time.Minute
	dbMaxLifetime     = 30 * time.Minute
	shutdownTimeout   = 15 * time.Second
	githubRepoBaseURL = "https://github.com/"

	workerPoolSize            = 2
	workerQueueSize           = 16
	artifactReconcileInterval = 6 * time.Hour
)

func main() {
	if err := run(); err != nil {
		slog.Error("Service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Setup logging (stdout + session file)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Event bus and resilient publisher
	eventBus, publisher, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	// Database: migrate, then open the pool
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		return err
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Repositories
	repos, err := bootstrap.InitializeRepositories(dbPool, cfg.BadgesDir)
	if err != nil {
		return err
	}

	// Badge catalog and level table (embedded defaults, optional overrides)
	cat, err := catalog.New(ctx, cfg.ConfigsDir)
	if err != nil {
		return err
	}

	// Core services
	gamifService := gamification.NewService(repos.Contributor, cat, publisher)
	feedService := feed.NewService(repos.Contributor, cat)
	projectService := project.NewService(repos.Project, gamifService, publisher)
	eventService := communityevent.NewService(repos.CommunityEvent, publisher)

	// Display artifacts and webhook announcements ride on the event bus
	repoURL := githubRepoBaseURL + cfg.GithubOwnerRepo
	generator := artifact.NewGenerator(cat,
		artifact.NewListing(cfg.ContributorsFile),
		artifact.NewImageWriter(cfg.BadgeImagesDir),
		repoURL)

	announcer, err := announce.New(cfg.WebhookURL)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(ctx, bootstrap.EventHandlerDependencies{
		EventBus:  eventBus,
		Generator: generator,
		Announcer: announcer,
	}); err != nil {
		return err
	}

	// Background jobs: the worker pool runs scheduled maintenance, starting
	// with periodic artifact reconciliation (the contributors listing is
	// hand-edited too, so generated rows drift between awards)
	pool := worker.NewPool(workerPoolSize, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(artifactReconcileInterval, worker.NewArtifactReconcileJob(repos.Contributor, generator))

	// Monthly top contributor selection
	var monthlyWorker *worker.MonthlySelectionWorker
	if cfg.GithubOwnerRepo != "" {
		githubClient := githubapi.NewClient(cfg.GithubToken)
		toprankService := toprank.NewService(githubClient, gamifService, publisher, cfg.GithubOwnerRepo)
		monthlyWorker = worker.NewMonthlySelectionWorker(toprankService)
		monthlyWorker.Start()
	} else {
		slog.Info("Monthly selection disabled (GITHUB_OWNER_REPO not set)")
	}

	// HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		cat, gamifService, feedService, projectService, eventService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		MonthlyWorker:      monthlyWorker,
		ResilientPublisher: publisher,
	})

	return nil
}
