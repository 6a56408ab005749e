package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/funckode/funckode/internal/announce"
	"github.com/funckode/funckode/internal/artifact"
	"github.com/funckode/funckode/internal/catalog"
	"github.com/funckode/funckode/internal/config"
	"github.com/funckode/funckode/internal/database/badgefile"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/gamification"
	"github.com/funckode/funckode/internal/githubapi"
	"github.com/funckode/funckode/internal/toprank"
)

const githubRepoBaseURL = "https://github.com/"

func main() {
	year := flag.Int("year", 0, "override selection year (requires -month)")
	month := flag.Int("month", 0, "override selection month 1-12 (requires -year)")
	flag.Parse()

	if (*year == 0) != (*month == 0) {
		fmt.Fprintln(os.Stderr, "-year and -month must be given together")
		flag.Usage()
		os.Exit(2)
	}
	if *month < 0 || *month > 12 {
		fmt.Fprintln(os.Stderr, "-month must be between 1 and 12")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*year, *month); err != nil {
		slog.Error("Top contributor selection failed", "error", err)
		os.Exit(1)
	}
}

func run(year, month int) error {
	ctx := context.Background()

	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.LoadCLI()
	if err != nil {
		return err
	}
	if cfg.GithubOwnerRepo == "" {
		return fmt.Errorf("GITHUB_OWNER_REPO must be set")
	}

	store, err := badgefile.NewStore(cfg.BadgesDir)
	if err != nil {
		return err
	}

	cat, err := catalog.New(ctx, cfg.ConfigsDir)
	if err != nil {
		return err
	}

	bus := event.NewMemoryBus()

	repoURL := githubRepoBaseURL + cfg.GithubOwnerRepo
	generator := artifact.NewGenerator(cat,
		artifact.NewListing(cfg.ContributorsFile),
		artifact.NewImageWriter(cfg.BadgeImagesDir),
		repoURL)
	generator.Register(bus)

	announcer, err := announce.New(cfg.WebhookURL)
	if err != nil {
		return err
	}
	if announcer.Enabled() {
		announcer.Register(ctx, bus)
	}

	gamifService := gamification.NewService(store, cat, bus)
	githubClient := githubapi.NewClient(cfg.GithubToken)
	toprankService := toprank.NewService(githubClient, gamifService, bus, cfg.GithubOwnerRepo)

	var selection *toprank.Selection
	if year != 0 {
		selection, err = toprankService.SelectForMonth(ctx, year, time.Month(month))
	} else {
		selection, err = toprankService.RunMonthly(ctx)
	}
	if err != nil {
		return err
	}

	if !selection.Awarded {
		fmt.Printf("No award for %s: %s\n", selection.Month, selection.Reason)
		return nil
	}

	fmt.Printf("Top contributor for %s: %s (score %d)\n", selection.Month, selection.Username, selection.Score)
	return nil
}
