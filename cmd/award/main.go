package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/funckode/funckode/internal/announce"
	"github.com/funckode/funckode/internal/artifact"
	"github.com/funckode/funckode/internal/catalog"
	"github.com/funckode/funckode/internal/config"
	"github.com/funckode/funckode/internal/database/badgefile"
	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/gamification"
)

const githubRepoBaseURL = "https://github.com/"

func main() {
	badgeType := flag.String("badge-type", "", "badge type identifier (e.g. first_pr)")
	username := flag.String("username", "", "contributor username")
	prNumber := flag.Int("pr-number", 0, "pull request number evidence")
	issueNumber := flag.Int("issue-number", 0, "issue number evidence")
	eventName := flag.String("event-name", "", "event name evidence")
	flag.Parse()

	if *badgeType == "" || *username == "" {
		fmt.Fprintln(os.Stderr, "both -badge-type and -username are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*badgeType, *username, *prNumber, *issueNumber, *eventName); err != nil {
		slog.Error("Award failed", "error", err)
		os.Exit(1)
	}
}

func run(badgeType, username string, prNumber, issueNumber int, eventName string) error {
	ctx := context.Background()

	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.LoadCLI()
	if err != nil {
		return err
	}

	store, err := badgefile.NewStore(cfg.BadgesDir)
	if err != nil {
		return err
	}

	cat, err := catalog.New(ctx, cfg.ConfigsDir)
	if err != nil {
		return err
	}

	// Artifacts and announcements subscribe to the same bus the award publishes on
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

	evidence := map[string]interface{}{}
	if prNumber > 0 {
		evidence[domain.EvidencePRNumber] = prNumber
	}
	if issueNumber > 0 {
		evidence[domain.EvidenceIssueNumber] = issueNumber
	}
	if eventName != "" {
		evidence[domain.EvidenceEventName] = eventName
	}
	if len(evidence) == 0 {
		evidence = nil
	}

	result, err := gamifService.AwardBadge(ctx, username, domain.BadgeType(badgeType), evidence)
	if err != nil {
		// A repeat non-repeatable award is a settled no-op, not a CI failure
		if errors.Is(err, domain.ErrDuplicateBadge) {
			fmt.Printf("%s already holds the %s badge, nothing to do\n", username, badgeType)
			return nil
		}
		return err
	}

	fmt.Printf("Awarded %s to %s (+%d XP, total %d, level %d", result.Badge, result.Username,
		result.XPAwarded, result.TotalXP, result.NewLevel)
	if result.LeveledUp {
		fmt.Printf(", leveled up from %d", result.OldLevel)
	}
	fmt.Println(")")

	for _, milestone := range result.MilestoneBadges {
		fmt.Printf("Milestone unlocked: %s\n", milestone)
	}

	return nil
}
