package gamification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/funckode/funckode/internal/catalog"
	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/event"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/metrics"
	"github.com/funckode/funckode/internal/repository"
)

// Service defines the interface for gamification operations
type Service interface {
	// AwardBadge runs the full award pass: streak update, milestone
	// evaluation, XP and level recompute, persistence, and events.
	// A duplicate non-repeatable award returns domain.ErrDuplicateBadge
	// alongside the unchanged result; treat it as a successful no-op.
	AwardBadge(ctx context.Context, username string, badgeType domain.BadgeType, evidence map[string]interface{}) (*domain.AwardResult, error)
	GetContributor(ctx context.Context, username string) (*domain.Contributor, error)
	GetAllContributors(ctx context.Context) ([]domain.Contributor, error)
}

// service implements the Service interface
type service struct {
	repo      repository.Contributor
	catalog   *catalog.Catalog
	publisher event.Bus
	cache     *contributorCache

	// now is injectable for deterministic streak and timestamp tests
	now func() time.Time
}

// NewService creates a new gamification service
func NewService(repo repository.Contributor, cat *catalog.Catalog, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		catalog:   cat,
		publisher: publisher,
		cache:     newContributorCache(ContributorCacheSize, ContributorCacheTTL),
		now:       time.Now,
	}
}

// AwardBadge implements the award pass described on Service
func (s *service) AwardBadge(ctx context.Context, username string, badgeType domain.BadgeType, evidence map[string]interface{}) (*domain.AwardResult, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}
	if badgeType == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBadgeTypeRequired)
	}

	now := s.now()
	today := domain.DateOf(now)

	contributor, isNew, err := s.loadOrCreate(ctx, username, today)
	if err != nil {
		return nil, err
	}

	result := &domain.AwardResult{
		Username:       username,
		Badge:          badgeType,
		OldLevel:       contributor.Level,
		NewLevel:       contributor.Level,
		TotalXP:        contributor.XP,
		Streak:         contributor.Streak,
		NewContributor: isNew,
	}

	// Non-repeatable badges are awarded at most once; a repeat request is a
	// business no-op, not a failure
	if !s.catalog.Repeatable(badgeType) && contributor.HasBadge(badgeType) {
		log.Info(LogMsgDuplicateBadge, "username", username, "badge", badgeType)
		metrics.DuplicateAwards.WithLabelValues(string(badgeType)).Inc()
		result.Duplicate = true
		return result, domain.ErrDuplicateBadge
	}

	oldXP := contributor.XP
	oldLevel := contributor.Level

	contributor.Badges = append(contributor.Badges, domain.BadgeAward{
		Type:      badgeType,
		AwardedAt: now,
		Evidence:  evidence,
	})
	contributor.TotalContributions++

	streakExtended := s.updateStreak(ctx, contributor, today)

	milestones := s.evaluateMilestones(ctx, contributor, now)

	contributor.XP = s.recalculateXP(ctx, contributor)
	contributor.Level = s.catalog.LevelForXP(contributor.XP)

	if err := s.repo.Save(ctx, contributor); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveRecordFailed, err)
	}
	s.cache.Set(username, contributor)

	result.MilestoneBadges = milestones
	result.XPAwarded = contributor.XP - oldXP
	result.TotalXP = contributor.XP
	result.NewLevel = contributor.Level
	result.LeveledUp = contributor.Level > oldLevel
	result.Streak = contributor.Streak

	log.Info(LogMsgBadgeAwarded,
		"username", username,
		"badge", badgeType,
		"xp_awarded", result.XPAwarded,
		"total_xp", contributor.XP,
		"level", contributor.Level,
		"streak", contributor.Streak,
		"milestones", len(milestones))

	s.publishAwardEvents(ctx, contributor, badgeType, evidence, milestones, oldLevel, streakExtended)

	return result, nil
}

// loadOrCreate fetches the record for a username, creating a fresh one for
// first-time contributors
func (s *service) loadOrCreate(ctx context.Context, username string, today domain.Date) (*domain.Contributor, bool, error) {
	contributor, err := s.repo.Get(ctx, username)
	if err == nil {
		return contributor, false, nil
	}
	if !errors.Is(err, domain.ErrContributorNotFound) {
		return nil, false, fmt.Errorf(ErrMsgLoadRecordFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgNewContributor, "username", username)
	return domain.NewContributor(username, today), true, nil
}

func (s *service) publishAwardEvents(ctx context.Context, c *domain.Contributor, badgeType domain.BadgeType, evidence map[string]interface{}, milestones []domain.BadgeType, oldLevel int, streakExtended bool) {
	log := logger.FromContext(ctx)

	publish := func(evt event.Event) {
		if s.publisher == nil {
			return
		}
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
		}
	}

	publish(event.NewBadgeAwardedEvent(c.Username, badgeType, s.catalog.XPValue(badgeType), evidence))
	for _, m := range milestones {
		publish(event.NewBadgeAwardedEvent(c.Username, m, s.catalog.XPValue(m), nil))
	}

	if c.Level > oldLevel {
		log.Info(LogMsgLevelUp, "username", c.Username, "old_level", oldLevel, "new_level", c.Level)
		publish(event.NewLevelUpEvent(c.Username, oldLevel, c.Level, c.XP))
	}

	if streakExtended && c.Streak >= domain.StreakMilestoneInterval && c.Streak%domain.StreakMilestoneInterval == 0 {
		publish(event.NewStreakMilestoneEvent(c.Username, c.Streak))
	}
}

// GetContributor returns a contributor record, serving cached copies when fresh
func (s *service) GetContributor(ctx context.Context, username string) (*domain.Contributor, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}

	if c, ok := s.cache.Get(username); ok {
		return c, nil
	}

	c, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	s.cache.Set(username, c)
	return c, nil
}

// GetAllContributors returns every contributor record
func (s *service) GetAllContributors(ctx context.Context) ([]domain.Contributor, error) {
	contributors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRecordsFailed, err)
	}
	return contributors, nil
}
