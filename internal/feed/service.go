// Package feed synthesizes the community activity feed on read. Contributor
// records keep no activity log, so every feed request rebuilds entries from
// badge timestamps, simulated level-up dates, and current streaks.
package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/funckode/funckode/internal/catalog"
	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/repository"
)

// Options filters and paginates a feed request
type Options struct {
	// Type restricts the feed to one activity type; empty means all
	Type   domain.ActivityType
	Offset int
	Limit  int
}

// Result is one page of the synthesized feed
type Result struct {
	Activities []domain.ActivityItem `json:"activities"`
	Stats      domain.FeedStats      `json:"stats"`
	Total      int                   `json:"total"`
	HasMore    bool                  `json:"hasMore"`
}

// Snapshot is the full badge and XP listing across all contributors
type Snapshot struct {
	Contributors []domain.Contributor `json:"contributors"`
	Stats        domain.SnapshotStats `json:"stats"`
}

// Service defines the interface for feed operations
type Service interface {
	GetFeed(ctx context.Context, opts Options) (*Result, error)
	GetSnapshot(ctx context.Context) (*Snapshot, error)
}

// service implements the Service interface
type service struct {
	repo    repository.Contributor
	catalog *catalog.Catalog

	now func() time.Time
}

// NewService creates a new feed service
func NewService(repo repository.Contributor, cat *catalog.Catalog) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		now:     time.Now,
	}
}

// GetFeed synthesizes, filters, sorts, and paginates the activity feed
func (s *service) GetFeed(ctx context.Context, opts Options) (*Result, error) {
	contributors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListContributors, err)
	}

	now := s.now()

	var items []domain.ActivityItem
	stats := domain.FeedStats{Contributors: len(contributors)}

	for i := range contributors {
		c := &contributors[i]
		items = append(items, s.badgeItems(c)...)
		items = append(items, s.levelUpItems(c)...)
		if item, ok := s.streakItem(c); ok {
			items = append(items, item)
		}
	}

	for _, item := range items {
		switch item.Type {
		case domain.ActivityBadgeAwarded:
			stats.BadgesAwarded++
		case domain.ActivityLevelUp:
			stats.LevelUps++
		case domain.ActivityStreakMilestone:
			stats.StreakMilestones++
		}
	}

	if opts.Type != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.Type == opts.Type {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	// Newest first; equal timestamps fall back to username then ID so
	// pagination is stable across requests
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].Timestamp.After(items[j].Timestamp)
		}
		if items[i].Username != items[j].Username {
			return items[i].Username < items[j].Username
		}
		return items[i].ID < items[j].ID
	})

	total := len(items)
	offset, limit := normalizePage(opts.Offset, opts.Limit)

	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := items[offset:end]

	for i := range page {
		page[i].RelativeTime = formatRelativeTime(page[i].Timestamp, now)
	}

	return &Result{
		Activities: page,
		Stats:      stats,
		Total:      total,
		HasMore:    end < total,
	}, nil
}

// GetSnapshot returns all contributor records ordered by XP with totals
func (s *service) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	contributors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListContributors, err)
	}

	sort.Slice(contributors, func(i, j int) bool {
		if contributors[i].XP != contributors[j].XP {
			return contributors[i].XP > contributors[j].XP
		}
		return contributors[i].Username < contributors[j].Username
	})

	stats := domain.SnapshotStats{TotalContributors: len(contributors)}
	for i := range contributors {
		stats.TotalBadges += len(contributors[i].Badges)
		stats.TotalXP += contributors[i].XP
	}

	return &Snapshot{Contributors: contributors, Stats: stats}, nil
}

func (s *service) badgeItems(c *domain.Contributor) []domain.ActivityItem {
	items := make([]domain.ActivityItem, 0, len(c.Badges))
	for i, award := range c.Badges {
		items = append(items, domain.ActivityItem{
			ID:        fmt.Sprintf("badge-%s-%d", c.Username, i),
			Type:      domain.ActivityBadgeAwarded,
			Username:  c.Username,
			Timestamp: award.AwardedAt,
			Message:   s.badgeMessage(c.Username, award.Type),
			Avatar:    c.AvatarURL(),
			Payload: map[string]interface{}{
				"badge": string(award.Type),
			},
		})
	}
	return items
}

// levelUpItems synthesizes one entry per level above 1, spaced weekly from
// the join date since the record keeps no level history
func (s *service) levelUpItems(c *domain.Contributor) []domain.ActivityItem {
	if c.Level <= 1 {
		return nil
	}

	items := make([]domain.ActivityItem, 0, c.Level-1)
	for level := 2; level <= c.Level; level++ {
		ts := c.JoinDate.AddDays(SimulatedLevelUpIntervalDays * (level - 1))
		items = append(items, domain.ActivityItem{
			ID:        fmt.Sprintf("level-%s-%d", c.Username, level),
			Type:      domain.ActivityLevelUp,
			Username:  c.Username,
			Timestamp: ts.Time,
			Message:   s.levelUpMessage(c.Username, level),
			Avatar:    c.AvatarURL(),
			Payload: map[string]interface{}{
				"level": level,
			},
		})
	}
	return items
}

// streakItem surfaces a streak entry only at whole-week streaks
func (s *service) streakItem(c *domain.Contributor) (domain.ActivityItem, bool) {
	if c.Streak < domain.StreakMilestoneInterval || c.Streak%domain.StreakMilestoneInterval != 0 {
		return domain.ActivityItem{}, false
	}

	return domain.ActivityItem{
		ID:        fmt.Sprintf("streak-%s-%d", c.Username, c.Streak),
		Type:      domain.ActivityStreakMilestone,
		Username:  c.Username,
		Timestamp: c.LastContribution.Time,
		Message:   streakMessage(c.Username, c.Streak),
		Avatar:    c.AvatarURL(),
		Payload: map[string]interface{}{
			"streak": c.Streak,
		},
	}, true
}

func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return offset, limit
}
