package gamification

import (
	"context"
	"time"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
)

// milestoneRule maps an accumulated achievement to the badge it unlocks
type milestoneRule struct {
	badge domain.BadgeType
	met   func(c *domain.Contributor) bool
}

// milestoneRules are checked in order during a single pass. Each milestone
// badge is awarded at most once per contributor.
var milestoneRules = []milestoneRule{
	{
		badge: domain.BadgePRMaster,
		met: func(c *domain.Contributor) bool {
			return c.CountBadges(domain.BadgeFirstPR) >= domain.PRMasterThreshold
		},
	},
	{
		badge: domain.BadgeIssueHunter,
		met: func(c *domain.Contributor) bool {
			return c.CountBadges(domain.BadgeIssueResolver) >= domain.IssueHunterThreshold
		},
	},
	{
		badge: domain.BadgeCommunityChampion,
		met: func(c *domain.Contributor) bool {
			return c.CountBadges(domain.BadgeEventParticipation) >= domain.CommunityChampionThreshold
		},
	},
	{
		badge: domain.BadgeStreakWarrior,
		met: func(c *domain.Contributor) bool {
			return c.Streak >= domain.StreakWarriorThreshold
		},
	},
}

// evaluateMilestones runs one pass over the milestone rules and appends any
// newly earned milestone badges to the record. The pass is not re-run over
// its own output; a milestone badge never triggers another milestone.
func (s *service) evaluateMilestones(ctx context.Context, c *domain.Contributor, now time.Time) []domain.BadgeType {
	log := logger.FromContext(ctx)

	var awarded []domain.BadgeType
	for _, rule := range milestoneRules {
		if c.HasBadge(rule.badge) || !rule.met(c) {
			continue
		}

		c.Badges = append(c.Badges, domain.BadgeAward{
			Type:      rule.badge,
			AwardedAt: now,
		})
		awarded = append(awarded, rule.badge)
		log.Info(LogMsgMilestoneAwarded, "username", c.Username, "badge", rule.badge)
	}

	return awarded
}
