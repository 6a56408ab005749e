package gamification

import (
	"context"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
)

// updateStreak applies the day-gap rules between the last contribution and
// today, then advances the last-contribution date. Returns whether the
// streak count changed.
//
// Gap rules: same day leaves the streak alone, a one-day gap extends it,
// anything longer resets it to 1. A last-contribution date in the future
// means clock skew or a tampered record; the pass leaves both fields
// untouched and logs a warning.
func (s *service) updateStreak(ctx context.Context, c *domain.Contributor, today domain.Date) bool {
	log := logger.FromContext(ctx)

	daysSince := today.DaysSince(c.LastContribution)

	switch {
	case daysSince < 0:
		log.Warn(LogMsgStreakClockSkew,
			"username", c.Username,
			"last_contribution", c.LastContribution,
			"today", today)
		return false

	case daysSince == 0:
		return false

	case daysSince == 1:
		c.Streak++
		c.LastContribution = today
		log.Debug(LogMsgStreakExtended, "username", c.Username, "streak", c.Streak)
		return true

	default:
		c.Streak = 1
		c.LastContribution = today
		log.Debug(LogMsgStreakReset, "username", c.Username, "gap_days", daysSince)
		return true
	}
}
