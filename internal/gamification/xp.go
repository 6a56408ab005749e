package gamification

import (
	"context"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
)

// recalculateXP derives total XP from the full badge list. XP is never
// stored incrementally; recomputing from scratch keeps records
// self-correcting after catalog changes.
func (s *service) recalculateXP(ctx context.Context, c *domain.Contributor) int {
	log := logger.FromContext(ctx)

	total := 0
	for _, award := range c.Badges {
		def, ok := s.catalog.Definition(award.Type)
		if !ok {
			log.Debug(LogMsgUnknownBadgeFallback, "username", c.Username, "badge", award.Type)
			total += domain.UnknownBadgeXP
			continue
		}
		total += def.XPValue
	}

	return total
}
