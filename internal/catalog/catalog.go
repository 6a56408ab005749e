package catalog

import (
	"context"
	"fmt"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
)

// Catalog holds the loaded badge definitions and level table. It is built
// once at startup and safe for concurrent reads.
type Catalog struct {
	badges map[domain.BadgeType]domain.BadgeDefinition
	order  []domain.BadgeType
	levels []domain.LevelDefinition
}

// New loads, validates, and assembles the catalog from configsDir (or the
// embedded defaults when no override files exist).
func New(ctx context.Context, configsDir string) (*Catalog, error) {
	log := logger.FromContext(ctx)
	loader := NewLoader()

	badgeCfg, err := loader.LoadBadges(ctx, configsDir)
	if err != nil {
		return nil, err
	}
	if err := loader.ValidateBadges(badgeCfg); err != nil {
		return nil, fmt.Errorf("badge catalog: %w", err)
	}

	levelCfg, err := loader.LoadLevels(ctx, configsDir)
	if err != nil {
		return nil, err
	}
	if err := loader.ValidateLevels(levelCfg); err != nil {
		return nil, fmt.Errorf("level table: %w", err)
	}

	c := &Catalog{
		badges: make(map[domain.BadgeType]domain.BadgeDefinition, len(badgeCfg.Badges)),
		order:  make([]domain.BadgeType, 0, len(badgeCfg.Badges)),
		levels: levelCfg.Levels,
	}
	for _, def := range badgeCfg.Badges {
		c.badges[def.ID] = def
		c.order = append(c.order, def.ID)
	}

	log.Info(LogMsgBadgesLoaded, "count", len(c.badges))
	log.Info(LogMsgLevelsLoaded, "count", len(c.levels))

	return c, nil
}

// Definition returns the catalog entry for a badge type
func (c *Catalog) Definition(t domain.BadgeType) (domain.BadgeDefinition, bool) {
	def, ok := c.badges[t]
	return def, ok
}

// XPValue returns the XP a badge of the given type is worth. Unknown types
// fall back to a value of 1 so stray records still count for something.
func (c *Catalog) XPValue(t domain.BadgeType) int {
	if def, ok := c.badges[t]; ok {
		return def.XPValue
	}
	return domain.UnknownBadgeXP
}

// Repeatable reports whether a badge type may be awarded more than once to
// the same contributor
func (c *Catalog) Repeatable(t domain.BadgeType) bool {
	return c.badges[t].Repeatable
}

// Badges returns all badge definitions in catalog order
func (c *Catalog) Badges() []domain.BadgeDefinition {
	out := make([]domain.BadgeDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.badges[id])
	}
	return out
}

// Levels returns the level table in ascending order
func (c *Catalog) Levels() []domain.LevelDefinition {
	return c.levels
}

// LevelForXP returns the highest level whose MinXP does not exceed xp.
// Anything below the table floor maps to level 1.
func (c *Catalog) LevelForXP(xp int) int {
	for i := len(c.levels) - 1; i >= 0; i-- {
		if xp >= c.levels[i].MinXP {
			return c.levels[i].Level
		}
	}
	return 1
}

// LevelDefinitionFor returns the table row for a given level number
func (c *Catalog) LevelDefinitionFor(level int) (domain.LevelDefinition, bool) {
	for _, lvl := range c.levels {
		if lvl.Level == level {
			return lvl, true
		}
	}
	return domain.LevelDefinition{}, false
}

// MaxLevel returns the highest level in the table
func (c *Catalog) MaxLevel() int {
	if len(c.levels) == 0 {
		return 1
	}
	return c.levels[len(c.levels)-1].Level
}
