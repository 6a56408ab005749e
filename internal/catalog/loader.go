package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
)

// Sentinel errors for catalog loading
var (
	ErrDuplicateBadgeID = errors.New("duplicate badge id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

//go:embed defaults/badges.json defaults/levels.json
var defaultsFS embed.FS

// BadgeConfig represents the JSON badge catalog
type BadgeConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Badges []domain.BadgeDefinition `json:"badges"`
}

// LevelConfig represents the JSON level table
type LevelConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Levels []domain.LevelDefinition `json:"levels"`
}

// Loader handles loading and validating the badge catalog and level table
type Loader interface {
	LoadBadges(ctx context.Context, configsDir string) (*BadgeConfig, error)
	LoadLevels(ctx context.Context, configsDir string) (*LevelConfig, error)
	ValidateBadges(config *BadgeConfig) error
	ValidateLevels(config *LevelConfig) error
}

type catalogLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{}
}

// LoadBadges reads the badge catalog from configsDir, falling back to the
// embedded defaults when no override file exists.
func (l *catalogLoader) LoadBadges(ctx context.Context, configsDir string) (*BadgeConfig, error) {
	data, err := readConfig(ctx, configsDir, BadgesConfigFileName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadBadgesFailed, err)
	}

	var config BadgeConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseBadgesFailed, err)
	}

	return &config, nil
}

// LoadLevels reads the level table from configsDir, falling back to the
// embedded defaults when no override file exists.
func (l *catalogLoader) LoadLevels(ctx context.Context, configsDir string) (*LevelConfig, error) {
	data, err := readConfig(ctx, configsDir, LevelsConfigFileName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadLevelsFailed, err)
	}

	var config LevelConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseLevelsFailed, err)
	}

	return &config, nil
}

// readConfig prefers the on-disk override and falls back to embedded defaults
// only when the file is absent. Read errors other than absence propagate.
func readConfig(ctx context.Context, configsDir, fileName string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if configsDir != "" {
		path := filepath.Join(configsDir, fileName)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
		log.Info(LogMsgUsingEmbedded, "file", fileName)
	}

	return defaultsFS.ReadFile("defaults/" + fileName)
}

// ValidateBadges checks the badge catalog for errors
func (l *catalogLoader) ValidateBadges(config *BadgeConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgBadgeConfigNil)
	}

	if len(config.Badges) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoBadgesDefined)
	}

	seen := make(map[domain.BadgeType]bool, len(config.Badges))

	for i := range config.Badges {
		badge := &config.Badges[i]

		if badge.ID == "" {
			return fmt.Errorf(ErrFmtBadgeAtIndexEmpty, ErrInvalidConfig, i)
		}
		if seen[badge.ID] {
			return fmt.Errorf(ErrFmtBadgeDuplicate, ErrDuplicateBadgeID, badge.ID)
		}
		seen[badge.ID] = true

		if badge.DisplayName == "" {
			return fmt.Errorf(ErrFmtBadgeEmptyDisplay, ErrInvalidConfig, badge.ID)
		}
		if badge.XPValue < 0 {
			return fmt.Errorf(ErrFmtBadgeNegativeXP, ErrInvalidConfig, badge.ID)
		}

		switch badge.Rarity {
		case domain.RarityCommon, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary:
		default:
			return fmt.Errorf(ErrFmtBadgeInvalidRarity, ErrInvalidConfig, badge.ID, badge.Rarity)
		}
	}

	return nil
}

// ValidateLevels checks the level table for errors
func (l *catalogLoader) ValidateLevels(config *LevelConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgLevelConfigNil)
	}

	if len(config.Levels) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoLevelsDefined)
	}

	if config.Levels[0].Level != 1 || config.Levels[0].MinXP != 0 {
		return fmt.Errorf(ErrFmtLevelTableStartsHigh, ErrInvalidConfig)
	}

	seen := make(map[int]bool, len(config.Levels))
	prevMinXP := -1

	for i := range config.Levels {
		lvl := &config.Levels[i]

		if seen[lvl.Level] {
			return fmt.Errorf(ErrFmtLevelDuplicate, ErrInvalidConfig, lvl.Level)
		}
		seen[lvl.Level] = true

		if lvl.Title == "" {
			return fmt.Errorf(ErrFmtLevelEmptyTitle, ErrInvalidConfig, lvl.Level)
		}
		if lvl.MinXP < 0 {
			return fmt.Errorf(ErrFmtLevelNegativeMinXP, ErrInvalidConfig, lvl.Level)
		}
		if lvl.MinXP <= prevMinXP {
			return fmt.Errorf(ErrFmtLevelNonMonotonicXP, ErrInvalidConfig, lvl.Level, lvl.MinXP)
		}
		prevMinXP = lvl.MinXP
	}

	return nil
}
