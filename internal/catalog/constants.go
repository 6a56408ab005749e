package catalog

// ==================== Configuration File Names ====================

const (
	// BadgesConfigFileName is the name of the badge catalog file
	BadgesConfigFileName = "badges.json"
	// LevelsConfigFileName is the name of the level table file
	LevelsConfigFileName = "levels.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadBadgesFailed  = "failed to read badge catalog file: %w"
	ErrMsgParseBadgesFailed = "failed to parse badge catalog: %w"
	ErrMsgReadLevelsFailed  = "failed to read level table file: %w"
	ErrMsgParseLevelsFailed = "failed to parse level table: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgBadgeConfigNil  = "badge config is nil"
	ErrMsgNoBadgesDefined = "no badges defined"
	ErrMsgLevelConfigNil  = "level config is nil"
	ErrMsgNoLevelsDefined = "no levels defined"
)

// ==================== Log Messages ====================

const (
	LogMsgBadgesLoaded      = "Badge catalog loaded"
	LogMsgLevelsLoaded      = "Level table loaded"
	LogMsgUsingEmbedded     = "Config file not found, using embedded defaults"
	LogMsgUnknownBadgeValue = "Unknown badge type, using fallback XP value"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtBadgeAtIndexEmpty    = "%w: badge at index %d has empty id"
	ErrFmtBadgeDuplicate       = "%w: '%s'"
	ErrFmtBadgeEmptyDisplay    = "%w: badge '%s' has empty displayName"
	ErrFmtBadgeNegativeXP      = "%w: badge '%s' has negative xpValue"
	ErrFmtBadgeInvalidRarity   = "%w: badge '%s' has unknown rarity '%s'"
	ErrFmtLevelDuplicate       = "%w: level %d defined twice"
	ErrFmtLevelEmptyTitle      = "%w: level %d has empty title"
	ErrFmtLevelNegativeMinXP   = "%w: level %d has negative minXP"
	ErrFmtLevelNonMonotonicXP  = "%w: level %d minXP %d is not greater than previous"
	ErrFmtLevelTableStartsHigh = "%w: first level must be 1 with minXP 0"
)
