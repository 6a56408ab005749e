package gamification

import "time"

// Contributor read cache sizing
const (
	// ContributorCacheSize is the maximum number of cached contributor records
	ContributorCacheSize = 500

	// ContributorCacheTTL is the time-to-live for cached contributor records
	ContributorCacheTTL = 5 * time.Minute
)

// ==================== Error Messages ====================

const (
	ErrMsgUsernameRequired  = "username is required"
	ErrMsgBadgeTypeRequired = "badge type is required"
	ErrMsgLoadRecordFailed  = "failed to load contributor record: %w"
	ErrMsgSaveRecordFailed  = "failed to save contributor record: %w"
	ErrMsgListRecordsFailed = "failed to list contributor records: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBadgeAwarded         = "Badge awarded"
	LogMsgDuplicateBadge       = "Duplicate badge award skipped"
	LogMsgNewContributor       = "Created new contributor record"
	LogMsgMilestoneAwarded     = "Milestone badge awarded"
	LogMsgLevelUp              = "Contributor leveled up"
	LogMsgStreakExtended       = "Contribution streak extended"
	LogMsgStreakReset          = "Contribution streak reset"
	LogMsgStreakClockSkew      = "Last contribution is in the future, leaving streak untouched"
	LogMsgEventPublishFailed   = "Failed to publish gamification event"
	LogMsgUnknownBadgeFallback = "Badge type missing from catalog, counting fallback XP"
)
