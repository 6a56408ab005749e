package feed

// Pagination bounds
const (
	// DefaultLimit is the page size when the caller does not specify one
	DefaultLimit = 20

	// MaxLimit caps the page size regardless of what the caller asks for
	MaxLimit = 100
)

// SimulatedLevelUpIntervalDays spaces synthesized level-up entries: level N
// is shown as reached N-1 weeks after the contributor joined. The record
// format keeps no level history, so the feed approximates it.
const SimulatedLevelUpIntervalDays = 7

// ==================== Message Formats ====================

const (
	MsgFmtBadgeAwarded    = "%s earned the %s badge %s"
	MsgFmtLevelUp         = "%s reached Level %d — %s"
	MsgFmtStreakMilestone = "%s is on a %d-day contribution streak 🔥"
)

// ==================== Error Messages ====================

const (
	ErrMsgListContributors = "failed to list contributors: %w"
)
