package domain

// Top-contributor scoring weights, applied to the previous calendar month
const (
	ScoreMergedPR    = 3
	ScoreClosedIssue = 1
	ScorePRReview    = 2

	// MinTopContributorScore is the floor below which no monthly badge is awarded
	MinTopContributorScore = 3
)

// Streak milestone cadence: the feed surfaces a streak entry at every
// multiple of seven days
const StreakMilestoneInterval = 7

// StreakWarriorThreshold is the consecutive-day streak that earns streak_warrior
const StreakWarriorThreshold = 30

// Milestone thresholds over accumulated badge counts
const (
	PRMasterThreshold          = 10
	IssueHunterThreshold       = 25
	CommunityChampionThreshold = 5
)

// UnknownBadgeXP is the lenient fallback XP for badge types missing from the
// catalog. Kept at 1 for compatibility with previously persisted records.
const UnknownBadgeXP = 1
