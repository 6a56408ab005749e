package domain

import "time"

// BadgeType identifies a kind of badge in the catalog
type BadgeType string

// Badge type constants - stable identifiers used in persisted records
const (
	BadgeFirstPR            BadgeType = "first_pr"
	BadgeCodeReviewer       BadgeType = "code_reviewer"
	BadgeIssueResolver      BadgeType = "issue_resolver"
	BadgeEventParticipation BadgeType = "event_participation"
	BadgeProjectSubmitted   BadgeType = "project_submitted"
	BadgePRMaster           BadgeType = "pr_master"
	BadgeIssueHunter        BadgeType = "issue_hunter"
	BadgeCommunityChampion  BadgeType = "community_champion"
	BadgeStreakWarrior      BadgeType = "streak_warrior"
	BadgeTopContributor     BadgeType = "top_contributor"
)

// Rarity classifies how hard a badge is to earn
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Evidence map keys for badge awards
const (
	EvidencePRNumber    = "pr_number"
	EvidenceIssueNumber = "issue_number"
	EvidenceEventName   = "event_name"
	EvidenceMonth       = "month"
	EvidenceScore       = "score"
)

// BadgeDefinition is a static catalog entry describing one badge kind.
// Definitions are immutable once loaded.
type BadgeDefinition struct {
	ID          BadgeType `json:"id"`
	DisplayName string    `json:"displayName"`
	Emoji       string    `json:"emoji"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	XPValue     int       `json:"xpValue"`
	Rarity      Rarity    `json:"rarity"`
	// Repeatable badges may be awarded to the same contributor more than once
	Repeatable bool `json:"repeatable,omitempty"`
}

// BadgeAward is one earned badge on a contributor record.
// Immutable after creation; belongs to exactly one contributor.
type BadgeAward struct {
	Type      BadgeType              `json:"type"`
	AwardedAt time.Time              `json:"awardedAt"`
	Evidence  map[string]interface{} `json:"evidence,omitempty"`
}

// EvidenceInt extracts a numeric evidence value, tolerating the float64 form
// that JSON round-trips produce.
func (a BadgeAward) EvidenceInt(key string) (int, bool) {
	if a.Evidence == nil {
		return 0, false
	}
	switch v := a.Evidence[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
