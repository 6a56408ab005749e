package domain

// AwardResult reports the full effect of one badge award, including any
// milestone badges that cascaded from it in the same pass.
type AwardResult struct {
	Username        string      `json:"username"`
	Badge           BadgeType   `json:"badge"`
	MilestoneBadges []BadgeType `json:"milestoneBadges,omitempty"`
	XPAwarded       int         `json:"xpAwarded"`
	TotalXP         int         `json:"totalXP"`
	OldLevel        int         `json:"oldLevel"`
	NewLevel        int         `json:"newLevel"`
	LeveledUp       bool        `json:"leveledUp"`
	Streak          int         `json:"streak"`
	NewContributor  bool        `json:"newContributor"`
	Duplicate       bool        `json:"duplicate"`
}
