package domain

// Contributor is the per-user gamification record persisted as one JSON
// document per username. XP and level are derived from the badge list and
// recomputed on every change; the stored values are a cache for readers.
type Contributor struct {
	Username           string       `json:"username"`
	Badges             []BadgeAward `json:"badges"`
	TotalContributions int          `json:"totalContributions"`
	JoinDate           Date         `json:"joinDate"`
	XP                 int          `json:"xp"`
	Level              int          `json:"level"`
	Streak             int          `json:"streak"`
	LastContribution   Date         `json:"lastContribution"`
	Specialties        []string     `json:"specialties"`
}

// NewContributor creates a record for a previously unseen username.
// Defaults per the record lifecycle: no badges, level 1, streak 1,
// today as both join and last-contribution date.
func NewContributor(username string, today Date) *Contributor {
	return &Contributor{
		Username:         username,
		Badges:           []BadgeAward{},
		JoinDate:         today,
		Level:            1,
		Streak:           1,
		LastContribution: today,
		Specialties:      []string{},
	}
}

// CountBadges returns how many awards of the given type the record holds
func (c *Contributor) CountBadges(t BadgeType) int {
	n := 0
	for _, b := range c.Badges {
		if b.Type == t {
			n++
		}
	}
	return n
}

// HasBadge reports whether at least one award of the given type exists
func (c *Contributor) HasBadge(t BadgeType) bool {
	return c.CountBadges(t) > 0
}

// AvatarURL returns the contributor's GitHub avatar URL
func (c *Contributor) AvatarURL() string {
	return "https://github.com/" + c.Username + ".png"
}
