package domain

import "time"

// ActivityType classifies a feed entry
type ActivityType string

const (
	ActivityBadgeAwarded     ActivityType = "badge_awarded"
	ActivityLevelUp          ActivityType = "level_up"
	ActivityStreakMilestone  ActivityType = "streak_milestone"
	ActivityProjectSubmitted ActivityType = "project_submitted"
)

// ActivityItem is a feed entry synthesized on read from contributor history.
// Items are never persisted; IDs are stable only within one response.
type ActivityItem struct {
	ID           string                 `json:"id"`
	Type         ActivityType           `json:"type"`
	Username     string                 `json:"username"`
	Timestamp    time.Time              `json:"timestamp"`
	Message      string                 `json:"message"`
	RelativeTime string                 `json:"relativeTime"`
	Avatar       string                 `json:"avatar"`
	Payload      map[string]interface{} `json:"payload,omitempty"`
}

// FeedStats summarizes the synthesized feed before pagination
type FeedStats struct {
	Contributors     int `json:"contributors"`
	BadgesAwarded    int `json:"badgesAwarded"`
	LevelUps         int `json:"levelUps"`
	StreakMilestones int `json:"streakMilestones"`
}

// SnapshotStats summarizes the full badge/XP listing
type SnapshotStats struct {
	TotalContributors int `json:"totalContributors"`
	TotalBadges       int `json:"totalBadges"`
	TotalXP           int `json:"totalXP"`
}
