package feed

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/funckode/funckode/internal/domain"
)

var titleCaser = cases.Title(language.English)

// badgeDisplay resolves the display name and emoji for a badge type,
// title-casing the raw identifier when the catalog does not know it
func (s *service) badgeDisplay(t domain.BadgeType) (string, string) {
	if def, ok := s.catalog.Definition(t); ok {
		return def.DisplayName, def.Emoji
	}
	return titleCaser.String(strings.ReplaceAll(string(t), "_", " ")), ""
}

func (s *service) badgeMessage(username string, t domain.BadgeType) string {
	name, emoji := s.badgeDisplay(t)
	return strings.TrimSpace(fmt.Sprintf(MsgFmtBadgeAwarded, username, name, emoji))
}

func (s *service) levelUpMessage(username string, level int) string {
	title := ""
	if def, ok := s.catalog.LevelDefinitionFor(level); ok {
		title = def.Title
	}
	return fmt.Sprintf(MsgFmtLevelUp, username, level, title)
}

func streakMessage(username string, streak int) string {
	return fmt.Sprintf(MsgFmtStreakMilestone, username, streak)
}

// formatRelativeTime renders a coarse human offset ("3 hours ago").
// Future timestamps clamp to "just now" rather than going negative.
func formatRelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}

	switch {
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/(24*7)), "week")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
