package config

const (
	// Gamification storage defaults
	DefaultBadgesDir        = "community/badges"
	DefaultBadgeImagesDir   = "community/badge-images"
	DefaultContributorsFile = "community/CONTRIBUTORS.md"

	// Configuration file paths
	DefaultConfigsDir    = "configs"
	ConfigFileBadgeCat   = "badges.json"
	ConfigFileLevelTable = "levels.json"
)
