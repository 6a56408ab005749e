package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string
	LogDir   string
	APIKey   string // API key for admin endpoints

	// Postgres (projects, community events)
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Gamification store and display artifacts
	BadgesDir        string // one JSON record per username
	BadgeImagesDir   string // generated SVG artifacts
	ContributorsFile string // markdown contributors table
	ConfigsDir       string // badge catalog and level table overrides

	// Outbound integrations
	WebhookURL      string // Discord webhook; empty disables announcements
	GithubToken     string
	GithubOwnerRepo string // "owner/repo" for top-contributor scoring

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		LogDir:     getEnv("LOG_DIR", "logs"),
		APIKey:     getEnv("API_KEY", ""),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "funckode"),

		BadgesDir:        getEnv("BADGES_DIR", DefaultBadgesDir),
		BadgeImagesDir:   getEnv("BADGE_IMAGES_DIR", DefaultBadgeImagesDir),
		ContributorsFile: getEnv("CONTRIBUTORS_FILE", DefaultContributorsFile),
		ConfigsDir:       getEnv("CONFIGS_DIR", DefaultConfigsDir),

		WebhookURL:      getEnv("DISCORD_WEBHOOK_URL", ""),
		GithubToken:     getEnv("GITHUB_TOKEN", ""),
		GithubOwnerRepo: getEnv("GITHUB_OWNER_REPO", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadCLI loads the subset of configuration the command line tools need.
// Unlike Load it does not require API_KEY or a valid PORT, since the CLI
// surfaces never serve HTTP.
func LoadCLI() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		LogDir:   getEnv("LOG_DIR", "logs"),

		BadgesDir:        getEnv("BADGES_DIR", DefaultBadgesDir),
		BadgeImagesDir:   getEnv("BADGE_IMAGES_DIR", DefaultBadgeImagesDir),
		ContributorsFile: getEnv("CONTRIBUTORS_FILE", DefaultContributorsFile),
		ConfigsDir:       getEnv("CONFIGS_DIR", DefaultConfigsDir),

		WebhookURL:      getEnv("DISCORD_WEBHOOK_URL", ""),
		GithubToken:     getEnv("GITHUB_TOKEN", ""),
		GithubOwnerRepo: getEnv("GITHUB_OWNER_REPO", ""),
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
