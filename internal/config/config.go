// Package config loads environment-based configuration.
package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultReportCron fires the daily report at 09:00 server time.
const DefaultReportCron = "0 9 * * *"

type Config struct {
	AppEnv string
	Port   string

	DiscordToken    string
	GuildID         string
	ReportChannelID string
	IgnoredChannels []string

	DatabaseURL string

	ReportCron string

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "3000"),
		DiscordToken:    getEnv("DISCORD_TOKEN", ""),
		GuildID:         getEnv("GUILD_ID", ""),
		ReportChannelID: getEnv("REPORT_CHANNEL_ID", ""),
		IgnoredChannels: splitList(getEnv("IGNORED_CHANNELS", "")),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		ReportCron:      getEnv("REPORT_CRON", DefaultReportCron),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.GuildID == "" {
		return nil, fmt.Errorf("GUILD_ID is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
