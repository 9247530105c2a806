package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GUILD_ID", "guild")
	t.Setenv("DATABASE_URL", "postgres://localhost/sentiment")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DefaultReportCron, cfg.ReportCron)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.ReportChannelID)
	assert.Empty(t, cfg.IgnoredChannels)
}

func TestLoad_RequiredVariables(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{"missing token", "DISCORD_TOKEN"},
		{"missing guild", "GUILD_ID"},
		{"missing database", "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.missing, "")

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("REPORT_CHANNEL_ID", "123456")
	t.Setenv("REPORT_CRON", "30 18 * * *")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "123456", cfg.ReportChannelID)
	assert.Equal(t, "30 18 * * *", cfg.ReportCron)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_IgnoredChannelsList(t *testing.T) {
	setRequired(t)
	t.Setenv("IGNORED_CHANNELS", "111, 222 ,,333")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222", "333"}, cfg.IgnoredChannels)
}
