package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/report"
)

func TestToEmbed(t *testing.T) {
	generated := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	msg := report.Message{
		Title:       "😄 Daily Sentiment Report — Very Positive",
		Description: "Overall community score: `0.150`",
		Color:       0x2ecc71,
		Sections: []report.Section{
			{Name: "📊 Sentiment Breakdown", Value: "bars"},
			{Name: "📡 Top Channels (Today)", Value: "channels", Inline: true},
		},
		Footer:    "Sentiment Bot • Tracking community vibes daily",
		Timestamp: generated,
	}

	embed := toEmbed(msg)

	assert.Equal(t, msg.Title, embed.Title)
	assert.Equal(t, msg.Description, embed.Description)
	assert.Equal(t, msg.Color, embed.Color)

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "📊 Sentiment Breakdown", embed.Fields[0].Name)
	assert.False(t, embed.Fields[0].Inline)
	assert.True(t, embed.Fields[1].Inline)

	require.NotNil(t, embed.Footer)
	assert.Equal(t, msg.Footer, embed.Footer.Text)
	assert.Equal(t, "2026-08-30T09:00:00Z", embed.Timestamp)
}

func TestToEmbed_OmitsEmptyFooterAndTimestamp(t *testing.T) {
	embed := toEmbed(report.Message{Title: "📊 Sentiment Summary — Last 7 Days"})

	assert.Nil(t, embed.Footer)
	assert.Empty(t, embed.Timestamp)
	assert.Empty(t, embed.Fields)
}
