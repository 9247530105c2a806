package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/domain"
)

var testNow = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

func TestOverall_WeightedAverage(t *testing.T) {
	// Grouped form of raw scores {0.2, 0.4, -0.6}: the weighted average of
	// per-label averages must equal the plain mean of the raw scores.
	summary := []domain.LabelSummary{
		{Label: domain.LabelPositive, Count: 2, AvgScore: 0.3},
		{Label: domain.LabelNegative, Count: 1, AvgScore: -0.6},
	}

	overall, total := Overall(summary)
	assert.Equal(t, 3, total)
	assert.InDelta(t, (0.2+0.4-0.6)/3, overall, 1e-9)
}

func TestOverall_Empty(t *testing.T) {
	overall, total := Overall(nil)
	assert.Zero(t, overall)
	assert.Zero(t, total)
}

func TestMoodFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, "Very Positive"},
		{0.11, "Very Positive"},
		{0.1, "Positive"},
		{0.021, "Positive"},
		{0.02, "Neutral"},
		{0, "Neutral"},
		{-0.02, "Neutral"},
		{-0.021, "Negative"},
		{-0.1, "Negative"},
		{-0.11, "Very Negative"},
		{-0.5, "Very Negative"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MoodFor(tt.score).Label, "score %v", tt.score)
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", Bar(0, 0, "🟢"), "zero total must never render a bar")
	assert.Equal(t, "", Bar(5, 0, "🟢"))

	half := Bar(5, 10, "🟢")
	assert.Contains(t, half, "🟢 ")
	assert.Contains(t, half, " 50% (5)")
	assert.Equal(t, 10, countRune(half, '█'))
	assert.Equal(t, 10, countRune(half, '░'))

	full := Bar(10, 10, "🔴")
	assert.Contains(t, full, " 100% (10)")
	assert.Equal(t, 20, countRune(full, '█'))
	assert.Equal(t, 0, countRune(full, '░'))

	third := Bar(1, 3, "🟡")
	assert.Contains(t, third, " 33% (1)")
	assert.Equal(t, 7, countRune(third, '█'))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestBuildDaily_MixedDay(t *testing.T) {
	// One positive, one negative, one neutral message on a single day.
	summary := []domain.LabelSummary{
		{Label: domain.LabelPositive, Count: 1, AvgScore: 0.2},
		{Label: domain.LabelNegative, Count: 1, AvgScore: -0.3},
		{Label: domain.LabelNeutral, Count: 1, AvgScore: 0.01},
	}

	r := BuildDaily(testNow, summary, nil, nil, nil, 3)

	assert.InDelta(t, -0.03, r.OverallScore, 1e-9)
	// -0.03 sits between -0.02 and -0.1: Negative, not Very Negative.
	assert.Equal(t, "Negative", r.Mood.Label)
	assert.Equal(t, 3, r.MessageCount)

	assert.Len(t, r.BreakdownBars, 3)
	for _, bar := range r.BreakdownBars {
		assert.Contains(t, bar, "33% (1)")
	}
}

func TestBuildDaily_Empty(t *testing.T) {
	r := BuildDaily(testNow, nil, nil, nil, nil, 0)

	assert.Zero(t, r.OverallScore)
	assert.Equal(t, "Neutral", r.Mood.Label)
	assert.Empty(t, r.BreakdownBars)
	assert.Empty(t, r.TrendLines)
	assert.Empty(t, r.ChannelLines)
	assert.Empty(t, r.UserLines)
}

func TestBuildDaily_TopUsersCapped(t *testing.T) {
	users := []domain.UserStat{
		{Username: "a", AvgScore: 0.5, MessageCount: 5},
		{Username: "b", AvgScore: 0.4, MessageCount: 4},
		{Username: "c", AvgScore: 0.3, MessageCount: 3},
		{Username: "d", AvgScore: 0.2, MessageCount: 3},
	}

	r := BuildDaily(testNow, nil, nil, nil, users, 0)
	assert.Len(t, r.UserLines, 3)
	assert.Contains(t, r.UserLines[0], "**a**")
}

func TestBuildDaily_DirectionMarkers(t *testing.T) {
	trend := []domain.TrendPoint{
		{Date: testNow.AddDate(0, 0, -2), AvgScore: 0.2, MessageCount: 4},
		{Date: testNow.AddDate(0, 0, -1), AvgScore: -0.2, MessageCount: 4},
		{Date: testNow, AvgScore: 0.01, MessageCount: 4},
	}

	r := BuildDaily(testNow, nil, trend, nil, nil, 0)

	assert.Contains(t, r.TrendLines[0], "📈")
	assert.Contains(t, r.TrendLines[0], "+0.200")
	assert.Contains(t, r.TrendLines[1], "📉")
	assert.Contains(t, r.TrendLines[1], "-0.200")
	assert.Contains(t, r.TrendLines[2], "➡️")
}

func TestBuildSummary(t *testing.T) {
	summary := []domain.LabelSummary{
		{Label: domain.LabelPositive, Count: 10, AvgScore: 0.3},
		{Label: domain.LabelNeutral, Count: 5, AvgScore: 0.0},
	}

	r := BuildSummary(testNow, 7, summary, nil)

	assert.Equal(t, KindSummary, r.Kind)
	assert.Equal(t, 7, r.WindowDays)
	assert.Equal(t, 15, r.MessageCount)
	assert.InDelta(t, 3.0/15.0, r.OverallScore, 1e-9)
	assert.Equal(t, 0x2ecc71, r.Color)

	assert.Contains(t, r.BreakdownBars[0], "**positive**: 10 messages")
	assert.Contains(t, r.BreakdownBars[1], "**neutral**: 5 messages")
}

func TestBuildSummary_NegativeColor(t *testing.T) {
	summary := []domain.LabelSummary{
		{Label: domain.LabelNegative, Count: 4, AvgScore: -0.4},
	}

	r := BuildSummary(testNow, 1, summary, nil)
	assert.Equal(t, 0xe74c3c, r.Color)
}

func TestBuildChannels(t *testing.T) {
	channels := []domain.ChannelStat{
		{ChannelID: "1", ChannelName: "general", AvgScore: 0.2, MessageCount: 12},
		{ChannelID: "2", ChannelName: "rants", AvgScore: -0.3, MessageCount: 8},
	}

	r := BuildChannels(testNow, 1, channels)

	assert.Equal(t, KindChannels, r.Kind)
	assert.Equal(t, 20, r.MessageCount)
	assert.Contains(t, r.ChannelLines[0], "🟢 **#general**")
	assert.Contains(t, r.ChannelLines[1], "🔴 **#rants**")
}
