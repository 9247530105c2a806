package report

import (
	"fmt"
	"strings"
	"time"
)

// Section is one named block of a rendered message.
type Section struct {
	Name   string
	Value  string
	Inline bool
}

// Message is the transport-agnostic rendering of a Report. The chat adapter
// maps it onto whatever embed/markup format the platform offers.
type Message struct {
	Title       string
	Description string
	Color       int
	Sections    []Section
	Footer      string
	Timestamp   time.Time
}

// Explicit fallback texts. A sub-section with no data always renders one of
// these; sections are never omitted.
const (
	NoBreakdownData = "No messages tracked today."
	NoTrendData     = "Not enough data yet."
	NoChannelData   = "No channel data available."
	NoUserData      = "Not enough user data yet (min. 3 messages required)."
	NoSummaryData   = "No data"
)

func orFallback(lines []string, fallback string) string {
	if len(lines) == 0 {
		return fallback
	}
	return strings.Join(lines, "\n")
}

// Render maps a Report to its Message layout. Pure function; safe to call
// repeatedly on the same Report.
func Render(r Report) Message {
	switch r.Kind {
	case KindSummary:
		return renderSummary(r)
	case KindChannels:
		return renderChannels(r)
	default:
		return renderDaily(r)
	}
}

func renderDaily(r Report) Message {
	return Message{
		Title: fmt.Sprintf("%s Daily Sentiment Report — %s", r.Mood.Emoji, r.Mood.Label),
		Description: fmt.Sprintf("**%s**\nOverall community score: `%.3f` · %d messages analyzed",
			r.GeneratedAt.Format("Monday, January 2, 2006"), r.OverallScore, r.MessageCount),
		Color: r.Color,
		Sections: []Section{
			{Name: "📊 Sentiment Breakdown", Value: "```\n" + orFallback(r.BreakdownBars, NoBreakdownData) + "\n```"},
			{Name: "📅 7-Day Trend", Value: orFallback(r.TrendLines, NoTrendData)},
			{Name: "📡 Top Channels (Today)", Value: orFallback(r.ChannelLines, NoChannelData), Inline: true},
			{Name: "👥 Top Members (Today)", Value: orFallback(r.UserLines, NoUserData), Inline: true},
		},
		Footer:    "Sentiment Bot • Tracking community vibes daily",
		Timestamp: r.GeneratedAt,
	}
}

func renderSummary(r Report) Message {
	return Message{
		Title: fmt.Sprintf("📊 Sentiment Summary — Last %s", dayWord(r.WindowDays)),
		Color: r.Color,
		Sections: []Section{
			{Name: "Breakdown", Value: orFallback(r.BreakdownBars, NoSummaryData)},
			{Name: "Trend", Value: orFallback(r.TrendLines, NoSummaryData)},
		},
		Footer:    fmt.Sprintf("Total messages analyzed: %d", r.MessageCount),
		Timestamp: r.GeneratedAt,
	}
}

func renderChannels(r Report) Message {
	return Message{
		Title:       fmt.Sprintf("📡 Channel Sentiment — Last %s", dayWord(r.WindowDays)),
		Description: orFallback(r.ChannelLines, NoChannelData),
		Color:       r.Color,
		Timestamp:   r.GeneratedAt,
	}
}

func dayWord(days int) string {
	if days == 1 {
		return "1 Day"
	}
	return fmt.Sprintf("%d Days", days)
}
