package report

import (
	"fmt"
	"math"
	"time"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/domain"
)

// Kind selects the report layout during rendering.
type Kind string

const (
	KindDaily    Kind = "daily"
	KindSummary  Kind = "summary"
	KindChannels Kind = "channels"
)

// Mood is the five-way judgment of a whole window. Its scale
// (±0.02 / ±0.1) is intentionally coarser than the ±0.05 per-message label
// scale: a single message flips polarity easily, the room's mood should not.
type Mood struct {
	Label string
	Emoji string
	Color int
}

// MoodFor maps a count-weighted overall score to a mood.
func MoodFor(overall float64) Mood {
	switch {
	case overall > 0.1:
		return Mood{Label: "Very Positive", Emoji: "😄", Color: 0x2ecc71}
	case overall > 0.02:
		return Mood{Label: "Positive", Emoji: "🙂", Color: 0x27ae60}
	case overall < -0.1:
		return Mood{Label: "Very Negative", Emoji: "😠", Color: 0xe74c3c}
	case overall < -0.02:
		return Mood{Label: "Negative", Emoji: "😕", Color: 0xc0392b}
	default:
		return Mood{Label: "Neutral", Emoji: "😐", Color: 0xf39c12}
	}
}

// Report is the immutable result of report assembly. Empty line slices mean
// "no data"; Render substitutes the explicit fallback text per section.
type Report struct {
	Kind         Kind
	GeneratedAt  time.Time
	WindowDays   int
	Mood         Mood
	Color        int
	OverallScore float64
	MessageCount int

	BreakdownBars []string
	TrendLines    []string
	ChannelLines  []string
	UserLines     []string
}

// Overall computes the count-weighted average of per-label averages:
// Σ(avg_i × count_i) / Σ count_i. This equals the unweighted mean over all
// raw scores in the window without a second full scan. A zero total yields
// zero.
func Overall(summary []domain.LabelSummary) (score float64, total int) {
	weighted := 0.0
	for _, s := range summary {
		weighted += s.AvgScore * float64(s.Count)
		total += s.Count
	}
	if total == 0 {
		return 0, 0
	}
	return weighted / float64(total), total
}

const barScale = 20 // filled+empty blocks per bar

// Bar renders one breakdown bar against the fixed 20-unit scale. A zero
// total yields an empty string; the caller's section fallback takes over.
func Bar(value, total int, marker string) string {
	if total == 0 {
		return ""
	}
	pct := int(math.Round(100 * float64(value) / float64(total)))
	filled := int(math.Round(float64(pct) / 5))
	if filled > barScale {
		filled = barScale
	}

	bar := ""
	for i := 0; i < barScale; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return fmt.Sprintf("%s %s %d%% (%d)", marker, bar, pct, value)
}

// direction keys the arrow off the same ±0.05 threshold as the per-message
// labels, keeping event labels and report arrows visually consistent.
func direction(avg float64) string {
	switch {
	case avg > domain.LabelThreshold:
		return "📈"
	case avg < -domain.LabelThreshold:
		return "📉"
	default:
		return "➡️"
	}
}

func channelMarker(avg float64) string {
	switch {
	case avg > domain.LabelThreshold:
		return "🟢"
	case avg < -domain.LabelThreshold:
		return "🔴"
	default:
		return "🟡"
	}
}

func userMarker(avg float64) string {
	switch {
	case avg > domain.LabelThreshold:
		return "😊"
	case avg < -domain.LabelThreshold:
		return "😤"
	default:
		return "😐"
	}
}

func signedScore(avg float64) string {
	if avg > 0 {
		return fmt.Sprintf("+%.3f", avg)
	}
	return fmt.Sprintf("%.3f", avg)
}

func trendLines(trend []domain.TrendPoint) []string {
	lines := make([]string, 0, len(trend))
	for _, p := range trend {
		lines = append(lines, fmt.Sprintf("%s `%s` — Score: `%s` · %d msgs",
			direction(p.AvgScore), p.Date.Format("2006-01-02"), signedScore(p.AvgScore), p.MessageCount))
	}
	return lines
}

func channelLines(channels []domain.ChannelStat) []string {
	lines := make([]string, 0, len(channels))
	for _, c := range channels {
		lines = append(lines, fmt.Sprintf("%s **#%s** — `%.3f` · %d msgs",
			channelMarker(c.AvgScore), c.ChannelName, c.AvgScore, c.MessageCount))
	}
	return lines
}

const dailyTopUsers = 3

func userLines(users []domain.UserStat) []string {
	if len(users) > dailyTopUsers {
		users = users[:dailyTopUsers]
	}
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("%s **%s** — avg: `%.3f` · %d msgs",
			userMarker(u.AvgScore), u.Username, u.AvgScore, u.MessageCount))
	}
	return lines
}

func labelDot(label domain.Label) string {
	switch label {
	case domain.LabelPositive:
		return "🟢"
	case domain.LabelNegative:
		return "🔴"
	default:
		return "🟡"
	}
}

// BuildDaily assembles the full daily report from one day of aggregates plus
// the seven-day trend.
func BuildDaily(now time.Time, summary []domain.LabelSummary, trend []domain.TrendPoint, channels []domain.ChannelStat, users []domain.UserStat, messageCount int) Report {
	overall, total := Overall(summary)
	mood := MoodFor(overall)

	var bars []string
	if total > 0 {
		counts := map[domain.Label]int{}
		for _, s := range summary {
			counts[s.Label] = s.Count
		}
		bars = []string{
			Bar(counts[domain.LabelPositive], total, "🟢"),
			Bar(counts[domain.LabelNeutral], total, "🟡"),
			Bar(counts[domain.LabelNegative], total, "🔴"),
		}
	}

	return Report{
		Kind:          KindDaily,
		GeneratedAt:   now,
		WindowDays:    1,
		Mood:          mood,
		Color:         mood.Color,
		OverallScore:  overall,
		MessageCount:  messageCount,
		BreakdownBars: bars,
		TrendLines:    trendLines(trend),
		ChannelLines:  channelLines(channels),
		UserLines:     userLines(users),
	}
}

// BuildSummary assembles the on-demand breakdown+trend report. The embed
// color follows the three-way ±0.05 scale, as the summary is a direct view
// of the label data rather than a mood judgment.
func BuildSummary(now time.Time, days int, summary []domain.LabelSummary, trend []domain.TrendPoint) Report {
	overall, total := Overall(summary)

	lines := make([]string, 0, len(summary))
	for _, s := range summary {
		lines = append(lines, fmt.Sprintf("%s **%s**: %d messages (avg: `%.3f`)",
			labelDot(s.Label), s.Label, s.Count, s.AvgScore))
	}

	color := 0xf39c12
	if overall > domain.LabelThreshold {
		color = 0x2ecc71
	} else if overall < -domain.LabelThreshold {
		color = 0xe74c3c
	}

	return Report{
		Kind:          KindSummary,
		GeneratedAt:   now,
		WindowDays:    days,
		Color:         color,
		OverallScore:  overall,
		MessageCount:  total,
		BreakdownBars: lines,
		TrendLines:    trendLines(trend),
	}
}

// BuildChannels assembles the per-channel report.
func BuildChannels(now time.Time, days int, channels []domain.ChannelStat) Report {
	count := 0
	for _, c := range channels {
		count += c.MessageCount
	}

	return Report{
		Kind:         KindChannels,
		GeneratedAt:  now,
		WindowDays:   days,
		Color:        0x5865f2,
		MessageCount: count,
		ChannelLines: channelLines(channels),
	}
}
