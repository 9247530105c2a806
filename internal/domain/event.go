package domain

import "time"

// Label is the three-way sentiment polarity assigned to a single message.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// LabelThreshold is the comparative-score magnitude separating positive and
// negative messages from neutral ones. The report package keys its
// directional markers off the same constant so event labels and report
// arrows never disagree. Note: the five-way report mood scale in the report
// package is intentionally coarser than this per-message scale.
const LabelThreshold = 0.05

// LabelFor maps a comparative score to its label. An event's label must
// always equal LabelFor of its score; the two are never set independently.
func LabelFor(score float64) Label {
	switch {
	case score > LabelThreshold:
		return LabelPositive
	case score < -LabelThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Measurement is the scorer's output for one cleaned message.
type Measurement struct {
	Score float64
	Label Label
}

// SentimentEvent is one scored chat message. Immutable once written; the
// event store owns persistence, everything else only reads.
type SentimentEvent struct {
	UserID      string
	Username    string
	ChannelID   string
	ChannelName string // denormalized at write time, may go stale on rename
	Score       float64
	Label       Label
	CreatedAt   time.Time // UTC
}

// InboundMessage is the raw tuple delivered by the chat platform layer.
type InboundMessage struct {
	AuthorID    string
	AuthorIsBot bool
	Username    string
	ChannelID   string
	ChannelName string
	Content     string
}
