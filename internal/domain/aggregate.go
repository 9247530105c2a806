package domain

import "time"

// Aggregate rows are pure projections recomputed per query. None of them are
// persisted, and every consumer must tolerate an empty slice (no events in
// the requested window).

// LabelSummary is one label's share of the window.
type LabelSummary struct {
	Label    Label
	Count    int
	AvgScore float64
}

// TrendPoint is one day's average within a trailing window.
type TrendPoint struct {
	Date         time.Time
	AvgScore     float64
	MessageCount int
}

// ChannelStat is a per-channel rollup. Grouping happens on ChannelID;
// ChannelName is carried along for presentation only.
type ChannelStat struct {
	ChannelID    string
	ChannelName  string
	AvgScore     float64
	MessageCount int
}

// UserStat is a per-user rollup. Grouping happens on UserID; Username is
// carried along for presentation only.
type UserStat struct {
	UserID        string
	Username      string
	AvgScore      float64
	MessageCount  int
	PositiveCount int
	NegativeCount int
}
