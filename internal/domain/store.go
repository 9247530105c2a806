package domain

import (
	"context"
	"errors"
)

// ErrInvalidWindow is returned by store reads when the requested trailing
// window is shorter than one day.
var ErrInvalidWindow = errors.New("window must be at least one day")

// EventStore is the persistence boundary of the pipeline. Append is
// fire-and-forget from the ingestion path's perspective: a failed insert is
// logged and counted, the event is dropped, and ingestion continues. All
// reads are keyed by a trailing-days window, evaluated against the store's
// injected clock at query time (created_at >= now - days, inclusive).
type EventStore interface {
	Append(ctx context.Context, event SentimentEvent) error

	// SummaryByLabel returns per-label counts and averages, busiest first.
	SummaryByLabel(ctx context.Context, days int) ([]LabelSummary, error)

	// DailyTrend returns one point per calendar day, oldest first.
	DailyTrend(ctx context.Context, days int) ([]TrendPoint, error)

	// ByChannel returns the busiest channels in the window, at most ten.
	ByChannel(ctx context.Context, days int) ([]ChannelStat, error)

	// ByUser returns the highest-scoring users in the window, at most five,
	// excluding users with fewer than three messages so single-message
	// outliers cannot top the ranking.
	ByUser(ctx context.Context, days int) ([]UserStat, error)

	// CountSince returns the number of events in the window.
	CountSince(ctx context.Context, days int) (int, error)
}
