package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/domain"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/filter"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/logging"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/metrics"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/report"
	"github.com/Saturn217/Sentiment-Community-Bot/internal/sentiment"
)

const (
	summaryWindowDays = 1
	trendWindowDays   = 7
)

// ReportSink publishes a rendered report to the configured report channel.
type ReportSink interface {
	Publish(ctx context.Context, msg report.Message) error
}

// Service wires the admission filter, scorer, and event store into the
// ingest pipeline and exposes the report entry points.
type Service struct {
	store    domain.EventStore
	analyzer *sentiment.Analyzer
	clock    clockwork.Clock
	ignored  map[string]struct{}
	sink     ReportSink
}

func NewService(store domain.EventStore, analyzer *sentiment.Analyzer, clock clockwork.Clock, ignoredChannels []string) *Service {
	return &Service{
		store:    store,
		analyzer: analyzer,
		clock:    clock,
		ignored:  filter.IgnoreSet(ignoredChannels),
	}
}

// SetSink sets the scheduled-report publisher. Used to resolve the circular
// dependency between the service and the chat adapter (the adapter delivers
// messages into the service but also publishes its reports). Must be called
// before the scheduler starts.
func (s *Service) SetSink(sink ReportSink) {
	s.sink = sink
}

// Ingest runs one raw message through admission, scoring, and persistence.
// A filtered-out message returns (nil, nil): rejection is an expected
// outcome, not an error. A failed store write returns the scored event is
// dropped, the error is logged and counted, and ingestion continues — the
// caller never needs to retry or stop.
func (s *Service) Ingest(ctx context.Context, msg domain.InboundMessage) (*domain.SentimentEvent, error) {
	ctx = logging.WithCorrelationID(ctx, logging.NewCorrelationID())

	cleaned, ok := filter.Admit(msg.Content, msg.AuthorIsBot, msg.ChannelID, s.ignored)
	if !ok {
		metrics.MessagesProcessed.WithLabelValues(metrics.StatusRejected).Inc()
		return nil, nil
	}
	metrics.MessagesProcessed.WithLabelValues(metrics.StatusAdmitted).Inc()

	measurement := s.analyzer.Score(cleaned)
	metrics.ScoreDistribution.Observe(measurement.Score)

	event := domain.SentimentEvent{
		UserID:      msg.AuthorID,
		Username:    msg.Username,
		ChannelID:   msg.ChannelID,
		ChannelName: msg.ChannelName,
		Score:       measurement.Score,
		Label:       measurement.Label,
		CreatedAt:   s.clock.Now().UTC(),
	}

	if err := s.store.Append(ctx, event); err != nil {
		metrics.StoreFailures.WithLabelValues("append").Inc()
		slog.WarnContext(ctx, "Failed to persist sentiment event",
			"channel_id", event.ChannelID, "error", err)
		return nil, fmt.Errorf("failed to persist sentiment event: %w", err)
	}

	slog.DebugContext(ctx, "Sentiment event recorded",
		"channel", event.ChannelName, "score", event.Score, "label", event.Label)
	return &event, nil
}

// SummaryReport builds the breakdown+trend report for a trailing window.
func (s *Service) SummaryReport(ctx context.Context, days int) (*report.Report, error) {
	summary, err := s.store.SummaryByLabel(ctx, days)
	if err != nil {
		metrics.StoreFailures.WithLabelValues("summary_by_label").Inc()
		metrics.ReportsGenerated.WithLabelValues(string(report.KindSummary), metrics.StatusError).Inc()
		return nil, fmt.Errorf("summary query: %w", err)
	}

	trend, err := s.store.DailyTrend(ctx, days)
	if err != nil {
		metrics.StoreFailures.WithLabelValues("daily_trend").Inc()
		metrics.ReportsGenerated.WithLabelValues(string(report.KindSummary), metrics.StatusError).Inc()
		return nil, fmt.Errorf("trend query: %w", err)
	}

	r := report.BuildSummary(s.clock.Now().UTC(), days, summary, trend)
	metrics.ReportsGenerated.WithLabelValues(string(report.KindSummary), metrics.StatusOK).Inc()
	return &r, nil
}

// ChannelReport builds the per-channel report for a trailing window.
func (s *Service) ChannelReport(ctx context.Context, days int) (*report.Report, error) {
	channels, err := s.store.ByChannel(ctx, days)
	if err != nil {
		metrics.StoreFailures.WithLabelValues("by_channel").Inc()
		metrics.ReportsGenerated.WithLabelValues(string(report.KindChannels), metrics.StatusError).Inc()
		return nil, fmt.Errorf("channel query: %w", err)
	}

	r := report.BuildChannels(s.clock.Now().UTC(), days, channels)
	metrics.ReportsGenerated.WithLabelValues(string(report.KindChannels), metrics.StatusOK).Inc()
	return &r, nil
}

// FullDailyReport builds the complete daily mood report: one day of
// breakdown, channel, and user rollups plus the seven-day trend.
func (s *Service) FullDailyReport(ctx context.Context) (*report.Report, error) {
	fail := func(operation string, err error) (*report.Report, error) {
		metrics.StoreFailures.WithLabelValues(operation).Inc()
		metrics.ReportsGenerated.WithLabelValues(string(report.KindDaily), metrics.StatusError).Inc()
		return nil, fmt.Errorf("%s query: %w", operation, err)
	}

	summary, err := s.store.SummaryByLabel(ctx, summaryWindowDays)
	if err != nil {
		return fail("summary_by_label", err)
	}
	trend, err := s.store.DailyTrend(ctx, trendWindowDays)
	if err != nil {
		return fail("daily_trend", err)
	}
	channels, err := s.store.ByChannel(ctx, summaryWindowDays)
	if err != nil {
		return fail("by_channel", err)
	}
	users, err := s.store.ByUser(ctx, summaryWindowDays)
	if err != nil {
		return fail("by_user", err)
	}
	count, err := s.store.CountSince(ctx, summaryWindowDays)
	if err != nil {
		return fail("count_since", err)
	}

	r := report.BuildDaily(s.clock.Now().UTC(), summary, trend, channels, users, count)
	metrics.ReportsGenerated.WithLabelValues(string(report.KindDaily), metrics.StatusOK).Inc()
	return &r, nil
}

// RunScheduledReport is the scheduler's single entry point. Any failure is
// logged and swallowed: a broken report run must never take the cadence
// loop down.
func (s *Service) RunScheduledReport(ctx context.Context) {
	runID := uuid.NewString()
	ctx = logging.WithCorrelationID(ctx, logging.NewCorrelationID())
	slog.InfoContext(ctx, "Running scheduled daily sentiment report", "run_id", runID)

	r, err := s.FullDailyReport(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Scheduled report failed", "run_id", runID, "error", err)
		return
	}

	if s.sink == nil {
		slog.WarnContext(ctx, "No report sink configured, skipping daily report", "run_id", runID)
		return
	}

	if err := s.sink.Publish(ctx, report.Render(*r)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish daily report", "run_id", runID, "error", err)
		return
	}

	slog.InfoContext(ctx, "Daily report sent", "run_id", runID,
		"mood", r.Mood.Label, "messages", r.MessageCount)
}
