package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/Saturn217/Sentiment-Community-Bot/internal/domain"
)

const (
	// queryTimeout bounds every store call so a slow database surfaces as an
	// error to the caller instead of a hang.
	queryTimeout = 5 * time.Second

	channelLimit    = 10
	userMinMessages = 3
	userLimit       = 5
)

// EventRepo implements domain.EventStore backed by PostgreSQL. The clock is
// injected so the trailing-window anchor is controllable in tests; the window
// bound is always passed as a query parameter, never interpolated.
type EventRepo struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

func NewEventRepo(pool *pgxpool.Pool, clock clockwork.Clock) *EventRepo {
	return &EventRepo{pool: pool, clock: clock}
}

func (r *EventRepo) windowStart(days int) (time.Time, error) {
	if days < 1 {
		return time.Time{}, domain.ErrInvalidWindow
	}
	return r.clock.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour), nil
}

func (r *EventRepo) Append(ctx context.Context, event domain.SentimentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO sentiment_events (user_id, username, channel_id, channel_name, score, label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.UserID, event.Username, event.ChannelID, event.ChannelName,
		event.Score, string(event.Label), event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sentiment event: %w", err)
	}
	return nil
}

func (r *EventRepo) SummaryByLabel(ctx context.Context, days int) ([]domain.LabelSummary, error) {
	since, err := r.windowStart(days)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT label, COUNT(*), AVG(score)
		FROM sentiment_events
		WHERE created_at >= $1
		GROUP BY label
		ORDER BY COUNT(*) DESC`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query label summary: %w", err)
	}
	defer rows.Close()

	var summaries []domain.LabelSummary
	for rows.Next() {
		var s domain.LabelSummary
		var label string
		if err := rows.Scan(&label, &s.Count, &s.AvgScore); err != nil {
			return nil, fmt.Errorf("failed to scan label summary: %w", err)
		}
		s.Label = domain.Label(label)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read label summary rows: %w", err)
	}
	return summaries, nil
}

func (r *EventRepo) DailyTrend(ctx context.Context, days int) ([]domain.TrendPoint, error) {
	since, err := r.windowStart(days)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT DATE(created_at), AVG(score), COUNT(*)
		FROM sentiment_events
		WHERE created_at >= $1
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at) ASC`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily trend: %w", err)
	}
	defer rows.Close()

	var points []domain.TrendPoint
	for rows.Next() {
		var p domain.TrendPoint
		if err := rows.Scan(&p.Date, &p.AvgScore, &p.MessageCount); err != nil {
			return nil, fmt.Errorf("failed to scan trend point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trend rows: %w", err)
	}
	return points, nil
}

func (r *EventRepo) ByChannel(ctx context.Context, days int) ([]domain.ChannelStat, error) {
	since, err := r.windowStart(days)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Grouped by channel_id: the denormalized channel_name is presentation
	// only and may differ across rows after a rename.
	rows, err := r.pool.Query(ctx, `
		SELECT channel_id, MAX(channel_name), AVG(score), COUNT(*)
		FROM sentiment_events
		WHERE created_at >= $1
		GROUP BY channel_id
		ORDER BY COUNT(*) DESC
		LIMIT $2`,
		since, channelLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.ChannelStat
	for rows.Next() {
		var s domain.ChannelStat
		if err := rows.Scan(&s.ChannelID, &s.ChannelName, &s.AvgScore, &s.MessageCount); err != nil {
			return nil, fmt.Errorf("failed to scan channel stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read channel rows: %w", err)
	}
	return stats, nil
}

func (r *EventRepo) ByUser(ctx context.Context, days int) ([]domain.UserStat, error) {
	since, err := r.windowStart(days)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT user_id, MAX(username), AVG(score), COUNT(*),
		       COUNT(*) FILTER (WHERE label = 'positive'),
		       COUNT(*) FILTER (WHERE label = 'negative')
		FROM sentiment_events
		WHERE created_at >= $1
		GROUP BY user_id
		HAVING COUNT(*) >= $2
		ORDER BY AVG(score) DESC
		LIMIT $3`,
		since, userMinMessages, userLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.UserStat
	for rows.Next() {
		var s domain.UserStat
		if err := rows.Scan(&s.UserID, &s.Username, &s.AvgScore, &s.MessageCount, &s.PositiveCount, &s.NegativeCount); err != nil {
			return nil, fmt.Errorf("failed to scan user stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}
	return stats, nil
}

func (r *EventRepo) CountSince(ctx context.Context, days int) (int, error) {
	since, err := r.windowStart(days)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM sentiment_events WHERE created_at >= $1`,
		since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
