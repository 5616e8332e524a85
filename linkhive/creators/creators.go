package creators

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/linkhive/server/internal/eligibility"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// recomputes the creator's counters fresh from the raw tables; nothing
// here is cached
func (r *Repository) MetricsSnapshot(ctx context.Context, userID string) (eligibility.CreatorMetrics, error) {
	var m eligibility.CreatorMetrics

	err := r.db.QueryRow(ctx, queryMetricsSnapshot, userID).Scan(
		&m.Followers,
		&m.Bookmarks,
		&m.Collections,
		&m.TotalViews,
		&m.TotalLikes,
		&m.TotalComments,
		&m.AccountAgeDays,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return m, ErrProfileNotFound
	}

	if err != nil {
		return m, err
	}

	return m, nil
}

// records or refreshes the creator's monetization application
func (r *Repository) UpsertMonetization(
	ctx context.Context,
	userID, status string,
	qualityScore, revenueShare int,
) (*Monetization, error) {
	var m Monetization

	err := r.db.QueryRow(ctx, queryUpsertMonetization, userID, status, qualityScore, revenueShare).Scan(
		&m.UserID,
		&m.Status,
		&m.QualityScore,
		&m.RevenueShare,
		&m.AppliedAt,
		&m.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &m, nil
}

// fetches raw earnings rows since the cutoff; callers bucket them into
// a daily series
func (r *Repository) EarningsSamplesSince(ctx context.Context, userID string, since time.Time) ([]EarningsSample, error) {
	rows, err := r.db.Query(ctx, queryEarningsSamplesSince, userID, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var samples []EarningsSample

	for rows.Next() {
		var s EarningsSample
		if err := rows.Scan(&s.At, &s.Amount); err != nil {
			return nil, err
		}

		samples = append(samples, s)
	}

	return samples, rows.Err()
}
