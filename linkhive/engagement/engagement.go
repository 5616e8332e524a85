package engagement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// fetches like/comment/view counters for a batch of items of one type.
// Items with no engagement are absent from the result map.
func (r *Repository) CountsForItems(ctx context.Context, itemType string, itemIDs []string) (map[string]Counts, error) {
	if len(itemIDs) == 0 {
		return map[string]Counts{}, nil
	}

	rows, err := r.db.Query(ctx, queryCountsForItems, itemType, itemIDs)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	counts := make(map[string]Counts, len(itemIDs))

	for rows.Next() {
		var itemID string
		var c Counts

		if err := rows.Scan(&itemID, &c.Likes, &c.Comments, &c.Views); err != nil {
			return nil, err
		}

		counts[itemID] = c
	}

	return counts, rows.Err()
}

// records a view event; the event ID is generated here so retried
// inserts stay idempotent at the caller's discretion
func (r *Repository) RecordView(ctx context.Context, eventType, itemID, userID string) error {
	event := ViewEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		ItemID:    itemID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx, queryRecordView,
		event.ID,
		event.EventType,
		event.ItemID,
		event.UserID,
		event.CreatedAt,
	)

	return err
}

// fetches raw view timestamps for all of the owner's bookmarks since
// the cutoff; callers bucket them into a daily series
func (r *Repository) ViewTimestampsForOwner(ctx context.Context, ownerID string, since time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, queryViewTimestampsForOwner, ownerID, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var timestamps []time.Time

	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}

		timestamps = append(timestamps, t)
	}

	return timestamps, rows.Err()
}
