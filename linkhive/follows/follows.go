package follows

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the IDs of users the given user follows
func (r *Repository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryFollowingIDs, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
