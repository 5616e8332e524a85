package collections

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// fetches feed candidates authored by the given users, excluding the
// requesting user's own collections
func (r *Repository) FeedCandidatesFromAuthors(
	ctx context.Context,
	excludeUserID string,
	authorIDs []string,
	limit int,
) ([]Collection, error) {
	rows, err := r.db.Query(ctx, queryFeedCandidatesFollowed, excludeUserID, authorIDs, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanCollections(rows)
}

// fetches public feed candidates, excluding the requesting user's own
func (r *Repository) FeedCandidatesPublic(ctx context.Context, excludeUserID string, limit int) ([]Collection, error) {
	rows, err := r.db.Query(ctx, queryFeedCandidatesPublic, excludeUserID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanCollections(rows)
}

// fetches all public collections joined with their bookmark and like
// counts for trending
func (r *Repository) PublicWithCounts(ctx context.Context) ([]CollectionWithCounts, error) {
	rows, err := r.db.Query(ctx, queryPublicWithCounts)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var collections []CollectionWithCounts

	for rows.Next() {
		var c CollectionWithCounts
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Name,
			&c.Description,
			&c.IsPublic,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.BookmarkCount,
			&c.LikeCount,
		)
		if err != nil {
			return nil, err
		}

		collections = append(collections, c)
	}

	return collections, rows.Err()
}

func scanCollections(rows pgx.Rows) ([]Collection, error) {
	var collections []Collection

	for rows.Next() {
		var c Collection
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Name,
			&c.Description,
			&c.IsPublic,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		collections = append(collections, c)
	}

	return collections, rows.Err()
}
