package posts

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// fetches feed candidates authored by the given users, excluding the
// requesting user's own posts
func (r *Repository) FeedCandidatesFromAuthors(
	ctx context.Context,
	excludeUserID string,
	authorIDs []string,
	limit int,
) ([]Post, error) {
	rows, err := r.db.Query(ctx, queryFeedCandidatesFollowed, excludeUserID, authorIDs, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanPosts(rows)
}

// fetches public feed candidates, excluding the requesting user's own
func (r *Repository) FeedCandidatesPublic(ctx context.Context, excludeUserID string, limit int) ([]Post, error) {
	rows, err := r.db.Query(ctx, queryFeedCandidatesPublic, excludeUserID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]Post, error) {
	var posts []Post

	for rows.Next() {
		var p Post
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&p.Excerpt,
			&p.IsPublic,
			&p.IsPremium,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		posts = append(posts, p)
	}

	return posts, rows.Err()
}
