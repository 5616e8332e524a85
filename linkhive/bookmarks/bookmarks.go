package bookmarks

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// fetches a single bookmark with its tags
func (r *Repository) Get(ctx context.Context, bookmarkID string) (*Bookmark, error) {
	var b Bookmark

	err := r.db.QueryRow(ctx, queryGet, bookmarkID).Scan(
		&b.ID,
		&b.UserID,
		&b.URL,
		&b.Title,
		&b.Description,
		&b.IsPublic,
		&b.Tags,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookmarkNotFound
	}

	if err != nil {
		return nil, err
	}

	return &b, nil
}

// returns the user's most-used tags, count descending with
// lexicographic tie-break so the preference set is stable
func (r *Repository) TopTags(ctx context.Context, userID string, limit int) ([]TagCount, error) {
	rows, err := r.db.Query(ctx, queryTopTags, userID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var tags []TagCount

	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}

		tags = append(tags, tc)
	}

	return tags, rows.Err()
}

// fetches feed candidates authored by the given users, excluding the
// requesting user's own bookmarks
func (r *Repository) FeedCandidatesFromAuthors(
	ctx context.Context,
	excludeUserID string,
	authorIDs []string,
	limit int,
) ([]Bookmark, error) {
	rows, err := r.db.Query(ctx, queryFeedCandidatesFollowed, excludeUserID, authorIDs, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanBookmarks(rows)
}

// fetches public feed candidates, excluding the requesting user's own
func (r *Repository) FeedCandidatesPublic(ctx context.Context, excludeUserID string, limit int) ([]Bookmark, error) {
	rows, err := r.db.Query(ctx, queryFeedCandidatesPublic, excludeUserID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanBookmarks(rows)
}

// fetches public bookmarks created since the cutoff, joined with their
// like and approximate view counts
func (r *Repository) RecentPublicWithCounts(ctx context.Context, since time.Time) ([]BookmarkWithCounts, error) {
	rows, err := r.db.Query(ctx, queryRecentPublicWithCounts, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanBookmarksWithCounts(rows)
}

// fetches public bookmarks since the cutoff whose tag set overlaps the
// given tags, excluding the requesting user's own
func (r *Repository) PublicByTagsSince(
	ctx context.Context,
	since time.Time,
	tags []string,
	excludeUserID string,
) ([]BookmarkWithCounts, error) {
	rows, err := r.db.Query(ctx, queryPublicByTagsSince, since, tags, excludeUserID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanBookmarksWithCounts(rows)
}

// fetches one row per tag occurrence on recent public bookmarks
func (r *Repository) TagMentionsSince(ctx context.Context, since time.Time) ([]TagMention, error) {
	rows, err := r.db.Query(ctx, queryTagMentionsSince, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var mentions []TagMention

	for rows.Next() {
		var m TagMention
		if err := rows.Scan(&m.Tag, &m.UserID, &m.BookmarkID); err != nil {
			return nil, err
		}

		mentions = append(mentions, m)
	}

	return mentions, rows.Err()
}

func scanBookmarks(rows pgx.Rows) ([]Bookmark, error) {
	var bookmarks []Bookmark

	for rows.Next() {
		var b Bookmark
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.URL,
			&b.Title,
			&b.Description,
			&b.IsPublic,
			&b.Tags,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

func scanBookmarksWithCounts(rows pgx.Rows) ([]BookmarkWithCounts, error) {
	var bookmarks []BookmarkWithCounts

	for rows.Next() {
		var b BookmarkWithCounts
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.URL,
			&b.Title,
			&b.Description,
			&b.IsPublic,
			&b.Tags,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.LikeCount,
			&b.ViewCount,
		)
		if err != nil {
			return nil, err
		}

		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}
