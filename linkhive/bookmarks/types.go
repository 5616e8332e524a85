package bookmarks

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Bookmark struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// a tag with its usage count in the user's recent bookmarks
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// a public bookmark joined with its engagement counters for trending
type BookmarkWithCounts struct {
	Bookmark
	LikeCount int `json:"like_count"`
	ViewCount int `json:"view_count"`
}

// one tag occurrence on a recent bookmark, input to topic aggregation
type TagMention struct {
	Tag        string
	UserID     string
	BookmarkID string
}
