package collections

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Collection struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// a public collection joined with the counters its trending score is
// built from
type CollectionWithCounts struct {
	Collection
	BookmarkCount int `json:"bookmark_count"`
	LikeCount     int `json:"like_count"`
}
