package posts

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// a premium post; body text stays behind the paywall and is not part
// of feed candidates
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt,omitempty"`
	IsPublic  bool      `json:"is_public"`
	IsPremium bool      `json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
