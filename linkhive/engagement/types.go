package engagement

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// per-item engagement counters
type Counts struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Views    int `json:"views"`
}

// a single analytics event to record
type ViewEvent struct {
	ID        string
	EventType string
	ItemID    string
	UserID    string // empty for anonymous views
	CreatedAt time.Time
}
