package creators

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// a creator's monetization record
type Monetization struct {
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"`
	QualityScore int       `json:"quality_score"`
	RevenueShare int       `json:"revenue_share"`
	AppliedAt    time.Time `json:"applied_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// one earnings row with its timestamp, input to the daily series
type EarningsSample struct {
	At     time.Time
	Amount float64
}
