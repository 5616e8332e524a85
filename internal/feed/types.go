package feed

import (
	"time"
)

// feed item types
const (
	TypeBookmark   = "bookmark"
	TypePost       = "post"
	TypeCollection = "collection"
)

// a scored feed entry. Score fields are computed once at generation
// time; items have no lifecycle beyond the request.
type Item struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Tags            []string  `json:"tags,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	Score           float64   `json:"score"`
	EngagementScore float64   `json:"engagement_score"`
	RecencyScore    float64   `json:"recency_score"`
	RelevanceScore  float64   `json:"relevance_score"`
}

// feed generation options
type Options struct {
	IncludeBookmarks   bool
	IncludePosts       bool
	IncludeCollections bool
	AllowPublic        bool
	Limit              int
	Offset             int
}

// defaults for a full mixed feed
func DefaultOptions() Options {
	return Options{
		IncludeBookmarks:   true,
		IncludePosts:       true,
		IncludeCollections: true,
		AllowPublic:        true,
		Limit:              20,
		Offset:             0,
	}
}
