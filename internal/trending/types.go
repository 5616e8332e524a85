package trending

import (
	"fmt"
	"time"

	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/collections"
)

// a ranked topic aggregated from recent bookmark tags
type Topic struct {
	Topic           string    `json:"topic"`
	MentionCount    int       `json:"mention_count"`
	UniqueUsers     int       `json:"unique_users"`
	UniqueBookmarks int       `json:"unique_bookmarks"`
	TrendScore      float64   `json:"trend_score"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// a trending bookmark with its computed score
type RankedBookmark struct {
	bookmarks.BookmarkWithCounts
	Score float64 `json:"score"`
}

// a trending collection with its computed score
type RankedCollection struct {
	collections.CollectionWithCounts
	Score float64 `json:"score"`
}

// a trending time window
type Window string

const (
	Window24h Window = "24h"
	Window7d  Window = "7d"
	Window30d Window = "30d"
)

// hours covered by the window
func (w Window) Hours() float64 {
	switch w {
	case Window24h:
		return 24
	case Window7d:
		return 168
	case Window30d:
		return 720
	default:
		return 24
	}
}

// parses a window query value, rejecting unknown values
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Window24h, Window7d, Window30d:
		return Window(s), nil
	case "":
		return Window24h, nil
	default:
		return "", fmt.Errorf("unknown trending window %q", s)
	}
}
