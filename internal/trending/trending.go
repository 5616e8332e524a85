// Package trending produces the ranked discovery lists: topics from
// recent bookmark tags, trending bookmarks and collections over a time
// window, and a tag-personalized variant. Scores are hand-tuned linear
// formulas over engagement counters with a linear recency decay.
package trending

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linkhive/server/internal/cache"
	"github.com/linkhive/server/internal/logger"
	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/collections"
)

// topic aggregation looks at bookmarks from the last day
const topicWindow = 24 * time.Hour

// trending bookmark score weights
const (
	likePoints    = 10.0
	viewPoints    = 1.0
	recencyPoints = 50.0
)

// trending collection score weights
const (
	collectionBookmarkPoints = 3.0
	collectionLikePoints     = 10.0
)

// topic score weights: breadth (distinct users) counts for more than
// repeat mentions by one user
const (
	topicMentionPoints  = 1.0
	topicUserPoints     = 3.0
	topicBookmarkPoints = 2.0
)

type BookmarkSource interface {
	TopTags(ctx context.Context, userID string, limit int) ([]bookmarks.TagCount, error)
	RecentPublicWithCounts(ctx context.Context, since time.Time) ([]bookmarks.BookmarkWithCounts, error)
	PublicByTagsSince(ctx context.Context, since time.Time, tags []string, excludeUserID string) ([]bookmarks.BookmarkWithCounts, error)
	TagMentionsSince(ctx context.Context, since time.Time) ([]bookmarks.TagMention, error)
}

type CollectionSource interface {
	PublicWithCounts(ctx context.Context) ([]collections.CollectionWithCounts, error)
}

type Service struct {
	db          *pgxpool.Pool
	bookmarks   BookmarkSource
	collections CollectionSource
	cache       *cache.Cache // nil disables caching
	now         func() time.Time
}

func NewService(db *pgxpool.Pool, bookmarkSource BookmarkSource, collectionSource CollectionSource, c *cache.Cache) *Service {
	return &Service{
		db:          db,
		bookmarks:   bookmarkSource,
		collections: collectionSource,
		cache:       c,
		now:         time.Now,
	}
}

// linear decay to 0 at the window edge
func RecencyFactor(ageHours, windowHours float64) float64 {
	return math.Max(0, 1-ageHours/windowHours)
}

// trending bookmark score: likes and views plus a recency boost
func BookmarkScore(likes, views int, ageHours, windowHours float64) float64 {
	return float64(likes)*likePoints +
		float64(views)*viewPoints +
		RecencyFactor(ageHours, windowHours)*recencyPoints
}

// trending collection score
func CollectionScore(bookmarkCount, likeCount int) float64 {
	return float64(bookmarkCount)*collectionBookmarkPoints +
		float64(likeCount)*collectionLikePoints
}

// topic score over the aggregated mention counters
func TopicScore(mentions, uniqueUsers, uniqueBookmarks int) float64 {
	return float64(mentions)*topicMentionPoints +
		float64(uniqueUsers)*topicUserPoints +
		float64(uniqueBookmarks)*topicBookmarkPoints
}

// reduces raw tag mentions into per-topic counters with scores,
// ordered by score descending
func AggregateTopics(mentions []bookmarks.TagMention) []Topic {
	type bucket struct {
		mentions  int
		users     map[string]struct{}
		bookmarks map[string]struct{}
	}

	buckets := make(map[string]*bucket)

	for _, m := range mentions {
		b, ok := buckets[m.Tag]
		if !ok {
			b = &bucket{
				users:     make(map[string]struct{}),
				bookmarks: make(map[string]struct{}),
			}
			buckets[m.Tag] = b
		}

		b.mentions++
		b.users[m.UserID] = struct{}{}
		b.bookmarks[m.BookmarkID] = struct{}{}
	}

	topics := make([]Topic, 0, len(buckets))

	for tag, b := range buckets {
		topics = append(topics, Topic{
			Topic:           tag,
			MentionCount:    b.mentions,
			UniqueUsers:     len(b.users),
			UniqueBookmarks: len(b.bookmarks),
			TrendScore:      TopicScore(b.mentions, len(b.users), len(b.bookmarks)),
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].TrendScore != topics[j].TrendScore {
			return topics[i].TrendScore > topics[j].TrendScore
		}

		return topics[i].Topic < topics[j].Topic
	})

	return topics
}

// recomputes topic aggregates from the last 24 hours of bookmarks and
// upserts them into the trending_topics cache table
func (s *Service) RefreshTopics(ctx context.Context) error {
	since := s.now().Add(-topicWindow)

	mentions, err := s.bookmarks.TagMentionsSince(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to fetch tag mentions: %w", err)
	}

	topics := AggregateTopics(mentions)

	for _, t := range topics {
		_, err := s.db.Exec(ctx, queryUpsertTopic,
			t.Topic,
			t.MentionCount,
			t.UniqueUsers,
			t.UniqueBookmarks,
			t.TrendScore,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert topic %q: %w", t.Topic, err)
		}
	}

	logger.Debug("trending topics refreshed", "topics", len(topics))

	return nil
}

// returns the highest-scored topics from the trending_topics table
func (s *Service) TrendingTopics(ctx context.Context, limit int) ([]Topic, error) {
	key := fmt.Sprintf(cache.KeyTrendingTopics, limit)

	var cached []Topic
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.db.Query(ctx, queryTopTopics, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query trending topics: %w", err)
	}

	defer rows.Close()
	topics := []Topic{}

	for rows.Next() {
		var t Topic
		err := rows.Scan(
			&t.Topic,
			&t.MentionCount,
			&t.UniqueUsers,
			&t.UniqueBookmarks,
			&t.TrendScore,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, topics)

	return topics, nil
}

// scores public bookmarks created inside the window and returns the
// top entries
func (s *Service) TrendingBookmarks(ctx context.Context, window Window, limit int) ([]RankedBookmark, error) {
	key := fmt.Sprintf(cache.KeyTrendingBookmarks, window, limit)

	var cached []RankedBookmark
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	now := s.now()
	since := now.Add(-time.Duration(window.Hours()) * time.Hour)

	candidates, err := s.bookmarks.RecentPublicWithCounts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending bookmark candidates: %w", err)
	}

	ranked := rankBookmarks(candidates, now, window.Hours(), limit)

	s.cacheSet(ctx, key, ranked)

	return ranked, nil
}

// scores public collections and returns the top entries
func (s *Service) TrendingCollections(ctx context.Context, limit int) ([]RankedCollection, error) {
	key := fmt.Sprintf(cache.KeyTrendingCollections, limit)

	var cached []RankedCollection
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	candidates, err := s.collections.PublicWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending collection candidates: %w", err)
	}

	ranked := make([]RankedCollection, 0, len(candidates))

	for _, c := range candidates {
		ranked = append(ranked, RankedCollection{
			CollectionWithCounts: c,
			Score:                CollectionScore(c.BookmarkCount, c.LikeCount),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.cacheSet(ctx, key, ranked)

	return ranked, nil
}

// returns trending bookmarks matching the user's own tags over the
// last 7 days, scored with the same formula as general trending. Users
// with no tag history fall back to the general 7-day list.
func (s *Service) Personalized(ctx context.Context, userID string, limit int) ([]RankedBookmark, error) {
	tagCounts, err := s.bookmarks.TopTags(ctx, userID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user tags: %w", err)
	}

	if len(tagCounts) == 0 {
		return s.TrendingBookmarks(ctx, Window7d, limit)
	}

	tags := make([]string, len(tagCounts))
	for i, tc := range tagCounts {
		tags[i] = tc.Tag
	}

	now := s.now()
	since := now.Add(-time.Duration(Window7d.Hours()) * time.Hour)

	candidates, err := s.bookmarks.PublicByTagsSince(ctx, since, tags, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch personalized candidates: %w", err)
	}

	return rankBookmarks(candidates, now, Window7d.Hours(), limit), nil
}

func rankBookmarks(candidates []bookmarks.BookmarkWithCounts, now time.Time, windowHours float64, limit int) []RankedBookmark {
	ranked := make([]RankedBookmark, 0, len(candidates))

	for _, b := range candidates {
		ageHours := now.Sub(b.CreatedAt).Hours()

		ranked = append(ranked, RankedBookmark{
			BookmarkWithCounts: b,
			Score:              BookmarkScore(b.LikeCount, b.ViewCount, ageHours, windowHours),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		logger.Warn("trending cache read failed", "key", key, "error", err)
		return false
	}

	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetJSON(ctx, key, value); err != nil {
		logger.Warn("trending cache write failed", "key", key, "error", err)
	}
}
