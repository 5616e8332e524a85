// Package feed merges bookmark, post and collection candidates into
// one ranked, paginated feed. The composite score weighs real
// engagement counters, a linear recency decay, and tag/following
// affinity; every input comes through an injected source so the ranker
// itself stays deterministic.
package feed

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/linkhive/server/internal/logger"
	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/collections"
	"github.com/linkhive/server/linkhive/engagement"
	"github.com/linkhive/server/linkhive/posts"
)

// candidate caps per content type
const (
	maxBookmarkCandidates   = 50
	maxPostCandidates       = 50
	maxCollectionCandidates = 30

	// how many of the user's own tags seed relevance matching
	topTagCount = 10
)

// composite score weights
const (
	engagementWeight = 0.4
	recencyWeight    = 0.3
	relevanceWeight  = 0.3
)

// relevance components
const (
	followingBonus    = 50
	tagMatchPoints    = 10
	maxTagMatchPoints = 50
)

type BookmarkSource interface {
	TopTags(ctx context.Context, userID string, limit int) ([]bookmarks.TagCount, error)
	FeedCandidatesFromAuthors(ctx context.Context, excludeUserID string, authorIDs []string, limit int) ([]bookmarks.Bookmark, error)
	FeedCandidatesPublic(ctx context.Context, excludeUserID string, limit int) ([]bookmarks.Bookmark, error)
}

type PostSource interface {
	FeedCandidatesFromAuthors(ctx context.Context, excludeUserID string, authorIDs []string, limit int) ([]posts.Post, error)
	FeedCandidatesPublic(ctx context.Context, excludeUserID string, limit int) ([]posts.Post, error)
}

type CollectionSource interface {
	FeedCandidatesFromAuthors(ctx context.Context, excludeUserID string, authorIDs []string, limit int) ([]collections.Collection, error)
	FeedCandidatesPublic(ctx context.Context, excludeUserID string, limit int) ([]collections.Collection, error)
}

type FollowSource interface {
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
}

type EngagementSource interface {
	CountsForItems(ctx context.Context, itemType string, itemIDs []string) (map[string]engagement.Counts, error)
}

type Ranker struct {
	bookmarks   BookmarkSource
	posts       PostSource
	collections CollectionSource
	follows     FollowSource
	engagement  EngagementSource
	now         func() time.Time
}

func NewRanker(
	bookmarkSource BookmarkSource,
	postSource PostSource,
	collectionSource CollectionSource,
	followSource FollowSource,
	engagementSource EngagementSource,
) *Ranker {
	return &Ranker{
		bookmarks:   bookmarkSource,
		posts:       postSource,
		collections: collectionSource,
		follows:     followSource,
		engagement:  engagementSource,
		now:         time.Now,
	}
}

// builds the user's ranked feed. Collaborator failures are logged and
// degrade to empty slices so the page never breaks; the worst case is
// an empty feed.
func (r *Ranker) Generate(ctx context.Context, userID string, opts Options) []Item {
	topTags := r.userTopTags(ctx, userID)
	following := r.followingSet(ctx, userID)

	var items []Item

	if opts.IncludeBookmarks {
		items = append(items, r.bookmarkItems(ctx, userID, following, topTags, opts)...)
	}

	if opts.IncludePosts {
		items = append(items, r.postItems(ctx, userID, following, opts)...)
	}

	if opts.IncludeCollections {
		items = append(items, r.collectionItems(ctx, userID, following, opts)...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}

		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return paginate(items, opts.Offset, opts.Limit)
}

// linear decay from 100 to 0 over ten days of age
func RecencyScore(createdAt, now time.Time) float64 {
	ageHours := now.Sub(createdAt).Hours()
	return math.Max(0, 100-(ageHours/24)*10)
}

// folds real engagement counters into [0, 100]
func EngagementScore(c engagement.Counts) float64 {
	raw := float64(c.Likes)*2 + float64(c.Comments)*3 + float64(c.Views)/10
	return math.Min(100, raw)
}

// following bonus plus tag-affinity points (tag points for bookmarks
// only; posts and collections carry no tag sets)
func RelevanceScore(authorFollowed bool, tagOverlap int) float64 {
	var score float64

	if authorFollowed {
		score += followingBonus
	}

	score += math.Min(maxTagMatchPoints, float64(tagOverlap)*tagMatchPoints)

	return score
}

// weighted composite of the three component scores
func CompositeScore(engagementScore, recencyScore, relevanceScore float64) float64 {
	return engagementScore*engagementWeight +
		recencyScore*recencyWeight +
		relevanceScore*relevanceWeight
}

func (r *Ranker) userTopTags(ctx context.Context, userID string) map[string]struct{} {
	tagCounts, err := r.bookmarks.TopTags(ctx, userID, topTagCount)
	if err != nil {
		logger.ErrorErr(err, "failed to fetch user tags for feed", "user_id", userID)
		return map[string]struct{}{}
	}

	tags := make(map[string]struct{}, len(tagCounts))
	for _, tc := range tagCounts {
		tags[tc.Tag] = struct{}{}
	}

	return tags
}

func (r *Ranker) followingSet(ctx context.Context, userID string) map[string]struct{} {
	ids, err := r.follows.FollowingIDs(ctx, userID)
	if err != nil {
		logger.ErrorErr(err, "failed to fetch following set for feed", "user_id", userID)
		return map[string]struct{}{}
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func (r *Ranker) bookmarkItems(
	ctx context.Context,
	userID string,
	following map[string]struct{},
	topTags map[string]struct{},
	opts Options,
) []Item {
	var candidates []bookmarks.Bookmark
	var err error

	switch {
	case len(following) > 0:
		candidates, err = r.bookmarks.FeedCandidatesFromAuthors(ctx, userID, setToSlice(following), maxBookmarkCandidates)
	case opts.AllowPublic:
		candidates, err = r.bookmarks.FeedCandidatesPublic(ctx, userID, maxBookmarkCandidates)
	default:
		return nil
	}

	if err != nil {
		logger.ErrorErr(err, "failed to fetch bookmark candidates", "user_id", userID)
		return nil
	}

	ids := make([]string, len(candidates))
	for i, b := range candidates {
		ids[i] = b.ID
	}

	counts := r.countsFor(ctx, TypeBookmark, ids)
	now := r.now()

	items := make([]Item, 0, len(candidates))

	for _, b := range candidates {
		_, followed := following[b.UserID]

		overlap := 0
		for _, tag := range b.Tags {
			if _, ok := topTags[tag]; ok {
				overlap++
			}
		}

		engagementScore := EngagementScore(counts[b.ID])
		recencyScore := RecencyScore(b.CreatedAt, now)
		relevanceScore := RelevanceScore(followed, overlap)

		items = append(items, Item{
			ID:              b.ID,
			Type:            TypeBookmark,
			UserID:          b.UserID,
			Title:           b.Title,
			Tags:            b.Tags,
			CreatedAt:       b.CreatedAt,
			Score:           CompositeScore(engagementScore, recencyScore, relevanceScore),
			EngagementScore: engagementScore,
			RecencyScore:    recencyScore,
			RelevanceScore:  relevanceScore,
		})
	}

	return items
}

func (r *Ranker) postItems(
	ctx context.Context,
	userID string,
	following map[string]struct{},
	opts Options,
) []Item {
	var candidates []posts.Post
	var err error

	switch {
	case len(following) > 0:
		candidates, err = r.posts.FeedCandidatesFromAuthors(ctx, userID, setToSlice(following), maxPostCandidates)
	case opts.AllowPublic:
		candidates, err = r.posts.FeedCandidatesPublic(ctx, userID, maxPostCandidates)
	default:
		return nil
	}

	if err != nil {
		logger.ErrorErr(err, "failed to fetch post candidates", "user_id", userID)
		return nil
	}

	ids := make([]string, len(candidates))
	for i, p := range candidates {
		ids[i] = p.ID
	}

	counts := r.countsFor(ctx, TypePost, ids)
	now := r.now()

	items := make([]Item, 0, len(candidates))

	for _, p := range candidates {
		_, followed := following[p.UserID]

		engagementScore := EngagementScore(counts[p.ID])
		recencyScore := RecencyScore(p.CreatedAt, now)
		relevanceScore := RelevanceScore(followed, 0)

		items = append(items, Item{
			ID:              p.ID,
			Type:            TypePost,
			UserID:          p.UserID,
			Title:           p.Title,
			CreatedAt:       p.CreatedAt,
			Score:           CompositeScore(engagementScore, recencyScore, relevanceScore),
			EngagementScore: engagementScore,
			RecencyScore:    recencyScore,
			RelevanceScore:  relevanceScore,
		})
	}

	return items
}

func (r *Ranker) collectionItems(
	ctx context.Context,
	userID string,
	following map[string]struct{},
	opts Options,
) []Item {
	var candidates []collections.Collection
	var err error

	switch {
	case len(following) > 0:
		candidates, err = r.collections.FeedCandidatesFromAuthors(ctx, userID, setToSlice(following), maxCollectionCandidates)
	case opts.AllowPublic:
		candidates, err = r.collections.FeedCandidatesPublic(ctx, userID, maxCollectionCandidates)
	default:
		return nil
	}

	if err != nil {
		logger.ErrorErr(err, "failed to fetch collection candidates", "user_id", userID)
		return nil
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	counts := r.countsFor(ctx, TypeCollection, ids)
	now := r.now()

	items := make([]Item, 0, len(candidates))

	for _, c := range candidates {
		_, followed := following[c.UserID]

		engagementScore := EngagementScore(counts[c.ID])
		recencyScore := RecencyScore(c.CreatedAt, now)
		relevanceScore := RelevanceScore(followed, 0)

		items = append(items, Item{
			ID:              c.ID,
			Type:            TypeCollection,
			UserID:          c.UserID,
			Title:           c.Name,
			CreatedAt:       c.CreatedAt,
			Score:           CompositeScore(engagementScore, recencyScore, relevanceScore),
			EngagementScore: engagementScore,
			RecencyScore:    recencyScore,
			RelevanceScore:  relevanceScore,
		})
	}

	return items
}

func (r *Ranker) countsFor(ctx context.Context, itemType string, ids []string) map[string]engagement.Counts {
	counts, err := r.engagement.CountsForItems(ctx, itemType, ids)
	if err != nil {
		logger.ErrorErr(err, "failed to fetch engagement counts", "item_type", itemType)
		return map[string]engagement.Counts{}
	}

	return counts
}

func setToSlice(set map[string]struct{}) []string {
	slice := make([]string, 0, len(set))
	for id := range set {
		slice = append(slice, id)
	}

	return slice
}

func paginate(items []Item, offset, limit int) []Item {
	if offset < 0 {
		offset = 0
	}

	if offset >= len(items) {
		return []Item{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return items[offset:end]
}
