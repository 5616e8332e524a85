package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/collections"
	"github.com/linkhive/server/linkhive/engagement"
	"github.com/linkhive/server/linkhive/posts"
)

type fakeBookmarkSource struct {
	tags       []bookmarks.TagCount
	candidates []bookmarks.Bookmark
}

func (f *fakeBookmarkSource) TopTags(_ context.Context, _ string, _ int) ([]bookmarks.TagCount, error) {
	return f.tags, nil
}

func (f *fakeBookmarkSource) FeedCandidatesFromAuthors(_ context.Context, _ string, _ []string, _ int) ([]bookmarks.Bookmark, error) {
	return f.candidates, nil
}

func (f *fakeBookmarkSource) FeedCandidatesPublic(_ context.Context, _ string, _ int) ([]bookmarks.Bookmark, error) {
	return f.candidates, nil
}

type fakePostSource struct {
	candidates []posts.Post
}

func (f *fakePostSource) FeedCandidatesFromAuthors(_ context.Context, _ string, _ []string, _ int) ([]posts.Post, error) {
	return f.candidates, nil
}

func (f *fakePostSource) FeedCandidatesPublic(_ context.Context, _ string, _ int) ([]posts.Post, error) {
	return f.candidates, nil
}

type fakeCollectionSource struct {
	candidates []collections.Collection
}

func (f *fakeCollectionSource) FeedCandidatesFromAuthors(_ context.Context, _ string, _ []string, _ int) ([]collections.Collection, error) {
	return f.candidates, nil
}

func (f *fakeCollectionSource) FeedCandidatesPublic(_ context.Context, _ string, _ int) ([]collections.Collection, error) {
	return f.candidates, nil
}

type fakeFollowSource struct {
	following []string
}

func (f *fakeFollowSource) FollowingIDs(_ context.Context, _ string) ([]string, error) {
	return f.following, nil
}

type fakeEngagementSource struct {
	counts map[string]engagement.Counts
}

func (f *fakeEngagementSource) CountsForItems(_ context.Context, _ string, _ []string) (map[string]engagement.Counts, error) {
	if f.counts == nil {
		return map[string]engagement.Counts{}, nil
	}

	return f.counts, nil
}

func newTestRanker(
	bm *fakeBookmarkSource,
	fs *fakeFollowSource,
	es *fakeEngagementSource,
	now time.Time,
) *Ranker {
	r := NewRanker(bm, &fakePostSource{}, &fakeCollectionSource{}, fs, es)
	r.now = func() time.Time { return now }
	return r
}

func TestRecencyScore(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{name: "brand new", age: 0, want: 100},
		{name: "one day old", age: 24 * time.Hour, want: 90},
		{name: "five days old", age: 5 * 24 * time.Hour, want: 50},
		{name: "ten days old", age: 10 * 24 * time.Hour, want: 0},
		{name: "ancient", age: 30 * 24 * time.Hour, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecencyScore(now.Add(-tt.age), now)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEngagementScore(t *testing.T) {
	assert.Equal(t, 0.0, EngagementScore(engagement.Counts{}))
	assert.Equal(t, 23.0, EngagementScore(engagement.Counts{Likes: 5, Comments: 3, Views: 40}))
	assert.Equal(t, 100.0, EngagementScore(engagement.Counts{Likes: 1000}), "score must cap at 100")
}

func TestRelevanceScore(t *testing.T) {
	assert.Equal(t, 0.0, RelevanceScore(false, 0))
	assert.Equal(t, 50.0, RelevanceScore(true, 0))
	assert.Equal(t, 30.0, RelevanceScore(false, 3))
	assert.Equal(t, 100.0, RelevanceScore(true, 5))
	assert.Equal(t, 100.0, RelevanceScore(true, 12), "tag points must cap at 50")
}

func TestGenerate_FollowedAuthorRanksHigher(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-2 * time.Hour)

	bm := &fakeBookmarkSource{
		candidates: []bookmarks.Bookmark{
			{ID: "b-followed", UserID: "author-followed", Title: "followed", CreatedAt: createdAt},
			{ID: "b-other", UserID: "author-other", Title: "other", CreatedAt: createdAt},
		},
	}

	// identical deterministic engagement for both candidates
	es := &fakeEngagementSource{
		counts: map[string]engagement.Counts{
			"b-followed": {Likes: 10, Views: 100},
			"b-other":    {Likes: 10, Views: 100},
		},
	}

	fs := &fakeFollowSource{following: []string{"author-followed"}}

	r := newTestRanker(bm, fs, es, now)

	items := r.Generate(context.Background(), "viewer", DefaultOptions())

	require.Len(t, items, 2)
	assert.Equal(t, "b-followed", items[0].ID, "followed author's item must rank first")
	assert.GreaterOrEqual(t, items[0].RelevanceScore-items[1].RelevanceScore, 50.0)
	assert.Greater(t, items[0].Score, items[1].Score)
}

func TestGenerate_TagOverlapBoostsBookmarks(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-time.Hour)

	bm := &fakeBookmarkSource{
		tags: []bookmarks.TagCount{
			{Tag: "golang", Count: 9},
			{Tag: "databases", Count: 4},
		},
		candidates: []bookmarks.Bookmark{
			{ID: "b-matching", UserID: "a1", Tags: []string{"golang", "databases"}, CreatedAt: createdAt},
			{ID: "b-unrelated", UserID: "a2", Tags: []string{"cooking"}, CreatedAt: createdAt},
		},
	}

	r := newTestRanker(bm, &fakeFollowSource{}, &fakeEngagementSource{}, now)

	items := r.Generate(context.Background(), "viewer", DefaultOptions())

	require.Len(t, items, 2)
	assert.Equal(t, "b-matching", items[0].ID)
	assert.Equal(t, 20.0, items[0].RelevanceScore, "two tag matches at 10 points each")
	assert.Equal(t, 0.0, items[1].RelevanceScore)
}

func TestGenerate_NoFollowingNoPublicYieldsEmpty(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	bm := &fakeBookmarkSource{
		candidates: []bookmarks.Bookmark{
			{ID: "b1", UserID: "a1", CreatedAt: now},
		},
	}

	opts := DefaultOptions()
	opts.AllowPublic = false

	r := newTestRanker(bm, &fakeFollowSource{}, &fakeEngagementSource{}, now)

	items := r.Generate(context.Background(), "viewer", opts)

	assert.Empty(t, items)
}

func TestGenerate_Pagination(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	var candidates []bookmarks.Bookmark
	for i := 0; i < 5; i++ {
		candidates = append(candidates, bookmarks.Bookmark{
			ID:        string(rune('a' + i)),
			UserID:    "author",
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	bm := &fakeBookmarkSource{candidates: candidates}
	r := newTestRanker(bm, &fakeFollowSource{}, &fakeEngagementSource{}, now)

	opts := DefaultOptions()
	opts.Limit = 2
	opts.Offset = 2

	items := r.Generate(context.Background(), "viewer", opts)

	require.Len(t, items, 2)

	// newest candidates score highest, so page two starts at the third
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "d", items[1].ID)
}

func TestGenerate_MergesTypes(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	bm := &fakeBookmarkSource{
		candidates: []bookmarks.Bookmark{{ID: "b1", UserID: "a1", CreatedAt: now.Add(-time.Hour)}},
	}
	ps := &fakePostSource{
		candidates: []posts.Post{{ID: "p1", UserID: "a2", CreatedAt: now.Add(-2 * time.Hour)}},
	}
	cs := &fakeCollectionSource{
		candidates: []collections.Collection{{ID: "c1", UserID: "a3", CreatedAt: now.Add(-3 * time.Hour)}},
	}

	r := NewRanker(bm, ps, cs, &fakeFollowSource{}, &fakeEngagementSource{})
	r.now = func() time.Time { return now }

	items := r.Generate(context.Background(), "viewer", DefaultOptions())

	require.Len(t, items, 3)

	types := map[string]bool{}
	for _, item := range items {
		types[item.Type] = true
	}

	assert.True(t, types[TypeBookmark] && types[TypePost] && types[TypeCollection])
}
