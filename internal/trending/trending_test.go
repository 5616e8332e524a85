package trending

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/collections"
)

func TestRecencyFactor(t *testing.T) {
	tests := []struct {
		name     string
		ageHours float64
		window   float64
		want     float64
	}{
		{name: "brand new", ageHours: 0, window: 24, want: 1},
		{name: "half way", ageHours: 12, window: 24, want: 0.5},
		{name: "at window edge", ageHours: 24, window: 24, want: 0},
		{name: "past window", ageHours: 48, window: 24, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecencyFactor(tt.ageHours, tt.window), 1e-9)
		})
	}
}

func TestBookmarkScore_AtWindowEdge(t *testing.T) {
	// at the window edge the recency factor is 0: only likes and views count
	got := BookmarkScore(3, 20, 24, 24)

	assert.InDelta(t, 50.0, got, 1e-9)
}

func TestBookmarkScore_FreshBookmark(t *testing.T) {
	// 3 likes * 10 + 20 views + full recency boost of 50
	got := BookmarkScore(3, 20, 0, 24)

	assert.InDelta(t, 100.0, got, 1e-9)
}

func TestCollectionScore(t *testing.T) {
	assert.InDelta(t, 0.0, CollectionScore(0, 0), 1e-9)
	assert.InDelta(t, 36.0, CollectionScore(2, 3), 1e-9)
}

func TestTopicScore(t *testing.T) {
	assert.InDelta(t, 0.0, TopicScore(0, 0, 0), 1e-9)
	assert.InDelta(t, 10.0, TopicScore(2, 2, 1), 1e-9)
}

func TestAggregateTopics(t *testing.T) {
	mentions := []bookmarks.TagMention{
		{Tag: "golang", UserID: "u1", BookmarkID: "b1"},
		{Tag: "golang", UserID: "u2", BookmarkID: "b2"},
		{Tag: "golang", UserID: "u2", BookmarkID: "b3"},
		{Tag: "cooking", UserID: "u3", BookmarkID: "b4"},
	}

	topics := AggregateTopics(mentions)

	require.Len(t, topics, 2)

	golang := topics[0]
	assert.Equal(t, "golang", golang.Topic)
	assert.Equal(t, 3, golang.MentionCount)
	assert.Equal(t, 2, golang.UniqueUsers)
	assert.Equal(t, 3, golang.UniqueBookmarks)
	assert.InDelta(t, TopicScore(3, 2, 3), golang.TrendScore, 1e-9)

	cooking := topics[1]
	assert.Equal(t, "cooking", cooking.Topic)
	assert.Equal(t, 1, cooking.MentionCount)
}

func TestAggregateTopics_StableTieBreak(t *testing.T) {
	mentions := []bookmarks.TagMention{
		{Tag: "zebra", UserID: "u1", BookmarkID: "b1"},
		{Tag: "apple", UserID: "u2", BookmarkID: "b2"},
	}

	topics := AggregateTopics(mentions)

	require.Len(t, topics, 2)

	// equal scores order lexicographically
	assert.Equal(t, "apple", topics[0].Topic)
	assert.Equal(t, "zebra", topics[1].Topic)
}

type fakeBookmarkSource struct {
	tags    []bookmarks.TagCount
	recent  []bookmarks.BookmarkWithCounts
	byTags  []bookmarks.BookmarkWithCounts
	queried struct {
		byTags bool
	}
}

func (f *fakeBookmarkSource) TopTags(_ context.Context, _ string, _ int) ([]bookmarks.TagCount, error) {
	return f.tags, nil
}

func (f *fakeBookmarkSource) RecentPublicWithCounts(_ context.Context, _ time.Time) ([]bookmarks.BookmarkWithCounts, error) {
	return f.recent, nil
}

func (f *fakeBookmarkSource) PublicByTagsSince(_ context.Context, _ time.Time, _ []string, _ string) ([]bookmarks.BookmarkWithCounts, error) {
	f.queried.byTags = true
	return f.byTags, nil
}

func (f *fakeBookmarkSource) TagMentionsSince(_ context.Context, _ time.Time) ([]bookmarks.TagMention, error) {
	return nil, nil
}

type fakeCollectionSource struct {
	public []collections.CollectionWithCounts
}

func (f *fakeCollectionSource) PublicWithCounts(_ context.Context) ([]collections.CollectionWithCounts, error) {
	return f.public, nil
}

func withCounts(id string, likes, views int, createdAt time.Time) bookmarks.BookmarkWithCounts {
	return bookmarks.BookmarkWithCounts{
		Bookmark:  bookmarks.Bookmark{ID: id, CreatedAt: createdAt},
		LikeCount: likes,
		ViewCount: views,
	}
}

func TestTrendingBookmarks_RanksAndTruncates(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	bm := &fakeBookmarkSource{
		recent: []bookmarks.BookmarkWithCounts{
			withCounts("quiet", 0, 5, now.Add(-20*time.Hour)),
			withCounts("hot", 10, 200, now.Add(-2*time.Hour)),
			withCounts("steady", 3, 50, now.Add(-10*time.Hour)),
		},
	}

	svc := NewService(nil, bm, &fakeCollectionSource{}, nil)
	svc.now = func() time.Time { return now }

	ranked, err := svc.TrendingBookmarks(context.Background(), Window24h, 2)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "hot", ranked[0].ID)
	assert.Equal(t, "steady", ranked[1].ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestTrendingCollections(t *testing.T) {
	cs := &fakeCollectionSource{
		public: []collections.CollectionWithCounts{
			{Collection: collections.Collection{ID: "small"}, BookmarkCount: 1, LikeCount: 0},
			{Collection: collections.Collection{ID: "popular"}, BookmarkCount: 10, LikeCount: 20},
		},
	}

	svc := NewService(nil, &fakeBookmarkSource{}, cs, nil)

	ranked, err := svc.TrendingCollections(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "popular", ranked[0].ID)
	assert.InDelta(t, 230.0, ranked[0].Score, 1e-9)
}

func TestPersonalized_ScoresLikeGeneralTrending(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	bm := &fakeBookmarkSource{
		tags: []bookmarks.TagCount{{Tag: "golang", Count: 5}},
		byTags: []bookmarks.BookmarkWithCounts{
			withCounts("match", 2, 30, now.Add(-24*time.Hour)),
		},
	}

	svc := NewService(nil, bm, &fakeCollectionSource{}, nil)
	svc.now = func() time.Time { return now }

	ranked, err := svc.Personalized(context.Background(), "viewer", 10)

	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.True(t, bm.queried.byTags)

	// personalized results carry a real score, same formula as general
	want := BookmarkScore(2, 30, 24, Window7d.Hours())
	assert.InDelta(t, want, ranked[0].Score, 1e-9)
	assert.Greater(t, ranked[0].Score, 0.0)
}

func TestPersonalized_FallsBackWithoutTagHistory(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	bm := &fakeBookmarkSource{
		recent: []bookmarks.BookmarkWithCounts{
			withCounts("general", 1, 10, now.Add(-time.Hour)),
		},
	}

	svc := NewService(nil, bm, &fakeCollectionSource{}, nil)
	svc.now = func() time.Time { return now }

	ranked, err := svc.Personalized(context.Background(), "viewer", 10)

	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "general", ranked[0].ID)
	assert.False(t, bm.queried.byTags)
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input   string
		want    Window
		wantErr bool
	}{
		{input: "", want: Window24h},
		{input: "24h", want: Window24h},
		{input: "7d", want: Window7d},
		{input: "30d", want: Window30d},
		{input: "90d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWindow(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
