package cache

// cache key formats
const (
	KeyTrendingTopics      = "trending:topics:%d"       // limit
	KeyTrendingBookmarks   = "trending:bookmarks:%s:%d" // window, limit
	KeyTrendingCollections = "trending:collections:%d"  // limit
)
