package bookmarks

const (
	queryGet = `
		SELECT b.id, b.user_id, b.url, b.title, b.description, b.is_public,
		       COALESCE(array_agg(bt.tag) FILTER (WHERE bt.tag IS NOT NULL), '{}'),
		       b.created_at, b.updated_at
		FROM bookmarks b
		LEFT JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		WHERE b.id = $1
		GROUP BY b.id
	`

	queryTopTags = `
		SELECT bt.tag, COUNT(*) AS tag_count
		FROM bookmark_tags bt
		INNER JOIN bookmarks b ON b.id = bt.bookmark_id
		WHERE b.user_id = $1
		GROUP BY bt.tag
		ORDER BY tag_count DESC, bt.tag ASC
		LIMIT $2
	`

	queryFeedCandidatesFollowed = `
		SELECT b.id, b.user_id, b.url, b.title, b.description, b.is_public,
		       COALESCE(array_agg(bt.tag) FILTER (WHERE bt.tag IS NOT NULL), '{}'),
		       b.created_at, b.updated_at
		FROM bookmarks b
		LEFT JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		WHERE b.user_id != $1
		  AND b.user_id = ANY($2)
		GROUP BY b.id
		ORDER BY b.created_at DESC
		LIMIT $3
	`

	queryFeedCandidatesPublic = `
		SELECT b.id, b.user_id, b.url, b.title, b.description, b.is_public,
		       COALESCE(array_agg(bt.tag) FILTER (WHERE bt.tag IS NOT NULL), '{}'),
		       b.created_at, b.updated_at
		FROM bookmarks b
		LEFT JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		WHERE b.user_id != $1
		  AND b.is_public = true
		GROUP BY b.id
		ORDER BY b.created_at DESC
		LIMIT $2
	`

	queryRecentPublicWithCounts = `
		SELECT b.id, b.user_id, b.url, b.title, b.description, b.is_public,
		       COALESCE(array_agg(DISTINCT bt.tag) FILTER (WHERE bt.tag IS NOT NULL), '{}'),
		       b.created_at, b.updated_at,
		       COUNT(DISTINCT l.id) AS like_count,
		       COUNT(DISTINCT ae.id) AS view_count
		FROM bookmarks b
		LEFT JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		LEFT JOIN likes l ON l.item_type = 'bookmark' AND l.item_id = b.id
		LEFT JOIN analytics_events ae
		       ON ae.event_type = 'bookmark_view' AND ae.item_id = b.id
		WHERE b.is_public = true
		  AND b.created_at >= $1
		GROUP BY b.id
	`

	queryPublicByTagsSince = `
		SELECT b.id, b.user_id, b.url, b.title, b.description, b.is_public,
		       COALESCE(array_agg(DISTINCT bt.tag) FILTER (WHERE bt.tag IS NOT NULL), '{}'),
		       b.created_at, b.updated_at,
		       COUNT(DISTINCT l.id) AS like_count,
		       COUNT(DISTINCT ae.id) AS view_count
		FROM bookmarks b
		INNER JOIN bookmark_tags bt2 ON bt2.bookmark_id = b.id AND bt2.tag = ANY($2)
		LEFT JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		LEFT JOIN likes l ON l.item_type = 'bookmark' AND l.item_id = b.id
		LEFT JOIN analytics_events ae
		       ON ae.event_type = 'bookmark_view' AND ae.item_id = b.id
		WHERE b.is_public = true
		  AND b.created_at >= $1
		  AND b.user_id != $3
		GROUP BY b.id
	`

	queryTagMentionsSince = `
		SELECT bt.tag, b.user_id, b.id
		FROM bookmark_tags bt
		INNER JOIN bookmarks b ON b.id = bt.bookmark_id
		WHERE b.created_at >= $1
		  AND b.is_public = true
	`
)
