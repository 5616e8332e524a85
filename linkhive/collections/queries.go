package collections

const (
	queryFeedCandidatesFollowed = `
		SELECT id, user_id, name, description, is_public, created_at, updated_at
		FROM collections
		WHERE user_id != $1
		  AND user_id = ANY($2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	queryFeedCandidatesPublic = `
		SELECT id, user_id, name, description, is_public, created_at, updated_at
		FROM collections
		WHERE user_id != $1
		  AND is_public = true
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryPublicWithCounts = `
		SELECT c.id, c.user_id, c.name, c.description, c.is_public, c.created_at, c.updated_at,
		       COUNT(DISTINCT cb.bookmark_id) AS bookmark_count,
		       COUNT(DISTINCT l.id) AS like_count
		FROM collections c
		LEFT JOIN collection_bookmarks cb ON cb.collection_id = c.id
		LEFT JOIN likes l ON l.item_type = 'collection' AND l.item_id = c.id
		WHERE c.is_public = true
		GROUP BY c.id
	`
)
