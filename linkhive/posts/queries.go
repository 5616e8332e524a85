package posts

const (
	queryFeedCandidatesFollowed = `
		SELECT id, user_id, title, excerpt, is_public, is_premium, created_at, updated_at
		FROM posts
		WHERE user_id != $1
		  AND user_id = ANY($2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	queryFeedCandidatesPublic = `
		SELECT id, user_id, title, excerpt, is_public, is_premium, created_at, updated_at
		FROM posts
		WHERE user_id != $1
		  AND is_public = true
		ORDER BY created_at DESC
		LIMIT $2
	`
)
