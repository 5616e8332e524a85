package trending

const (
	queryUpsertTopic = `
		INSERT INTO trending_topics (topic, mention_count, unique_users, unique_bookmarks, trend_score, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (topic) DO UPDATE
		SET mention_count = EXCLUDED.mention_count,
		    unique_users = EXCLUDED.unique_users,
		    unique_bookmarks = EXCLUDED.unique_bookmarks,
		    trend_score = EXCLUDED.trend_score,
		    updated_at = NOW()
	`

	queryTopTopics = `
		SELECT topic, mention_count, unique_users, unique_bookmarks, trend_score, updated_at
		FROM trending_topics
		ORDER BY trend_score DESC, topic ASC
		LIMIT $1
	`
)
