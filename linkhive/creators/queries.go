package creators

const (
	queryMetricsSnapshot = `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE followed_id = p.id),
			(SELECT COUNT(*) FROM bookmarks WHERE user_id = p.id),
			(SELECT COUNT(*) FROM collections WHERE user_id = p.id),
			(SELECT COUNT(*) FROM analytics_events ae
			   INNER JOIN bookmarks b ON b.id = ae.item_id
			   WHERE ae.event_type = 'bookmark_view' AND b.user_id = p.id),
			(SELECT COUNT(*) FROM likes l
			   INNER JOIN bookmarks b ON b.id = l.item_id
			   WHERE l.item_type = 'bookmark' AND b.user_id = p.id),
			(SELECT COUNT(*) FROM comments c
			   INNER JOIN bookmarks b ON b.id = c.item_id
			   WHERE c.item_type = 'bookmark' AND b.user_id = p.id),
			EXTRACT(DAY FROM NOW() - p.created_at)::int
		FROM profiles p
		WHERE p.id = $1
	`

	queryUpsertMonetization = `
		INSERT INTO creator_monetization (user_id, status, quality_score, revenue_share, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET status = EXCLUDED.status,
		    quality_score = EXCLUDED.quality_score,
		    revenue_share = EXCLUDED.revenue_share,
		    updated_at = NOW()
		RETURNING user_id, status, quality_score, revenue_share, applied_at, updated_at
	`

	queryEarningsSamplesSince = `
		SELECT created_at, amount
		FROM creator_earnings
		WHERE user_id = $1
		  AND created_at >= $2
	`
)
