package engagement

const (
	queryCountsForItems = `
		SELECT item_id,
		       COALESCE(SUM(likes), 0),
		       COALESCE(SUM(comments), 0),
		       COALESCE(SUM(views), 0)
		FROM (
			SELECT item_id, COUNT(*) AS likes, 0 AS comments, 0 AS views
			FROM likes
			WHERE item_type = $1 AND item_id = ANY($2)
			GROUP BY item_id
			UNION ALL
			SELECT item_id, 0, COUNT(*), 0
			FROM comments
			WHERE item_type = $1 AND item_id = ANY($2)
			GROUP BY item_id
			UNION ALL
			SELECT item_id, 0, 0, COUNT(*)
			FROM analytics_events
			WHERE event_type = $1 || '_view' AND item_id = ANY($2)
			GROUP BY item_id
		) counts
		GROUP BY item_id
	`

	queryRecordView = `
		INSERT INTO analytics_events (id, event_type, item_id, user_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
	`

	queryViewTimestampsForOwner = `
		SELECT ae.created_at
		FROM analytics_events ae
		INNER JOIN bookmarks b ON b.id = ae.item_id
		WHERE ae.event_type = 'bookmark_view'
		  AND b.user_id = $1
		  AND ae.created_at >= $2
	`
)
