package follows

const (
	queryFollowingIDs = `
		SELECT followed_id
		FROM follows
		WHERE follower_id = $1
	`
)
