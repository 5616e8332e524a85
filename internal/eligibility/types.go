package eligibility

// snapshot of a creator's counters at evaluation time, always
// recomputed fresh from the database
type CreatorMetrics struct {
	Followers      int `json:"followers"`
	Bookmarks      int `json:"bookmarks"`
	Collections    int `json:"collections"`
	TotalViews     int `json:"total_views"`
	TotalLikes     int `json:"total_likes"`
	TotalComments  int `json:"total_comments"`
	AccountAgeDays int `json:"account_age_days"`
}

// outcome of a monetization eligibility check
type Result struct {
	IsEligible      bool     `json:"is_eligible"`
	QualityScore    int      `json:"quality_score"`
	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations"`
}
