// Package eligibility gates creator monetization applications: fixed
// minimums on audience and activity, a weighted quality score, and a
// quality-based revenue share.
package eligibility

import (
	"fmt"
	"math"
)

// minimums a creator must clear before monetization
const (
	MinFollowers      = 100
	MinBookmarks      = 20
	MinTotalViews     = 1000
	MinEngagements    = 100
	MinAccountAgeDays = 30
	MinQualityScore   = 60
)

// revenue share bounds: 60% base, up to 80% at a perfect quality score
const (
	baseRevenueShare  = 60
	bonusRevenueShare = 20
)

// computes the weighted quality score in [0, 100]. Each factor is
// capped independently before summing: engagement rate up to 40,
// content volume, follower base, and total views up to 20 each.
func QualityScore(m CreatorMetrics) int {
	var engagementRate float64
	if m.TotalViews > 0 {
		engagementRate = float64(m.TotalLikes+m.TotalComments) / float64(m.TotalViews)
	}

	engagement := math.Min(40, engagementRate*400)
	content := math.Min(20, float64(m.Bookmarks)/100*20)
	followers := math.Min(20, float64(m.Followers)/500*20)
	views := math.Min(20, float64(m.TotalViews)/5000*20)

	score := int(math.Round(engagement + content + followers + views))

	if score < 0 {
		return 0
	}

	if score > 100 {
		return 100
	}

	return score
}

// evaluates every threshold independently and collects a reason and a
// recommendation for each unmet one. Checks never short-circuit, so a
// creator sees everything left to fix at once.
func Check(m CreatorMetrics) Result {
	quality := QualityScore(m)

	result := Result{
		IsEligible:      true,
		QualityScore:    quality,
		Reasons:         []string{},
		Recommendations: []string{},
	}

	if m.Followers < MinFollowers {
		result.IsEligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("insufficient followers: %d of %d required", m.Followers, MinFollowers))
		result.Recommendations = append(result.Recommendations,
			"grow your audience by sharing collections and engaging with other creators")
	}

	if m.Bookmarks < MinBookmarks {
		result.IsEligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("insufficient bookmarks: %d of %d required", m.Bookmarks, MinBookmarks))
		result.Recommendations = append(result.Recommendations,
			"save and curate more bookmarks to build up your public library")
	}

	if m.TotalViews < MinTotalViews {
		result.IsEligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("insufficient views: %d of %d required", m.TotalViews, MinTotalViews))
		result.Recommendations = append(result.Recommendations,
			"make more of your content public to increase its reach")
	}

	engagements := m.TotalLikes + m.TotalComments
	if engagements < MinEngagements {
		result.IsEligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("insufficient engagement: %d of %d required", engagements, MinEngagements))
		result.Recommendations = append(result.Recommendations,
			"post content that invites likes and comments from your followers")
	}

	if m.AccountAgeDays < MinAccountAgeDays {
		result.IsEligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("account too new: %d of %d days required", m.AccountAgeDays, MinAccountAgeDays))
		result.Recommendations = append(result.Recommendations,
			"keep building your profile; accounts qualify after 30 days")
	}

	if quality < MinQualityScore {
		result.IsEligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("quality score too low: %d of %d required", quality, MinQualityScore))
		result.Recommendations = append(result.Recommendations,
			"improve engagement on your existing content to raise your quality score")
	}

	return result
}

// linear interpolation from the quality score into the creator's
// revenue share percentage, in [60, 80]
func RevenueShare(qualityScore int) int {
	share := float64(baseRevenueShare) + float64(qualityScore)/100*float64(bonusRevenueShare)
	return int(math.Round(share))
}
