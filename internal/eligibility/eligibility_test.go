package eligibility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// metrics that clear every threshold comfortably
func qualifiedMetrics() CreatorMetrics {
	return CreatorMetrics{
		Followers:      500,
		Bookmarks:      100,
		Collections:    10,
		TotalViews:     5000,
		TotalLikes:     400,
		TotalComments:  100,
		AccountAgeDays: 90,
	}
}

func TestQualityScore_AllFactorsCapped(t *testing.T) {
	// 10% engagement rate caps the engagement factor at 40; content,
	// follower and view factors each hit their 20-point caps
	m := qualifiedMetrics()

	assert.Equal(t, 100, QualityScore(m))
}

func TestQualityScore_ZeroViews(t *testing.T) {
	m := CreatorMetrics{
		TotalViews:    0,
		TotalLikes:    50,
		TotalComments: 50,
	}

	// engagement rate is defined as 0 when there are no views
	assert.Equal(t, 0, QualityScore(m))
}

func TestQualityScore_PartialFactors(t *testing.T) {
	m := CreatorMetrics{
		Followers:  250,  // half the follower cap -> 10
		Bookmarks:  50,   // half the content cap -> 10
		TotalViews: 2500, // half the view cap -> 10
		TotalLikes: 50,   // 2% engagement -> 8
	}

	assert.Equal(t, 38, QualityScore(m))
}

func TestCheck_Eligible(t *testing.T) {
	result := Check(qualifiedMetrics())

	assert.True(t, result.IsEligible)
	assert.Empty(t, result.Reasons)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 100, result.QualityScore)
}

func TestCheck_InsufficientFollowers(t *testing.T) {
	m := qualifiedMetrics()
	m.Followers = 50

	result := Check(m)

	assert.False(t, result.IsEligible)

	var followerReasons int
	for _, r := range result.Reasons {
		if strings.Contains(r, "followers") {
			followerReasons++
		}
	}

	assert.Equal(t, 1, followerReasons, "exactly one followers-related reason expected")
	assert.Len(t, result.Reasons, 1)

	// quality score is still computed and reported
	assert.Greater(t, result.QualityScore, 0)
}

func TestCheck_CollectsAllFailures(t *testing.T) {
	result := Check(CreatorMetrics{})

	assert.False(t, result.IsEligible)

	// all five threshold checks plus the quality gate report a reason
	assert.Len(t, result.Reasons, 6)
	assert.Len(t, result.Recommendations, 6)
}

func TestRevenueShare_Bounds(t *testing.T) {
	assert.Equal(t, 60, RevenueShare(0))
	assert.Equal(t, 80, RevenueShare(100))
	assert.Equal(t, 70, RevenueShare(50))
}
