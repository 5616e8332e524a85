package trending

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/internal/logger"
	"github.com/linkhive/server/internal/metrics"
	"github.com/linkhive/server/internal/trending"
)

// trending surfaces degrade to empty lists on error rather than
// failing the whole page
func GetTrendingTopicsHandler(service *trending.Service, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if collector != nil {
			collector.RecordTrendingRequest("topics")
		}

		limit := parseLimit(c.Query("limit"), 10, 50)

		topics, err := service.TrendingTopics(c.Request.Context(), limit)
		if err != nil {
			logger.ErrorErr(err, "failed to load trending topics")
			topics = []trending.Topic{}
		}

		c.JSON(http.StatusOK, gin.H{"topics": topics})
	}
}

func GetTrendingBookmarksHandler(service *trending.Service, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if collector != nil {
			collector.RecordTrendingRequest("bookmarks")
		}

		window, err := trending.ParseWindow(c.Query("window"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		limit := parseLimit(c.Query("limit"), 20, 100)

		ranked, err := service.TrendingBookmarks(c.Request.Context(), window, limit)
		if err != nil {
			logger.ErrorErr(err, "failed to load trending bookmarks", "window", string(window))
			ranked = []trending.RankedBookmark{}
		}

		c.JSON(http.StatusOK, gin.H{
			"bookmarks": ranked,
			"window":    window,
		})
	}
}

func GetTrendingCollectionsHandler(service *trending.Service, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if collector != nil {
			collector.RecordTrendingRequest("collections")
		}

		limit := parseLimit(c.Query("limit"), 20, 100)

		ranked, err := service.TrendingCollections(c.Request.Context(), limit)
		if err != nil {
			logger.ErrorErr(err, "failed to load trending collections")
			ranked = []trending.RankedCollection{}
		}

		c.JSON(http.StatusOK, gin.H{"collections": ranked})
	}
}

// GetPersonalizedHandler returns trending bookmarks weighted toward the
// authenticated user's most-used tags
func GetPersonalizedHandler(service *trending.Service, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		if collector != nil {
			collector.RecordTrendingRequest("personalized")
		}

		limit := parseLimit(c.Query("limit"), 20, 100)

		ranked, err := service.Personalized(c.Request.Context(), userID, limit)
		if err != nil {
			logger.ErrorErr(err, "failed to load personalized trending", "user_id", userID)
			ranked = []trending.RankedBookmark{}
		}

		c.JSON(http.StatusOK, gin.H{"bookmarks": ranked})
	}
}

func parseLimit(s string, def, max int) int {
	if s == "" {
		return def
	}

	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}

	if v > max {
		return max
	}

	return v
}
