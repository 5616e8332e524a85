package feed

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/api/rest/pagination"
	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/internal/feed"
	"github.com/linkhive/server/internal/metrics"
)

// GetFeedHandler returns the authenticated user's ranked feed
func GetFeedHandler(ranker *feed.Ranker, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		opts := optionsFromQuery(c)

		start := time.Now()
		items := ranker.Generate(c.Request.Context(), userID, opts)

		if collector != nil {
			collector.RecordFeedGeneration(len(items), time.Since(start))
		}

		params := pagination.Params{Limit: opts.Limit, Offset: opts.Offset}

		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"pagination": pagination.NewMeta(params, len(items)),
		})
	}
}

func optionsFromQuery(c *gin.Context) feed.Options {
	opts := feed.DefaultOptions()

	if v, ok := c.GetQuery("bookmarks"); ok {
		opts.IncludeBookmarks = v != "false"
	}

	if v, ok := c.GetQuery("posts"); ok {
		opts.IncludePosts = v != "false"
	}

	if v, ok := c.GetQuery("collections"); ok {
		opts.IncludeCollections = v != "false"
	}

	if v, ok := c.GetQuery("public"); ok {
		opts.AllowPublic = v != "false"
	}

	limit := parseIntDefault(c.Query("limit"), 0)
	offset := parseIntDefault(c.Query("offset"), 0)

	params := pagination.DefaultParams(limit, offset, 20, 100)
	opts.Limit = params.Limit
	opts.Offset = params.Offset

	return opts
}

func parseIntDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return v
}
