package feed

import (
	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/internal/feed"
	"github.com/linkhive/server/internal/metrics"
)

func RegisterRoutes(router *gin.RouterGroup, ranker *feed.Ranker, collector *metrics.Collector) {
	feedGroup := router.Group("/feed")
	feedGroup.Use(auth.AuthMiddleware())
	{
		feedGroup.GET("", GetFeedHandler(ranker, collector))
	}
}
