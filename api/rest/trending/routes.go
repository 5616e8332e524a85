package trending

import (
	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/internal/metrics"
	"github.com/linkhive/server/internal/trending"
)

func RegisterRoutes(router *gin.RouterGroup, service *trending.Service, collector *metrics.Collector) {
	// public trending surfaces (no auth required)
	trendingGroup := router.Group("/trending")
	{
		trendingGroup.GET("/topics", GetTrendingTopicsHandler(service, collector))
		trendingGroup.GET("/bookmarks", GetTrendingBookmarksHandler(service, collector))
		trendingGroup.GET("/collections", GetTrendingCollectionsHandler(service, collector))

		// personalized trending needs the user's tag history
		trendingGroup.GET("/personalized", auth.AuthMiddleware(), GetPersonalizedHandler(service, collector))
	}
}
