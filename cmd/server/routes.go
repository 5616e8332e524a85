package main

import (
	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/api/rest/bookmarks"
	"github.com/linkhive/server/api/rest/creators"
	"github.com/linkhive/server/api/rest/feed"
	"github.com/linkhive/server/api/rest/health"
	"github.com/linkhive/server/api/rest/trending"
	"github.com/linkhive/server/internal/metrics"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.Use(RateLimitMiddleware(server.services.Cache))

	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(metrics.Handler(server.services.Registry)))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		feed.RegisterRoutes(v1, server.ranker, server.services.Collector)
		trending.RegisterRoutes(v1, server.trendingService, server.services.Collector)
		creators.RegisterRoutes(v1, server.creatorRepo, server.engagementRepo)
		bookmarks.RegisterRoutes(v1, server.bookmarkRepo, server.engagementRepo)
	}
}
