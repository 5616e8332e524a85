package creators

import (
	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/linkhive/creators"
)

func RegisterRoutes(router *gin.RouterGroup, creatorRepo *creators.Repository, views ViewSource) {
	creatorsGroup := router.Group("/creators")
	creatorsGroup.Use(auth.AuthMiddleware())
	{
		creatorsGroup.GET("/eligibility", GetEligibilityHandler(creatorRepo))
		creatorsGroup.POST("/apply", ApplyHandler(creatorRepo))
		creatorsGroup.GET("/analytics/views", GetViewsAnalyticsHandler(creatorRepo, views))
		creatorsGroup.GET("/analytics/earnings", GetEarningsAnalyticsHandler(creatorRepo))
	}
}
