package bookmarks

import (
	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/engagement"
)

func RegisterRoutes(router *gin.RouterGroup, bookmarkRepo *bookmarks.Repository, engagementRepo *engagement.Repository) {
	// view tracking works with or without a session
	router.POST("/bookmarks/:id/view", auth.OptionalAuthMiddleware(), RecordViewHandler(bookmarkRepo, engagementRepo))
}
