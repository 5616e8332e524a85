package bookmarks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/internal/errors"
	"github.com/linkhive/server/linkhive/bookmarks"
	"github.com/linkhive/server/linkhive/engagement"
)

// RecordViewHandler records a view event against a bookmark. Works for
// anonymous visitors too; the user ID is attached when present.
func RecordViewHandler(bookmarkRepo *bookmarks.Repository, engagementRepo *engagement.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookmarkID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if _, err := bookmarkRepo.Get(c.Request.Context(), bookmarkID); err != nil {
			if err == bookmarks.ErrBookmarkNotFound {
				errors.NotFound(c, "bookmark")
				return
			}
			errors.InternalError(c, "failed to load bookmark", err)
			return
		}

		userID, _ := auth.GetUserID(c)

		if err := engagementRepo.RecordView(c.Request.Context(), "bookmark_view", bookmarkID, userID); err != nil {
			errors.InternalError(c, "failed to record view", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"recorded": true})
	}
}
