package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LikeHandler struct{}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// Toggle creates the (post, user) like if absent, removes it otherwise.
// The unique index on the pair keeps a racing double-create from landing
// twice.
func (h *LikeHandler) Toggle(c *gin.Context) {
	user := CurrentUser(c)

	post, ok := parentPost(c)
	if !ok {
		return
	}

	var like models.Like
	err := db.DB.Where("post_id = ? AND user_id = ?", post.ID, user.ID).First(&like).Error
	if err == nil {
		if err := db.DB.Delete(&like).Error; err != nil {
			logrus.Errorf("Failed to remove like on post %d: %v", post.ID, err)
			JSONError(c, http.StatusInternalServerError, "Failed to toggle like")
			return
		}
		invalidatePostCaches(post.Slug)
		c.JSON(http.StatusOK, gin.H{"liked": false})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// Only a missing row means "not liked yet"; anything else must not
		// turn into a duplicate-create attempt
		logrus.Errorf("Failed to look up like on post %d: %v", post.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	like = models.Like{
		PostID: post.ID,
		UserID: user.ID,
	}
	if err := db.DB.Create(&like).Error; err != nil {
		logrus.Errorf("Failed to like post %d: %v", post.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	invalidatePostCaches(post.Slug)
	c.JSON(http.StatusOK, gin.H{"liked": true})
}
