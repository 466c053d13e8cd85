package handlers

import (
	"fmt"
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/permissions"
	"inkwell/internal/serializers"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReplyHandler struct{}

func NewReplyHandler() *ReplyHandler {
	return &ReplyHandler{}
}

// parentComment resolves the :pid/:id route pair. The comment must belong
// to the routed post; a mismatched pair reads as not-found.
func parentComment(c *gin.Context) (*models.Post, *models.Comment, bool) {
	post, ok := parentPost(c)
	if !ok {
		return nil, nil, false
	}

	var comment models.Comment
	err := db.DB.Where("post_id = ?", post.ID).First(&comment, utils.StringToUint(c.Param("id"))).Error
	if err != nil {
		JSONError(c, http.StatusNotFound, "Comment not found")
		return nil, nil, false
	}
	return post, &comment, true
}

// Create attaches a reply to the routed comment; comment and user are
// injected server-side.
func (h *ReplyHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	post, comment, ok := parentComment(c)
	if !ok {
		return
	}

	var input serializers.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reply := models.Reply{
		CommentID: comment.ID,
		UserID:    user.ID,
		Content:   input.Content,
	}

	if err := db.DB.Create(&reply).Error; err != nil {
		logrus.Errorf("Failed to create reply on comment %d: %v", comment.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to create reply")
		return
	}

	invalidatePostCaches(post.Slug)

	db.DB.Preload("User").First(&reply, reply.ID)
	c.JSON(http.StatusCreated, serializers.Reply(&reply, utils.RenderMarkdown(reply.Content)))
}

func (h *ReplyHandler) Update(c *gin.Context) {
	user := CurrentUser(c)

	post, comment, ok := parentComment(c)
	if !ok {
		return
	}

	var reply models.Reply
	err := db.DB.Where("comment_id = ?", comment.ID).First(&reply, utils.StringToUint(c.Param("rid"))).Error
	if err != nil {
		JSONError(c, http.StatusNotFound, "Reply not found")
		return
	}

	if err := permissions.CheckReplyOwner(user, &reply); err != nil {
		JSONError(c, http.StatusForbidden, err.Error())
		return
	}

	var input serializers.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reply.Content = input.Content
	if err := db.DB.Save(&reply).Error; err != nil {
		logrus.Errorf("Failed to update reply %d: %v", reply.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to update reply")
		return
	}

	invalidatePostCaches(post.Slug)

	db.DB.Preload("User").First(&reply, reply.ID)
	c.JSON(http.StatusOK, serializers.Reply(&reply, utils.RenderMarkdown(reply.Content)))
}

// Delete is admin-only, gated in the router
func (h *ReplyHandler) Delete(c *gin.Context) {
	post, comment, ok := parentComment(c)
	if !ok {
		return
	}

	var reply models.Reply
	err := db.DB.Where("comment_id = ?", comment.ID).First(&reply, utils.StringToUint(c.Param("rid"))).Error
	if err != nil {
		JSONError(c, http.StatusNotFound, "Reply not found")
		return
	}

	if err := db.DB.Delete(&reply).Error; err != nil {
		logrus.Errorf("Failed to delete reply %d: %v", reply.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to delete reply")
		return
	}

	invalidatePostCaches(post.Slug)

	c.JSON(http.StatusOK, gin.H{"detail": fmt.Sprintf("'%s' successfully deleted!", reply.Content)})
}
