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

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// parentPost resolves the :pid route segment. Every comment route is
// scoped to a post, and an unknown post id fails here before anything
// else runs.
func parentPost(c *gin.Context) (*models.Post, bool) {
	id := utils.StringToUint(c.Param("pid"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Post not found")
		return nil, false
	}
	return &post, true
}

// List returns the comments under one post, in creation order
func (h *CommentHandler) List(c *gin.Context) {
	post, ok := parentPost(c)
	if !ok {
		return
	}

	var comments []models.Comment
	db.DB.
		Preload("User").
		Preload("Replies.User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments)

	c.JSON(http.StatusOK, serializers.Comments(comments))
}

func (h *CommentHandler) Detail(c *gin.Context) {
	post, ok := parentPost(c)
	if !ok {
		return
	}

	var comment models.Comment
	err := db.DB.
		Preload("User").
		Preload("Replies.User").
		Where("post_id = ?", post.ID).
		First(&comment, utils.StringToUint(c.Param("id"))).Error
	if err != nil {
		JSONError(c, http.StatusNotFound, "Comment not found")
		return
	}

	c.JSON(http.StatusOK, serializers.Comment(&comment))
}

// Create attaches a comment to the routed post. Post and user come from
// the route and the session, never from the payload.
func (h *CommentHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	post, ok := parentPost(c)
	if !ok {
		return
	}

	var input serializers.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: input.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		logrus.Errorf("Failed to create comment on post %d: %v", post.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	invalidatePostCaches(post.Slug)

	db.DB.Preload("User").Preload("Replies.User").First(&comment, comment.ID)
	c.JSON(http.StatusCreated, serializers.Comment(&comment))
}

// Update is owner-only: any authenticated caller reaches this handler,
// the ownership predicate decides.
func (h *CommentHandler) Update(c *gin.Context) {
	user := CurrentUser(c)

	post, ok := parentPost(c)
	if !ok {
		return
	}

	var comment models.Comment
	err := db.DB.Where("post_id = ?", post.ID).First(&comment, utils.StringToUint(c.Param("id"))).Error
	if err != nil {
		JSONError(c, http.StatusNotFound, "Comment not found")
		return
	}

	if err := permissions.CheckCommentOwner(user, &comment); err != nil {
		JSONError(c, http.StatusForbidden, err.Error())
		return
	}

	var input serializers.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment.Content = input.Content
	if err := db.DB.Save(&comment).Error; err != nil {
		logrus.Errorf("Failed to update comment %d: %v", comment.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to update comment")
		return
	}

	invalidatePostCaches(post.Slug)

	db.DB.Preload("User").Preload("Replies.User").First(&comment, comment.ID)
	c.JSON(http.StatusOK, serializers.Comment(&comment))
}

// Delete is admin-only (gated in the router) and takes the replies with it
func (h *CommentHandler) Delete(c *gin.Context) {
	post, ok := parentPost(c)
	if !ok {
		return
	}

	var comment models.Comment
	err := db.DB.Where("post_id = ?", post.ID).First(&comment, utils.StringToUint(c.Param("id"))).Error
	if err != nil {
		JSONError(c, http.StatusNotFound, "Comment not found")
		return
	}

	tx := db.DB.Begin()
	if err := tx.Where("comment_id = ?", comment.ID).Delete(&models.Reply{}).Error; err != nil {
		tx.Rollback()
		JSONError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}
	if err := tx.Delete(&comment).Error; err != nil {
		tx.Rollback()
		JSONError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}
	if err := tx.Commit().Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	invalidatePostCaches(post.Slug)

	c.JSON(http.StatusOK, gin.H{"detail": fmt.Sprintf("'%s' successfully deleted!", comment.Content)})
}
