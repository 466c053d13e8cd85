package handlers

import (
	"net/http"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/serializers"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	postListCacheKey = "post:list"
	postListCacheTTL = 1 * time.Minute

	postDetailCachePrefix = "post:detail:"
	postDetailCacheTTL    = 5 * time.Minute
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// invalidatePostCaches drops the list and detail entries for a post.
// Called on every mutation that changes what those payloads embed.
func invalidatePostCaches(slugs ...string) {
	utils.GetCache().Delete(postListCacheKey)
	for _, s := range slugs {
		utils.GetCache().Delete(postDetailCachePrefix + s)
	}
}

// loadPost fetches one post with everything its detail payload embeds
func loadPost(id uint) (*models.Post, error) {
	var post models.Post
	err := db.DB.
		Preload("Author").
		Preload("Category").
		Preload("Likes.User").
		Preload("Comments.User").
		Preload("Comments.Replies.User").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts, newest first, with comments as a link to the
// per-post comments collection.
func (h *PostHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(postListCacheKey); cached != nil {
		if payload, ok := cached.([]serializers.PostLinkPayload); ok {
			c.JSON(http.StatusOK, payload)
			return
		}
	}

	var posts []models.Post
	db.DB.
		Preload("Author").
		Preload("Category").
		Preload("Likes.User").
		Order("created_at DESC").
		Find(&posts)

	payload := serializers.PostLinks(posts, SiteURL())
	utils.GetCache().Set(postListCacheKey, payload, postListCacheTTL)

	c.JSON(http.StatusOK, payload)
}

// Detail looks a post up by slug
func (h *PostHandler) Detail(c *gin.Context) {
	slug := c.Param("pid")

	cacheKey := postDetailCachePrefix + slug
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if payload, ok := cached.(serializers.PostPayload); ok {
			c.JSON(http.StatusOK, payload)
			return
		}
	}

	var post models.Post
	err := db.DB.
		Preload("Author").
		Preload("Category").
		Preload("Likes.User").
		Preload("Comments.User").
		Preload("Comments.Replies.User").
		Where("slug = ?", slug).First(&post).Error
	if err != nil {
		JSONError(c, http.StatusNotFound, "Post not found")
		return
	}

	payload := serializers.Post(&post)
	utils.GetCache().Set(cacheKey, payload, postDetailCacheTTL)

	c.JSON(http.StatusOK, payload)
}

// Create persists a new post. Author and slug are injected here from the
// session user and the title; any values the client sent for them never
// reach the model.
func (h *PostHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var input serializers.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	categoryID := input.CategoryID
	if categoryID == 0 {
		categoryID = 1 // default seeded category
	}
	var category models.Category
	if err := db.DB.First(&category, categoryID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Category not found")
		return
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}
	content := ""
	if input.Content != nil {
		content = *input.Content
	}
	image := ""
	if input.Image != nil {
		image = *input.Image
	}

	post := models.Post{
		AuthorID:   user.ID,
		CategoryID: category.ID,
		Title:      input.Title,
		Content:    content,
		Slug:       utils.Slugify(input.Title),
		Image:      image,
		Published:  published,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		logrus.Errorf("Failed to create post for user %d: %v", user.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	invalidatePostCaches(post.Slug)

	created, err := loadPost(post.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load post")
		return
	}
	c.JSON(http.StatusCreated, serializers.Post(created))
}

// Update edits a post. The lookup is scoped to the caller's own posts, so
// editing a foreign post reads as not-found rather than forbidden.
func (h *PostHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("pid"))

	var post models.Post
	if err := db.DB.Where("id = ? AND author_id = ?", id, user.ID).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Post not found")
		return
	}

	var input serializers.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.CategoryID != 0 && input.CategoryID != post.CategoryID {
		var category models.Category
		if err := db.DB.First(&category, input.CategoryID).Error; err != nil {
			JSONError(c, http.StatusNotFound, "Category not found")
			return
		}
		post.CategoryID = category.ID
	}

	oldSlug := post.Slug

	post.Title = input.Title
	post.Slug = utils.Slugify(input.Title) // never left stale
	post.AuthorID = user.ID
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := db.DB.Save(&post).Error; err != nil {
		logrus.Errorf("Failed to update post %d: %v", post.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	invalidatePostCaches(oldSlug, post.Slug)

	updated, err := loadPost(post.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load post")
		return
	}
	c.JSON(http.StatusOK, serializers.Post(updated))
}

// Delete removes a post and everything under it. Same owner-scoped lookup
// as Update.
func (h *PostHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("pid"))

	var post models.Post
	if err := db.DB.Where("id = ? AND author_id = ?", id, user.ID).First(&post).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := deletePostTree(post.ID); err != nil {
		logrus.Errorf("Failed to delete post %d: %v", post.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	invalidatePostCaches(post.Slug)

	c.JSON(http.StatusOK, gin.H{"detail": post.Title + " have deleted successfully"})
}

// deletePostTree removes a post with its comments, replies and likes in
// one transaction.
func deletePostTree(postID uint) error {
	tx := db.DB.Begin()

	commentIDs := tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", postID)
	if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&models.Reply{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Post{}, postID).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
