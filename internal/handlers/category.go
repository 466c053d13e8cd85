package handlers

import (
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/serializers"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	db.DB.Order("id ASC").Find(&categories)
	c.JSON(http.StatusOK, serializers.Categories(categories))
}

func (h *CategoryHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("pid"))

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, serializers.Category(&category))
}

// Create is admin-only (gated in the router); slug comes from the title
func (h *CategoryHandler) Create(c *gin.Context) {
	var input serializers.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	category := models.Category{
		Title: input.Title,
		Slug:  utils.Slugify(input.Title),
	}

	if err := db.DB.Create(&category).Error; err != nil {
		JSONError(c, http.StatusConflict, "Category already exists")
		return
	}

	c.JSON(http.StatusCreated, serializers.Category(&category))
}

// Update re-derives the slug from the new title on every call
func (h *CategoryHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("pid"))

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Category not found")
		return
	}

	var input serializers.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	category.Title = input.Title
	category.Slug = utils.Slugify(input.Title)

	if err := db.DB.Save(&category).Error; err != nil {
		logrus.Errorf("Failed to update category %d: %v", category.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	// Cached post payloads embed the category
	var slugs []string
	db.DB.Model(&models.Post{}).Where("category_id = ?", category.ID).Pluck("slug", &slugs)
	invalidatePostCaches(slugs...)

	c.JSON(http.StatusOK, serializers.Category(&category))
}

// Delete removes the category and every post filed under it
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("pid"))

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Category not found")
		return
	}

	var posts []models.Post
	db.DB.Where("category_id = ?", category.ID).Find(&posts)
	for _, post := range posts {
		if err := deletePostTree(post.ID); err != nil {
			logrus.Errorf("Failed to delete post %d under category %d: %v", post.ID, category.ID, err)
			JSONError(c, http.StatusInternalServerError, "Failed to delete category")
			return
		}
		invalidatePostCaches(post.Slug)
	}

	if err := db.DB.Delete(&category).Error; err != nil {
		logrus.Errorf("Failed to delete category %d: %v", category.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": category.Title + " have deleted successfully"})
}
