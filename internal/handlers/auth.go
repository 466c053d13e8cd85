package handlers

import (
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/serializers"
	"inkwell/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type signupInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Signup failed")
		return
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		JSONError(c, http.StatusConflict, "Username or email already taken")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		logrus.Warnf("Failed to save session for user %d: %v", user.ID, err)
	}

	c.JSON(http.StatusCreated, serializers.User(&user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := db.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(input.Password, user.Password) {
		JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		logrus.Warnf("Failed to save session for user %d: %v", user.ID, err)
	}

	c.JSON(http.StatusOK, serializers.User(&user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"detail": "Logged out"})
}
