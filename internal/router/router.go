package router

import (
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler explicitly. The registration table is
// the single place the resource surface is defined.
func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.LoadUser())

	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	categoryHandler := handlers.NewCategoryHandler()
	commentHandler := handlers.NewCommentHandler()
	replyHandler := handlers.NewReplyHandler()
	likeHandler := handlers.NewLikeHandler()

	// Session endpoints
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Public reads
	r.GET("/posts/", postHandler.List)
	r.GET("/posts/:pid/", postHandler.Detail) // :pid is the slug here
	r.GET("/categories/", categoryHandler.List)
	r.GET("/category/:pid/", categoryHandler.Detail)
	r.GET("/posts/:pid/comments/", commentHandler.List)
	r.GET("/posts/:pid/comments/:id/", commentHandler.Detail)

	// Authenticated writes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/posts/create/", postHandler.Create)
		authorized.PUT("/posts/update/:pid/", postHandler.Update)
		authorized.PATCH("/posts/update/:pid/", postHandler.Update)
		authorized.DELETE("/posts/delete/:pid/", postHandler.Delete)

		authorized.POST("/posts/:pid/comments/create/", commentHandler.Create)
		authorized.PUT("/posts/:pid/comments/update/:id/", commentHandler.Update)
		authorized.PATCH("/posts/:pid/comments/update/:id/", commentHandler.Update)

		authorized.POST("/posts/:pid/comments/:id/replies/create/", replyHandler.Create)
		authorized.PUT("/posts/:pid/comments/:id/replies/update/:rid/", replyHandler.Update)
		authorized.PATCH("/posts/:pid/comments/:id/replies/update/:rid/", replyHandler.Update)

		authorized.POST("/posts/:pid/like/", likeHandler.Toggle)
	}

	// Admin writes
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.POST("/category/create/", categoryHandler.Create)
		admin.PUT("/category/update/:pid/", categoryHandler.Update)
		admin.PATCH("/category/update/:pid/", categoryHandler.Update)
		admin.DELETE("/category/delete/:pid/", categoryHandler.Delete)

		admin.DELETE("/posts/:pid/comments/delete/:id/", commentHandler.Delete)
		admin.DELETE("/posts/:pid/comments/:id/replies/delete/:rid/", replyHandler.Delete)
	}
}
