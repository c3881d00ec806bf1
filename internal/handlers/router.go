package handlers

import (
	"time"

	"github.com/binehq/bine-server/internal/middleware"
	"github.com/binehq/bine-server/internal/repositories"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP routes. Everything except registration and
// login sits behind the bearer-token middleware.
func (h *Handler) SetupRouter(userRepo *repositories.UserRepository) *gin.Engine {
	if h.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	limiter := middleware.NewRateLimiter(
		h.Config.RateLimitPerUser,
		h.Config.RateLimitPerIP,
		time.Minute,
	)
	router.Use(limiter.IPMiddleware())

	router.Static("/media", h.Config.MediaRoot)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(h.Config.JWTSecret, userRepo), limiter.UserMiddleware())
	{
		users := authed.Group("/users")
		{
			users.GET("/me", h.Me)
			users.PATCH("/me", h.UpdateMe)
			users.GET("/:id", h.GetUser)
		}

		friends := authed.Group("/friends")
		{
			friends.GET("", h.ListFriends)
			friends.GET("/pending", h.PendingFriends)
			friends.GET("/search", h.SearchFriends)
			friends.GET("/recommended", h.RecommendedFriends)
			friends.POST("/:id", h.AddFriend)
			friends.POST("/:id/confirm", h.ConfirmFriend)
			friends.POST("/:id/decline", h.DeclineFriend)
			friends.DELETE("/:id", h.RemoveFriend)
		}

		books := authed.Group("/books")
		{
			books.GET("", h.ListBooks)
			books.GET("/recommended", h.RecommendedBooks)
			books.GET("/:id", h.GetBook)
			books.POST("", h.CreateBook)
		}

		notes := authed.Group("/notes")
		{
			notes.GET("", h.MyNotes)
			notes.GET("/feed", h.Feed)
			notes.POST("", h.CreateNote)
			notes.GET("/:id", h.GetNote)
			notes.PATCH("/:id", h.UpdateNote)
			notes.DELETE("/:id", h.DeleteNote)
			notes.POST("/:id/like", h.LikeNote)
			notes.DELETE("/:id/like", h.UnlikeNote)
			notes.POST("/:id/replies", h.ReplyToNote)
			notes.GET("/:id/replies", h.ListReplies)
		}
	}

	return router
}
