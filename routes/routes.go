// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"treebook-api/config"
	"treebook-api/controllers"
	"treebook-api/middleware"
	"treebook-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Services
	userService := services.NewUserService(db)
	friendshipService := services.NewFriendshipService(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, userService, emailService)
	userController := controllers.NewUserController(db, userService)
	statusController := controllers.NewStatusController(db)
	friendshipController := controllers.NewFriendshipController(db, friendshipService, userService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/:profile_name", userController.GetUserByProfileName)
		}

		// Status routes
		statuses := protected.Group("/statuses")
		{
			statuses.GET("/", statusController.GetStatuses)
			statuses.POST("/", statusController.CreateStatus)
			statuses.PUT("/:id", statusController.UpdateStatus)
			statuses.DELETE("/:id", statusController.DeleteStatus)
		}

		// Friendship routes
		friendships := protected.Group("/friendships")
		{
			friendships.GET("/", friendshipController.GetFriendships)
			friendships.POST("/", friendshipController.CreateFriendship)
			friendships.PUT("/:id/accept", friendshipController.AcceptFriendship)
			friendships.DELETE("/:id", friendshipController.DestroyFriendship)
			friendships.GET("/friends", friendshipController.GetFriends)
			friendships.GET("/pending", friendshipController.GetPendingRequests)
			friendships.GET("/sent", friendshipController.GetSentRequests)
			friendships.GET("/status/:user_id", friendshipController.GetFriendshipStatus)
		}
	}
}
