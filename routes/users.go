package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealchoice/mealchoice/db"
	"github.com/mealchoice/mealchoice/middleware"
	"github.com/mealchoice/mealchoice/models"
)

// UserRoutes sets up the routes for the authenticated user's own profile.
func UserRoutes(router *gin.Engine) {
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.GET("/me", GetMe())
	}
}

// GetMe returns the profile of the authenticated user.
func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		var user models.User

		DB := db.GetDB()
		if result := DB.First(&user, userID); result.Error != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
