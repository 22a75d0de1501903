package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mealchoice/mealchoice/db"
	"github.com/mealchoice/mealchoice/middleware"
	"github.com/mealchoice/mealchoice/models"
)

// LogRoutes sets up the meal log routes. Logs are create-only: there is no
// update or delete route.
func LogRoutes(router *gin.Engine) {
	logRoutes := router.Group("/logs")
	logRoutes.Use(middleware.AuthMiddleware())
	{
		logRoutes.GET("/", GetAllLogs())
		logRoutes.POST("/", CreateLog())
	}
}

// GetAllLogs lists the authenticated user's logs, newest eaten-at first.
// The dashboard's derived stats depend on this ordering.
func GetAllLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		var logs []models.MealLog

		DB := db.GetDB()
		if result := DB.Where("user_id = ?", userID).Order("eaten_at DESC").Find(&logs); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve logs: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"logs": logs})
	}
}

// CreateLog records one consumption event for the authenticated user.
// Exactly one of meal_id/restaurant_id must be set.
func CreateLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		var request struct {
			MealID       *uint     `json:"meal_id"`
			RestaurantID *uint     `json:"restaurant_id"`
			Rating       *int      `json:"rating" binding:"omitempty,min=1,max=5"`
			Notes        string    `json:"notes"`
			EatenAt      time.Time `json:"eaten_at" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if (request.MealID == nil) == (request.RestaurantID == nil) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of meal_id or restaurant_id must be set"})
			return
		}

		log := models.MealLog{
			UserID:       userID,
			MealID:       request.MealID,
			RestaurantID: request.RestaurantID,
			Rating:       request.Rating,
			Notes:        request.Notes,
			EatenAt:      request.EatenAt,
		}

		DB := db.GetDB()
		if result := DB.Create(&log); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create log: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"log": log})
	}
}
