package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealchoice/mealchoice/db"
	"github.com/mealchoice/mealchoice/middleware"
	"github.com/mealchoice/mealchoice/models"
	"gorm.io/gorm"
)

// PreferenceRoutes sets up the user preference routes. The record is part of
// the schema but no dashboard behavior reads it.
func PreferenceRoutes(router *gin.Engine) {
	prefRoutes := router.Group("/preferences")
	prefRoutes.Use(middleware.AuthMiddleware())
	{
		prefRoutes.GET("/", GetPreferences())
		prefRoutes.PUT("/", SavePreferences())
	}
}

// GetPreferences returns the authenticated user's preferences, or an empty
// record when none have been saved yet.
func GetPreferences() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		var prefs models.UserPreferences

		DB := db.GetDB()
		result := DB.Where("user_id = ?", userID).First(&prefs)
		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"preferences": models.UserPreferences{UserID: userID}})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve preferences: " + result.Error.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"preferences": prefs})
	}
}

// SavePreferences upserts the authenticated user's preferences.
func SavePreferences() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		var request struct {
			PreferredCarbs      []string `json:"preferred_carbs"`
			PreferredProteins   []string `json:"preferred_proteins"`
			PreferredVegetables []string `json:"preferred_vegetables"`
			DietaryRestrictions []string `json:"dietary_restrictions"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		DB := db.GetDB()
		var prefs models.UserPreferences
		result := DB.Where("user_id = ?", userID).First(&prefs)
		if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve preferences: " + result.Error.Error()})
			return
		}

		prefs.UserID = userID
		prefs.PreferredCarbs = request.PreferredCarbs
		prefs.PreferredProteins = request.PreferredProteins
		prefs.PreferredVegetables = request.PreferredVegetables
		prefs.DietaryRestrictions = request.DietaryRestrictions

		if result := DB.Save(&prefs); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"preferences": prefs})
	}
}
