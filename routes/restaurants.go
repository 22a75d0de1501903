package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealchoice/mealchoice/db"
	"github.com/mealchoice/mealchoice/middleware"
	"github.com/mealchoice/mealchoice/models"
	"gorm.io/gorm"
)

// RestaurantRoutes sets up the routes for the shared restaurant catalogue.
func RestaurantRoutes(router *gin.Engine) {
	restaurantRoutes := router.Group("/restaurants")
	restaurantRoutes.Use(middleware.AuthMiddleware())
	{
		restaurantRoutes.GET("/", GetAllRestaurants())
		restaurantRoutes.POST("/", CreateRestaurant())
		restaurantRoutes.PUT("/:restaurant_id", UpdateRestaurant())
		restaurantRoutes.DELETE("/:restaurant_id", DeleteRestaurant())
	}
}

// GetAllRestaurants lists the restaurant catalogue, ordered by name by default.
func GetAllRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		var restaurants []models.Restaurant

		DB := db.GetDB()
		if result := DB.Order(orderParam(c, "name", "created_at")).Find(&restaurants); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurants: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
	}
}

// CreateRestaurant handles the creation of a new restaurant.
func CreateRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Name        string `json:"name" binding:"required"`
			CuisineType string `json:"cuisine_type" binding:"required"`
			Description string `json:"description"`
			ImageUrl    string `json:"image_url"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		restaurant := models.Restaurant{
			Name:        request.Name,
			CuisineType: request.CuisineType,
			Description: request.Description,
			ImageUrl:    request.ImageUrl,
		}

		DB := db.GetDB()
		if result := DB.Create(&restaurant); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
	}
}

// UpdateRestaurant handles the update of an existing restaurant.
func UpdateRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("restaurant_id")
		var restaurant models.Restaurant

		DB := db.GetDB()
		if result := DB.First(&restaurant, restaurantID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurant: " + result.Error.Error()})
			}
			return
		}

		var request struct {
			Name        string `json:"name" binding:"required"`
			CuisineType string `json:"cuisine_type" binding:"required"`
			Description string `json:"description"`
			ImageUrl    string `json:"image_url"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		restaurant.Name = request.Name
		restaurant.CuisineType = request.CuisineType
		restaurant.Description = request.Description
		restaurant.ImageUrl = request.ImageUrl

		if result := DB.Save(&restaurant); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
	}
}

// DeleteRestaurant removes a restaurant permanently, leaving its logs intact.
func DeleteRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("restaurant_id")
		var restaurant models.Restaurant

		DB := db.GetDB()
		if result := DB.First(&restaurant, restaurantID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurant: " + result.Error.Error()})
			}
			return
		}

		if result := DB.Delete(&restaurant); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
	}
}
