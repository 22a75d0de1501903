package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealchoice/mealchoice/db"
	"github.com/mealchoice/mealchoice/middleware"
	"github.com/mealchoice/mealchoice/models"
	"gorm.io/gorm"
)

// MealRoutes sets up the routes for the shared meal catalogue.
func MealRoutes(router *gin.Engine) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Use(middleware.AuthMiddleware())
	{
		mealRoutes.GET("/", GetAllMeals())
		mealRoutes.POST("/", CreateMeal())
		mealRoutes.PUT("/:meal_id", UpdateMeal())
		mealRoutes.DELETE("/:meal_id", DeleteMeal())
	}
}

// orderParam whitelists the order column requested via ?order=. Callers get
// name ordering unless they ask for one of the allowed columns.
func orderParam(c *gin.Context, allowed ...string) string {
	requested := c.DefaultQuery("order", "name")
	for _, col := range allowed {
		if requested == col {
			return col
		}
	}
	return "name"
}

// GetAllMeals lists the full meal catalogue, ordered by name by default.
func GetAllMeals() gin.HandlerFunc {
	return func(c *gin.Context) {
		var meals []models.Meal

		DB := db.GetDB()
		if result := DB.Order(orderParam(c, "name", "created_at")).Find(&meals); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meals: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"meals": meals})
	}
}

// CreateMeal handles the creation of a new catalogue meal.
func CreateMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Name        string `json:"name" binding:"required"`
			Category    string `json:"category" binding:"required,oneof=carb protein vegetable"`
			Description string `json:"description"`
			ImageUrl    string `json:"image_url"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		meal := models.Meal{
			Name:        request.Name,
			Category:    request.Category,
			Description: request.Description,
			ImageUrl:    request.ImageUrl,
		}

		DB := db.GetDB()
		if result := DB.Create(&meal); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"meal": meal})
	}
}

// UpdateMeal handles the update of an existing catalogue meal.
func UpdateMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		mealID := c.Param("meal_id")
		var meal models.Meal

		DB := db.GetDB()
		if result := DB.First(&meal, mealID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meal: " + result.Error.Error()})
			}
			return
		}

		var request struct {
			Name        string `json:"name" binding:"required"`
			Category    string `json:"category" binding:"required,oneof=carb protein vegetable"`
			Description string `json:"description"`
			ImageUrl    string `json:"image_url"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		meal.Name = request.Name
		meal.Category = request.Category
		meal.Description = request.Description
		meal.ImageUrl = request.ImageUrl

		if result := DB.Save(&meal); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"meal": meal})
	}
}

// DeleteMeal removes a meal permanently. Logs referencing it are left in
// place; the reference is soft.
func DeleteMeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		mealID := c.Param("meal_id")
		var meal models.Meal

		DB := db.GetDB()
		if result := DB.First(&meal, mealID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meal: " + result.Error.Error()})
			}
			return
		}

		if result := DB.Delete(&meal); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal: " + result.Error.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
	}
}
