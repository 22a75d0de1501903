package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mealchoice/mealchoice/db"
	"github.com/mealchoice/mealchoice/routes"
)

func main() {
	// Load environment variables; a missing .env is fine in production where
	// the variables come from the process environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if os.Getenv("JWT_SECRET_KEY") == "" {
		log.Fatal("JWT_SECRET_KEY environment variable is required")
	}

	DB := db.GetDB()
	db.Migrate(DB)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	routes.AuthRoutes(router)
	routes.MealRoutes(router)
	routes.RestaurantRoutes(router)
	routes.LogRoutes(router)
	routes.PreferenceRoutes(router)
	routes.UserRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Server running on port %s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
