package db

import (
	"fmt"
	"log"
	"os"

	"github.com/mealchoice/mealchoice/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USERNAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	DB = conn
}

func GetDB() *gorm.DB {
	if DB == nil {
		Connect()
	}
	return DB
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Restaurant{},
		&models.MealLog{},
		&models.UserPreferences{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
