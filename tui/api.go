package tui

import (
	"github.com/mealchoice/mealchoice/client"
	"github.com/mealchoice/mealchoice/models"
)

// API is the slice of the data-access client the dashboard needs. It exists
// so tests can substitute a fake backend.
type API interface {
	LoadAll() (*client.Snapshot, error)
	ListMeals() ([]models.Meal, error)
	CreateMeal(input client.MealInput) (*models.Meal, error)
	UpdateMeal(id uint, input client.MealInput) (*models.Meal, error)
	DeleteMeal(id uint) error
	CreateRestaurant(input client.RestaurantInput) (*models.Restaurant, error)
	UpdateRestaurant(id uint, input client.RestaurantInput) (*models.Restaurant, error)
	DeleteRestaurant(id uint) error
	CreateLog(input client.LogInput) (*models.MealLog, error)
}

var _ API = (*client.Client)(nil)
