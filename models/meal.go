package models

import "time"

// Meal categories form a closed set; there are no sub-categories.
const (
	CategoryCarb      = "carb"
	CategoryProtein   = "protein"
	CategoryVegetable = "vegetable"
)

// Categories returns the three meal categories in guided-choice step order.
func Categories() []string {
	return []string{CategoryCarb, CategoryProtein, CategoryVegetable}
}

type Meal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Category    string    `gorm:"index" json:"category"`
	Description string    `json:"description"`
	ImageUrl    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
