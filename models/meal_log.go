package models

import "time"

// MealLog records one consumption event. Exactly one of MealID/RestaurantID
// is set. Both are soft references: deleting the meal or restaurant leaves
// the log untouched.
type MealLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	MealID       *uint     `json:"meal_id"`
	RestaurantID *uint     `json:"restaurant_id"`
	Rating       *int      `json:"rating"` // 1-5, nil when unrated
	Notes        string    `json:"notes"`
	EatenAt      time.Time `gorm:"index" json:"eaten_at"`
	CreatedAt    time.Time `json:"created_at"`
}
