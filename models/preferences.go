package models

import "time"

// UserPreferences stores per-user taste settings. The dashboard never
// consults it; suggestions stay uniform regardless of what is saved here.
type UserPreferences struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"uniqueIndex" json:"user_id"`
	PreferredCarbs      []string  `gorm:"serializer:json" json:"preferred_carbs"`
	PreferredProteins   []string  `gorm:"serializer:json" json:"preferred_proteins"`
	PreferredVegetables []string  `gorm:"serializer:json" json:"preferred_vegetables"`
	DietaryRestrictions []string  `gorm:"serializer:json" json:"dietary_restrictions"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
