// Package suggest implements the random and guided suggestion logic:
// partitioning the meal catalogue by category and drawing uniform picks.
// Picks are uniform by design; preferences never weight them.
package suggest

import (
	"math/rand"

	"github.com/mealchoice/mealchoice/models"
)

// Partition splits the catalogue into the three category lists, preserving
// input order within each. Keys follow the guided-choice step order.
func Partition(meals []models.Meal) map[string][]models.Meal {
	byCategory := map[string][]models.Meal{
		models.CategoryCarb:      nil,
		models.CategoryProtein:   nil,
		models.CategoryVegetable: nil,
	}
	for _, meal := range meals {
		byCategory[meal.Category] = append(byCategory[meal.Category], meal)
	}
	return byCategory
}

// Combo is one randomly assembled meal: one pick per category. A nil slot
// means that category had no meals to draw from.
type Combo struct {
	Carb      *models.Meal
	Protein   *models.Meal
	Vegetable *models.Meal
}

// Empty reports whether no slot could be filled.
func (c Combo) Empty() bool {
	return c.Carb == nil && c.Protein == nil && c.Vegetable == nil
}

// RandomCombo draws one uniformly-random meal from each non-empty category.
// Empty categories are silently skipped; there is no retry or fallback.
func RandomCombo(rng *rand.Rand, meals []models.Meal) Combo {
	byCategory := Partition(meals)
	return Combo{
		Carb:      pick(rng, byCategory[models.CategoryCarb]),
		Protein:   pick(rng, byCategory[models.CategoryProtein]),
		Vegetable: pick(rng, byCategory[models.CategoryVegetable]),
	}
}

// RandomRestaurant draws one uniformly-random restaurant, or nil when the
// catalogue is empty.
func RandomRestaurant(rng *rand.Rand, restaurants []models.Restaurant) *models.Restaurant {
	if len(restaurants) == 0 {
		return nil
	}
	r := restaurants[rng.Intn(len(restaurants))]
	return &r
}

func pick(rng *rand.Rand, meals []models.Meal) *models.Meal {
	if len(meals) == 0 {
		return nil
	}
	m := meals[rng.Intn(len(meals))]
	return &m
}
