package suggest

import (
	"math/rand"
	"testing"

	"github.com/mealchoice/mealchoice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogue() []models.Meal {
	return []models.Meal{
		{ID: 1, Name: "Rice", Category: models.CategoryCarb},
		{ID: 2, Name: "Pasta", Category: models.CategoryCarb},
		{ID: 3, Name: "Chicken", Category: models.CategoryProtein},
		{ID: 4, Name: "Broccoli", Category: models.CategoryVegetable},
	}
}

func TestPartitionPreservesOrderWithinCategory(t *testing.T) {
	byCategory := Partition(catalogue())

	require.Len(t, byCategory[models.CategoryCarb], 2)
	assert.Equal(t, "Rice", byCategory[models.CategoryCarb][0].Name)
	assert.Equal(t, "Pasta", byCategory[models.CategoryCarb][1].Name)
	assert.Len(t, byCategory[models.CategoryProtein], 1)
	assert.Len(t, byCategory[models.CategoryVegetable], 1)
}

func TestPartitionAlwaysHasAllThreeKeys(t *testing.T) {
	byCategory := Partition(nil)

	for _, category := range models.Categories() {
		_, ok := byCategory[category]
		assert.True(t, ok, category)
	}
}

func TestRandomComboFillsEverySlot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	combo := RandomCombo(rng, catalogue())

	require.NotNil(t, combo.Carb)
	require.NotNil(t, combo.Protein)
	require.NotNil(t, combo.Vegetable)
	assert.Equal(t, models.CategoryCarb, combo.Carb.Category)
	assert.Equal(t, models.CategoryProtein, combo.Protein.Category)
	assert.Equal(t, models.CategoryVegetable, combo.Vegetable.Category)
	assert.False(t, combo.Empty())
}

func TestRandomComboSkipsEmptyCategories(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	meals := []models.Meal{
		{ID: 1, Name: "Rice", Category: models.CategoryCarb},
	}

	combo := RandomCombo(rng, meals)

	require.NotNil(t, combo.Carb)
	assert.Equal(t, "Rice", combo.Carb.Name)
	assert.Nil(t, combo.Protein)
	assert.Nil(t, combo.Vegetable)
}

func TestRandomComboEmptyCatalogue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	combo := RandomCombo(rng, nil)

	assert.True(t, combo.Empty())
}

func TestRandomComboOnlyDrawsFromOwnCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	meals := catalogue()

	for i := 0; i < 50; i++ {
		combo := RandomCombo(rng, meals)
		assert.Contains(t, []string{"Rice", "Pasta"}, combo.Carb.Name)
		assert.Equal(t, "Chicken", combo.Protein.Name)
		assert.Equal(t, "Broccoli", combo.Vegetable.Name)
	}
}

func TestRandomRestaurant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Nil(t, RandomRestaurant(rng, nil))

	restaurants := []models.Restaurant{{ID: 1, Name: "Thai Palace"}}
	pick := RandomRestaurant(rng, restaurants)
	require.NotNil(t, pick)
	assert.Equal(t, "Thai Palace", pick.Name)
}
