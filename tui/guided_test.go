package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mealchoice/mealchoice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guidedCatalogue() []models.Meal {
	return []models.Meal{
		{ID: 1, Name: "Rice", Category: models.CategoryCarb},
		{ID: 2, Name: "Pasta", Category: models.CategoryCarb},
		{ID: 3, Name: "Chicken", Category: models.CategoryProtein},
		{ID: 4, Name: "Broccoli", Category: models.CategoryVegetable},
	}
}

func TestGuidedWalkthrough(t *testing.T) {
	g := newGuided()
	g.setMeals(guidedCatalogue())

	// Step 1: pick the second carb.
	g, _ = g.Update(key(tea.KeyDown))
	g, cmd := g.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, g.step)
	assert.Equal(t, 0, g.cursor)
	assert.Equal(t, "Pasta", g.picked[models.CategoryCarb].Name)

	// Step 2: only one protein.
	g, cmd = g.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, g.step)

	// Step 3: the terminal pick completes the wizard.
	g, cmd = g.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg, ok := cmd().(guidedCompletedMsg)
	require.True(t, ok)
	assert.Equal(t, "Pasta", msg.carb.Name)
	assert.Equal(t, "Chicken", msg.protein.Name)
	assert.Equal(t, "Broccoli", msg.vegetable.Name)
}

func TestGuidedPreviousOnFirstStepExits(t *testing.T) {
	g := newGuided()
	g.setMeals(guidedCatalogue())

	g, cmd := g.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(guidedExitMsg)
	assert.True(t, ok)
	assert.Equal(t, 0, g.step)
}

func TestGuidedPreviousStepsBack(t *testing.T) {
	g := newGuided()
	g.setMeals(guidedCatalogue())

	g, _ = g.Update(key(tea.KeyEnter))
	require.Equal(t, 1, g.step)

	g, cmd := g.Update(key(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, g.step)
	assert.Equal(t, 0, g.cursor)
}

func TestGuidedCursorStaysInBounds(t *testing.T) {
	g := newGuided()
	g.setMeals(guidedCatalogue())

	g, _ = g.Update(key(tea.KeyUp))
	assert.Equal(t, 0, g.cursor)

	for i := 0; i < 5; i++ {
		g, _ = g.Update(key(tea.KeyDown))
	}
	assert.Equal(t, 1, g.cursor)
}

func TestGuidedEnterOnEmptyCategoryDoesNothing(t *testing.T) {
	g := newGuided()
	g.setMeals([]models.Meal{{ID: 3, Name: "Chicken", Category: models.CategoryProtein}})

	g, cmd := g.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, g.step)
	assert.Empty(t, g.picked)
}

func TestGuidedIgnoresKeysWhileLoading(t *testing.T) {
	g := newGuided()
	require.True(t, g.loading)

	g, cmd := g.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, g.step)
}
