package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mealchoice/mealchoice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealFormWhitespaceNameIssuesNoWrite(t *testing.T) {
	api := &fakeAPI{}
	f := newMealForm(api, nil)
	f.name.SetValue("   ")

	f, cmd := f.Update(key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, f.saving)
	assert.Empty(t, api.createdMeals)
}

func TestMealFormCreateTrimsFields(t *testing.T) {
	api := &fakeAPI{}
	f := newMealForm(api, nil)
	f.name.SetValue("  Fried Rice  ")
	f.description.SetValue("  weeknight staple  ")

	// Cycle the category selector to protein.
	f.setFocus(1)
	f, _ = f.Update(key(tea.KeyRight))

	f, cmd := f.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, f.saving)

	msg, ok := cmd().(formSavedMsg)
	require.True(t, ok)
	assert.Equal(t, "Meal", msg.entity)
	assert.False(t, msg.update)

	require.Len(t, api.createdMeals, 1)
	input := api.createdMeals[0]
	assert.Equal(t, "Fried Rice", input.Name)
	assert.Equal(t, models.CategoryProtein, input.Category)
	assert.Equal(t, "weeknight staple", input.Description)
}

func TestMealFormEditPrefillsAndUpdates(t *testing.T) {
	api := &fakeAPI{}
	existing := models.Meal{ID: 5, Name: "Rice", Category: models.CategoryCarb, Description: "plain"}
	f := newMealForm(api, &existing)

	assert.Equal(t, "Rice", f.name.Value())
	assert.Equal(t, "plain", f.description.Value())
	assert.Equal(t, 0, f.category)

	f.name.SetValue("Brown Rice")
	f, cmd := f.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg, ok := cmd().(formSavedMsg)
	require.True(t, ok)
	assert.True(t, msg.update)

	require.Contains(t, api.updatedMeals, uint(5))
	assert.Equal(t, "Brown Rice", api.updatedMeals[5].Name)
	assert.Empty(t, api.createdMeals)
}

func TestRestaurantFormRequiresCuisine(t *testing.T) {
	api := &fakeAPI{}
	f := newRestaurantForm(api, nil)
	f.name.SetValue("Thai Palace")

	f, cmd := f.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Empty(t, api.createdRestaurants)

	f.cuisine.SetValue("Thai")
	f, cmd = f.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	_, ok := cmd().(formSavedMsg)
	require.True(t, ok)
	require.Len(t, api.createdRestaurants, 1)
	assert.Equal(t, "Thai", api.createdRestaurants[0].CuisineType)
}

func TestFormSubmitGuardsWhileSaving(t *testing.T) {
	api := &fakeAPI{}
	f := newMealForm(api, nil)
	f.name.SetValue("Rice")
	f.saving = true

	f, cmd := f.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)

	_, cmd = f.Update(key(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.Empty(t, api.createdMeals)
}

func TestFormCancelEmitsCancelMsg(t *testing.T) {
	f := newMealForm(&fakeAPI{}, nil)

	_, cmd := f.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(formCancelMsg)
	assert.True(t, ok)
}
