package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mealchoice/mealchoice/models"
)

// confirmModel is the blocking gate in front of every destructive write.
// While it is open all other interaction is suspended, and its confirm
// action is disabled while the delete is in flight. It closes only after a
// successful delete; a failure leaves it open for retry.
type confirmModel struct {
	api        API
	meal       *models.Meal
	restaurant *models.Restaurant
	busy       bool
}

func newDeleteConfirm(api API, meal *models.Meal, restaurant *models.Restaurant) confirmModel {
	return confirmModel{api: api, meal: meal, restaurant: restaurant}
}

func (c confirmModel) entity() string {
	if c.meal != nil {
		return "Meal"
	}
	return "Restaurant"
}

func (c confirmModel) name() string {
	if c.meal != nil {
		return c.meal.Name
	}
	return c.restaurant.Name
}

// Update returns close=true when the dialog should be dismissed without
// deleting.
func (c confirmModel) Update(msg tea.Msg) (confirmModel, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}

	switch key.String() {
	case "esc":
		if c.busy {
			return c, nil, false
		}
		return c, nil, true
	case "enter", "y":
		if c.busy {
			return c, nil, false
		}
		c.busy = true
		api := c.api
		entity := c.entity()
		meal, restaurant := c.meal, c.restaurant
		return c, func() tea.Msg {
			var err error
			if meal != nil {
				err = api.DeleteMeal(meal.ID)
			} else {
				err = api.DeleteRestaurant(restaurant.ID)
			}
			if err != nil {
				return deleteFailedMsg{entity: entity, err: err}
			}
			return deletedMsg{entity: entity}
		}, false
	}
	return c, nil, false
}

func (c confirmModel) View() string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Delete " + c.entity()))
	b.WriteString("\n\n")
	b.WriteString("Are you sure you want to delete \"" + c.name() + "\"?\n")
	b.WriteString(subtitleStyle.Render("This action cannot be undone."))
	b.WriteString("\n\n")
	if c.busy {
		b.WriteString(subtitleStyle.Render("Deleting..."))
	} else {
		b.WriteString(helpStyle.Render("enter delete · esc cancel"))
	}
	return modalStyle.Render(b.String())
}
