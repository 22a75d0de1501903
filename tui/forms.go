package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mealchoice/mealchoice/client"
	"github.com/mealchoice/mealchoice/models"
)

type formKind int

const (
	formMeal formKind = iota
	formRestaurant
)

// formModel is the single-record upsert surface for meals and restaurants.
// Edit mode is determined by whether an existing record was supplied.
type formModel struct {
	api  API
	kind formKind

	editingMeal       *models.Meal
	editingRestaurant *models.Restaurant

	name        textinput.Model
	cuisine     textinput.Model // restaurants only
	description textinput.Model
	imageURL    textinput.Model
	category    int // index into models.Categories(), meals only

	focus  int
	saving bool
}

func newMealForm(api API, editing *models.Meal) formModel {
	f := newForm(api, formMeal)
	f.editingMeal = editing
	if editing != nil {
		f.name.SetValue(editing.Name)
		f.description.SetValue(editing.Description)
		f.imageURL.SetValue(editing.ImageUrl)
		for i, category := range models.Categories() {
			if category == editing.Category {
				f.category = i
			}
		}
	}
	return f
}

func newRestaurantForm(api API, editing *models.Restaurant) formModel {
	f := newForm(api, formRestaurant)
	f.editingRestaurant = editing
	if editing != nil {
		f.name.SetValue(editing.Name)
		f.cuisine.SetValue(editing.CuisineType)
		f.description.SetValue(editing.Description)
		f.imageURL.SetValue(editing.ImageUrl)
	}
	return f
}

func newForm(api API, kind formKind) formModel {
	name := textinput.New()
	name.Placeholder = "Name"
	name.Focus()

	cuisine := textinput.New()
	cuisine.Placeholder = "Cuisine type"

	description := textinput.New()
	description.Placeholder = "Description (optional)"

	imageURL := textinput.New()
	imageURL.Placeholder = "Image URL (optional)"

	return formModel{
		api:         api,
		kind:        kind,
		name:        name,
		cuisine:     cuisine,
		description: description,
		imageURL:    imageURL,
	}
}

// fieldCount includes the category selector for meals and the cuisine input
// for restaurants.
func (f formModel) fieldCount() int {
	return 4
}

func (f formModel) entity() string {
	if f.kind == formMeal {
		return "Meal"
	}
	return "Restaurant"
}

func (f formModel) editing() bool {
	return f.editingMeal != nil || f.editingRestaurant != nil
}

// valid reports whether all required fields are non-empty after trimming.
func (f formModel) valid() bool {
	if strings.TrimSpace(f.name.Value()) == "" {
		return false
	}
	if f.kind == formRestaurant && strings.TrimSpace(f.cuisine.Value()) == "" {
		return false
	}
	return true
}

func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch key.String() {
	case "esc":
		if f.saving {
			return f, nil
		}
		return f, func() tea.Msg { return formCancelMsg{} }
	case "tab", "down":
		f.setFocus((f.focus + 1) % f.fieldCount())
		return f, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + f.fieldCount() - 1) % f.fieldCount())
		return f, nil
	case "enter":
		return f.submit()
	}

	// Second field is the category selector for meals, cycled rather than
	// typed.
	if f.kind == formMeal && f.focus == 1 {
		switch key.String() {
		case "left":
			f.category = (f.category + len(models.Categories()) - 1) % len(models.Categories())
		case "right", " ":
			f.category = (f.category + 1) % len(models.Categories())
		}
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.name, cmd = f.name.Update(msg)
	case 1:
		f.cuisine, cmd = f.cuisine.Update(msg)
	case 2:
		f.description, cmd = f.description.Update(msg)
	case 3:
		f.imageURL, cmd = f.imageURL.Update(msg)
	}
	return f, cmd
}

func (f *formModel) setFocus(focus int) {
	f.focus = focus
	f.name.Blur()
	f.cuisine.Blur()
	f.description.Blur()
	f.imageURL.Blur()
	switch focus {
	case 0:
		f.name.Focus()
	case 1:
		if f.kind == formRestaurant {
			f.cuisine.Focus()
		}
	case 2:
		f.description.Focus()
	case 3:
		f.imageURL.Focus()
	}
}

// submit refuses to issue a write while a prior submission is in flight or
// any required field is blank.
func (f formModel) submit() (formModel, tea.Cmd) {
	if f.saving || !f.valid() {
		return f, nil
	}

	f.saving = true
	api := f.api
	entity := f.entity()
	update := f.editing()

	if f.kind == formMeal {
		input := client.MealInput{
			Name:        strings.TrimSpace(f.name.Value()),
			Category:    models.Categories()[f.category],
			Description: strings.TrimSpace(f.description.Value()),
			ImageUrl:    strings.TrimSpace(f.imageURL.Value()),
		}
		editing := f.editingMeal
		return f, func() tea.Msg {
			var err error
			if editing != nil {
				_, err = api.UpdateMeal(editing.ID, input)
			} else {
				_, err = api.CreateMeal(input)
			}
			if err != nil {
				return formFailedMsg{entity: entity, err: err}
			}
			return formSavedMsg{entity: entity, update: update}
		}
	}

	input := client.RestaurantInput{
		Name:        strings.TrimSpace(f.name.Value()),
		CuisineType: strings.TrimSpace(f.cuisine.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		ImageUrl:    strings.TrimSpace(f.imageURL.Value()),
	}
	editing := f.editingRestaurant
	return f, func() tea.Msg {
		var err error
		if editing != nil {
			_, err = api.UpdateRestaurant(editing.ID, input)
		} else {
			_, err = api.CreateRestaurant(input)
		}
		if err != nil {
			return formFailedMsg{entity: entity, err: err}
		}
		return formSavedMsg{entity: entity, update: update}
	}
}

func (f formModel) View() string {
	var b strings.Builder
	if f.editing() {
		b.WriteString(stepTitleStyle.Render("Edit " + f.entity()))
	} else {
		b.WriteString(stepTitleStyle.Render("Add New " + f.entity()))
	}
	b.WriteString("\n\n")

	b.WriteString(focusLabel("Name *", f.focus == 0))
	b.WriteString("\n" + f.name.View() + "\n\n")

	if f.kind == formMeal {
		b.WriteString(focusLabel("Category *", f.focus == 1))
		b.WriteString("\n")
		for i, category := range models.Categories() {
			marker := "  "
			if i == f.category {
				marker = "● "
			}
			b.WriteString(marker + badgeStyle(category).Render(category) + " ")
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString(focusLabel("Cuisine Type *", f.focus == 1))
		b.WriteString("\n" + f.cuisine.View() + "\n\n")
	}

	b.WriteString(focusLabel("Description", f.focus == 2))
	b.WriteString("\n" + f.description.View() + "\n\n")

	b.WriteString(focusLabel("Image URL", f.focus == 3))
	b.WriteString("\n" + f.imageURL.View() + "\n\n")

	switch {
	case f.saving:
		b.WriteString(subtitleStyle.Render("Saving..."))
	case !f.valid():
		b.WriteString(helpStyle.Render("fill the required fields to save · esc cancel"))
	default:
		b.WriteString(helpStyle.Render("enter save · tab next field · esc cancel"))
	}
	return b.String()
}
