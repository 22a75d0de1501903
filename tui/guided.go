package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mealchoice/mealchoice/models"
	"github.com/mealchoice/mealchoice/suggest"
)

// guidedModel walks the three fixed steps carb → protein → vegetable,
// storing one pick per step. Selecting on the terminal step completes the
// wizard; previous on the first step exits it.
type guidedModel struct {
	steps   []string
	options map[string][]models.Meal
	picked  map[string]models.Meal
	step    int
	cursor  int
	loading bool
}

func newGuided() guidedModel {
	return guidedModel{
		steps:   models.Categories(),
		picked:  make(map[string]models.Meal),
		loading: true,
	}
}

// setMeals installs the freshly loaded catalogue, partitioned by category.
func (g *guidedModel) setMeals(meals []models.Meal) {
	g.options = suggest.Partition(meals)
	g.loading = false
}

func (g guidedModel) category() string {
	return g.steps[g.step]
}

func (g guidedModel) current() []models.Meal {
	return g.options[g.category()]
}

func (g guidedModel) Update(msg tea.Msg) (guidedModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || g.loading {
		return g, nil
	}

	switch key.String() {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < len(g.current())-1 {
			g.cursor++
		}
	case "enter":
		options := g.current()
		if len(options) == 0 {
			return g, nil
		}
		choice := options[g.cursor]
		g.picked[g.category()] = choice
		if g.step == len(g.steps)-1 {
			carb, protein := g.picked[models.CategoryCarb], g.picked[models.CategoryProtein]
			return g, func() tea.Msg {
				return guidedCompletedMsg{carb: carb, protein: protein, vegetable: choice}
			}
		}
		g.step++
		g.cursor = 0
	case "esc", "left", "backspace":
		if g.step > 0 {
			g.step--
			g.cursor = 0
			return g, nil
		}
		return g, func() tea.Msg { return guidedExitMsg{} }
	}
	return g, nil
}

func (g guidedModel) View() string {
	if g.loading {
		return subtitleStyle.Render("Loading meal options...")
	}

	var b strings.Builder
	b.WriteString(stepTitleStyle.Render(stepTitle(g.category())))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Step %d of %d", g.step+1, len(g.steps))))
	b.WriteString("\n\n")

	options := g.current()
	if len(options) == 0 {
		b.WriteString(subtitleStyle.Render("No meals in this category yet."))
	}
	for i, meal := range options {
		marker := "  "
		if i == g.cursor {
			marker = "> "
		}
		line := marker + meal.Name
		if meal.Description != "" {
			line += "  " + cardMetaStyle.Render(meal.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(g.picked) > 0 {
		b.WriteString("\n")
		var chosen []string
		for _, category := range g.steps {
			if meal, ok := g.picked[category]; ok {
				chosen = append(chosen, badgeStyle(category).Render(meal.Name))
			}
		}
		b.WriteString(strings.Join(chosen, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · esc previous"))
	return b.String()
}

func stepTitle(category string) string {
	switch category {
	case models.CategoryCarb:
		return "Choose Your Carb"
	case models.CategoryProtein:
		return "Pick Your Protein"
	default:
		return "Select Your Vegetable"
	}
}
