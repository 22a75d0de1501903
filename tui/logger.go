package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mealchoice/mealchoice/client"
	"github.com/mealchoice/mealchoice/models"
)

const eatenAtLayout = "2006-01-02 15:04"

const (
	loggerFocusRating = iota
	loggerFocusEatenAt
	loggerFocusNotes
)

// loggerModel captures a rating, notes, and eaten-at time for one already
// selected meal or restaurant, then writes a single log record.
type loggerModel struct {
	api        API
	meal       *models.Meal
	restaurant *models.Restaurant

	rating  int // 0 means no rating
	eatenAt textinput.Model
	notes   textinput.Model
	focus   int
	saving  bool
	dateErr bool
}

func newLogger(api API, meal *models.Meal, restaurant *models.Restaurant, now time.Time) loggerModel {
	eatenAt := textinput.New()
	eatenAt.SetValue(now.Format(eatenAtLayout))
	eatenAt.CharLimit = len(eatenAtLayout)

	notes := textinput.New()
	notes.Placeholder = "How was it? Any thoughts or memories..."

	return loggerModel{
		api:        api,
		meal:       meal,
		restaurant: restaurant,
		eatenAt:    eatenAt,
		notes:      notes,
	}
}

func (l loggerModel) title() string {
	if l.meal != nil {
		return l.meal.Name
	}
	return l.restaurant.Name
}

func (l loggerModel) Update(msg tea.Msg) (loggerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key.String() {
	case "esc":
		if l.saving {
			return l, nil
		}
		return l, func() tea.Msg { return logCancelMsg{} }
	case "tab", "down":
		l.setFocus((l.focus + 1) % 3)
		return l, nil
	case "shift+tab", "up":
		l.setFocus((l.focus + 2) % 3)
		return l, nil
	case "enter":
		return l.submit()
	}

	if l.focus == loggerFocusRating {
		switch key.String() {
		case "1", "2", "3", "4", "5":
			l.rating = int(key.String()[0] - '0')
		case "0", "c":
			// Clear restores "no rating".
			l.rating = 0
		}
		return l, nil
	}

	var cmd tea.Cmd
	if l.focus == loggerFocusEatenAt {
		l.eatenAt, cmd = l.eatenAt.Update(msg)
		l.dateErr = false
	} else {
		l.notes, cmd = l.notes.Update(msg)
	}
	return l, cmd
}

func (l *loggerModel) setFocus(focus int) {
	l.focus = focus
	l.eatenAt.Blur()
	l.notes.Blur()
	switch focus {
	case loggerFocusEatenAt:
		l.eatenAt.Focus()
	case loggerFocusNotes:
		l.notes.Focus()
	}
}

// submit builds exactly one log record for the selected meal or restaurant.
// Zero rating and blank notes are stored as absent.
func (l loggerModel) submit() (loggerModel, tea.Cmd) {
	if l.saving {
		return l, nil
	}

	eatenAt, err := time.ParseInLocation(eatenAtLayout, strings.TrimSpace(l.eatenAt.Value()), time.Local)
	if err != nil {
		l.dateErr = true
		return l, nil
	}

	input := client.LogInput{
		Notes:   strings.TrimSpace(l.notes.Value()),
		EatenAt: eatenAt,
	}
	if l.rating > 0 {
		rating := l.rating
		input.Rating = &rating
	}
	if l.meal != nil {
		input.MealID = &l.meal.ID
	} else {
		input.RestaurantID = &l.restaurant.ID
	}

	l.saving = true
	api := l.api
	return l, func() tea.Msg {
		if _, err := api.CreateLog(input); err != nil {
			return logFailedMsg{err: err}
		}
		return logSavedMsg{}
	}
}

func (l loggerModel) View() string {
	var b strings.Builder
	b.WriteString(stepTitleStyle.Render("Log Your Meal"))
	b.WriteString("\n\n")
	b.WriteString(cardTitleStyle.Render(l.title()))
	if l.meal != nil && l.meal.Description != "" {
		b.WriteString("\n" + cardMetaStyle.Render(l.meal.Description))
	}
	if l.restaurant != nil && l.restaurant.CuisineType != "" {
		b.WriteString("\n" + cardMetaStyle.Render(l.restaurant.CuisineType+" cuisine"))
	}
	b.WriteString("\n\n")

	b.WriteString(focusLabel("Rating (optional)", l.focus == loggerFocusRating))
	b.WriteString("\n")
	b.WriteString(starStyle.Render(renderStars(l.rating)))
	if l.rating > 0 {
		b.WriteString(helpStyle.Render("  c clear"))
	}
	b.WriteString("\n\n")

	b.WriteString(focusLabel("When did you eat this?", l.focus == loggerFocusEatenAt))
	b.WriteString("\n")
	b.WriteString(l.eatenAt.View())
	if l.dateErr {
		b.WriteString("  " + toastErrorStyle.Render("use YYYY-MM-DD HH:MM"))
	}
	b.WriteString("\n\n")

	b.WriteString(focusLabel("Notes (optional)", l.focus == loggerFocusNotes))
	b.WriteString("\n")
	b.WriteString(l.notes.View())
	b.WriteString("\n\n")

	if l.saving {
		b.WriteString(subtitleStyle.Render("Logging..."))
	} else {
		b.WriteString(helpStyle.Render("1-5 rate · tab next field · enter log it · esc cancel"))
	}
	return b.String()
}

func focusLabel(text string, focused bool) string {
	if focused {
		return labelStyle.Render("▸ " + text)
	}
	return labelStyle.Render("  " + text)
}

func renderStars(rating int) string {
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
