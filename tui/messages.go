package tui

import (
	"github.com/mealchoice/mealchoice/client"
	"github.com/mealchoice/mealchoice/models"
)

// Messages flowing back into the dashboard from commands. Remote calls run
// as tea.Cmds; only these results ever mutate the model.

type loadedMsg struct {
	snap *client.Snapshot
}

type loadFailedMsg struct {
	err error
}

type guidedMealsMsg struct {
	meals []models.Meal
}

type guidedLoadFailedMsg struct {
	err error
}

// guidedCompletedMsg carries exactly one meal per category, in step order.
type guidedCompletedMsg struct {
	carb      models.Meal
	protein   models.Meal
	vegetable models.Meal
}

type guidedExitMsg struct{}

type logSavedMsg struct{}

type logFailedMsg struct {
	err error
}

type logCancelMsg struct{}

type formSavedMsg struct {
	entity string // "Meal" or "Restaurant"
	update bool
}

type formFailedMsg struct {
	entity string
	err    error
}

type formCancelMsg struct{}

type deletedMsg struct {
	entity string
}

type deleteFailedMsg struct {
	entity string
	err    error
}

type toastExpiredMsg struct {
	seq int
}
