// Package tui is the MealChoice terminal dashboard. A single root model
// owns the loaded snapshot and exactly one active view at a time; child
// views report back through messages and never touch the snapshot.
package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mealchoice/mealchoice/client"
	"github.com/mealchoice/mealchoice/models"
	"github.com/mealchoice/mealchoice/stats"
	"github.com/mealchoice/mealchoice/suggest"
)

type view int

const (
	viewHome view = iota
	viewGuided
	viewLogging
	viewManage
)

type tab int

const (
	tabMeals tab = iota
	tabRestaurants
)

// Model is the dashboard root. The snapshot it holds is discarded and
// refetched after every completed mutation rather than patched in place.
type Model struct {
	api     API
	session *client.Session
	rng     *rand.Rand
	now     func() time.Time

	view    view
	loading bool
	snap    client.Snapshot

	tab    tab
	search textinput.Model
	cursor int

	guided  guidedModel
	logger  loggerModel
	form    *formModel
	confirm *confirmModel

	toast  toast
	width  int
	height int
}

// New creates the dashboard for a signed-in session.
func New(api API, session *client.Session) Model {
	search := textinput.New()
	search.Placeholder = "Search meals or restaurants..."
	search.Prompt = "🔍 "
	search.Focus()

	return Model{
		api:     api,
		session: session,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		loading: true,
		search:  search,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd refetches all three collections as one all-or-nothing batch.
func (m Model) loadCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		snap, err := api.LoadAll()
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{snap: snap}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil

	case loadedMsg:
		m.loading = false
		m.snap = *msg.snap
		m.clampCursor()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		return m, m.toast.show(toastError, "Failed to load data")

	case guidedMealsMsg:
		m.guided.setMeals(msg.meals)
		return m, nil

	case guidedLoadFailedMsg:
		m.guided.setMeals(nil)
		return m, m.toast.show(toastError, "Failed to load meals")

	case guidedCompletedMsg:
		m.view = viewHome
		text := "Great choice! " + msg.carb.Name + ", " + msg.protein.Name + ", and " + msg.vegetable.Name + "!"
		return m, m.toast.show(toastSuccess, text)

	case guidedExitMsg:
		m.view = viewHome
		return m, nil

	case logSavedMsg:
		m.view = viewHome
		m.loading = true
		return m, tea.Batch(m.toast.show(toastSuccess, "Meal logged successfully!"), m.loadCmd())

	case logFailedMsg:
		m.logger.saving = false
		return m, m.toast.show(toastError, "Failed to log meal")

	case logCancelMsg:
		m.view = viewHome
		return m, nil

	case formSavedMsg:
		m.form = nil
		m.loading = true
		verb := "created"
		if msg.update {
			verb = "updated"
		}
		return m, tea.Batch(m.toast.show(toastSuccess, msg.entity+" "+verb+" successfully!"), m.loadCmd())

	case formFailedMsg:
		if m.form != nil {
			m.form.saving = false
		}
		return m, m.toast.show(toastError, "Failed to save "+strings.ToLower(msg.entity))

	case formCancelMsg:
		m.form = nil
		return m, nil

	case deletedMsg:
		m.confirm = nil
		m.loading = true
		return m, tea.Batch(m.toast.show(toastSuccess, msg.entity+" deleted successfully!"), m.loadCmd())

	case deleteFailedMsg:
		// The dialog stays open so the delete can be retried.
		if m.confirm != nil {
			m.confirm.busy = false
		}
		return m, m.toast.show(toastError, "Failed to delete "+strings.ToLower(msg.entity))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The delete confirmation blocks everything else while open.
	if m.confirm != nil {
		confirm, cmd, done := m.confirm.Update(msg)
		if done {
			m.confirm = nil
		} else {
			m.confirm = &confirm
		}
		return m, cmd
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		m.form = &form
		return m, cmd
	}

	switch m.view {
	case viewGuided:
		var cmd tea.Cmd
		m.guided, cmd = m.guided.Update(msg)
		return m, cmd
	case viewLogging:
		var cmd tea.Cmd
		m.logger, cmd = m.logger.Update(msg)
		return m, cmd
	}

	// Home and manage share the list surface.
	switch msg.String() {
	case "ctrl+g":
		if m.view == viewHome {
			return m.startGuided()
		}
	case "ctrl+r":
		return m, m.randomMeal()
	case "ctrl+t":
		return m, m.randomRestaurant()
	case "ctrl+e":
		if m.view == viewHome {
			m.view = viewManage
		} else {
			m.view = viewHome
		}
		return m, nil
	case "esc":
		if m.view == viewManage {
			m.view = viewHome
		} else if m.search.Value() != "" {
			m.search.SetValue("")
			m.clampCursor()
		}
		return m, nil
	case "tab":
		if m.tab == tabMeals {
			m.tab = tabRestaurants
		} else {
			m.tab = tabMeals
		}
		m.cursor = 0
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < m.visibleCount()-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.startLogging()
	case "ctrl+n":
		if m.view == viewManage {
			m.openForm(nil, nil)
		}
		return m, nil
	case "ctrl+u":
		if m.view == viewManage {
			meal, restaurant := m.highlighted()
			if meal != nil || restaurant != nil {
				m.openForm(meal, restaurant)
			}
		}
		return m, nil
	case "ctrl+d":
		if m.view == viewManage {
			meal, restaurant := m.highlighted()
			if meal != nil || restaurant != nil {
				confirm := newDeleteConfirm(m.api, meal, restaurant)
				m.confirm = &confirm
			}
		}
		return m, nil
	}

	// Everything else is typed into the search box; the filter is
	// recomputed on every keystroke.
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m Model) startGuided() (tea.Model, tea.Cmd) {
	m.view = viewGuided
	m.guided = newGuided()
	api := m.api
	return m, func() tea.Msg {
		meals, err := api.ListMeals()
		if err != nil {
			return guidedLoadFailedMsg{err: err}
		}
		return guidedMealsMsg{meals: meals}
	}
}

func (m Model) startLogging() (tea.Model, tea.Cmd) {
	meal, restaurant := m.highlighted()
	if meal == nil && restaurant == nil {
		return m, nil
	}
	m.view = viewLogging
	m.logger = newLogger(m.api, meal, restaurant, m.now())
	return m, nil
}

func (m *Model) openForm(meal *models.Meal, restaurant *models.Restaurant) {
	var form formModel
	if m.tab == tabMeals {
		form = newMealForm(m.api, meal)
	} else {
		form = newRestaurantForm(m.api, restaurant)
	}
	m.form = &form
}

// highlighted returns the record under the cursor in the active tab.
func (m Model) highlighted() (*models.Meal, *models.Restaurant) {
	if m.tab == tabMeals {
		meals := m.visibleMeals()
		if m.cursor < len(meals) {
			meal := meals[m.cursor]
			return &meal, nil
		}
		return nil, nil
	}
	restaurants := m.visibleRestaurants()
	if m.cursor < len(restaurants) {
		restaurant := restaurants[m.cursor]
		return nil, &restaurant
	}
	return nil, nil
}

func (m Model) visibleMeals() []models.Meal {
	return filterMeals(m.snap.Meals, m.search.Value())
}

func (m Model) visibleRestaurants() []models.Restaurant {
	return filterRestaurants(m.snap.Restaurants, m.search.Value())
}

func (m Model) visibleCount() int {
	if m.tab == tabMeals {
		return len(m.visibleMeals())
	}
	return len(m.visibleRestaurants())
}

func (m *Model) clampCursor() {
	if count := m.visibleCount(); m.cursor >= count {
		m.cursor = 0
	}
}

// randomMeal draws one pick per category and announces the combination.
// Empty categories are silently left out; an empty catalogue stays quiet.
func (m *Model) randomMeal() tea.Cmd {
	if len(m.snap.Meals) == 0 {
		return nil
	}
	combo := suggest.RandomCombo(m.rng, m.snap.Meals)
	var names []string
	for _, pick := range []*models.Meal{combo.Carb, combo.Protein, combo.Vegetable} {
		if pick != nil {
			names = append(names, pick.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return m.toast.show(toastSuccess, "Random meal: "+strings.Join(names, ", ")+"!")
}

func (m *Model) randomRestaurant() tea.Cmd {
	pick := suggest.RandomRestaurant(m.rng, m.snap.Restaurants)
	if pick == nil {
		return nil
	}
	return m.toast.show(toastSuccess, "How about "+pick.Name+"?")
}

// filterMeals matches the term case-insensitively against name or category.
func filterMeals(meals []models.Meal, term string) []models.Meal {
	t := strings.ToLower(term)
	if t == "" {
		return meals
	}
	var out []models.Meal
	for _, meal := range meals {
		if strings.Contains(strings.ToLower(meal.Name), t) || strings.Contains(strings.ToLower(meal.Category), t) {
			out = append(out, meal)
		}
	}
	return out
}

// filterRestaurants matches the term case-insensitively against name or
// cuisine type.
func filterRestaurants(restaurants []models.Restaurant, term string) []models.Restaurant {
	t := strings.ToLower(term)
	if t == "" {
		return restaurants
	}
	var out []models.Restaurant
	for _, restaurant := range restaurants {
		if strings.Contains(strings.ToLower(restaurant.Name), t) || strings.Contains(strings.ToLower(restaurant.CuisineType), t) {
			out = append(out, restaurant)
		}
	}
	return out
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MealChoice"))
	if m.session != nil {
		b.WriteString("  ")
		b.WriteString(subtitleStyle.Render("Welcome back, " + m.session.Email))
	}
	b.WriteString("\n\n")

	switch {
	case m.confirm != nil:
		b.WriteString(m.confirm.View())
	case m.form != nil:
		b.WriteString(m.form.View())
	case m.loading:
		b.WriteString(subtitleStyle.Render("Loading your meal data..."))
	case m.view == viewGuided:
		b.WriteString(m.guided.View())
	case m.view == viewLogging:
		b.WriteString(m.logger.View())
	default:
		b.WriteString(m.listView())
	}

	if t := m.toast.render(); t != "" {
		b.WriteString("\n\n")
		b.WriteString(t)
	}
	return appStyle.Render(b.String())
}

func (m Model) listView() string {
	var b strings.Builder

	if m.view == viewManage {
		b.WriteString(stepTitleStyle.Render("Manage Your Data"))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Add, edit, or remove meals and restaurants"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	mealsTab, restaurantsTab := tabStyle, tabStyle
	if m.tab == tabMeals {
		mealsTab = activeTabStyle
	} else {
		restaurantsTab = activeTabStyle
	}
	b.WriteString(mealsTab.Render("Meals") + " " + restaurantsTab.Render("Restaurants"))
	b.WriteString("\n\n")

	now := m.now()
	showActions := m.view == viewManage
	if m.tab == tabMeals {
		meals := m.visibleMeals()
		if len(meals) == 0 {
			b.WriteString(subtitleStyle.Render("No meals found matching your search."))
			b.WriteString("\n")
		}
		for i, meal := range meals {
			b.WriteString(renderMealCard(meal, stats.MealStats(meal, m.snap.Logs), i == m.cursor, showActions, now))
			b.WriteString("\n")
		}
	} else {
		restaurants := m.visibleRestaurants()
		if len(restaurants) == 0 {
			b.WriteString(subtitleStyle.Render("No restaurants found matching your search."))
			b.WriteString("\n")
		}
		for i, restaurant := range restaurants {
			b.WriteString(renderRestaurantCard(restaurant, stats.RestaurantStats(restaurant, m.snap.Logs), i == m.cursor, showActions, now))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.view == viewManage {
		b.WriteString(helpStyle.Render("↑/↓ move · tab switch · enter log it · ctrl+n add · ctrl+u edit · ctrl+d delete · esc back"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ move · tab switch · enter log it · ctrl+g guided · ctrl+r random meal · ctrl+t random restaurant · ctrl+e manage · ctrl+c sign out"))
	}
	return b.String()
}
