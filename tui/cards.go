package tui

import (
	"strings"
	"time"

	"github.com/mealchoice/mealchoice/models"
	"github.com/mealchoice/mealchoice/stats"
)

// renderMealCard renders one catalogue meal with its derived stats. The
// actions hint is only shown in the manage view.
func renderMealCard(meal models.Meal, st stats.Stats, selected, showActions bool, now time.Time) string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(meal.Name))
	b.WriteString("  ")
	b.WriteString(badgeStyle(meal.Category).Render(meal.Category))
	if meal.Description != "" {
		b.WriteString("\n")
		b.WriteString(cardMetaStyle.Render(meal.Description))
	}
	if line := statsLine(st, now); line != "" {
		b.WriteString("\n")
		b.WriteString(cardMetaStyle.Render(line))
	}
	if showActions && selected {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("ctrl+u edit · ctrl+d delete"))
	}
	if selected {
		return selectedCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

// renderRestaurantCard renders one restaurant with its derived stats.
func renderRestaurantCard(restaurant models.Restaurant, st stats.Stats, selected, showActions bool, now time.Time) string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(restaurant.Name))
	b.WriteString("  ")
	b.WriteString(badgeStyle("").Render(restaurant.CuisineType))
	if restaurant.Description != "" {
		b.WriteString("\n")
		b.WriteString(cardMetaStyle.Render(restaurant.Description))
	}
	if line := statsLine(st, now); line != "" {
		b.WriteString("\n")
		b.WriteString(cardMetaStyle.Render(line))
	}
	if showActions && selected {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("ctrl+u edit · ctrl+d delete"))
	}
	if selected {
		return selectedCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

func statsLine(st stats.Stats, now time.Time) string {
	var parts []string
	if st.LastEaten != nil {
		parts = append(parts, "🕐 "+stats.FormatRelative(*st.LastEaten, now))
	}
	if st.AverageRating != nil {
		parts = append(parts, "★ "+stats.FormatRating(*st.AverageRating))
	}
	return strings.Join(parts, "  ")
}
