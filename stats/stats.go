// Package stats derives per-meal and per-restaurant statistics from the
// loaded log list. Nothing here is persisted; values are recomputed on
// every render from the dashboard snapshot.
package stats

import (
	"fmt"
	"time"

	"github.com/mealchoice/mealchoice/models"
)

// Stats holds the derived values for one meal or restaurant. Nil fields mean
// "no data": never eaten, or no rated logs.
type Stats struct {
	LastEaten     *time.Time
	AverageRating *float64
}

// MealStats computes the stats for one meal. The log slice must be sorted
// descending by eaten-at; the first matching entry supplies LastEaten.
func MealStats(meal models.Meal, logs []models.MealLog) Stats {
	return compute(logs, func(log models.MealLog) bool {
		return log.MealID != nil && *log.MealID == meal.ID
	})
}

// RestaurantStats computes the stats for one restaurant.
func RestaurantStats(restaurant models.Restaurant, logs []models.MealLog) Stats {
	return compute(logs, func(log models.MealLog) bool {
		return log.RestaurantID != nil && *log.RestaurantID == restaurant.ID
	})
}

func compute(logs []models.MealLog, matches func(models.MealLog) bool) Stats {
	var s Stats
	var sum, count int
	for _, log := range logs {
		if !matches(log) {
			continue
		}
		if s.LastEaten == nil {
			at := log.EatenAt
			s.LastEaten = &at
		}
		if log.Rating != nil {
			sum += *log.Rating
			count++
		}
	}
	if count > 0 {
		avg := float64(sum) / float64(count)
		s.AverageRating = &avg
	}
	return s
}

// DaysBetween returns the whole days elapsed from then to now, truncating
// partial days.
func DaysBetween(then, now time.Time) int {
	return int(now.Sub(then).Hours() / 24)
}

// FormatRelative renders an eaten-at timestamp relative to now.
func FormatRelative(at, now time.Time) string {
	return FormatRelativeDays(DaysBetween(at, now))
}

// FormatRelativeDays buckets a day difference into a human-readable string:
// 0 "Today", 1 "Yesterday", 2-6 days, 7-29 weeks, 30+ months.
func FormatRelativeDays(days int) string {
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}

// FormatRating renders an average rating to one decimal place, e.g. "4.5/5".
func FormatRating(avg float64) string {
	return fmt.Sprintf("%.1f/5", avg)
}
