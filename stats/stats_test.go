package stats

import (
	"testing"
	"time"

	"github.com/mealchoice/mealchoice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMealStatsNeverEaten(t *testing.T) {
	meal := models.Meal{ID: 1, Name: "Rice", Category: models.CategoryCarb}

	s := MealStats(meal, nil)

	assert.Nil(t, s.LastEaten)
	assert.Nil(t, s.AverageRating)
}

func TestMealStatsLastEatenFromNewestLog(t *testing.T) {
	meal := models.Meal{ID: 1, Name: "Rice", Category: models.CategoryCarb}
	newest := time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC)
	older := newest.AddDate(0, 0, -3)

	// Logs arrive sorted newest first, so the first match wins.
	logs := []models.MealLog{
		{MealID: ptr(uint(2)), EatenAt: newest.AddDate(0, 0, 1)},
		{MealID: ptr(uint(1)), EatenAt: newest},
		{MealID: ptr(uint(1)), EatenAt: older},
	}

	s := MealStats(meal, logs)

	require.NotNil(t, s.LastEaten)
	assert.Equal(t, newest, *s.LastEaten)
}

func TestMealStatsAverageSkipsUnrated(t *testing.T) {
	meal := models.Meal{ID: 7, Name: "Salmon", Category: models.CategoryProtein}
	logs := []models.MealLog{
		{MealID: ptr(uint(7)), Rating: ptr(4), EatenAt: time.Now()},
		{MealID: ptr(uint(7)), Rating: ptr(5), EatenAt: time.Now()},
		{MealID: ptr(uint(7)), Rating: nil, EatenAt: time.Now()},
	}

	s := MealStats(meal, logs)

	require.NotNil(t, s.AverageRating)
	assert.InDelta(t, 4.5, *s.AverageRating, 0.001)
}

func TestRestaurantStatsIgnoresMealLogs(t *testing.T) {
	restaurant := models.Restaurant{ID: 3, Name: "Thai Palace"}
	logs := []models.MealLog{
		{MealID: ptr(uint(3)), Rating: ptr(1), EatenAt: time.Now()},
		{RestaurantID: ptr(uint(3)), Rating: ptr(5), EatenAt: time.Now()},
	}

	s := RestaurantStats(restaurant, logs)

	require.NotNil(t, s.AverageRating)
	assert.InDelta(t, 5.0, *s.AverageRating, 0.001)
}

func TestDaysBetweenTruncatesPartialDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, DaysBetween(now.Add(-25*time.Hour), now))
	assert.Equal(t, 6, DaysBetween(now.AddDate(0, 0, -6), now))
}

func TestFormatRelativeDays(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "Today"},
		{1, "Yesterday"},
		{2, "2 days ago"},
		{6, "6 days ago"},
		{7, "1 weeks ago"},
		{13, "1 weeks ago"},
		{14, "2 weeks ago"},
		{29, "4 weeks ago"},
		{30, "1 months ago"},
		{65, "2 months ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatRelativeDays(tc.days), "days=%d", tc.days)
	}
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.5/5", FormatRating(4.5))
	assert.Equal(t, "3.0/5", FormatRating(3))
	assert.Equal(t, "4.7/5", FormatRating(14.0/3.0))
}
