package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
)

var statsToday = time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)

func testLog() []recipes.CookRecord {
	return []recipes.CookRecord{
		{Recipe: "Pancakes", Servings: 4, Date: "22-09-2025"}, // Monday
		{Recipe: "Pancakes", Servings: 4, Date: "24-09-2025"}, // Wednesday
		{Recipe: "Tomato Soup", Servings: 2, Date: "24-09-2025"},
		{Recipe: "Pancakes", Servings: 2, Date: "01-06-2025"}, // long ago
		{Recipe: "Broken", Servings: 1, Date: "not a date"},
	}
}

func TestSummarizeWholeLog(t *testing.T) {
	got := Summarize(testLog(), testCatalog(), statsToday, 0, 0)

	assert.Equal(t, 4, got.TotalCooks)
	assert.Equal(t, 2, got.UniqueRecipes)
	require.Len(t, got.MostCooked, 2)
	assert.Equal(t, RecipeCount{Recipe: "Pancakes", Count: 3}, got.MostCooked[0])
	assert.Equal(t, RecipeCount{Recipe: "Tomato Soup", Count: 1}, got.MostCooked[1])
	assert.Equal(t, 2, got.CooksByWeekday["Wednesday"])
	assert.Equal(t, 1, got.CooksByWeekday["Monday"])
}

func TestSummarizeWindow(t *testing.T) {
	got := Summarize(testLog(), testCatalog(), statsToday, 7, 0)
	assert.Equal(t, 3, got.TotalCooks, "June cook outside the window")
}

func TestSummarizeTopN(t *testing.T) {
	got := Summarize(testLog(), testCatalog(), statsToday, 0, 1)
	require.Len(t, got.MostCooked, 1)
	assert.Equal(t, "Pancakes", got.MostCooked[0].Recipe)
}

func TestSummarizeAvgCalories(t *testing.T) {
	got := Summarize(testLog(), testCatalog(), statsToday, 7, 0)
	// pancakes 250*4 twice, soup 120*2 once
	assert.Equal(t, (1000+1000+240)/3, got.AvgCaloriesPerCook)
}

func TestSummarizeEmptyLog(t *testing.T) {
	got := Summarize(nil, testCatalog(), statsToday, 0, 0)
	assert.Zero(t, got.TotalCooks)
	assert.Empty(t, got.MostCooked)
	assert.Zero(t, got.AvgCaloriesPerCook)
}
