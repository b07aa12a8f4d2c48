package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

func testCatalog() *recipes.Catalog {
	return recipes.NewCatalog([]types.Recipe{
		{
			Name:               "Pancakes",
			Servings:           4,
			CaloriesPerServing: 250,
			Macros:             types.Macros{Protein: 8, Carbs: 40, Fats: 6},
		},
		{
			Name:               "Tomato Soup",
			Servings:           2,
			CaloriesPerServing: 120,
			Macros:             types.Macros{Protein: 3, Carbs: 15, Fats: 4},
		},
	})
}

func TestWeekSummary(t *testing.T) {
	p := plan.New(2025, 39)
	require.NoError(t, p.SetSlot("Monday", "breakfast", plan.Assigned("Pancakes")))
	require.NoError(t, p.SetSlot("Monday", "lunch", plan.Assigned("Tomato Soup")))
	require.NoError(t, p.SetSlot("Tuesday", "dinner", plan.Cooked("Tomato Soup", 3, 0, nil)))
	require.NoError(t, p.SetSlot("Wednesday", "dinner", plan.Assigned("Ghost")))

	got := WeekSummary(p, testCatalog())
	require.Len(t, got.Days, 7)

	monday := got.Days[0]
	assert.Equal(t, "Monday", monday.Day)
	assert.Equal(t, "22.09.2025", monday.Date)
	assert.Equal(t, 2, monday.Meals)
	// pancakes 250*4 + soup 120*2
	assert.Equal(t, 1240, monday.Calories)
	assert.Equal(t, 8*4+3*2, monday.Protein)

	tuesday := got.Days[1]
	// cooked slot uses its own serving count
	assert.Equal(t, 120*3, tuesday.Calories)

	wednesday := got.Days[2]
	assert.Zero(t, wednesday.Meals, "unknown recipe contributes nothing")

	assert.Equal(t, 3, got.Meals)
	assert.Equal(t, 1240+360, got.Calories)
}

func TestWeekSummaryEmptyPlan(t *testing.T) {
	got := WeekSummary(plan.New(2025, 39), testCatalog())
	assert.Zero(t, got.Meals)
	assert.Zero(t, got.Calories)
	require.Len(t, got.Days, 7)
	assert.Equal(t, "28.09.2025", got.Days[6].Date)
}
