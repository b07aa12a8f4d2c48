package shopping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

func testCatalog() *recipes.Catalog {
	return recipes.NewCatalog([]types.Recipe{
		{
			Name:     "Pancakes",
			Servings: 4,
			Ingredients: []types.Ingredient{
				{Name: "Flour", Unit: "g", Quantity: 200},
				{Name: "Milk", Unit: "ml", Quantity: 300},
			},
		},
		{
			Name:     "Omelette",
			Servings: 2,
			Ingredients: []types.Ingredient{
				{Name: "Eggs", Unit: "pcs", Quantity: 3},
				{Name: "Milk", Unit: "ml", Quantity: 50},
			},
		},
	})
}

func TestBuildAggregatesAcrossSlots(t *testing.T) {
	p := plan.New(2025, 39)
	require.NoError(t, p.SetSlot("Monday", "breakfast", plan.Assigned("Pancakes")))
	require.NoError(t, p.SetSlot("Tuesday", "breakfast", plan.Assigned("Pancakes")))
	require.NoError(t, p.SetSlot("Tuesday", "dinner", plan.Assigned("Omelette")))

	items := []types.Ingredient{
		{Name: "Flour", Unit: "g", Quantity: 150},
		{Name: "Egg", Unit: "pcs", Quantity: 10},
	}

	got := Build(p, testCatalog(), items, Options{})
	require.Len(t, got, 2)

	assert.Equal(t, Item{Name: "Flour", Unit: "g", Required: 400, InStock: 150, Missing: 250}, got[0])
	assert.Equal(t, Item{Name: "Milk", Unit: "ml", Required: 650, InStock: 0, Missing: 650}, got[1])
}

func TestBuildExcludesCookedAndUnknown(t *testing.T) {
	p := plan.New(2025, 39)
	require.NoError(t, p.SetSlot("Monday", "dinner", plan.Cooked("Pancakes", 4, 0, nil)))
	require.NoError(t, p.SetSlot("Tuesday", "dinner", plan.Assigned("Ghost Recipe")))

	got := Build(p, testCatalog(), nil, Options{})
	assert.Empty(t, got)
}

func TestBuildSkipsPastDays(t *testing.T) {
	p := plan.New(2025, 39) // Monday 2025-09-22
	require.NoError(t, p.SetSlot("Monday", "breakfast", plan.Assigned("Omelette")))
	require.NoError(t, p.SetSlot("Friday", "breakfast", plan.Assigned("Omelette")))

	wednesday := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
	got := Build(p, testCatalog(), nil, Options{SkipPastDays: true, Today: wednesday})

	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Required, "only Friday counts")
	assert.Equal(t, "Eggs", got[0].Name)
}

func TestBuildFirstNonEmptyUnitWins(t *testing.T) {
	cat := recipes.NewCatalog([]types.Recipe{
		{
			Name:     "Porridge",
			Servings: 2,
			Ingredients: []types.Ingredient{
				{Name: "Honey", Unit: "", Quantity: 20},
			},
		},
		{
			Name:     "Tea",
			Servings: 1,
			Ingredients: []types.Ingredient{
				{Name: "Honey", Unit: "g", Quantity: 10},
			},
		},
	})

	p := plan.New(2025, 39)
	require.NoError(t, p.SetSlot("Monday", "breakfast", plan.Assigned("Porridge")))
	require.NoError(t, p.SetSlot("Monday", "lunch", plan.Assigned("Tea")))

	got := Build(p, cat, nil, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, "g", got[0].Unit, "unit comes from the first recipe that names one")
	assert.Equal(t, 30, got[0].Required)
}

func TestBuildSubtractsPluralAwareStock(t *testing.T) {
	p := plan.New(2025, 39)
	require.NoError(t, p.SetSlot("Monday", "dinner", plan.Assigned("Omelette")))

	items := []types.Ingredient{
		{Name: "Egg", Unit: "pcs", Quantity: 2},
		{Name: "eggs", Unit: "pcs", Quantity: 2},
	}

	got := Build(p, testCatalog(), items, Options{})
	require.Len(t, got, 1)
	assert.Equal(t, "Milk", got[0].Name)
}
