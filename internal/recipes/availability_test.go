package recipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/pantry"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

func pancakePantry() []types.Ingredient {
	return []types.Ingredient{
		{Name: "Flour", Unit: "g", Quantity: 500},
		{Name: "Milk", Unit: "ml", Quantity: 1000},
		{Name: "Eggs", Unit: "pcs", Quantity: 6},
		{Name: "Sugar", Unit: "g", Quantity: 100},
	}
}

func TestTimesPossibleFloorDivision(t *testing.T) {
	c := testCatalog()
	r, _ := c.FindByName("Pancakes")
	stock := pantry.AggregateStock(pancakePantry())

	// flour 500/200=2, milk 1000/300=3, eggs 6/2=3, sugar 100/50=2
	assert.Equal(t, 2, TimesPossible(r, stock))
}

func TestTimesPossibleSkipsNonPositiveDemands(t *testing.T) {
	r := types.Recipe{
		Name: "Water",
		Ingredients: []types.Ingredient{
			{Name: "Tap Water", Unit: "ml", Quantity: 0},
		},
	}
	assert.Equal(t, 0, TimesPossible(r, pantry.StockIndex{}))

	r.Ingredients = append(r.Ingredients, types.Ingredient{Name: "Lemon", Unit: "pcs", Quantity: 1})
	stock := pantry.StockIndex{"lemon": 5}
	assert.Equal(t, 5, TimesPossible(r, stock))
}

func TestTimesPossiblePluralAwareLookup(t *testing.T) {
	c := testCatalog()
	r, _ := c.FindByName("Tomato Soup")
	stock := pantry.AggregateStock([]types.Ingredient{
		{Name: "Tomato", Unit: "pcs", Quantity: 8},
		{Name: "Garlic", Unit: "cloves", Quantity: 4},
	})

	// the recipe says "Tomatoes", the pantry says "Tomato"
	assert.Equal(t, 2, TimesPossible(r, stock))
}

func TestMissing(t *testing.T) {
	c := testCatalog()
	r, _ := c.FindByName("Pancakes")
	stock := pantry.AggregateStock([]types.Ingredient{
		{Name: "Flour", Unit: "g", Quantity: 500},
		{Name: "Eggs", Unit: "pcs", Quantity: 1},
	})

	assert.Equal(t, []string{"Milk", "Eggs", "Sugar"}, Missing(r, stock))
}

func TestEvaluateSortsByTimesPossible(t *testing.T) {
	c := testCatalog()
	items := append(pancakePantry(), types.Ingredient{Name: "Cornmeal", Unit: "g", Quantity: 1000})

	got := Evaluate(c, items)
	require.Len(t, got, 3)
	assert.Equal(t, "Mămăligă", got[0].Recipe)
	assert.Equal(t, 4, got[0].TimesPossible)
	assert.Equal(t, "Pancakes", got[1].Recipe)
	assert.Equal(t, 2, got[1].TimesPossible)
	assert.Equal(t, "Tomato Soup", got[2].Recipe)
	assert.Zero(t, got[2].TimesPossible)
	assert.Equal(t, []string{"Tomatoes", "Garlic"}, got[2].Missing)
}

func TestCookable(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"Pancakes"}, Cookable(c, pancakePantry()))
	assert.Empty(t, Cookable(c, nil))
}
