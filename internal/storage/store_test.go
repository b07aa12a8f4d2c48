package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(s.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadRecipesMissingFile(t *testing.T) {
	s := testStore(t)
	list, err := s.LoadRecipes()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLoadRecipesFromDocument(t *testing.T) {
	s := testStore(t)
	doc := `[{"name":"Pancakes","servings":4,"macros":{"protein":10,"carbohydrates":50,"fat":12}}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "recipes.json"), []byte(doc), 0644))

	list, err := s.LoadRecipes()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pancakes", list[0].Name)
	assert.Equal(t, 50, list[0].Macros.Carbs)
	assert.Equal(t, 12, list[0].Macros.Fats)
}

func TestPantryRoundTripSanitizesTags(t *testing.T) {
	s := testStore(t)
	items := []types.Ingredient{
		{Name: "Flour", Unit: "g", Quantity: 500, Tags: []string{"BAKING", "bogus"}},
		{Name: "Mystery", Unit: "pcs", Quantity: 1, Tags: []string{"bogus"}},
	}
	require.NoError(t, s.SavePantry(items))

	got, err := s.LoadPantry()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"baking"}, got[0].Tags)
	assert.Equal(t, []string{"other"}, got[1].Tags)
}

func TestLoadPlanCreatesMissingWeek(t *testing.T) {
	s := testStore(t)
	p, err := s.LoadPlan(2025, 39)
	require.NoError(t, err)
	require.NotNil(t, p)
	slot, err := p.Slot("Monday", "breakfast")
	require.NoError(t, err)
	assert.True(t, slot.IsEmpty())
}

func TestSavePlanKeepsOtherWeeks(t *testing.T) {
	s := testStore(t)

	p39, err := s.LoadPlan(2025, 39)
	require.NoError(t, err)
	require.NoError(t, p39.SetSlot("Monday", "lunch", plan.Assigned("Soup")))
	require.NoError(t, s.SavePlan(p39))

	p40, err := s.LoadPlan(2025, 40)
	require.NoError(t, err)
	require.NoError(t, p40.SetSlot("Friday", "dinner", plan.Assigned("Stew")))
	require.NoError(t, s.SavePlan(p40))

	back39, err := s.LoadPlan(2025, 39)
	require.NoError(t, err)
	slot, _ := back39.Slot("Monday", "lunch")
	assert.Equal(t, "Soup", slot.Recipe)

	back40, err := s.LoadPlan(2025, 40)
	require.NoError(t, err)
	slot, _ = back40.Slot("Friday", "dinner")
	assert.Equal(t, "Stew", slot.Recipe)
}

func TestApplyBuyPersistsPantryAndLog(t *testing.T) {
	s := testStore(t)
	items := []types.Ingredient{{Name: "Rice", Unit: "g", Quantity: 500, Tags: []string{"grains"}}}
	tx := shopping.Transaction{
		ID:    "tx-1",
		Date:  "22-09-2025",
		Week:  "2025-W39",
		Added: []shopping.AddRecord{{Name: "Rice", Quantity: 500, Expiry: "29-09-2025"}},
	}

	require.NoError(t, s.ApplyBuy(items, tx))

	got, err := s.LoadPantry()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rice", got[0].Name)

	log, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, log.Transactions, 1)
	assert.Equal(t, "tx-1", log.Transactions[0].ID)
}

func TestCookLogAppend(t *testing.T) {
	s := testStore(t)

	log, err := s.LoadCookLog()
	require.NoError(t, err)
	assert.Empty(t, log)

	require.NoError(t, s.AppendCookRecord(recipes.CookRecord{Recipe: "Pancakes", Servings: 4, Date: "22-09-2025"}))
	require.NoError(t, s.AppendCookRecord(recipes.CookRecord{Recipe: "Soup", Servings: 2, Date: "23-09-2025"}))

	log, err = s.LoadCookLog()
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "Pancakes", log[0].Recipe)
	assert.Equal(t, "Soup", log[1].Recipe)
}
