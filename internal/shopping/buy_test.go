package shopping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

var buyDay = time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)

const buyWeek = "2025-W39"

func buyList() []Item {
	return []Item{
		{Name: "Chicken Breast", Unit: "g", Required: 500, InStock: 0, Missing: 500},
		{Name: "Milk", Unit: "ml", Required: 1500, InStock: 500, Missing: 1000},
		{Name: "Rice", Unit: "g", Required: 100, InStock: 0, Missing: 100},
		{Name: "Tomatoes", Unit: "pcs", Required: 10, InStock: 4, Missing: 6},
	}
}

func TestBuyAppendsNewBatch(t *testing.T) {
	items := []types.Ingredient{
		{Name: "Flour", Unit: "g", Quantity: 100, Expiry: "01-10-2025"},
	}

	res := Buy(buyList(), items, buyWeek, []Purchase{
		{Name: "Chicken Breast", Quantity: 500, Expiry: "25-09-2025"},
	}, buyDay)

	require.True(t, res.Applied)
	require.Len(t, res.Pantry, 2)
	added := res.Pantry[1]
	assert.Equal(t, "Chicken Breast", added.Name)
	assert.Equal(t, "g", added.Unit)
	assert.Equal(t, 500, added.Quantity)
	assert.Equal(t, "25-09-2025", added.Expiry)
	assert.Equal(t, []string{"meat-chicken"}, added.Tags)
	assert.Equal(t, res.Transaction.ID, added.BatchID)

	assert.Equal(t, buyWeek, res.Transaction.Week)
	assert.Empty(t, res.Transaction.Merged)
	require.Len(t, res.Transaction.Added, 1)
	assert.Equal(t, AddRecord{Name: "Chicken Breast", Quantity: 500, Expiry: "25-09-2025"}, res.Transaction.Added[0])
	assert.Empty(t, res.Skipped)
}

func TestBuyMergesMatchingBatch(t *testing.T) {
	items := []types.Ingredient{
		{Name: "Tomatoes", Unit: "pcs", Quantity: 4, Expiry: "01-10-2025"},
	}

	// request matched by normalized key, same expiry: merged not appended
	res := Buy(buyList(), items, buyWeek, []Purchase{
		{Name: "tomato", Quantity: 6, Expiry: "01-10-2025"},
	}, buyDay)

	require.True(t, res.Applied)
	require.Len(t, res.Pantry, 1)
	assert.Equal(t, 10, res.Pantry[0].Quantity)
	assert.Empty(t, res.Pantry[0].BatchID)
	require.Len(t, res.Transaction.Merged, 1)
	assert.Equal(t, MergeRecord{
		Index:        0,
		Name:         "Tomatoes",
		PrevQuantity: 4,
		Added:        6,
		Expiry:       "01-10-2025",
	}, res.Transaction.Merged[0])

	// input slice untouched
	assert.Equal(t, 4, items[0].Quantity)
}

func TestBuyDifferentExpiryAddsSeparateBatch(t *testing.T) {
	items := []types.Ingredient{
		{Name: "Milk", Unit: "ml", Quantity: 500, Expiry: "25-09-2025"},
	}

	res := Buy(buyList(), items, buyWeek, []Purchase{
		{Name: "Milk", Quantity: 1000, Expiry: "05-10-2025"},
	}, buyDay)

	require.Len(t, res.Pantry, 2)
	assert.Equal(t, 500, res.Pantry[0].Quantity)
	assert.Equal(t, 1000, res.Pantry[1].Quantity)
}

func TestBuySkipsItemsNotInShoppingList(t *testing.T) {
	items := []types.Ingredient{
		{Name: "Flour", Unit: "g", Quantity: 100},
	}

	res := Buy(buyList(), items, buyWeek, []Purchase{
		{Name: "Caviar", Quantity: 3},
		{Name: ""},
	}, buyDay)

	assert.False(t, res.Applied)
	assert.Equal(t, items, res.Pantry)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, SkippedItem{Name: "Caviar", Reason: "not in shopping list"}, res.Skipped[0])
	assert.Equal(t, "not in shopping list", res.Skipped[1].Reason)
}

func TestBuySkipsEntriesWithNothingMissing(t *testing.T) {
	list := []Item{
		{Name: "Salt", Unit: "g", Required: 10, InStock: 10, Missing: 0},
	}

	res := Buy(list, nil, buyWeek, []Purchase{
		{Name: "Salt", Quantity: 100},
	}, buyDay)

	assert.False(t, res.Applied)
	assert.Empty(t, res.Pantry)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, SkippedItem{Name: "Salt", Reason: "nothing missing"}, res.Skipped[0])
}

func TestBuyDefaultsQuantityToMissing(t *testing.T) {
	res := Buy(buyList(), nil, buyWeek, []Purchase{
		{Name: "Tomatoes"},
	}, buyDay)

	require.True(t, res.Applied)
	require.Len(t, res.Pantry, 1)
	assert.Equal(t, 6, res.Pantry[0].Quantity)
	assert.Equal(t, "pcs", res.Pantry[0].Unit)
	assert.Empty(t, res.Skipped)
}

func TestBuyExpiryFallback(t *testing.T) {
	tests := []struct {
		name   string
		expiry string
		want   string
	}{
		{"dashes", "30-09-2025", "30-09-2025"},
		{"dots", "30.09.2025", "30-09-2025"},
		{"iso", "2025-09-30", "30-09-2025"},
		{"garbage", "next week", "29-09-2025"},
		{"empty", "", "29-09-2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Buy(buyList(), nil, buyWeek, []Purchase{
				{Name: "Rice", Quantity: 100, Expiry: tt.expiry},
			}, buyDay)
			require.Len(t, res.Pantry, 1)
			assert.Equal(t, tt.want, res.Pantry[0].Expiry)
		})
	}
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, []string{"dairy"}, categorize("Greek Yogurt"))
	assert.Equal(t, []string{"vegetables"}, categorize("Cherry Tomatoes"))
	assert.Equal(t, []string{"spice"}, categorize("Sea Salt"))
	assert.Equal(t, []string{"other"}, categorize("Mystery Snack"))
}

func TestUndoRestoresMergesAndRemovesBatches(t *testing.T) {
	items := []types.Ingredient{
		{Name: "Tomatoes", Unit: "pcs", Quantity: 4, Expiry: "01-10-2025"},
	}

	res := Buy(buyList(), items, buyWeek, []Purchase{
		{Name: "tomato", Quantity: 6, Expiry: "01-10-2025"},
		{Name: "Rice", Quantity: 200},
	}, buyDay)
	log := Log{Transactions: []Transaction{res.Transaction}}

	restored, log, err := Undo(res.Pantry, log)
	require.NoError(t, err)
	assert.Empty(t, log.Transactions)

	require.Len(t, restored, 1)
	assert.Equal(t, "Tomatoes", restored[0].Name)
	assert.Equal(t, 4, restored[0].Quantity)
}

func TestUndoEmptyLog(t *testing.T) {
	items := []types.Ingredient{{Name: "Flour", Quantity: 100}}
	restored, log, err := Undo(items, Log{})
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Equal(t, items, restored)
	assert.Empty(t, log.Transactions)
}

func TestUndoOnlyNewestTransaction(t *testing.T) {
	first := Buy(buyList(), nil, buyWeek, []Purchase{{Name: "Rice", Quantity: 500}}, buyDay)
	second := Buy(buyList(), first.Pantry, buyWeek, []Purchase{{Name: "Milk", Quantity: 300}}, buyDay)
	log := Log{Transactions: []Transaction{first.Transaction, second.Transaction}}

	restored, log, err := Undo(second.Pantry, log)
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, "Rice", restored[0].Name)
	require.Len(t, log.Transactions, 1)
	assert.Equal(t, first.Transaction.ID, log.Transactions[0].ID)
}
