package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

func TestWriteXLSX(t *testing.T) {
	p := plan.New(2025, 39)
	require.NoError(t, p.SetSlot("Monday", "lunch", plan.Assigned("Tomato Soup")))
	require.NoError(t, p.SetSlot("Monday", "dinner", plan.Cooked("Pancakes", 4, 0, nil)))

	wb := Workbook{
		Plan: p,
		Shopping: []shopping.Item{
			{Name: "Flour", Unit: "g", Required: 400, InStock: 150, Missing: 250},
		},
		Pantry: []types.Ingredient{
			{Name: "Milk", Unit: "ml", Quantity: 500, Expiry: "25-09-2025", Tags: []string{"dairy"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, wb))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Plan", "Shopping List", "Pantry"}, f.GetSheetList())

	rows, err := f.GetRows("Plan")
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"Day", "Date", "breakfast", "lunch", "dinner"}, rows[0])
	assert.Equal(t, []string{"Monday", "22.09.2025", "-", "Tomato Soup", "Pancakes (cooked)"}, rows[1])

	rows, err = f.GetRows("Shopping List")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Flour", "g", "400", "150", "250"}, rows[1])

	rows, err = f.GetRows("Pantry")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Milk", "ml", "500", "25-09-2025", "dairy"}, rows[1])
}
