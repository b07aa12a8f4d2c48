// Package export renders application documents into spreadsheet form.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// Workbook bundles the documents that go into one export.
type Workbook struct {
	Plan     *plan.WeekPlan
	Shopping []shopping.Item
	Pantry   []types.Ingredient
}

const (
	planSheet     = "Plan"
	shoppingSheet = "Shopping List"
	pantrySheet   = "Pantry"
)

func slotCell(s plan.Slot) string {
	switch {
	case s.IsCooked():
		return s.Recipe + " (cooked)"
	case s.IsAssigned():
		return s.Recipe
	default:
		return plan.EmptyMarker
	}
}

// WriteXLSX renders the workbook as an .xlsx file: one sheet for the
// week plan grid, one for the shopping list, one for the pantry.
func WriteXLSX(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writePlanSheet(f, wb.Plan); err != nil {
		return err
	}
	if err := writeShoppingSheet(f, wb.Shopping); err != nil {
		return err
	}
	if err := writePantrySheet(f, wb.Pantry); err != nil {
		return err
	}

	// the workbook comes with a default sheet we never use
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writePlanSheet(f *excelize.File, p *plan.WeekPlan) error {
	if _, err := f.NewSheet(planSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", planSheet, err)
	}
	header := []any{"Day", "Date"}
	for _, s := range plan.SlotNames {
		header = append(header, s)
	}
	if err := setRow(f, planSheet, 1, header); err != nil {
		return err
	}
	for i, dayName := range plan.DayNames {
		day := p.Days[dayName]
		row := []any{dayName, day.Date.Format(types.PlanDateFormat)}
		for _, slotName := range plan.SlotNames {
			row = append(row, slotCell(day.Slots[slotName]))
		}
		if err := setRow(f, planSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeShoppingSheet(f *excelize.File, items []shopping.Item) error {
	if _, err := f.NewSheet(shoppingSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", shoppingSheet, err)
	}
	if err := setRow(f, shoppingSheet, 1, []any{"Ingredient", "Unit", "Required", "In Stock", "Missing"}); err != nil {
		return err
	}
	for i, it := range items {
		row := []any{it.Name, it.Unit, it.Required, it.InStock, it.Missing}
		if err := setRow(f, shoppingSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePantrySheet(f *excelize.File, items []types.Ingredient) error {
	if _, err := f.NewSheet(pantrySheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", pantrySheet, err)
	}
	if err := setRow(f, pantrySheet, 1, []any{"Ingredient", "Unit", "Quantity", "Expiry", "Tag"}); err != nil {
		return err
	}
	for i, it := range items {
		tag := ""
		if len(it.Tags) > 0 {
			tag = it.Tags[0]
		}
		row := []any{it.Name, it.Unit, it.Quantity, it.Expiry, tag}
		if err := setRow(f, pantrySheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}
