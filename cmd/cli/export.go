package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/export"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
)

var (
	exportYear   int
	exportWeek   int
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a week to an .xlsx workbook",
	Long: `Writes one ISO week as an .xlsx workbook with three sheets: the plan
grid, the shopping list and the current pantry.`,
	Example: `  meal-planner export
  meal-planner export --year 2025 --week 39 --out plan.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVar(&exportYear, "year", 0, "ISO year (default: current)")
	exportCmd.Flags().IntVar(&exportWeek, "week", 0, "ISO week (default: current)")
	exportCmd.Flags().StringVar(&exportOutput, "out", "", "Output file (default: meal-plan-<week>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	year, week := currentWeek(exportYear, exportWeek)

	recipeList, err := store.LoadRecipes()
	if err != nil {
		return err
	}
	items, err := store.LoadPantry()
	if err != nil {
		return err
	}
	p, err := store.LoadPlan(year, week)
	if err != nil {
		return err
	}

	list := shopping.Build(p, recipes.NewCatalog(recipeList), items, shopping.Options{
		Today: time.Now(),
	})

	out := exportOutput
	if out == "" {
		out = fmt.Sprintf("meal-plan-%s.xlsx", plan.Key(year, week))
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := export.WriteXLSX(f, export.Workbook{Plan: p, Shopping: list, Pantry: items}); err != nil {
		return err
	}
	logger.Info().Str("file", out).Msg("Workbook written")
	return nil
}
