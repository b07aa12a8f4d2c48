package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
)

var (
	shoppingYear     int
	shoppingWeek     int
	shoppingSkipPast bool
	shoppingOutput   string
)

// shoppingCmd represents the shopping command
var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Print the shopping list for a week",
	Long: `Builds the shopping list for one ISO week: the ingredient demand of
every planned, not yet cooked meal minus what the pantry already holds.`,
	Example: `  meal-planner shopping
  meal-planner shopping --year 2025 --week 39 --skip-past
  meal-planner shopping --output json`,
	RunE: runShopping,
}

func init() {
	rootCmd.AddCommand(shoppingCmd)

	shoppingCmd.Flags().IntVar(&shoppingYear, "year", 0, "ISO year (default: current)")
	shoppingCmd.Flags().IntVar(&shoppingWeek, "week", 0, "ISO week (default: current)")
	shoppingCmd.Flags().BoolVar(&shoppingSkipPast, "skip-past", false, "Ignore days before today")
	shoppingCmd.Flags().StringVar(&shoppingOutput, "output", "table", "Output format: table or json")
}

func runShopping(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	year, week := currentWeek(shoppingYear, shoppingWeek)

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
		SkipPastDays: shoppingSkipPast,
		Today:        time.Now(),
	})

	if shoppingOutput == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	if len(list) == 0 {
		fmt.Printf("Nothing to buy for %d-W%02d\n", year, week)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INGREDIENT\tUNIT\tREQUIRED\tIN STOCK\tMISSING")
	for _, it := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", it.Name, it.Unit, it.Required, it.InStock, it.Missing)
	}
	return w.Flush()
}
