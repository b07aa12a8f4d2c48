package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/reporting"
)

var (
	statsDays   int
	statsTop    int
	statsOutput string
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the cook history",
	Example: `  meal-planner stats
  meal-planner stats --days 30 --top 3
  meal-planner stats --output json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntVar(&statsDays, "days", 0, "Trailing window in days (0 = whole log)")
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "Number of most-cooked recipes to list")
	statsCmd.Flags().StringVar(&statsOutput, "output", "table", "Output format: table or json")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	recipeList, err := store.LoadRecipes()
	if err != nil {
		return err
	}
	log, err := store.LoadCookLog()
	if err != nil {
		return err
	}

	stats := reporting.Summarize(log, recipes.NewCatalog(recipeList), time.Now(), statsDays, statsTop)

	if statsOutput == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Cooks: %d  Unique recipes: %d  Avg calories per cook: %d\n",
		stats.TotalCooks, stats.UniqueRecipes, stats.AvgCaloriesPerCook)

	if len(stats.MostCooked) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RECIPE\tCOOKS")
		for _, rc := range stats.MostCooked {
			fmt.Fprintf(w, "%s\t%d\n", rc.Recipe, rc.Count)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
