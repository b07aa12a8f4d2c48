package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// RecipeCount pairs a recipe with how often it was cooked.
type RecipeCount struct {
	Recipe string `json:"recipe"`
	Count  int    `json:"count"`
}

// Stats summarizes the cook history over a trailing window.
type Stats struct {
	TotalCooks         int            `json:"total_cooks"`
	UniqueRecipes      int            `json:"unique_recipes"`
	MostCooked         []RecipeCount  `json:"most_cooked"`
	CooksByWeekday     map[string]int `json:"cooks_by_weekday"`
	AvgCaloriesPerCook int            `json:"avg_calories_per_cook"`
}

// Summarize reduces the cook log to a Stats over the lastDays window
// ending at today; lastDays zero or negative means the whole log.
// Records with an unparsable date are skipped. MostCooked lists the
// top entries, count descending then name, capped at topN (or all when
// topN is not positive).
func Summarize(log []recipes.CookRecord, c *recipes.Catalog, today time.Time, lastDays, topN int) Stats {
	var cutoff time.Time
	if lastDays > 0 {
		cutoff = today.AddDate(0, 0, -lastDays)
	}

	counts := map[string]int{}
	byWeekday := map[string]int{}
	totalCalories := 0
	caloriesKnown := 0
	total := 0

	for _, rec := range log {
		d, err := time.Parse(types.DateFormat, rec.Date)
		if err != nil {
			continue
		}
		if !cutoff.IsZero() && d.Before(cutoff) {
			continue
		}
		total++
		counts[rec.Recipe]++
		byWeekday[d.Weekday().String()]++

		if r, ok := c.FindByName(rec.Recipe); ok && r.CaloriesPerServing > 0 {
			servings := rec.Servings
			if servings <= 0 {
				servings = r.Servings
			}
			totalCalories += r.CaloriesPerServing * servings
			caloriesKnown++
		}
	}

	most := make([]RecipeCount, 0, len(counts))
	for name, n := range counts {
		most = append(most, RecipeCount{Recipe: name, Count: n})
	}
	sort.Slice(most, func(i, j int) bool {
		if most[i].Count != most[j].Count {
			return most[i].Count > most[j].Count
		}
		return strings.ToLower(most[i].Recipe) < strings.ToLower(most[j].Recipe)
	})
	if topN > 0 && len(most) > topN {
		most = most[:topN]
	}

	avg := 0
	if caloriesKnown > 0 {
		avg = totalCalories / caloriesKnown
	}

	return Stats{
		TotalCooks:         total,
		UniqueRecipes:      len(counts),
		MostCooked:         most,
		CooksByWeekday:     byWeekday,
		AvgCaloriesPerCook: avg,
	}
}
