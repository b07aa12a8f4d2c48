// Package reporting derives read-only summaries: nutrition totals for
// a week plan and cooking statistics from the cook log.
package reporting

import (
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// DayNutrition sums one day's planned meals. Calories and macros are
// whole-recipe figures: per-serving values times the serving count.
type DayNutrition struct {
	Day      string `json:"day"`
	Date     string `json:"date"` // DD.MM.YYYY
	Meals    int    `json:"meals"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
}

// WeekNutrition is the per-day breakdown plus week totals.
type WeekNutrition struct {
	Days     []DayNutrition `json:"days"`
	Meals    int            `json:"meals"`
	Calories int            `json:"calories"`
	Protein  int            `json:"protein"`
	Carbs    int            `json:"carbs"`
	Fats     int            `json:"fats"`
}

func slotServings(s plan.Slot, r types.Recipe) int {
	if s.IsCooked() && s.Servings > 0 {
		return s.Servings
	}
	return r.Servings
}

// WeekSummary walks every planned or cooked slot and totals calories
// and macros via the catalog. Assignments naming no catalog recipe are
// skipped.
func WeekSummary(p *plan.WeekPlan, c *recipes.Catalog) WeekNutrition {
	var out WeekNutrition
	for _, dayName := range plan.DayNames {
		day := p.Days[dayName]
		dn := DayNutrition{
			Day:  dayName,
			Date: day.Date.Format(types.PlanDateFormat),
		}
		for _, slotName := range plan.SlotNames {
			slot := day.Slots[slotName]
			if slot.IsEmpty() {
				continue
			}
			r, ok := c.FindByName(slot.Recipe)
			if !ok {
				continue
			}
			servings := slotServings(slot, r)
			dn.Meals++
			dn.Calories += r.CaloriesPerServing * servings
			dn.Protein += r.Macros.Protein * servings
			dn.Carbs += r.Macros.Carbs * servings
			dn.Fats += r.Macros.Fats * servings
		}
		out.Days = append(out.Days, dn)
		out.Meals += dn.Meals
		out.Calories += dn.Calories
		out.Protein += dn.Protein
		out.Carbs += dn.Carbs
		out.Fats += dn.Fats
	}
	return out
}
