// Package shopping builds shopping lists from the weekly plan and
// applies purchases to the pantry with an undoable transaction log.
package shopping

import (
	"sort"
	"strings"
	"time"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/pantry"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// Item is one shopping list line: how much of an ingredient the plan
// needs beyond what the pantry holds.
type Item struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Required int    `json:"required"`
	InStock  int    `json:"in_stock"`
	Missing  int    `json:"missing"`
}

// Options scope a Build call.
type Options struct {
	// SkipPastDays leaves days before today out of the demand sum.
	SkipPastDays bool
	// Today anchors the past-day cutoff; zero means all days count.
	Today time.Time
}

type demand struct {
	name     string
	unit     string
	required int
}

// Build aggregates the ingredient demand of every planned, not yet
// cooked meal and subtracts current stock. Cooked slots are excluded
// since their ingredients have already been consumed. Assignments that
// name no catalog recipe contribute nothing. The first spelling seen
// for an ingredient wins, as does the first non-empty unit; lines with
// nothing missing are dropped. Output is sorted by name,
// case-insensitively.
func Build(p *plan.WeekPlan, c *recipes.Catalog, items []types.Ingredient, opts Options) []Item {
	stock := pantry.AggregateStock(items)
	demands := map[string]*demand{}

	for _, dayName := range plan.DayNames {
		day := p.Days[dayName]
		if opts.SkipPastDays && !opts.Today.IsZero() && day.Date.Before(opts.Today) {
			continue
		}
		for _, slotName := range plan.SlotNames {
			slot := day.Slots[slotName]
			if !slot.IsAssigned() {
				continue
			}
			r, ok := c.FindByName(slot.Recipe)
			if !ok {
				continue
			}
			for _, req := range recipes.Requirements(r) {
				if req.Amount <= 0 {
					continue
				}
				d, ok := demands[req.Key]
				if !ok {
					d = &demand{name: req.Name}
					demands[req.Key] = d
				}
				if d.unit == "" {
					d.unit = req.Unit
				}
				d.required += req.Amount
			}
		}
	}

	var out []Item
	for key, d := range demands {
		have := stock.Have(key)
		missing := d.required - have
		if missing <= 0 {
			continue
		}
		out = append(out, Item{
			Name:     d.name,
			Unit:     d.unit,
			Required: d.required,
			InStock:  have,
			Missing:  missing,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
