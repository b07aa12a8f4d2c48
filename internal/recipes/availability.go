package recipes

import (
	"sort"
	"strings"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/pantry"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// Availability reports how often one recipe can be prepared from the
// current stock.
type Availability struct {
	Recipe        string   `json:"recipe"`
	TimesPossible int      `json:"times_possible"`
	Missing       []string `json:"missing,omitempty"` // display names of ingredients with zero stock
}

// TimesPossible returns how many complete preparations the stock
// supports, the minimum over stock/required across the recipe's
// ingredients. Ingredients with a non-positive required quantity are
// skipped; a recipe with no positive requirement yields zero.
func TimesPossible(r types.Recipe, stock pantry.StockIndex) int {
	times := -1
	for _, req := range Requirements(r) {
		if req.Amount <= 0 {
			continue
		}
		n := stock.Have(req.Key) / req.Amount
		if times < 0 || n < times {
			times = n
		}
	}
	if times < 0 {
		return 0
	}
	return times
}

// Missing returns the display names of ingredients the stock cannot
// cover for a single preparation, in recipe order.
func Missing(r types.Recipe, stock pantry.StockIndex) []string {
	var out []string
	for _, req := range Requirements(r) {
		if req.Amount <= 0 {
			continue
		}
		if stock.Have(req.Key) < req.Amount {
			out = append(out, req.Name)
		}
	}
	return out
}

// Evaluate computes availability for every catalog recipe against the
// given pantry, sorted by times possible descending then name.
func Evaluate(c *Catalog, items []types.Ingredient) []Availability {
	stock := pantry.AggregateStock(items)
	out := make([]Availability, 0, c.Len())
	for _, r := range c.All() {
		out = append(out, Availability{
			Recipe:        r.Name,
			TimesPossible: TimesPossible(r, stock),
			Missing:       Missing(r, stock),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TimesPossible != out[j].TimesPossible {
			return out[i].TimesPossible > out[j].TimesPossible
		}
		return strings.ToLower(out[i].Recipe) < strings.ToLower(out[j].Recipe)
	})
	return out
}

// Cookable returns the names of recipes preparable at least once,
// sorted alphabetically.
func Cookable(c *Catalog, items []types.Ingredient) []string {
	stock := pantry.AggregateStock(items)
	var out []string
	for _, r := range c.All() {
		if TimesPossible(r, stock) > 0 {
			out = append(out, r.Name)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
