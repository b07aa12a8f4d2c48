// Package pantry implements the stock index over ingredient batches:
// aggregation by normalized name, FIFO consumption, and the expiry and
// low-stock analysis reports.
package pantry

import (
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/matching"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// StockIndex maps a normalized ingredient name to the total quantity
// across all batches. Derived on every read, never persisted.
type StockIndex map[string]int

// AggregateStock sums batch quantities per normalized name. Negative
// quantities count as zero so one corrupt batch cannot drag a total
// below what is physically on the shelf.
func AggregateStock(items []types.Ingredient) StockIndex {
	stock := make(StockIndex, len(items))
	for _, it := range items {
		q := it.Quantity
		if q < 0 {
			q = 0
		}
		stock[matching.NormalizeName(it.Name)] += q
	}
	return stock
}

// Have returns the aggregated quantity for a normalized key.
func (s StockIndex) Have(key string) int {
	return s[key]
}

// ConsumeFIFO deducts amount units from the batches whose normalized
// name equals key, walking batches in list order (not expiry order)
// and removing batches that reach zero. It returns the updated batch
// list and true on success; when the total available is short of
// amount the input is returned unmodified with false.
//
// Consumption order follows the stored list, matching the historical
// behavior callers depend on, even though batches carry expiry dates.
// Batches with a non-positive quantity are passed over untouched, the
// same way the aggregate counts them as zero.
func ConsumeFIFO(items []types.Ingredient, key string, amount int) ([]types.Ingredient, bool) {
	if amount <= 0 {
		return items, true
	}
	if AggregateStock(items).Have(key) < amount {
		return items, false
	}

	out := make([]types.Ingredient, 0, len(items))
	remaining := amount
	for _, it := range items {
		if remaining > 0 && it.Quantity > 0 && matching.NormalizeName(it.Name) == key {
			take := it.Quantity
			if take > remaining {
				take = remaining
			}
			remaining -= take
			it.Quantity -= take
			if it.Quantity <= 0 {
				continue // depleted batch drops out
			}
		}
		out = append(out, it)
	}
	return out, true
}
