package pantry

import (
	"sort"
	"time"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// ExpiringItem is one batch inside the expiring-soon window.
type ExpiringItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Expiry   string `json:"exp"`
	DaysLeft int    `json:"days_left"` // negative when already expired
	Tag      string `json:"tag"`
}

// LowStockItem is one batch at or below its unit threshold.
type LowStockItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	Threshold int    `json:"threshold"`
	Tag       string `json:"tag"`
}

func firstTag(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

// ExpiringSoon returns batches expiring within window days of today,
// including batches already past their date. Batches without a parsable
// expiry are skipped. Sorted by days left, then name.
func ExpiringSoon(items []types.Ingredient, today time.Time, window int) []ExpiringItem {
	day := today.Truncate(24 * time.Hour)
	var out []ExpiringItem
	for _, it := range items {
		exp, ok := it.ExpiryDate()
		if !ok {
			continue
		}
		daysLeft := int(exp.Sub(day).Hours() / 24)
		if daysLeft > window {
			continue
		}
		out = append(out, ExpiringItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Expiry:   it.Expiry,
			DaysLeft: daysLeft,
			Tag:      firstTag(it.Tags),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysLeft != out[j].DaysLeft {
			return out[i].DaysLeft < out[j].DaysLeft
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// LowStock returns batches whose quantity sits at or below the
// threshold for their unit. Units without a positive threshold never
// qualify. Sorted by quantity, then name.
func LowStock(items []types.Ingredient) []LowStockItem {
	var out []LowStockItem
	for _, it := range items {
		q := it.Quantity
		if q < 0 {
			q = 0
		}
		th := types.LowStockThreshold[it.Unit]
		if th <= 0 || q > th {
			continue
		}
		out = append(out, LowStockItem{
			Name:      it.Name,
			Quantity:  q,
			Unit:      it.Unit,
			Threshold: th,
			Tag:       firstTag(it.Tags),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity < out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	return out
}
