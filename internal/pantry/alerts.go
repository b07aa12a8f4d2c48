package pantry

import (
	"time"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// AlertKind distinguishes the two pantry alert conditions.
type AlertKind string

const (
	AlertLowStock   AlertKind = "pantry.low_stock"
	AlertNearExpiry AlertKind = "pantry.near_expiry"
)

// Alert is one pantry condition observed during evaluation.
type Alert struct {
	Kind      AlertKind `json:"kind"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Remaining int       `json:"remaining"`
	Threshold int       `json:"threshold"`
	DaysLeft  int       `json:"days_left,omitempty"`
}

// Collector accumulates alerts during a pantry evaluation. Callers pass
// one in explicitly when they care about the side channel; mutation
// paths that do not observe alerts simply pass nil. There is no global
// bus: whether alerts are seen is the caller's choice.
type Collector struct {
	alerts []Alert
}

// Collect appends an alert. A nil collector discards it.
func (c *Collector) Collect(a Alert) {
	if c == nil {
		return
	}
	c.alerts = append(c.alerts, a)
}

// Alerts returns everything collected so far.
func (c *Collector) Alerts() []Alert {
	if c == nil {
		return nil
	}
	return c.alerts
}

// Evaluate scans every batch for low-stock and near-expiry conditions
// and feeds matches to the collector.
func Evaluate(items []types.Ingredient, today time.Time, c *Collector) {
	day := today.Truncate(24 * time.Hour)
	for _, it := range items {
		if th := types.LowStockThreshold[it.Unit]; th > 0 && it.Quantity <= th {
			c.Collect(Alert{
				Kind:      AlertLowStock,
				Name:      it.Name,
				Unit:      it.Unit,
				Remaining: it.Quantity,
				Threshold: th,
			})
		}
		if exp, ok := it.ExpiryDate(); ok {
			daysLeft := int(exp.Sub(day).Hours() / 24)
			if daysLeft <= types.DaysBeforeExpiry {
				c.Collect(Alert{
					Kind:      AlertNearExpiry,
					Name:      it.Name,
					Unit:      it.Unit,
					Remaining: it.Quantity,
					Threshold: types.DaysBeforeExpiry,
					DaysLeft:  daysLeft,
				})
			}
		}
	}
}
