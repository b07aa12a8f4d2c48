// Package types holds the domain records shared by every component:
// pantry ingredient batches, recipes, and the constants that govern
// expiry and low-stock evaluation.
package types

import (
	"encoding/json"
	"strings"
	"time"
)

// DateFormat is the layout used for every persisted date (DD-MM-YYYY).
const DateFormat = "02-01-2006"

// PlanDateFormat is the layout of the derived per-day calendar date
// attached to week plans (DD.MM.YYYY). Never persisted.
const PlanDateFormat = "02.01.2006"

// DaysBeforeExpiry is the default window for near-expiry evaluation,
// and the shelf life assigned to a freshly cooked meal.
const DaysBeforeExpiry = 5

// LowStockThreshold maps a unit to the quantity at or below which a
// batch counts as low stock. Units not listed never trigger the alert.
var LowStockThreshold = map[string]int{
	"g":      200,
	"ml":     500,
	"pcs":    3,
	"cloves": 2,
}

// AllowedTags is the closed set of pantry category tags. Anything else
// is collapsed to "other" on load and save.
var AllowedTags = []string{
	"fruits", "vegetables", "meat-chicken", "meat-beef", "meat-pork",
	"pasta", "frozen", "fish", "seafood", "dairy", "cheese", "condiment",
	"baking", "canned", "grains", "oil", "sauce", "spice", "other",
}

// Ingredient is one pantry batch: a named quantity with an optional
// expiry date. Several batches may share a name; they are kept separate
// so expiry-aware consumption and purchase merging can tell them apart.
type Ingredient struct {
	Name     string   `json:"name"`
	Unit     string   `json:"unit"`
	Quantity int      `json:"default_quantity"`
	Expiry   string   `json:"data_expirare"` // DD-MM-YYYY, empty if none
	Tags     []string `json:"tags"`
	BatchID  string   `json:"batch_id,omitempty"` // set on batches created by a buy transaction
}

// ExpiryDate parses the batch expiry. The second return is false when
// the batch has no expiry or the stored string is malformed.
func (i Ingredient) ExpiryDate() (time.Time, bool) {
	if i.Expiry == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateFormat, i.Expiry)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// SanitizeTags reduces the tag list to at most one allowed tag,
// defaulting to "other". Applied on every pantry load and save so
// malformed documents heal themselves.
func SanitizeTags(tags []string) []string {
	for _, t := range tags {
		norm := strings.ToLower(strings.TrimSpace(t))
		for _, allowed := range AllowedTags {
			if norm == allowed {
				return []string{norm}
			}
		}
	}
	return []string{"other"}
}

// Macros holds per-serving macronutrient grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// UnmarshalJSON accepts the key synonyms that older recipe documents
// carry: "carbohydrates" for carbs and "fat" for fats.
func (m *Macros) UnmarshalJSON(data []byte) error {
	var raw map[string]json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	get := func(keys ...string) int {
		for _, k := range keys {
			if v, ok := raw[k]; ok {
				f, err := v.Float64()
				if err == nil {
					return int(f)
				}
			}
		}
		return 0
	}
	m.Protein = get("protein")
	m.Carbs = get("carbs", "carbohydrates")
	m.Fats = get("fats", "fat")
	return nil
}

// Recipe is a read-only catalog record. Ingredient entries reuse the
// Ingredient shape: Quantity is the required amount per preparation.
type Recipe struct {
	Name               string       `json:"name"`
	Servings           int          `json:"servings"`
	Ingredients        []Ingredient `json:"ingredients"`
	Steps              []string     `json:"steps"`
	Tags               []string     `json:"tags"`
	CaloriesPerServing int          `json:"calories_per_serving"`
	Macros             Macros       `json:"macros"`
	Image              string       `json:"image"`
}

// HasTag reports whether the recipe carries the tag, case-insensitively.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
