package recipes

import (
	"errors"
	"fmt"
	"time"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/matching"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/pantry"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

var (
	// ErrRecipeNotFound is returned when a cook request names a recipe
	// the catalog does not hold.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrInsufficientStock is returned when the pantry cannot cover a
	// full preparation. The pantry is left untouched in that case.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OverrideError reports a rejected quantity override, naming the
// offending ingredient: either the recipe does not use it or the
// quantity is negative.
type OverrideError struct {
	Ingredient string
	Reason     string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("invalid override for %q: %s", e.Ingredient, e.Reason)
}

// CookRequest describes one cook operation.
type CookRequest struct {
	Recipe    string
	Servings  int            // 0 means the recipe default
	Overrides map[string]int // ingredient name to replacement quantity
}

// CookRecord is the cook log entry written after a successful cook.
type CookRecord struct {
	Recipe   string         `json:"recipe"`
	Servings int            `json:"servings"`
	Date     string         `json:"date"` // DD-MM-YYYY
	Used     map[string]int `json:"used,omitempty"`
}

// CookResult carries the committed outcome of a cook operation.
type CookResult struct {
	Pantry   []types.Ingredient
	Leftover types.Ingredient
	Record   CookRecord
}

// resolveDemands applies quantity overrides to the recipe requirements.
// Override keys match ingredients through name normalization, so
// "Tomatoes" overrides a "tomato" ingredient. A negative quantity or
// an override that matches nothing fails the whole cook.
func resolveDemands(r types.Recipe, overrides map[string]int) ([]Requirement, error) {
	reqs := Requirements(r)
	for name, qty := range overrides {
		if qty < 0 {
			return nil, &OverrideError{Ingredient: name, Reason: "negative quantity"}
		}
		key := matching.NormalizeName(name)
		found := false
		for i := range reqs {
			if reqs[i].Key == key {
				reqs[i].Amount = qty
				found = true
			}
		}
		if !found {
			return nil, &OverrideError{Ingredient: name, Reason: "not a recipe ingredient"}
		}
	}
	return reqs, nil
}

// Cook prepares a recipe against the pantry in two phases: first every
// demand is consumed from a working copy, and only when all of them
// succeed does the result replace the pantry. On ErrInsufficientStock
// the input slice is returned unchanged, so a partial preparation never
// leaks into stock. The cooked meal itself is appended as a pcs batch
// expiring after the standard shelf life.
func Cook(c *Catalog, items []types.Ingredient, req CookRequest, today time.Time) (CookResult, error) {
	r, ok := c.FindByName(req.Recipe)
	if !ok {
		return CookResult{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, req.Recipe)
	}

	demands, err := resolveDemands(r, req.Overrides)
	if err != nil {
		return CookResult{}, err
	}

	working := items
	used := make(map[string]int)
	var missing []string
	for _, d := range demands {
		if d.Amount <= 0 {
			continue
		}
		next, ok := pantry.ConsumeFIFO(working, d.Key, d.Amount)
		if !ok {
			missing = append(missing, d.Name)
			continue
		}
		working = next
		used[d.Key] += d.Amount
	}
	if len(missing) > 0 {
		return CookResult{}, fmt.Errorf("%w: missing %v", ErrInsufficientStock, missing)
	}

	servings := req.Servings
	if servings <= 0 {
		servings = r.Servings
	}
	leftover := types.Ingredient{
		Name:     r.Name,
		Unit:     "pcs",
		Quantity: servings,
		Expiry:   today.AddDate(0, 0, types.DaysBeforeExpiry).Format(types.DateFormat),
		Tags:     []string{"other"},
	}
	working = append(working, leftover)

	return CookResult{
		Pantry:   working,
		Leftover: leftover,
		Record: CookRecord{
			Recipe:   r.Name,
			Servings: servings,
			Date:     today.Format(types.DateFormat),
			Used:     used,
		},
	}, nil
}

// CheckIngredients reports the ingredients the pantry cannot cover for
// one preparation, without modifying anything.
func CheckIngredients(c *Catalog, items []types.Ingredient, name string) ([]string, error) {
	r, ok := c.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRecipeNotFound, name)
	}
	return Missing(r, pantry.AggregateStock(items)), nil
}
