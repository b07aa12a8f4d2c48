// Package recipes holds the read-only recipe catalog and the engines
// that run against it: availability counting and the cook operation.
package recipes

import (
	"sort"
	"strings"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/matching"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// Catalog is the loaded recipe collection. Lookup is case-insensitive
// on the recipe name; the stored casing is preserved everywhere else.
type Catalog struct {
	list  []types.Recipe
	byKey map[string]int // lowercased name to list index
}

// NewCatalog indexes the given recipes. Later entries with a name
// already seen are dropped so lookups stay unambiguous.
func NewCatalog(list []types.Recipe) *Catalog {
	c := &Catalog{byKey: make(map[string]int, len(list))}
	for _, r := range list {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if key == "" {
			continue
		}
		if _, dup := c.byKey[key]; dup {
			continue
		}
		c.byKey[key] = len(c.list)
		c.list = append(c.list, r)
	}
	return c
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int { return len(c.list) }

// All returns the recipes in load order.
func (c *Catalog) All() []types.Recipe { return c.list }

// Names returns every recipe name in load order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.list))
	for i, r := range c.list {
		names[i] = r.Name
	}
	return names
}

// FindByName looks a recipe up by name, ignoring case and surrounding
// whitespace.
func (c *Catalog) FindByName(name string) (types.Recipe, bool) {
	i, ok := c.byKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return types.Recipe{}, false
	}
	return c.list[i], true
}

// Search returns recipes whose name contains the query, compared on
// diacritics-stripped lowercase text, sorted by name.
func (c *Catalog) Search(query string) []types.Recipe {
	q := matching.SearchKey(query)
	var out []types.Recipe
	for _, r := range c.list {
		if strings.Contains(matching.SearchKey(r.Name), q) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// FilterByTag returns recipes carrying the tag, in load order.
func (c *Catalog) FilterByTag(tag string) []types.Recipe {
	var out []types.Recipe
	for _, r := range c.list {
		if r.HasTag(tag) {
			out = append(out, r)
		}
	}
	return out
}

// Requirement is one ingredient demand of a recipe, keyed for pantry
// lookups by the normalized name.
type Requirement struct {
	Key    string
	Name   string
	Unit   string
	Amount int
}

// Requirements lists the recipe's ingredient demands in recipe order.
// Entries with a non-positive quantity are kept; callers that only care
// about consumable demands filter on Amount.
func Requirements(r types.Recipe) []Requirement {
	out := make([]Requirement, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		out = append(out, Requirement{
			Key:    matching.NormalizeName(ing.Name),
			Name:   ing.Name,
			Unit:   ing.Unit,
			Amount: ing.Quantity,
		})
	}
	return out
}
