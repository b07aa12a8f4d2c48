package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
)

// ListRecipes returns the catalog, optionally filtered by a name query
// and a tag.
// GET /api/recipes?q=soup&tag=lunch
func (a *API) ListRecipes(c *gin.Context) {
	cat, err := a.catalog()
	if err != nil {
		a.fail(c, err)
		return
	}

	list := cat.All()
	if q := c.Query("q"); q != "" {
		list = cat.Search(q)
	}
	if tag := c.Query("tag"); tag != "" {
		filtered := list[:0:0]
		for _, r := range list {
			if r.HasTag(tag) {
				filtered = append(filtered, r)
			}
		}
		list = filtered
	}
	c.JSON(http.StatusOK, gin.H{"recipes": list, "total": len(list)})
}

// GetRecipe returns one recipe by name, case-insensitively.
// GET /api/recipes/:name
func (a *API) GetRecipe(c *gin.Context) {
	cat, err := a.catalog()
	if err != nil {
		a.fail(c, err)
		return
	}
	r, ok := cat.FindByName(c.Param("name"))
	if !ok {
		a.fail(c, fmt.Errorf("%w: %q", recipes.ErrRecipeNotFound, c.Param("name")))
		return
	}
	c.JSON(http.StatusOK, r)
}

// RecipeAvailability reports how often each recipe can be prepared
// from the current pantry.
// GET /api/recipes/availability
func (a *API) RecipeAvailability(c *gin.Context) {
	cat, err := a.catalog()
	if err != nil {
		a.fail(c, err)
		return
	}
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": recipes.Evaluate(cat, items)})
}

// CheckRecipe lists the ingredients missing for one preparation.
// GET /api/recipes/:name/check
func (a *API) CheckRecipe(c *gin.Context) {
	cat, err := a.catalog()
	if err != nil {
		a.fail(c, err)
		return
	}
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	missing, err := recipes.CheckIngredients(cat, items, c.Param("name"))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipe":   c.Param("name"),
		"can_cook": len(missing) == 0,
		"missing":  missing,
	})
}
