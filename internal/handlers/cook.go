package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
)

// CookMealRequest describes one cook call. Day and Slot are optional;
// when both are set and name a week, the plan slot is marked cooked.
type CookMealRequest struct {
	Recipe    string         `json:"recipe" binding:"required"`
	Servings  int            `json:"servings"`
	Overrides map[string]int `json:"overrides"`
	Year      int            `json:"year"`
	Week      int            `json:"week"`
	Day       string         `json:"day"`
	Slot      string         `json:"slot"`
}

// CookMeal consumes the recipe's ingredients from the pantry, appends
// the cooked meal as a leftover batch and logs the cook. The pantry is
// only written when every ingredient could be consumed.
// POST /api/cook
func (a *API) CookMeal(c *gin.Context) {
	var req CookMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

	res, err := recipes.Cook(cat, items, recipes.CookRequest{
		Recipe:    req.Recipe,
		Servings:  req.Servings,
		Overrides: req.Overrides,
	}, a.today())
	if err != nil {
		if errors.Is(err, recipes.ErrInsufficientStock) {
			cookFailures.Inc()
		}
		a.fail(c, err)
		return
	}

	if err := a.store.SavePantry(res.Pantry); err != nil {
		a.fail(c, err)
		return
	}
	if err := a.store.AppendCookRecord(res.Record); err != nil {
		a.fail(c, err)
		return
	}

	if req.Day != "" && req.Slot != "" && req.Year > 0 && req.Week > 0 {
		if err := a.markSlotCooked(req, res.Record.Recipe, res.Record.Servings); err != nil {
			// the cook itself is committed; report the plan update issue
			a.fail(c, err)
			return
		}
	}

	mealsCooked.WithLabelValues(res.Record.Recipe).Inc()
	c.JSON(http.StatusOK, gin.H{
		"record":   res.Record,
		"leftover": res.Leftover,
	})
}

func (a *API) markSlotCooked(req CookMealRequest, recipe string, servings int) error {
	p, err := a.store.LoadPlan(req.Year, req.Week)
	if err != nil {
		return err
	}
	value := plan.Cooked(recipe, servings, 0, req.Overrides)
	if err := p.SetSlot(req.Day, req.Slot, value); err != nil {
		return err
	}
	return a.store.SavePlan(p)
}

// CookLog returns the cook history, oldest first.
// GET /api/cook/log
func (a *API) CookLog(c *gin.Context) {
	log, err := a.store.LoadCookLog()
	if err != nil {
		a.fail(c, err)
		return
	}
	if log == nil {
		log = []recipes.CookRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"log": log, "total": len(log)})
}
