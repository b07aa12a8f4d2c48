package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// PlanDay is the wire form of one plan day.
type PlanDay struct {
	Date  string               `json:"date"` // DD.MM.YYYY
	Slots map[string]plan.Slot `json:"slots"`
}

// PlanResponse is the wire form of one week plan.
type PlanResponse struct {
	Year int                `json:"year"`
	Week int                `json:"week"`
	Days map[string]PlanDay `json:"days"`
}

func planResponse(p *plan.WeekPlan) PlanResponse {
	resp := PlanResponse{
		Year: p.Year,
		Week: p.Week,
		Days: make(map[string]PlanDay, len(plan.DayNames)),
	}
	for _, name := range plan.DayNames {
		d := p.Days[name]
		resp.Days[name] = PlanDay{
			Date:  d.Date.Format(types.PlanDateFormat),
			Slots: d.Slots,
		}
	}
	return resp
}

// GetPlan returns the plan for one ISO week, creating it when absent.
// GET /api/plan/:year/:week
func (a *API) GetPlan(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, planResponse(p))
}

// SetSlotRequest assigns or clears one slot.
type SetSlotRequest struct {
	Recipe string `json:"recipe"` // empty clears the slot
}

// SetPlanSlot writes one slot. Unknown recipes are rejected and cooked
// slots refuse the write.
// PUT /api/plan/:year/:week/:day/:slot
func (a *API) SetPlanSlot(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	var req SetSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value := plan.Empty()
	if req.Recipe != "" {
		cat, err := a.catalog()
		if err != nil {
			a.fail(c, err)
			return
		}
		r, ok := cat.FindByName(req.Recipe)
		if !ok {
			a.fail(c, fmt.Errorf("%w: %q", recipes.ErrRecipeNotFound, req.Recipe))
			return
		}
		value = plan.Assigned(r.Name)
	}

	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}
	if err := p.SetSlot(c.Param("day"), c.Param("slot"), value); err != nil {
		a.fail(c, err)
		return
	}
	if err := a.store.SavePlan(p); err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, planResponse(p))
}

// GetPlanSlot returns the value of one slot.
// GET /api/plan/:year/:week/:day/:slot
func (a *API) GetPlanSlot(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}
	day, slot := c.Param("day"), c.Param("slot")
	value, err := p.Slot(day, slot)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"day":  day,
		"slot": slot,
		"meal": value,
	})
}

// ResetPlan blanks every non-cooked slot from today on.
// POST /api/plan/:year/:week/reset
func (a *API) ResetPlan(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}
	p.Reset(a.today())
	if err := a.store.SavePlan(p); err != nil {
		a.fail(c, err)
		return
	}
	planRandomizations.WithLabelValues("reset").Inc()
	c.JSON(http.StatusOK, planResponse(p))
}

// RandomizePlan fills the week with random recipes.
// POST /api/plan/:year/:week/randomize
func (a *API) RandomizePlan(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	cat, err := a.catalog()
	if err != nil {
		a.fail(c, err)
		return
	}
	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}
	p.RandomizeWeek(cat.Names(), a.today())
	if err := a.store.SavePlan(p); err != nil {
		a.fail(c, err)
		return
	}
	planRandomizations.WithLabelValues("week").Inc()
	c.JSON(http.StatusOK, planResponse(p))
}

// RandomizeCustomRequest scopes a custom randomization.
type RandomizeCustomRequest struct {
	Days                []string `json:"days"`
	ReplaceExisting     bool     `json:"replace_existing"`
	RestrictToAvailable bool     `json:"restrict_to_available"`
}

// RandomizeCustomPlan randomizes a day subset. With
// restrict_to_available only recipes cookable from current stock are
// drawn; an empty candidate pool modifies nothing.
// POST /api/plan/:year/:week/randomize-custom
func (a *API) RandomizeCustomPlan(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	var req RandomizeCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := a.catalog()
	if err != nil {
		a.fail(c, err)
		return
	}
	candidates := cat.Names()
	if req.RestrictToAvailable {
		items, err := a.store.LoadPantry()
		if err != nil {
			a.fail(c, err)
			return
		}
		candidates = recipes.Cookable(cat, items)
	}

	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}

	modified := 0
	if len(candidates) > 0 {
		modified = p.RandomizeCustom(candidates, plan.CustomOptions{
			Days:            req.Days,
			ReplaceExisting: req.ReplaceExisting,
		}, a.today())
	}
	if modified > 0 {
		if err := a.store.SavePlan(p); err != nil {
			a.fail(c, err)
			return
		}
	}
	planRandomizations.WithLabelValues("custom").Inc()
	c.JSON(http.StatusOK, gin.H{"modified": modified, "plan": planResponse(p)})
}
