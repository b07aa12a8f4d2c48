package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/reporting"
)

// WeekNutrition totals calories and macros for one planned week.
// GET /api/reports/nutrition/:year/:week
func (a *API) WeekNutrition(c *gin.Context) {
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
	c.JSON(http.StatusOK, reporting.WeekSummary(p, cat))
}

// CookStats summarizes the cook history.
// GET /api/reports/stats?days=30&top=5
func (a *API) CookStats(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "0"))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}
	top, err := strconv.Atoi(c.DefaultQuery("top", "5"))
	if err != nil || top < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid top"})
		return
	}

	cat, err := a.catalog()
	if err != nil {
		a.fail(c, err)
		return
	}
	log, err := a.store.LoadCookLog()
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reporting.Summarize(log, cat, a.today(), days, top))
}
