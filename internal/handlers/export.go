package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/export"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportWeek renders one week as an .xlsx workbook with plan, shopping
// list and pantry sheets.
// GET /api/export/:year/:week?skip_past=true
func (a *API) ExportWeek(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	skipPast, _ := strconv.ParseBool(c.DefaultQuery("skip_past", "false"))

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
	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}

	list := shopping.Build(p, cat, items, shopping.Options{
		SkipPastDays: skipPast,
		Today:        a.today(),
	})

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, export.Workbook{
		Plan:     p,
		Shopping: list,
		Pantry:   items,
	}); err != nil {
		a.fail(c, err)
		return
	}

	filename := fmt.Sprintf("meal-plan-%s.xlsx", plan.Key(year, week))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
