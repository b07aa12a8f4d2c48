package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// ShoppingList builds the list for one week. skip_past=true leaves
// days before today out of the demand.
// GET /api/shopping/:year/:week?skip_past=true
func (a *API) ShoppingList(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	skipPast, _ := strconv.ParseBool(c.DefaultQuery("skip_past", "false"))

	var (
		cat   *recipes.Catalog
		items []types.Ingredient
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		cat, err = a.catalog()
		return err
	})
	g.Go(func() error {
		var err error
		items, err = a.store.LoadPantry()
		return err
	})
	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}
	if err := g.Wait(); err != nil {
		a.fail(c, err)
		return
	}

	list := shopping.Build(p, cat, items, shopping.Options{
		SkipPastDays: skipPast,
		Today:        a.today(),
	})
	if list == nil {
		list = []shopping.Item{}
	}
	shoppingListSize.Observe(float64(len(list)))
	c.JSON(http.StatusOK, gin.H{"items": list, "total": len(list)})
}

// BuyRequest is the purchase payload.
type BuyRequest struct {
	Purchases []shopping.Purchase `json:"purchases" binding:"required"`
}

// Buy resolves purchases against the week's shopping list and applies
// them to the pantry, recording an undoable transaction. Lines that
// name nothing on the list, or an entry with nothing missing, come
// back in the skipped list. The pantry is only written when at least
// one line was applied.
// POST /api/shopping/:year/:week/buy
func (a *API) Buy(c *gin.Context) {
	year, week, ok := weekParams(c)
	if !ok {
		return
	}
	var req BuyRequest
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
	p, err := a.store.LoadPlan(year, week)
	if err != nil {
		a.fail(c, err)
		return
	}

	list := shopping.Build(p, cat, items, shopping.Options{Today: a.today()})
	res := shopping.Buy(list, items, plan.Key(year, week), req.Purchases, a.today())
	if res.Skipped == nil {
		res.Skipped = []shopping.SkippedItem{}
	}

	body := gin.H{
		"week":    res.Transaction.Week,
		"applied": res.Applied,
		"merged":  len(res.Transaction.Merged),
		"added":   len(res.Transaction.Added),
		"skipped": res.Skipped,
		"total":   len(res.Pantry),
	}
	if res.Applied {
		if err := a.store.ApplyBuy(res.Pantry, res.Transaction); err != nil {
			a.fail(c, err)
			return
		}
		purchasesApplied.Inc()
		body["transaction_id"] = res.Transaction.ID
	}
	c.JSON(http.StatusOK, body)
}

// UndoStatus reports whether an undo is possible and which transaction
// it would revert.
// GET /api/shopping/undo/status
func (a *API) UndoStatus(c *gin.Context) {
	log, err := a.store.LoadTransactions()
	if err != nil {
		a.fail(c, err)
		return
	}
	if len(log.Transactions) == 0 {
		c.JSON(http.StatusOK, gin.H{"can_undo": false})
		return
	}
	last := log.Transactions[len(log.Transactions)-1]
	names := make([]string, 0, len(last.Merged)+len(last.Added))
	for _, m := range last.Merged {
		names = append(names, m.Name)
	}
	for _, ad := range last.Added {
		names = append(names, ad.Name)
	}
	c.JSON(http.StatusOK, gin.H{
		"can_undo":       true,
		"transaction_id": last.ID,
		"date":           last.Date,
		"week":           last.Week,
		"items":          names,
	})
}

// UndoBuy reverts the newest purchase transaction.
// POST /api/shopping/undo
func (a *API) UndoBuy(c *gin.Context) {
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	log, err := a.store.LoadTransactions()
	if err != nil {
		a.fail(c, err)
		return
	}

	restored, log, err := shopping.Undo(items, log)
	if err != nil {
		a.fail(c, err)
		return
	}
	if err := a.store.SavePantry(restored); err != nil {
		a.fail(c, err)
		return
	}
	if err := a.store.SaveTransactions(log); err != nil {
		a.fail(c, err)
		return
	}
	purchasesUndone.Inc()
	c.JSON(http.StatusOK, gin.H{"total": len(restored)})
}
