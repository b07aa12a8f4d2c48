package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/pantry"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/types"
)

// ListPantry returns every pantry batch.
// GET /api/pantry
func (a *API) ListPantry(c *gin.Context) {
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// ReplacePantry overwrites the whole pantry document.
// PUT /api/pantry
func (a *API) ReplacePantry(c *gin.Context) {
	var items []types.Ingredient
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.store.SavePantry(items); err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(items)})
}

// AddPantryItem appends one batch.
// POST /api/pantry/items
func (a *API) AddPantryItem(c *gin.Context) {
	var item types.Ingredient
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" || item.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and a positive quantity are required"})
		return
	}
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	items = append(items, item)
	if err := a.store.SavePantry(items); err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"total": len(items)})
}

// UpdatePantryItem replaces the batch at the given list index.
// PUT /api/pantry/items/:index
func (a *API) UpdatePantryItem(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	var item types.Ingredient
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" || item.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and a non-negative quantity are required"})
		return
	}
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	if idx >= len(items) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no batch at that index"})
		return
	}
	items[idx] = item
	if err := a.store.SavePantry(items); err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// RemovePantryItem deletes the batch at the given list index.
// DELETE /api/pantry/items/:index
func (a *API) RemovePantryItem(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	if idx >= len(items) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no batch at that index"})
		return
	}
	items = append(items[:idx], items[idx+1:]...)
	if err := a.store.SavePantry(items); err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(items)})
}

// BulkDeleteRequest names the list indexes to drop.
type BulkDeleteRequest struct {
	Indexes []int `json:"indexes" binding:"required"`
}

// BulkDeletePantryItems removes several batches in one call. Out of
// range indexes are ignored.
// POST /api/pantry/bulk-delete
func (a *API) BulkDeletePantryItems(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	drop := make(map[int]bool, len(req.Indexes))
	for _, idx := range req.Indexes {
		drop[idx] = true
	}
	kept := items[:0:0]
	for i, it := range items {
		if drop[i] {
			continue
		}
		kept = append(kept, it)
	}
	removed := len(items) - len(kept)
	if removed > 0 {
		if err := a.store.SavePantry(kept); err != nil {
			a.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed, "total": len(kept)})
}

// PantryStock returns the aggregated stock index.
// GET /api/pantry/stock
func (a *API) PantryStock(c *gin.Context) {
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": pantry.AggregateStock(items)})
}

// ExpiringItems lists batches expiring within the window.
// GET /api/pantry/expiring?days=5
func (a *API) ExpiringItems(c *gin.Context) {
	window := a.expiryWindow
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
			return
		}
		window = n
	}
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expiring": pantry.ExpiringSoon(items, a.today(), window)})
}

// LowStockItems lists batches at or under their unit threshold.
// GET /api/pantry/low-stock
func (a *API) LowStockItems(c *gin.Context) {
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"low_stock": pantry.LowStock(items)})
}

// PantryAlerts runs both pantry evaluations and returns the raised
// alerts.
// GET /api/pantry/alerts
func (a *API) PantryAlerts(c *gin.Context) {
	items, err := a.store.LoadPantry()
	if err != nil {
		a.fail(c, err)
		return
	}
	var collector pantry.Collector
	pantry.Evaluate(items, a.today(), &collector)
	alerts := collector.Alerts()
	if alerts == nil {
		alerts = []pantry.Alert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
