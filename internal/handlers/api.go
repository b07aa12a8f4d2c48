// Package handlers exposes the application over HTTP: pantry, recipe
// catalog, weekly plan, shopping, cooking and reporting endpoints.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/plan"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/recipes"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/shopping"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/storage"
)

// API bundles the dependencies the handlers share. now is injectable
// so date-sensitive endpoints can be tested on a fixed day.
type API struct {
	store        *storage.Store
	log          zerolog.Logger
	expiryWindow int
	now          func() time.Time
}

// New wires an API around the document store.
func New(store *storage.Store, logger zerolog.Logger, expiryWindow int) *API {
	if expiryWindow <= 0 {
		expiryWindow = 5
	}
	return &API{
		store:        store,
		log:          logger.With().Str("component", "handlers").Logger(),
		expiryWindow: expiryWindow,
		now:          time.Now,
	}
}

// today returns the current calendar day, truncated to midnight UTC so
// comparisons against plan dates are date-only.
func (a *API) today() time.Time {
	t := a.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// catalog loads and indexes the recipe document.
func (a *API) catalog() (*recipes.Catalog, error) {
	list, err := a.store.LoadRecipes()
	if err != nil {
		return nil, err
	}
	return recipes.NewCatalog(list), nil
}

// weekParams parses the :year/:week path segments.
func weekParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 || week > 53 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week"})
		return 0, 0, false
	}
	return year, week, true
}

// fail maps domain errors onto HTTP statuses and logs server faults.
func (a *API) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var overrideErr *recipes.OverrideError
	switch {
	case errors.Is(err, recipes.ErrRecipeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, recipes.ErrInsufficientStock),
		errors.Is(err, shopping.ErrNothingToUndo),
		errors.Is(err, plan.ErrSlotCooked),
		errors.As(err, &overrideErr):
		status = http.StatusConflict
	case errors.Is(err, plan.ErrInvalidDay), errors.Is(err, plan.ErrInvalidSlot):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		a.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
