package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// mealsCooked counts successful cook operations per recipe.
	mealsCooked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meal_planner_meals_cooked_total",
		Help: "Total number of meals cooked by recipe",
	}, []string{"recipe"})

	// cookFailures counts cook attempts rejected for missing stock.
	cookFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meal_planner_cook_failures_total",
		Help: "Total number of cook attempts rejected for insufficient stock",
	})

	// purchasesApplied counts applied buy transactions.
	purchasesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meal_planner_purchases_applied_total",
		Help: "Total number of applied purchase transactions",
	})

	// purchasesUndone counts undone buy transactions.
	purchasesUndone = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meal_planner_purchases_undone_total",
		Help: "Total number of undone purchase transactions",
	})

	// planRandomizations counts plan randomize operations by kind.
	planRandomizations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meal_planner_plan_randomizations_total",
		Help: "Total number of plan randomize operations by kind",
	}, []string{"kind"}) // kind: week, custom, reset

	// shoppingListSize tracks the size of generated shopping lists.
	shoppingListSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "meal_planner_shopping_list_items_count",
		Help:    "Number of items in generated shopping lists",
		Buckets: []float64{0, 1, 5, 10, 20, 50},
	})
)
