package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Paul-Gabriel/MPM-Meal-Planner/config"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/handlers"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/middleware"
	"github.com/Paul-Gabriel/MPM-Meal-Planner/internal/storage"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting meal planner service")

	store, err := storage.New(cfg.Data.Dir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Data.Dir).Msg("Failed to open data directory")
	}
	logger.Info().Str("dir", store.Dir()).Msg("Data directory ready")

	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	api := handlers.New(store, *logger, cfg.Data.ExpiryWindowDays)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(*logger))
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.RequestsPerSecond),
		BurstSize:         cfg.RateLimit.Burst,
	}))

	router.GET("/health", api.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		recipes := apiGroup.Group("/recipes")
		{
			recipes.GET("", api.ListRecipes)
			recipes.GET("/availability", api.RecipeAvailability)
			recipes.GET("/:name", api.GetRecipe)
			recipes.GET("/:name/check", api.CheckRecipe)
		}

		pantry := apiGroup.Group("/pantry")
		{
			pantry.GET("", api.ListPantry)
			pantry.PUT("", api.ReplacePantry)
			pantry.POST("/items", api.AddPantryItem)
			pantry.PUT("/items/:index", api.UpdatePantryItem)
			pantry.DELETE("/items/:index", api.RemovePantryItem)
			pantry.POST("/bulk-delete", api.BulkDeletePantryItems)
			pantry.GET("/stock", api.PantryStock)
			pantry.GET("/expiring", api.ExpiringItems)
			pantry.GET("/low-stock", api.LowStockItems)
			pantry.GET("/alerts", api.PantryAlerts)
		}

		plan := apiGroup.Group("/plan")
		{
			plan.GET("/:year/:week", api.GetPlan)
			plan.GET("/:year/:week/:day/:slot", api.GetPlanSlot)
			plan.PUT("/:year/:week/:day/:slot", api.SetPlanSlot)
			plan.POST("/:year/:week/reset", api.ResetPlan)
			plan.POST("/:year/:week/randomize", api.RandomizePlan)
			plan.POST("/:year/:week/randomize-custom", api.RandomizeCustomPlan)
		}

		shopping := apiGroup.Group("/shopping")
		{
			shopping.GET("/:year/:week", api.ShoppingList)
			shopping.POST("/:year/:week/buy", api.Buy)
			shopping.GET("/undo/status", api.UndoStatus)
			shopping.POST("/undo", api.UndoBuy)
		}

		apiGroup.POST("/cook", api.CookMeal)
		apiGroup.GET("/cook/log", api.CookLog)

		reports := apiGroup.Group("/reports")
		{
			reports.GET("/nutrition/:year/:week", api.WeekNutrition)
			reports.GET("/stats", api.CookStats)
		}

		apiGroup.GET("/export/:year/:week", api.ExportWeek)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "meal-planner").Logger()
	return &logger
}
