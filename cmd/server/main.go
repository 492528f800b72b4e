package main

import (
	"github.com/gin-gonic/gin"
	"github.com/mbellard/habit-tracker-api/internal/config"
	"github.com/mbellard/habit-tracker-api/internal/database"
	"github.com/mbellard/habit-tracker-api/internal/handlers"
	"github.com/mbellard/habit-tracker-api/internal/logger"
	"github.com/mbellard/habit-tracker-api/internal/middleware"
	"github.com/mbellard/habit-tracker-api/internal/repository"
	"github.com/mbellard/habit-tracker-api/internal/services"
)

func main() {
	log := logger.NewLogger("server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("database connection established")

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	habitService := services.NewHabitService(habitRepo, entryRepo)
	entryService := services.NewEntryService(habitRepo, entryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	habitHandler := handlers.NewHabitHandler(habitService)
	entryHandler := handlers.NewEntryHandler(entryService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Habit Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(cfg), authHandler.GetCurrentUser)
			auth.PATCH("/me", middleware.RequireAuth(cfg), authHandler.UpdateProfile)
		}

		// Habit routes (protected)
		habits := api.Group("/habits")
		habits.Use(middleware.RequireAuth(cfg))
		{
			habits.POST("", habitHandler.CreateHabit)
			habits.GET("", habitHandler.ListHabits)
			habits.GET("/:id", habitHandler.GetHabit)
			habits.GET("/:id/streak", habitHandler.GetStreak)
			habits.PATCH("/:id", habitHandler.UpdateHabit)
			habits.DELETE("/:id", habitHandler.DeleteHabit)
		}

		// Entry routes (protected)
		entries := api.Group("/entries")
		entries.Use(middleware.RequireAuth(cfg))
		{
			entries.GET("", entryHandler.ListEntries)
			entries.PUT("", entryHandler.SetCompletion)
		}
	}

	// Start server
	log.Info().Str("addr", cfg.ServerAddr).Msg("server starting")
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
