// Package routes defines the API routing configuration. It wires the
// repositories, the fee engine and the scheduling service to their
// handlers.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"remessa/internal/config"
	"remessa/internal/handlers"
	"remessa/internal/repositories"
	"remessa/internal/services/fee"
	"remessa/internal/services/scheduling"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.SchedulerConfig) {
	tierRepo := repositories.NewCachedFeeTierRepository(
		repositories.NewFeeTierRepository(db),
		repositories.CacheService,
	)
	transferRepo := repositories.NewTransferRepository(db)

	calculator := fee.NewCalculator(tierRepo)
	schedulingService := scheduling.NewService(transferRepo, calculator, cfg, scheduling.SystemClock())

	scheduleHandler := handlers.NewScheduleHandler(schedulingService)
	feeHandler := handlers.NewFeeHandler(tierRepo)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Post("/schedules", scheduleHandler.CreateSchedule)
	api.Get("/schedules", scheduleHandler.ListSchedules)
	api.Delete("/schedules/:id", scheduleHandler.DeleteSchedule)
	api.Get("/fees", feeHandler.ListTiers)
}
