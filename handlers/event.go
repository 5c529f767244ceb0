package handlers

import (
	"house-competition-system/middleware"
	"house-competition-system/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEventRoutes(app *fiber.App, db *gorm.DB, eventService *services.EventService, standingsService *services.StandingsService) {
	// 🔓 Public
	app.Get("/api/events", eventService.GetAllEvents)
	app.Get("/api/standings", standingsService.GetStandings)

	// 🔒 Admin-only: recording and removing results
	admin := app.Group("/api/events", middleware.AuthRequired(), middleware.AdminRequired(db))
	admin.Post("/", eventService.CreateEvent)
	admin.Delete("/:id", eventService.DeleteEvent)
}
