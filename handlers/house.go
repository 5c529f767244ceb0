package handlers

import (
	"house-competition-system/middleware"
	"house-competition-system/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHouseRoutes(app *fiber.App, db *gorm.DB, houseService *services.HouseService) {
	// 🔓 Public — the standings page and the admin form both need the house list
	app.Get("/api/houses", houseService.GetAllHouses)

	// 🔒 Admin-only seeding/maintenance
	admin := app.Group("/api/houses", middleware.AuthRequired(), middleware.AdminRequired(db))
	admin.Post("/", houseService.CreateHouse)
	admin.Put("/:id", houseService.UpdateHouse)
}
