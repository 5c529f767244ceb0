package handlers

import (
	"house-competition-system/middleware"
	"house-competition-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", authService.Signup)
	auth.Post("/signin", authService.Signin)
	auth.Get("/me", middleware.AuthRequired(), authService.Me)
}
