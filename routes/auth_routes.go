package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thabisomokotjo/luct_reporting/handlers"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
}
