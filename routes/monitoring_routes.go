package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thabisomokotjo/luct_reporting/handlers"
	"github.com/thabisomokotjo/luct_reporting/middleware"
)

func MonitoringRoutes(app *fiber.App) {
	app.Get("/api/monitoring", middleware.Protected(), handlers.GetMonitoring)
}
