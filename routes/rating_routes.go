package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thabisomokotjo/luct_reporting/handlers"
	"github.com/thabisomokotjo/luct_reporting/middleware"
	"github.com/thabisomokotjo/luct_reporting/models"
)

func RatingRoutes(app *fiber.App) {
	app.Post("/api/rate",
		middleware.Protected(),
		middleware.RoleRequired(models.RoleStudent, models.RolePrincipalLecturer, models.RoleProgramLeader),
		handlers.RateReport)
}
