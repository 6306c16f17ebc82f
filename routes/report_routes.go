package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thabisomokotjo/luct_reporting/handlers"
	"github.com/thabisomokotjo/luct_reporting/middleware"
	"github.com/thabisomokotjo/luct_reporting/models"
)

func ReportRoutes(app *fiber.App) {
	reports := app.Group("/api/reports", middleware.Protected())

	lecturerOnly := middleware.RoleRequired(models.RoleLecturer)
	reports.Post("", lecturerOnly, handlers.SubmitReport)
	reports.Post("/submit", lecturerOnly, handlers.SubmitReport)

	reports.Get("/view", handlers.ViewReports)
	reports.Get("/search", handlers.SearchReports)
	reports.Get("/download/:id", handlers.DownloadReport)

	reports.Put("/feedback/:id",
		middleware.RoleRequired(models.RolePrincipalLecturer),
		handlers.AddFeedback)
}
