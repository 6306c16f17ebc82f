package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thabisomokotjo/luct_reporting/handlers"
	"github.com/thabisomokotjo/luct_reporting/middleware"
	"github.com/thabisomokotjo/luct_reporting/models"
)

// CatalogRoutes covers courses, classes, lectures and modules. Reads are
// open to any authenticated role; mutations are restricted to prl and pl,
// the roles that actually own the catalog.
func CatalogRoutes(app *fiber.App) {
	leadersOnly := middleware.RoleRequired(models.RolePrincipalLecturer, models.RoleProgramLeader)

	courses := app.Group("/api/courses", middleware.Protected())
	courses.Get("", handlers.ListCourses)
	courses.Post("", leadersOnly, handlers.CreateCourse)
	courses.Put("/:id/assign", leadersOnly, handlers.AssignLecturer)

	classes := app.Group("/api/classes", middleware.Protected())
	classes.Get("", handlers.ListClasses)
	classes.Post("", leadersOnly, handlers.CreateClass)

	lectures := app.Group("/api/lectures", middleware.Protected())
	lectures.Get("", handlers.ListLectures)
	lectures.Post("", leadersOnly, handlers.CreateLecture)

	modules := app.Group("/api/modules", middleware.Protected())
	modules.Get("", handlers.ListModules)
	modules.Post("", leadersOnly, handlers.CreateModule)
}
