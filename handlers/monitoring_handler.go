package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
	"github.com/thabisomokotjo/luct_reporting/utils"
)

// Monitoring row shapes, one per role tier. Kept as separate structs so
// each role's payload is exactly its columns and nothing more.
type StudentMonitoringRow struct {
	CourseName              string `json:"course_name"`
	WeekOfReporting         string `json:"week_of_reporting"`
	ActualStudents          int    `json:"actual_students"`
	TotalRegisteredStudents int    `json:"total_registered_students"`
}

type LecturerMonitoringRow struct {
	CourseName              string  `json:"course_name"`
	WeekOfReporting         string  `json:"week_of_reporting"`
	ActualStudents          int     `json:"actual_students"`
	TotalRegisteredStudents int     `json:"total_registered_students"`
	Feedback                *string `json:"feedback"`
}

type LeaderMonitoringRow struct {
	CourseName              string  `json:"course_name"`
	WeekOfReporting         string  `json:"week_of_reporting"`
	ActualStudents          int     `json:"actual_students"`
	TotalRegisteredStudents int     `json:"total_registered_students"`
	LecturerName            *string `json:"lecturer_name"`
	Feedback                *string `json:"feedback"`
	Rating                  *int    `json:"rating"`
}

// GetMonitoring is the one role-shaped read in the system: same endpoint,
// different projection per role. The switch is total over the role enum;
// anything unrecognized is rejected.
func GetMonitoring(c *fiber.Ctx) error {
	userID, role := utils.CurrentUser(c)

	switch role {
	case models.RoleStudent:
		rows := []StudentMonitoringRow{}
		err := database.DB.
			Table("reports").
			Select("course_name, week_of_reporting, actual_students, total_registered_students").
			Order("week_of_reporting DESC").
			Scan(&rows).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rows)

	case models.RoleLecturer:
		rows := []LecturerMonitoringRow{}
		err := database.DB.
			Table("reports").
			Select("course_name, week_of_reporting, actual_students, total_registered_students, feedback").
			Where("lecturer_id = ?", userID).
			Order("week_of_reporting DESC").
			Scan(&rows).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rows)

	case models.RolePrincipalLecturer, models.RoleProgramLeader:
		rows := []LeaderMonitoringRow{}
		err := database.DB.
			Table("reports").
			Select("reports.course_name, reports.week_of_reporting, reports.actual_students, reports.total_registered_students, reports.lecturer_name, reports.feedback, ratings.rating").
			Joins("LEFT JOIN ratings ON ratings.report_id = reports.id").
			Order("reports.week_of_reporting DESC").
			Scan(&rows).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rows)

	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}
}
