package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
	"github.com/thabisomokotjo/luct_reporting/utils"
)

type RateReportRequest struct {
	ReportID string `json:"report_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
}

// RateReport records one user's score for one report. Re-rating must end
// up as a single row, so the write is an ON CONFLICT upsert on the
// (report_id, user_id) unique index rather than a read-then-insert.
func RateReport(c *fiber.Ctx) error {
	userID, _ := utils.CurrentUser(c)

	var req RateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be 1-5 and report_id is required"})
	}

	reportID, err := uuid.Parse(req.ReportID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report id"})
	}

	var report models.Report
	if err := database.DB.First(&report, "id = ?", reportID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	rating := models.Rating{
		ReportID: reportID,
		Rating:   req.Rating,
		UserID:   userID,
	}
	err = database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "report_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(&rating).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Rating saved successfully!"})
}
