package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
	"github.com/thabisomokotjo/luct_reporting/notifications"
	"github.com/thabisomokotjo/luct_reporting/utils"
)

type SubmitReportRequest struct {
	FacultyName     string  `json:"faculty_name" validate:"required"`
	ClassName       string  `json:"class_name" validate:"required"`
	WeekOfReporting string  `json:"week_of_reporting" validate:"required"`
	DateOfLecture   string  `json:"date_of_lecture" validate:"required"`
	CourseName      string  `json:"course_name" validate:"required"`
	CourseCode      *string `json:"course_code"`
	LecturerName    *string `json:"lecturer_name"`

	// Submitted by HTML forms as either numbers or numeric strings.
	ActualStudents          interface{} `json:"actual_students"`
	TotalRegisteredStudents interface{} `json:"total_registered_students"`

	Venue            *string `json:"venue"`
	ScheduledTime    *string `json:"scheduled_time"`
	TopicTaught      *string `json:"topic_taught"`
	LearningOutcomes *string `json:"learning_outcomes"`
	Recommendations  *string `json:"recommendations"`
}

// ReportWithRating is the read shape for report listings: every report
// column plus the rating column off the LEFT JOIN.
type ReportWithRating struct {
	models.Report `gorm:"embedded"`
	Rating        *int `json:"rating"`
}

func coerceCount(v interface{}) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case string:
		if n == "" {
			return 0, nil
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func SubmitReport(c *fiber.Ctx) error {
	userID, _ := utils.CurrentUser(c)

	var req SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	actual, err := coerceCount(req.ActualStudents)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "actual_students and total_registered_students must be numbers"})
	}
	total, err := coerceCount(req.TotalRegisteredStudents)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "actual_students and total_registered_students must be numbers"})
	}

	report := models.Report{
		FacultyName:             req.FacultyName,
		ClassName:               req.ClassName,
		WeekOfReporting:         req.WeekOfReporting,
		DateOfLecture:           req.DateOfLecture,
		CourseName:              req.CourseName,
		CourseCode:              req.CourseCode,
		LecturerName:            req.LecturerName,
		ActualStudents:          actual,
		TotalRegisteredStudents: total,
		Venue:                   req.Venue,
		ScheduledTime:           req.ScheduledTime,
		TopicTaught:             req.TopicTaught,
		LearningOutcomes:        req.LearningOutcomes,
		Recommendations:         req.Recommendations,
		// Ownership always comes from the token, never the body.
		LecturerID: userID,
	}
	if err := database.DB.Create(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Report submitted successfully!",
		"reportId": report.ID.String(),
	})
}

func reportListingQuery() *gorm.DB {
	return database.DB.
		Table("reports").
		Select("reports.*, ratings.rating").
		Joins("LEFT JOIN ratings ON ratings.report_id = reports.id").
		Order("reports.created_at DESC")
}

func ViewReports(c *fiber.Ctx) error {
	rows := []ReportWithRating{}
	if err := reportListingQuery().Scan(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

func SearchReports(c *fiber.Ctx) error {
	pattern := "%" + strings.ToLower(c.Query("query")) + "%"

	rows := []ReportWithRating{}
	err := reportListingQuery().
		Where("LOWER(reports.course_name) LIKE ? OR LOWER(reports.week_of_reporting) LIKE ?", pattern, pattern).
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

func AddFeedback(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report id"})
	}

	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing feedback"})
	}

	result := database.DB.Model(&models.Report{}).
		Where("id = ?", reportID).
		Update("feedback", req.Feedback)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	go notifyLecturerOfFeedback(reportID)

	return c.JSON(fiber.Map{"message": "Feedback added successfully!"})
}

func notifyLecturerOfFeedback(reportID uuid.UUID) {
	var report models.Report
	if err := database.DB.First(&report, "id = ?", reportID).Error; err != nil {
		return
	}

	var lecturer models.User
	if err := database.DB.First(&lecturer, "id = ?", report.LecturerID).Error; err != nil {
		return
	}
	if lecturer.Email == nil {
		return
	}

	name := lecturer.Username
	if lecturer.Name != nil {
		name = *lecturer.Name
	}
	notifications.SendEmail(
		name,
		*lecturer.Email,
		"New feedback on your lecture report",
		fmt.Sprintf("<h1>Feedback Received</h1><p>Your report for %s (%s) has new feedback from the principal lecturer.</p>",
			report.CourseName, report.WeekOfReporting),
	)
}
