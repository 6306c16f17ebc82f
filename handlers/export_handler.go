package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
)

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// reportFields flattens a report into (field, value) pairs in the model's
// declaration order. Absent values come out as "" so the sheet never shows
// nulls.
func reportFields(r models.Report) [][2]string {
	return [][2]string{
		{"id", r.ID.String()},
		{"faculty_name", r.FacultyName},
		{"class_name", r.ClassName},
		{"week_of_reporting", r.WeekOfReporting},
		{"date_of_lecture", r.DateOfLecture},
		{"course_name", r.CourseName},
		{"course_code", strOrEmpty(r.CourseCode)},
		{"lecturer_name", strOrEmpty(r.LecturerName)},
		{"actual_students", fmt.Sprintf("%d", r.ActualStudents)},
		{"total_registered_students", fmt.Sprintf("%d", r.TotalRegisteredStudents)},
		{"venue", strOrEmpty(r.Venue)},
		{"scheduled_time", strOrEmpty(r.ScheduledTime)},
		{"topic_taught", strOrEmpty(r.TopicTaught)},
		{"learning_outcomes", strOrEmpty(r.LearningOutcomes)},
		{"recommendations", strOrEmpty(r.Recommendations)},
		{"lecturer_id", r.LecturerID.String()},
		{"feedback", strOrEmpty(r.Feedback)},
		{"created_at", r.CreatedAt.Format("2006-01-02 15:04:05")},
	}
}

func DownloadReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report id"})
	}

	var report models.Report
	if err := database.DB.First(&report, "id = ?", reportID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	f.SetSheetName("Sheet1", sheet)
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 50)

	f.SetSheetRow(sheet, "A1", &[]interface{}{"Field", "Value"})
	for i, field := range reportFields(report) {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{field[0], field[1]})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate Excel"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.xlsx", report.ID))
	return c.Send(buf.Bytes())
}
