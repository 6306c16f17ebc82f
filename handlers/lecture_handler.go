package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
)

type CreateLectureRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	ScheduledAt *string `json:"scheduled_at"`
	ClassID     *string `json:"class_id"`
	CourseID    *string `json:"course_id"`
}

func ListLectures(c *fiber.Ctx) error {
	lectures := []models.Lecture{}
	if err := database.DB.Order("created_at DESC").Find(&lectures).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(lectures)
}

func CreateLecture(c *fiber.Ctx) error {
	var req CreateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing title"})
	}

	lecture := models.Lecture{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.ScheduledAt != nil && *req.ScheduledAt != "" {
		scheduledAt, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "scheduled_at must be RFC3339"})
		}
		lecture.ScheduledAt = &scheduledAt
	}
	if req.ClassID != nil && *req.ClassID != "" {
		classID, err := uuid.Parse(*req.ClassID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class_id"})
		}
		lecture.ClassID = &classID
	}
	if req.CourseID != nil && *req.CourseID != "" {
		courseID, err := uuid.Parse(*req.CourseID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course_id"})
		}
		lecture.CourseID = &courseID
	}

	if err := database.DB.Create(&lecture).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Lecture added successfully!"})
}
