package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
)

type CreateClassRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func ListClasses(c *fiber.Ctx) error {
	classes := []models.Class{}
	if err := database.DB.Order("created_at DESC").Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(classes)
}

func CreateClass(c *fiber.Ctx) error {
	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing class name"})
	}

	class := models.Class{Name: req.Name, Description: req.Description}
	if err := database.DB.Create(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Class added successfully!"})
}
