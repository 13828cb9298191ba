package bank

import (
	"database/sql"
	"time"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetBankInfoAPI(c *fiber.Ctx) error {
	bank, err := database.GetBankInfo(config.GetDB())
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Bank info not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(bank)
}

func UpdateBankInfoAPI(c *fiber.Ctx) error {
	var bank models.Bank
	if err := c.BodyParser(&bank); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	if err := database.UpsertBankInfo(config.GetDB(), &bank); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error updating bank info"})
	}
	return c.JSON(bank)
}

func GetFeeStructureAPI(c *fiber.Ctx) error {
	fee, err := database.GetFeeStructure(config.GetDB())
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Fee info not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fee)
}

func UpdateFeeStructureAPI(c *fiber.Ctx) error {
	var fee models.FeeStructure
	if err := c.BodyParser(&fee); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	if err := database.UpsertFeeStructure(config.GetDB(), &fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error updating fee info"})
	}
	return c.JSON(fee)
}

func GetDeadlineAPI(c *fiber.Ctx) error {
	deadline, err := database.GetLatestDeadline(config.GetDB())
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "No deadline set"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(deadline)
}

func CreateDeadlineAPI(c *fiber.Ctx) error {
	type DeadlineRequest struct {
		DueDate     time.Time `json:"due_date"`
		Description string    `json:"description"`
	}

	var req DeadlineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.DueDate.IsZero() {
		return c.Status(400).JSON(fiber.Map{"message": "Due date is required"})
	}

	deadline := &models.Deadline{DueDate: req.DueDate, Description: req.Description}
	if err := database.CreateDeadline(config.GetDB(), deadline); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error saving deadline"})
	}
	return c.Status(201).JSON(deadline)
}
