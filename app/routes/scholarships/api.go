package scholarships

import (
	"database/sql"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetScholarshipsAPI(c *fiber.Ctx) error {
	scholarships, err := database.GetScholarshipsByStudent(config.GetDB(), auth.StudentID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(scholarships)
}

func CreateScholarshipAPI(c *fiber.Ctx) error {
	type ScholarshipRequest struct {
		StudentName          string  `json:"student_name" validate:"required"`
		RegistrationNumber   string  `json:"registration_number" validate:"required"`
		Semester             string  `json:"sem"`
		BankName             string  `json:"bank_name"`
		AccountNumber        string  `json:"account_number"`
		IFSCCode             string  `json:"ifsc_code"`
		Branch               string  `json:"branch"`
		Amount               float64 `json:"amount" validate:"required,gt=0"`
		ConcessionPercentage float64 `json:"concession_percentage" validate:"required,gte=0,lte=100"`
	}

	var req ScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	scholarship := &models.Scholarship{
		StudentID:            auth.StudentID(c),
		StudentName:          req.StudentName,
		RegistrationNumber:   req.RegistrationNumber,
		Semester:             req.Semester,
		BankName:             req.BankName,
		AccountNumber:        req.AccountNumber,
		IFSCCode:             req.IFSCCode,
		Branch:               req.Branch,
		Amount:               req.Amount,
		ConcessionPercentage: req.ConcessionPercentage,
	}

	if err := database.CreateScholarship(config.GetDB(), scholarship); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.Status(201).JSON(scholarship)
}

func UpdateScholarshipStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status models.ScholarshipStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	scholarship, err := database.UpdateScholarshipStatus(config.GetDB(), c.Params("id"), req.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Scholarship not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(scholarship)
}

func DeleteScholarshipAPI(c *fiber.Ctx) error {
	err := database.DeleteScholarship(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Scholarship not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Scholarship deleted successfully"})
}
