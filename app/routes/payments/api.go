package payments

import (
	"errors"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SubmitPaymentAPI accepts a payment submission for the logged-in student.
// Duplicate UTR numbers and transaction ids are rejected before persistence.
func SubmitPaymentAPI(c *fiber.Ctx, intake *services.PaymentIntake) error {
	var sub services.PaymentSubmission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if err := validate.Struct(&sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	payment, err := intake.Submit(auth.StudentID(c), &sub)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUTR):
			return c.Status(400).JSON(fiber.Map{"message": "Duplicate UTR number"})
		case errors.Is(err, services.ErrDuplicateTransactionID):
			return c.Status(400).JSON(fiber.Map{"message": "Duplicate Transaction ID"})
		case errors.Is(err, services.ErrInvalidMethod):
			return c.Status(400).JSON(fiber.Map{"message": "Invalid payment method"})
		}
		return c.Status(500).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(201).JSON(payment)
}

// GetPaymentsAPI lists the logged-in student's payments, newest first.
func GetPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetPaymentsByStudent(config.GetDB(), auth.StudentID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}
