package payments

import (
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up payment submission and listing under
// /api/payments.
func SetupPaymentRoutes(app *fiber.App, intake *services.PaymentIntake) {
	payments := app.Group("/api/payments")
	payments.Use(auth.AuthMiddleware)

	payments.Post("/", func(c *fiber.Ctx) error {
		return SubmitPaymentAPI(c, intake)
	})
	payments.Get("/", GetPaymentsAPI)
}
