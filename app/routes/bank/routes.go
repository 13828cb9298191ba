package bank

import (
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupBankRoutes sets up the bank, fee-structure and deadline reference
// endpoints.
func SetupBankRoutes(app *fiber.App) {
	bankAPI := app.Group("/api/bank")
	bankAPI.Use(auth.AuthMiddleware)
	bankAPI.Get("/", GetBankInfoAPI)
	bankAPI.Put("/", UpdateBankInfoAPI)

	feeAPI := app.Group("/api/fee")
	feeAPI.Use(auth.AuthMiddleware)
	feeAPI.Get("/", GetFeeStructureAPI)
	feeAPI.Put("/", UpdateFeeStructureAPI)

	deadlineAPI := app.Group("/api/deadline")
	deadlineAPI.Use(auth.AuthMiddleware)
	deadlineAPI.Get("/", GetDeadlineAPI)
	deadlineAPI.Put("/", CreateDeadlineAPI)
}
