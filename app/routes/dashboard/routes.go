package dashboard

import (
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the fee-status read and the manual
// reconciliation trigger under /api/dashboard.
func SetupDashboardRoutes(app *fiber.App, reconciler *services.Reconciler) {
	dash := app.Group("/api/dashboard")
	dash.Use(auth.AuthMiddleware)

	dash.Get("/", GetFeeStatusAPI)
	dash.Post("/refresh", func(c *fiber.Ctx) error {
		return RefreshDashboardAPI(c, reconciler)
	})
}
