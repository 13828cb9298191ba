package dashboard

import (
	"database/sql"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetFeeStatusAPI returns the logged-in student's fee-status aggregate. The
// aggregate is a materialized view refreshed on a schedule; readers see
// totals as of the last reconciliation pass.
func GetFeeStatusAPI(c *fiber.Ctx) error {
	status, err := database.GetFeeStatusByStudent(config.GetDB(), auth.StudentID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Student data not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(status)
}

// RefreshDashboardAPI triggers a full reconciliation pass immediately instead
// of waiting for the next scheduled run.
func RefreshDashboardAPI(c *fiber.Ctx, reconciler *services.Reconciler) error {
	if err := reconciler.Run(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Dashboard data updated successfully"})
}
