package scholarships

import (
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupScholarshipRoutes sets up scholarship application endpoints under
// /api/scholarships.
func SetupScholarshipRoutes(app *fiber.App) {
	scholarships := app.Group("/api/scholarships")
	scholarships.Use(auth.AuthMiddleware)

	scholarships.Get("/", GetScholarshipsAPI)
	scholarships.Post("/", CreateScholarshipAPI)
	scholarships.Put("/:id/status", UpdateScholarshipStatusAPI)
	scholarships.Delete("/:id", DeleteScholarshipAPI)
}
