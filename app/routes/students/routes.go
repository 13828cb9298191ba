package students

import (
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up login and profile routes under /api/student.
func SetupStudentRoutes(app *fiber.App) {
	student := app.Group("/api/student")

	student.Post("/login", LoginAPI)

	student.Use(auth.AuthMiddleware)
	student.Get("/me", GetProfileAPI)
	student.Put("/me", UpdateProfileAPI)
}
