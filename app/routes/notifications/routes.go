package notifications

import (
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up notification listing and management under
// /api/notifications.
func SetupNotificationRoutes(app *fiber.App) {
	notifications := app.Group("/api/notifications")
	notifications.Use(auth.AuthMiddleware)

	notifications.Get("/", GetNotificationsAPI)
	notifications.Put("/read-all", MarkAllReadAPI)
	notifications.Put("/:id/read", MarkReadAPI)
	notifications.Delete("/:id", DeleteNotificationAPI)
}
