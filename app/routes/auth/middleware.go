package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the student's JWT and sets the student context.
// The token is read from the Authorization header or the jwt_token cookie.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		tokenString = strings.TrimPrefix(auth, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Cookies("jwt_token")
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"message": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid token"})
	}

	c.Locals("student_id", claims.StudentID)
	c.Locals("registration_number", claims.RegistrationNumber)

	return c.Next()
}

// StudentID returns the authenticated student's id from the request context.
func StudentID(c *fiber.Ctx) string {
	if id, ok := c.Locals("student_id").(string); ok {
		return id
	}
	return ""
}
