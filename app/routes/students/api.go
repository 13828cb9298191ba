package students

import (
	"database/sql"
	"time"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		RegistrationNumber string `json:"registration_number"`
		Password           string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.RegistrationNumber == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Registration number and password are required"})
	}

	student, err := database.GetStudentByRegistrationNumber(config.GetDB(), req.RegistrationNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"message": "Invalid registration number or password"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	if !auth.CheckPasswordHash(req.Password, student.Password) {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid registration number or password"})
	}

	token, err := auth.GenerateJWT(student.ID, student.RegistrationNumber)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(2 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"student": student,
	})
}

func GetProfileAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), auth.StudentID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(student)
}

// UpdateProfileAPI updates the student-editable fields only. Registration
// number and fee plan are immutable through this path.
func UpdateProfileAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request"})
	}

	student, err := database.UpdateStudentProfile(config.GetDB(), auth.StudentID(c), req.FullName, req.Email, req.Mobile)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Error updating profile"})
	}

	return c.JSON(student)
}
