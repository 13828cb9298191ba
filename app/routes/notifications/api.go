package notifications

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/config"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// GetNotificationsAPI returns the student's notifications: dynamic ones
// synthesized from the current fee status and deadline, followed by stored
// ones, newest first. Dynamic notifications are never persisted.
func GetNotificationsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := auth.StudentID(c)

	dynamic := []*models.Notification{}

	feeData, err := database.GetFeeStatusByStudent(db, studentID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching notifications"})
	}
	if err == nil && feeData.TotalDue > 0 {
		dynamic = append(dynamic, &models.Notification{
			ID:        fmt.Sprintf("fee-%s", studentID),
			StudentID: studentID,
			Type:      models.NotifyWarning,
			Title:     "Fee Due",
			Message:   fmt.Sprintf("You have ₹%.0f pending.", feeData.TotalDue),
			Date:      time.Now(),
			Dynamic:   true,
		})
	}

	deadline, err := database.GetLatestDeadline(db)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching notifications"})
	}
	if err == nil && deadline.DueDate.After(time.Now()) {
		dynamic = append(dynamic, &models.Notification{
			ID:        fmt.Sprintf("deadline-%s", studentID),
			StudentID: studentID,
			Type:      models.NotifyReminder,
			Title:     "Deadline Reminder",
			Message:   fmt.Sprintf("Fee deadline: %s", deadline.DueDate.Format("Mon Jan 02 2006")),
			Date:      time.Now(),
			Dynamic:   true,
		})
	}

	saved, err := database.GetNotificationsByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching notifications"})
	}

	return c.JSON(append(dynamic, saved...))
}

// MarkReadAPI marks a stored notification read. Dynamic notifications have no
// stored state to update.
func MarkReadAPI(c *fiber.Ctx) error {
	notification, err := database.MarkNotificationRead(config.GetDB(), c.Params("id"), auth.StudentID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Not found or unauthorized"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(notification)
}

func MarkAllReadAPI(c *fiber.Ctx) error {
	if err := database.MarkAllNotificationsRead(config.GetDB(), auth.StudentID(c)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

func DeleteNotificationAPI(c *fiber.Ctx) error {
	err := database.DeleteNotification(config.GetDB(), c.Params("id"), auth.StudentID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"message": "Not found or unauthorized"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Notification deleted"})
}
