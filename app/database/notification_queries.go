package database

import (
	"database/sql"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

// CreateNotification persists a notification for a student.
func CreateNotification(db *sql.DB, n *models.Notification) error {
	query := `INSERT INTO notifications (student_id, type, title, message)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, read, date`
	return db.QueryRow(query, n.StudentID, string(n.Type), n.Title, n.Message).
		Scan(&n.ID, &n.Read, &n.Date)
}

// GetNotificationsByStudent retrieves a student's stored notifications,
// newest first.
func GetNotificationsByStudent(db *sql.DB, studentID string) ([]*models.Notification, error) {
	query := `SELECT id, student_id, type, title, message, read, date
	          FROM notifications
	          WHERE student_id = $1
	          ORDER BY date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		var nType string
		if err := rows.Scan(&n.ID, &n.StudentID, &nType, &n.Title, &n.Message, &n.Read, &n.Date); err != nil {
			return nil, err
		}
		n.Type = models.NotificationType(nType)
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead marks one of the student's notifications read.
// Returns sql.ErrNoRows if the notification does not exist or belongs to
// another student.
func MarkNotificationRead(db *sql.DB, id, studentID string) (*models.Notification, error) {
	query := `UPDATE notifications SET read = TRUE
	          WHERE id = $1 AND student_id = $2
	          RETURNING id, student_id, type, title, message, read, date`

	n := &models.Notification{}
	var nType string
	err := db.QueryRow(query, id, studentID).
		Scan(&n.ID, &n.StudentID, &nType, &n.Title, &n.Message, &n.Read, &n.Date)
	if err != nil {
		return nil, err
	}
	n.Type = models.NotificationType(nType)
	return n, nil
}

// MarkAllNotificationsRead marks every stored notification of a student read.
func MarkAllNotificationsRead(db *sql.DB, studentID string) error {
	_, err := db.Exec(`UPDATE notifications SET read = TRUE WHERE student_id = $1`, studentID)
	return err
}

// DeleteNotification removes one of the student's notifications. Returns
// sql.ErrNoRows if nothing matched.
func DeleteNotification(db *sql.DB, id, studentID string) error {
	res, err := db.Exec(`DELETE FROM notifications WHERE id = $1 AND student_id = $2`, id, studentID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
