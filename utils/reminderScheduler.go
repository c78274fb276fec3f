package utils

import (
	"lms/config"
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ENROLLMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// remindPendingEnrollments mails the admin when enrollments are waiting
// for review.
func remindPendingEnrollments() {
	db := database.Database.Db

	var pending int64
	if err := db.Model(&models.Enrollment{}).Where("status = ?", models.EnrollmentPending).Count(&pending).Error; err != nil {
		logScheduler("Error counting pending enrollments: " + err.Error())
		return
	}

	if pending == 0 {
		return
	}

	adminEmail := config.AppConfig.AdminEmail
	if adminEmail == "" {
		logScheduler("ADMIN_EMAIL not configured, skipping reminder")
		return
	}

	logScheduler("Sending pending enrollments reminder")
	SendPendingEnrollmentsReminder(adminEmail, pending)
}

// StartReminderScheduler runs the pending-enrollment reminder every day
// at 08:00 server time.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 8 * * *", remindPendingEnrollments); err != nil {
		log.Fatalf("Failed to register reminder job: %v", err)
	}

	c.Start()
	logScheduler("Reminder scheduler started")
	return c
}
