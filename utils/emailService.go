package utils

import (
	"fmt"
	"lms/config"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML mail through the configured SMTP relay.
func SendEmail(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig

	if cfg.EmailSender == "" {
		log.Println("Email sender not configured, skipping mail:", subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Noble Guards Academy <%s>\r\n", cfg.EmailSender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", cfg.EmailSender, cfg.Password, cfg.SMTPHost)

	err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.EmailSender, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email %q: %v", subject, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A2238; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2238; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>NOBLE GUARDS ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Noble Guards Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentDecisionEmail notifies a student that an admin reviewed
// their enrollment. Failures are logged, never surfaced to the request.
func SendEnrollmentDecisionEmail(email, name, courseTitle, status string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your enrollment for <strong>%s</strong> has been reviewed.</p>
		<div class="info-box">Status: <strong>%s</strong></div>
		<p>Log in to your dashboard for details.</p>`, name, courseTitle, strings.ToUpper(status))

	if err := SendEmail([]string{email}, "Enrollment "+status, getEmailTemplate("Enrollment Update", body)); err != nil {
		log.Printf("Failed to send enrollment decision email to %s: %v", email, err)
	}
}

// SendSubscriberWelcomeEmail greets a new newsletter subscriber.
func SendSubscriberWelcomeEmail(email string) {
	body := `
		<p>Thank you for subscribing to our newsletter!</p>
		<p>You will now receive updates about new courses and events.</p>`

	if err := SendEmail([]string{email}, "Welcome to our newsletter", getEmailTemplate("Welcome!", body)); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// SendPendingEnrollmentsReminder tells the admin how many enrollments are
// waiting for review. Used by the daily scheduler.
func SendPendingEnrollmentsReminder(adminEmail string, count int64) {
	body := fmt.Sprintf(`
		<p>There are <strong>%d</strong> enrollment requests waiting for review.</p>
		<p>Please log in to the admin dashboard to approve or reject them.</p>`, count)

	if err := SendEmail([]string{adminEmail}, "Pending enrollments reminder", getEmailTemplate("Pending Enrollments", body)); err != nil {
		log.Printf("Failed to send pending enrollments reminder: %v", err)
	}
}
