package utils

import (
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// SendNotificationEmail delivers a notification to a user's email address.
// Delivery is best effort; failures are logged, never surfaced.
func SendNotificationEmail(email, title, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send notification email to %s: %v", email, err)
		return
	}

	log.Printf("Notification email sent to %s", email)
}
