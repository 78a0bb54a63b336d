package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Send delivers a plain-text email using the SMTP transport configured via
// EMAIL_* environment variables. Callers treat delivery as fire-and-forget.
func Send(to, subject, body string) error {
	host := os.Getenv("EMAIL_HOST")
	port := os.Getenv("EMAIL_PORT")
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASSWORD")
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = user
	}
	if host == "" || port == "" {
		return fmt.Errorf("email transport not configured")
	}

	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body)

	auth := smtp.PlainAuth("", user, pass, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}
