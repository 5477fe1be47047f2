package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	if from == "" {
		from = "AILO <hello@ailoapp.com>"
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendBookingConfirmation(to, name string) error {
	return s.send(to,
		"Your AILO Call is Confirmed",
		"booking_confirmation.html",
		BookingEmailData{Name: name},
	)
}

func (s *EmailSender) SendWaitlistConfirmation(to, city string) error {
	return s.send(to,
		"You're on the AILO Waitlist",
		"waitlist_confirmation.html",
		WaitlistEmailData{City: city},
	)
}

func (s *EmailSender) SendNewsletterWelcome(to string) error {
	return s.send(to,
		"Welcome to AILO Weekly Insights",
		"newsletter_welcome.html",
		NewsletterEmailData{},
	)
}

func (s *EmailSender) send(to, subject, templateName string, data interface{}) error {
	tmplPath := filepath.Join("templates", templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}
