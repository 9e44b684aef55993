package mailer

import (
	"fmt"

	"medtrack/config"

	"gopkg.in/gomail.v2"
)

// Mailer defines the fire-and-forget OTP delivery capability.
type Mailer interface {
	SendOTP(to, otp string) error
}

// SMTPMailer is the production implementation over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from the application config.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// SendOTP mails the code to the user. No timeout is applied: a hung SMTP
// call blocks only the request that triggered it.
func (m *SMTPMailer) SendOTP(to, otp string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your OTP code")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP is %s", otp))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send OTP mail to %s: %w", to, err)
	}
	return nil
}
