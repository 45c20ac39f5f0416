package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the outbound email contract
type EmailService interface {
	SendContactForm(fromName, fromEmail, subject, message string) error
	SendNewsletterConfirmation(toEmail string) error
}

// SMTPConfig holds configuration for the SMTP relay
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	// ContactRecipient receives contact-form submissions
	ContactRecipient string
}

// SMTPEmailService implements EmailService over a plain SMTP relay
type SMTPEmailService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &SMTPEmailService{config: config, logger: logger}
}

// SendContactForm forwards a contact-form submission to the configured recipient
func (s *SMTPEmailService) SendContactForm(fromName, fromEmail, subject, message string) error {
	if subject == "" {
		subject = "New contact form submission"
	}

	body := fmt.Sprintf("From: %s <%s>\r\n\r\n%s", fromName, fromEmail, message)
	return s.send(s.config.ContactRecipient, subject, body)
}

// SendNewsletterConfirmation acknowledges a newsletter subscription
func (s *SMTPEmailService) SendNewsletterConfirmation(toEmail string) error {
	body := "Thanks for subscribing to the Hexadigitall newsletter. You can unsubscribe at any time from the link in any issue."
	return s.send(toEmail, "You're subscribed", body)
}

func (s *SMTPEmailService) send(to, subject, body string) error {
	// Without credentials, log instead of sending. Keeps development
	// environments working with no SMTP relay configured.
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, to, subject, body)

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}
