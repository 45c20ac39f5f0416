package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/pkg/email"
)

// ContactService handles contact-form and newsletter submissions
type ContactService struct {
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(emailService email.EmailService, logger zerolog.Logger) *ContactService {
	return &ContactService{emailService: emailService, logger: logger}
}

// SubmitContactForm forwards a contact-form submission by email
func (s *ContactService) SubmitContactForm(_ context.Context, req *dto.ContactFormRequest) error {
	if err := s.emailService.SendContactForm(req.Name, req.Email, req.Subject, req.Message); err != nil {
		return err
	}
	s.logger.Info().Str("email", req.Email).Msg("Contact form submitted")
	return nil
}

// SubscribeNewsletter confirms a newsletter subscription by email
func (s *ContactService) SubscribeNewsletter(_ context.Context, req *dto.NewsletterRequest) error {
	if err := s.emailService.SendNewsletterConfirmation(req.Email); err != nil {
		return err
	}
	s.logger.Info().Str("email", req.Email).Msg("Newsletter subscription received")
	return nil
}
