package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
	"github.com/adlavijwal/innovbridge/internal/pkg/logger"
	"github.com/adlavijwal/innovbridge/internal/pkg/validation"
)

// ContactStore is the contact submission persistence the service needs.
type ContactStore interface {
	Insert(ctx context.Context, sub *models.ContactSubmission) error
}

// ContactService stores contact form entries and dispatches the two
// follow-up emails. Both sends are best-effort: the submission is already
// stored and the team will see it regardless.
type ContactService struct {
	contacts     ContactStore
	mailer       email.Sender
	contactInbox string
	logger       zerolog.Logger
}

// NewContactService creates a new ContactService. contactInbox is the team
// address that receives the notification copy.
func NewContactService(contacts ContactStore, mailer email.Sender, contactInbox string) *ContactService {
	return &ContactService{
		contacts:     contacts,
		mailer:       mailer,
		contactInbox: contactInbox,
		logger:       logger.WithComponent("contact_service"),
	}
}

// Submit validates and stores a contact submission, then sends the sender a
// confirmation and the team a notification.
func (s *ContactService) Submit(ctx context.Context, sub *models.ContactSubmission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(strings.ToLower(sub.Email))
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)

	fields := map[string]string{}
	if sub.Name == "" {
		fields["name"] = "Name is required"
	}
	if sub.Email == "" {
		fields["email"] = "Email is required"
	} else if !validation.IsValidEmail(sub.Email) {
		fields["email"] = "Please enter a valid email"
	}
	if sub.Subject == "" {
		fields["subject"] = "Subject is required"
	} else if len(sub.Subject) > validation.SubjectMaxLength {
		fields["subject"] = fmt.Sprintf("Subject must be at most %d characters", validation.SubjectMaxLength)
	}
	if sub.Message == "" {
		fields["message"] = "Message is required"
	} else if len(sub.Message) > validation.MessageMaxLength {
		fields["message"] = fmt.Sprintf("Message must be at most %d characters", validation.MessageMaxLength)
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	if err := s.contacts.Insert(ctx, sub); err != nil {
		return err
	}

	data := map[string]string{
		"name":    sub.Name,
		"email":   sub.Email,
		"subject": sub.Subject,
		"message": sub.Message,
	}

	if err := s.mailer.Send(ctx, email.Message{
		Type: email.TemplateContactConfirmation,
		To:   sub.Email,
		Data: data,
	}); err != nil {
		s.logger.Warn().Err(err).Str("email", sub.Email).Msg("Contact confirmation email failed")
	}

	if s.contactInbox != "" {
		if err := s.mailer.Send(ctx, email.Message{
			Type: email.TemplateContactNotification,
			To:   s.contactInbox,
			Data: data,
		}); err != nil {
			s.logger.Warn().Err(err).Msg("Contact notification email failed")
		}
	}

	return nil
}
