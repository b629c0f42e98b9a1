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

// SubscriberStore is the subscription persistence the service needs.
type SubscriberStore interface {
	InsertNewsletterSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error
	InsertCommunityMember(ctx context.Context, member *models.CommunityMember) error
	DeleteCommunityMember(ctx context.Context, email string) error
}

// SubscriptionService handles newsletter and community signups.
//
// The two flows treat welcome email failure differently on purpose: a
// newsletter subscription stands even if the welcome mail bounces, while a
// community join is undone so the member can retry and still get their
// onboarding mail.
type SubscriptionService struct {
	subscribers SubscriberStore
	mailer      email.Sender
	logger      zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(subscribers SubscriberStore, mailer email.Sender) *SubscriptionService {
	return &SubscriptionService{
		subscribers: subscribers,
		mailer:      mailer,
		logger:      logger.WithComponent("subscription_service"),
	}
}

// SubscribeNewsletter records a newsletter signup and sends the welcome
// email. emailSent reports delivery; a failed delivery does not undo the
// subscription.
func (s *SubscriptionService) SubscribeNewsletter(ctx context.Context, emailAddr, frequency string) (emailSent bool, err error) {
	emailAddr = strings.TrimSpace(strings.ToLower(emailAddr))
	if fields := validateSignup(emailAddr, frequency, true); len(fields) > 0 {
		return false, apperrors.NewValidationError(fields)
	}

	sub := &models.NewsletterSubscriber{
		Email:     emailAddr,
		Frequency: frequency,
		Active:    true,
	}
	if err := s.subscribers.InsertNewsletterSubscriber(ctx, sub); err != nil {
		return false, err
	}

	if err := s.mailer.Send(ctx, email.Message{
		Type: email.TemplateNewsletterWelcome,
		To:   emailAddr,
	}); err != nil {
		s.logger.Warn().Err(err).Str("email", emailAddr).Msg("Newsletter welcome email failed")
		return false, nil
	}

	return true, nil
}

// JoinCommunity records a community signup and sends the welcome email. If
// delivery fails the signup is rolled back and ErrEmailSendFailed returned.
func (s *SubscriptionService) JoinCommunity(ctx context.Context, emailAddr string) error {
	emailAddr = strings.TrimSpace(strings.ToLower(emailAddr))
	if fields := validateSignup(emailAddr, "", false); len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	member := &models.CommunityMember{
		Email:     emailAddr,
		Frequency: "weekly",
		Active:    true,
	}
	if err := s.subscribers.InsertCommunityMember(ctx, member); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, email.Message{
		Type: email.TemplateCommunityWelcome,
		To:   emailAddr,
	}); err != nil {
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Community welcome email failed, rolling back join")
		if delErr := s.subscribers.DeleteCommunityMember(ctx, emailAddr); delErr != nil {
			s.logger.Error().Err(delErr).Str("email", emailAddr).Msg("Community join rollback failed")
		}
		return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
	}

	return nil
}

func validateSignup(emailAddr, frequency string, checkFrequency bool) map[string]string {
	fields := map[string]string{}
	if emailAddr == "" {
		fields["email"] = "Email is required"
	} else if !validation.IsValidEmail(emailAddr) {
		fields["email"] = "Please enter a valid email"
	}
	if checkFrequency && !validation.IsValidFrequency(frequency) {
		fields["frequency"] = "Frequency must be daily or weekly"
	}
	return fields
}
