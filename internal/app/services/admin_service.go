package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/auth"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
	"github.com/adlavijwal/innovbridge/internal/pkg/logger"
	"github.com/adlavijwal/innovbridge/internal/pkg/validation"
)

// AdminService handles the single-operator admin surface: login against the
// configured credentials and ad hoc templated email sends.
type AdminService struct {
	jwtService   *auth.JWTService
	adminEmail   string
	passwordHash string
	mailer       email.Sender
	logger       zerolog.Logger
}

// NewAdminService creates a new AdminService. passwordHash is a bcrypt hash
// from configuration; there is no admin user table.
func NewAdminService(jwtService *auth.JWTService, adminEmail, passwordHash string, mailer email.Sender) *AdminService {
	return &AdminService{
		jwtService:   jwtService,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		mailer:       mailer,
		logger:       logger.WithComponent("admin_service"),
	}
}

// Login checks credentials and issues an access token.
func (s *AdminService) Login(ctx context.Context, emailAddr, password string) (token string, expiresIn int, err error) {
	emailAddr = strings.TrimSpace(strings.ToLower(emailAddr))

	emailMatch := subtle.ConstantTimeCompare([]byte(emailAddr), []byte(strings.ToLower(s.adminEmail))) == 1
	hashErr := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
	if !emailMatch || hashErr != nil {
		s.logger.Warn().Str("email", emailAddr).Msg("Admin login rejected")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err = s.jwtService.GenerateToken(emailAddr)
	if err != nil {
		return "", 0, fmt.Errorf("generating admin token: %w", err)
	}

	s.logger.Info().Str("email", emailAddr).Msg("Admin logged in")
	return token, expiresIn, nil
}

// ValidateToken validates an admin access token.
func (s *AdminService) ValidateToken(token string) (*auth.Claims, error) {
	return s.jwtService.ValidateToken(token)
}

// SendEmail dispatches one templated email on behalf of the operator. The
// template must be one of the known template names and the recipient a
// deliverable address.
func (s *AdminService) SendEmail(ctx context.Context, template, to string, data map[string]string) error {
	if !validation.IsValidEmail(strings.TrimSpace(to)) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, to)
	}

	msg := email.Message{
		Type: email.TemplateType(template),
		To:   to,
		Data: data,
	}

	// Render up front so an unknown template fails before any SMTP work.
	if _, _, err := email.RenderTemplate(msg.Type, msg.Data); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
	}

	s.logger.Info().Str("template", template).Str("to", to).Msg("Admin email dispatched")
	return nil
}
