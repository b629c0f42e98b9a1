package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/auth"
)

func newTestAdmin(t *testing.T, mailer *fakeMailer) *AdminService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAdminService(jwtService, "admin@innovbridge.tech", string(hash), mailer)
}

func TestAdminLogin(t *testing.T) {
	svc := newTestAdmin(t, &fakeMailer{})

	token, expiresIn, err := svc.Login(context.Background(), "Admin@InnovBridge.tech", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || expiresIn != 3600 {
		t.Fatalf("unexpected token/expiry: %q %d", token, expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token rejected: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected admin role, got %s", claims.Role)
	}
}

func TestAdminLoginRejected(t *testing.T) {
	svc := newTestAdmin(t, &fakeMailer{})

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@innovbridge.tech", "nope"},
		{"wrong email", "intruder@example.com", "s3cret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tc.email, tc.password)
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAdminSendEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestAdmin(t, mailer)

	err := svc.SendEmail(context.Background(), "newsletter_welcome", "user@example.com", nil)
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mailer.sent))
	}
}

func TestAdminSendEmailRejectsBadRecipient(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestAdmin(t, mailer)

	err := svc.SendEmail(context.Background(), "newsletter_welcome", "not-an-address", nil)
	if !errors.Is(err, apperrors.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatal("nothing should be sent to an invalid recipient")
	}
}

func TestAdminSendEmailUnknownTemplate(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestAdmin(t, mailer)

	err := svc.SendEmail(context.Background(), "spam_blast", "user@example.com", nil)
	if !errors.Is(err, apperrors.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatal("nothing should be sent for an unknown template")
	}
}
