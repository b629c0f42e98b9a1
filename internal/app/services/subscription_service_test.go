package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
)

func TestSubscribeNewsletter(t *testing.T) {
	store := newFakeSubscriberStore()
	mailer := &fakeMailer{}
	svc := NewSubscriptionService(store, mailer)

	emailSent, err := svc.SubscribeNewsletter(context.Background(), "User@Example.com", "weekly")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if !emailSent {
		t.Fatal("expected welcome email to be sent")
	}
	if !store.newsletter["user@example.com"] {
		t.Fatal("expected email to be stored lowercased")
	}
	if mailer.sentOfType(email.TemplateNewsletterWelcome) != 1 {
		t.Fatalf("expected 1 welcome email, got %d", len(mailer.sent))
	}
}

func TestSubscribeNewsletterDuplicate(t *testing.T) {
	store := newFakeSubscriberStore()
	svc := NewSubscriptionService(store, &fakeMailer{})

	if _, err := svc.SubscribeNewsletter(context.Background(), "dup@example.com", "daily"); err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}

	_, err := svc.SubscribeNewsletter(context.Background(), "dup@example.com", "daily")
	if !errors.Is(err, apperrors.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestSubscribeNewsletterEmailFailureKeepsSubscription(t *testing.T) {
	store := newFakeSubscriberStore()
	mailer := &fakeMailer{failAll: true}
	svc := NewSubscriptionService(store, mailer)

	emailSent, err := svc.SubscribeNewsletter(context.Background(), "user@example.com", "weekly")
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if emailSent {
		t.Fatal("expected emailSent=false when delivery fails")
	}
	if !store.newsletter["user@example.com"] {
		t.Fatal("subscription should stand despite email failure")
	}
}

func TestSubscribeNewsletterValidation(t *testing.T) {
	svc := NewSubscriptionService(newFakeSubscriberStore(), &fakeMailer{})

	cases := []struct {
		name      string
		email     string
		frequency string
	}{
		{"missing email", "", "weekly"},
		{"bad email", "not-an-email", "weekly"},
		{"bad frequency", "user@example.com", "monthly"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubscribeNewsletter(context.Background(), tc.email, tc.frequency)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
		})
	}
}

func TestJoinCommunity(t *testing.T) {
	store := newFakeSubscriberStore()
	mailer := &fakeMailer{}
	svc := NewSubscriptionService(store, mailer)

	if err := svc.JoinCommunity(context.Background(), "member@example.com"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if !store.community["member@example.com"] {
		t.Fatal("expected member to be stored")
	}
	if mailer.sentOfType(email.TemplateCommunityWelcome) != 1 {
		t.Fatal("expected community welcome email")
	}
}

func TestJoinCommunityEmailFailureRollsBack(t *testing.T) {
	store := newFakeSubscriberStore()
	mailer := &fakeMailer{failAll: true}
	svc := NewSubscriptionService(store, mailer)

	err := svc.JoinCommunity(context.Background(), "member@example.com")
	if !errors.Is(err, apperrors.ErrEmailSendFailed) {
		t.Fatalf("expected ErrEmailSendFailed, got %v", err)
	}
	if store.community["member@example.com"] {
		t.Fatal("expected join to be rolled back")
	}
	if len(store.deleted) != 1 || store.deleted[0] != "member@example.com" {
		t.Fatalf("expected compensating delete, got %v", store.deleted)
	}
}

func TestJoinCommunityDuplicate(t *testing.T) {
	store := newFakeSubscriberStore()
	svc := NewSubscriptionService(store, &fakeMailer{})

	if err := svc.JoinCommunity(context.Background(), "member@example.com"); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	err := svc.JoinCommunity(context.Background(), "member@example.com")
	if !errors.Is(err, apperrors.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}
