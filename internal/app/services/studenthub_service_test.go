package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
)

func newTestStudentHub() (*StudentHubService, *fakeRequestStore, *fakeSessionStore, *fakeCheckoutProvider, *fakeMailer) {
	requests := newFakeRequestStore()
	sessions := newFakeSessionStore()
	provider := newFakeCheckoutProvider()
	mailer := &fakeMailer{}
	svc := NewStudentHubService(requests, sessions, provider, mailer, 200, "usd")
	return svc, requests, sessions, provider, mailer
}

func validResumeForm() map[string]string {
	return map[string]string{
		"name":  "Asha Kumar",
		"role":  "Backend Engineer",
		"email": "asha@example.com",
	}
}

func TestOpenSession(t *testing.T) {
	svc, _, sessions, _, _ := newTestStudentHub()

	session, err := svc.OpenSession(context.Background(), models.RequestTypeResume)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if session.State != models.WizardEditing {
		t.Fatalf("expected editing state, got %s", session.State)
	}
	if _, err := sessions.Get(context.Background(), session.ID); err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
}

func TestOpenSessionUnknownKind(t *testing.T) {
	svc, _, _, _, _ := newTestStudentHub()

	_, err := svc.OpenSession(context.Background(), models.RequestType("thesis"))
	if !errors.Is(err, apperrors.ErrInvalidRequestType) {
		t.Fatalf("expected ErrInvalidRequestType, got %v", err)
	}
}

func TestStartCheckoutValidatesBeforeProviderCall(t *testing.T) {
	svc, requests, _, provider, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	if _, err := svc.SaveForm(context.Background(), session.ID, map[string]string{"name": "Asha"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, _, err := svc.StartCheckout(context.Background(), session.ID)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if provider.createCalls != 0 {
		t.Fatalf("provider called %d times on invalid form", provider.createCalls)
	}
	if len(requests.requests) != 0 {
		t.Fatal("no request row should exist for an invalid form")
	}

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		t.Fatal("expected CustomError with field details")
	}
	if custom.Details["role"] != "Job role is required" {
		t.Fatalf("unexpected role message: %v", custom.Details["role"])
	}
	if custom.Details["email"] != "Email is required" {
		t.Fatalf("unexpected email message: %v", custom.Details["email"])
	}
}

func TestStartCheckoutFormMessagesPerKind(t *testing.T) {
	cases := []struct {
		kind   models.RequestType
		fields map[string]string
	}{
		{models.RequestTypeProject, map[string]string{
			"title":       "Project title is required",
			"description": "Project description is required",
		}},
		{models.RequestTypePPT, map[string]string{
			"topic": "Topic is required",
			"brief": "Brief description is required",
		}},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			svc, _, _, _, _ := newTestStudentHub()
			session, _ := svc.OpenSession(context.Background(), tc.kind)

			_, _, err := svc.StartCheckout(context.Background(), session.ID)
			var custom *apperrors.CustomError
			if !errors.As(err, &custom) {
				t.Fatalf("expected validation error, got %v", err)
			}
			for field, want := range tc.fields {
				if custom.Details[field] != want {
					t.Fatalf("field %s: want %q, got %v", field, want, custom.Details[field])
				}
			}
		})
	}
}

func TestStartCheckoutHappyPath(t *testing.T) {
	svc, requests, _, provider, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	if _, err := svc.SaveForm(context.Background(), session.ID, validResumeForm()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, url, err := svc.StartCheckout(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if url == "" {
		t.Fatal("expected checkout URL")
	}
	if updated.State != models.WizardAwaitingPayment {
		t.Fatalf("expected awaiting_payment, got %s", updated.State)
	}
	if updated.RequestID == "" {
		t.Fatal("expected session to carry the request id")
	}

	req := requests.requests[updated.RequestID]
	if req == nil {
		t.Fatal("request row not created")
	}
	if req.Paid {
		t.Fatal("request must start unpaid")
	}
	if req.StripeSessionID == nil || *req.StripeSessionID != updated.StripeSessionID {
		t.Fatal("stripe session id not recorded on the request")
	}
	if provider.lastParams.AmountCents != 200 || provider.lastParams.Currency != "usd" {
		t.Fatalf("unexpected checkout params: %+v", provider.lastParams)
	}
}

func TestStartCheckoutProviderFailure(t *testing.T) {
	svc, _, sessions, provider, _ := newTestStudentHub()
	provider.createErr = errors.New("stripe down")

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())

	_, _, err := svc.StartCheckout(context.Background(), session.ID)
	if !errors.Is(err, apperrors.ErrCheckoutFailed) {
		t.Fatalf("expected ErrCheckoutFailed, got %v", err)
	}

	// The session stays editable for a retry.
	got, _ := sessions.Get(context.Background(), session.ID)
	if got.State != models.WizardEditing {
		t.Fatalf("expected session to remain editing, got %s", got.State)
	}
}

func TestConfirmPaymentNotPaid(t *testing.T) {
	svc, requests, _, _, mailer := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())
	updated, _, _ := svc.StartCheckout(context.Background(), session.ID)

	// Provider reports the session unpaid.
	outcome, err := svc.ConfirmPayment(context.Background(), updated.StripeSessionID, updated.RequestID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if outcome.Paid {
		t.Fatal("expected paid=false")
	}
	if requests.requests[updated.RequestID].Paid {
		t.Fatal("request must not be marked paid")
	}
	if len(mailer.sent) != 0 {
		t.Fatal("no emails should be sent for an unpaid session")
	}
}

func TestConfirmPaymentFlipsOnce(t *testing.T) {
	svc, requests, sessions, provider, mailer := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())
	updated, _, _ := svc.StartCheckout(context.Background(), session.ID)
	provider.paid[updated.StripeSessionID] = true

	outcome, err := svc.ConfirmPayment(context.Background(), updated.StripeSessionID, updated.RequestID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if !outcome.Paid || !outcome.Flipped {
		t.Fatalf("expected paid and flipped, got %+v", outcome)
	}
	if !requests.requests[updated.RequestID].Paid {
		t.Fatal("request should be marked paid")
	}
	if len(requests.history) != 1 || requests.history[0].Status != "processing" {
		t.Fatalf("expected one processing history entry, got %+v", requests.history)
	}
	if requests.history[0].Notes != "Payment confirmed via Stripe" {
		t.Fatalf("unexpected history notes: %s", requests.history[0].Notes)
	}
	if mailer.sentOfType(email.TemplatePaymentSuccess) != 1 {
		t.Fatal("expected payment success email")
	}
	if mailer.sentOfType(email.TemplateResumeRequest) != 1 {
		t.Fatal("expected resume request email")
	}

	got, _ := sessions.Get(context.Background(), session.ID)
	if got.State != models.WizardConfirmed {
		t.Fatalf("expected confirmed session, got %s", got.State)
	}

	// A replayed confirmation re-reports paid but changes nothing.
	outcome2, err := svc.ConfirmPayment(context.Background(), updated.StripeSessionID, updated.RequestID)
	if err != nil {
		t.Fatalf("replayed confirm failed: %v", err)
	}
	if !outcome2.Paid || outcome2.Flipped {
		t.Fatalf("expected paid without flip on replay, got %+v", outcome2)
	}
	if len(requests.history) != 1 {
		t.Fatalf("replay must not append history, got %d entries", len(requests.history))
	}
	if mailer.sentOfType(email.TemplatePaymentSuccess) != 1 {
		t.Fatal("replay must not resend emails")
	}
}

func TestConfirmPaymentRejectsForeignSession(t *testing.T) {
	svc, requests, _, provider, mailer := newTestStudentHub()

	first, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), first.ID, validResumeForm())
	paidFor, _, _ := svc.StartCheckout(context.Background(), first.ID)
	provider.paid[paidFor.StripeSessionID] = true

	second, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), second.ID, validResumeForm())
	other, _, _ := svc.StartCheckout(context.Background(), second.ID)

	// A paid checkout session only confirms the request it was opened for.
	_, err := svc.ConfirmPayment(context.Background(), paidFor.StripeSessionID, other.RequestID)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if requests.requests[other.RequestID].Paid {
		t.Fatal("request must not be paid by another request's checkout session")
	}
	if len(requests.history) != 0 {
		t.Fatalf("no history should be written, got %+v", requests.history)
	}
	if len(mailer.sent) != 0 {
		t.Fatal("no emails should be sent")
	}

	// The session recorded for the request still confirms it.
	outcome, err := svc.ConfirmPayment(context.Background(), paidFor.StripeSessionID, paidFor.RequestID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if !outcome.Paid || !outcome.Flipped {
		t.Fatalf("expected paid and flipped, got %+v", outcome)
	}
}

func TestConfirmPaymentProviderFailure(t *testing.T) {
	svc, _, _, provider, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())
	updated, _, _ := svc.StartCheckout(context.Background(), session.ID)

	provider.getErr = errors.New("stripe down")
	_, err := svc.ConfirmPayment(context.Background(), updated.StripeSessionID, updated.RequestID)
	if !errors.Is(err, apperrors.ErrPaymentNotConfirmed) {
		t.Fatalf("expected ErrPaymentNotConfirmed, got %v", err)
	}
}

func TestSubmitRequiresPayment(t *testing.T) {
	svc, _, _, _, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())
	updated, _, _ := svc.StartCheckout(context.Background(), session.ID)

	_, err := svc.Submit(context.Background(), updated.ID)
	if !errors.Is(err, apperrors.ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
}

func TestSubmitAfterPayment(t *testing.T) {
	svc, requests, sessions, provider, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())
	updated, _, _ := svc.StartCheckout(context.Background(), session.ID)
	provider.paid[updated.StripeSessionID] = true
	if _, err := svc.ConfirmPayment(context.Background(), updated.StripeSessionID, updated.RequestID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	req, err := svc.Submit(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !req.Paid {
		t.Fatal("submitted request should be paid")
	}
	if len(requests.history) != 2 || requests.history[1].Status != "submitted" {
		t.Fatalf("expected submitted history entry, got %+v", requests.history)
	}

	// The session is discarded after submission.
	if _, err := sessions.Get(context.Background(), session.ID); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}
}

func TestRequestHistoryTrail(t *testing.T) {
	svc, _, _, provider, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())
	updated, _, _ := svc.StartCheckout(context.Background(), session.ID)
	provider.paid[updated.StripeSessionID] = true
	if _, err := svc.ConfirmPayment(context.Background(), updated.StripeSessionID, updated.RequestID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := svc.Submit(context.Background(), session.ID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	req, trail, err := svc.RequestHistory(context.Background(), updated.RequestID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !req.Paid {
		t.Fatal("expected a paid request")
	}
	if len(trail) != 2 || trail[0].Status != "processing" || trail[1].Status != "submitted" {
		t.Fatalf("unexpected trail: %+v", trail)
	}

	if _, _, err := svc.RequestHistory(context.Background(), "no-such-request"); !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestSaveFormLockedAfterConfirmation(t *testing.T) {
	svc, _, _, provider, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypeResume)
	_, _ = svc.SaveForm(context.Background(), session.ID, validResumeForm())
	updated, _, _ := svc.StartCheckout(context.Background(), session.ID)
	provider.paid[updated.StripeSessionID] = true
	_, _ = svc.ConfirmPayment(context.Background(), updated.StripeSessionID, updated.RequestID)

	_, err := svc.SaveForm(context.Background(), session.ID, map[string]string{"name": "changed"})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestCancelSession(t *testing.T) {
	svc, _, sessions, _, _ := newTestStudentHub()

	session, _ := svc.OpenSession(context.Background(), models.RequestTypePPT)
	if err := svc.CancelSession(context.Background(), session.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := sessions.Get(context.Background(), session.ID); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}
}

func TestCancelSessionMissing(t *testing.T) {
	svc, _, _, _, _ := newTestStudentHub()

	err := svc.CancelSession(context.Background(), "nope")
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
