package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
	"github.com/adlavijwal/innovbridge/internal/pkg/logger"
	"github.com/adlavijwal/innovbridge/internal/pkg/payments"
	"github.com/adlavijwal/innovbridge/internal/pkg/validation"
)

// RequestStore is the student request persistence the service needs.
type RequestStore interface {
	Create(ctx context.Context, req *models.StudentRequest) error
	GetByID(ctx context.Context, id string) (*models.StudentRequest, error)
	SetStripeSession(ctx context.Context, requestID, stripeSessionID string) error
	MarkPaid(ctx context.Context, requestID string) (flipped bool, err error)
	AddHistory(ctx context.Context, entry *models.StudentRequestHistory) error
	ListHistory(ctx context.Context, requestID string) ([]models.StudentRequestHistory, error)
}

// WizardSessionStore is the wizard session persistence the service needs.
type WizardSessionStore interface {
	Save(ctx context.Context, session *models.WizardSession) error
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	GetByRequestID(ctx context.Context, requestID string) (*models.WizardSession, error)
	Delete(ctx context.Context, session *models.WizardSession) error
}

// StudentHubService drives the paid request wizard: open a session, save the
// form, start checkout, confirm the payment and submit. Payment state lives
// on the request row; the wizard session only mirrors it for the frontend.
type StudentHubService struct {
	requests    RequestStore
	sessions    WizardSessionStore
	provider    payments.CheckoutProvider
	mailer      email.Sender
	amountCents int64
	currency    string
	logger      zerolog.Logger
}

// NewStudentHubService creates a new StudentHubService
func NewStudentHubService(
	requests RequestStore,
	sessions WizardSessionStore,
	provider payments.CheckoutProvider,
	mailer email.Sender,
	amountCents int64,
	currency string,
) *StudentHubService {
	return &StudentHubService{
		requests:    requests,
		sessions:    sessions,
		provider:    provider,
		mailer:      mailer,
		amountCents: amountCents,
		currency:    currency,
		logger:      logger.WithComponent("studenthub_service"),
	}
}

// OpenSession starts a wizard session for one request kind.
func (s *StudentHubService) OpenSession(ctx context.Context, requestType models.RequestType) (*models.WizardSession, error) {
	if !requestType.IsValid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidRequestType, requestType)
	}

	now := time.Now()
	session := &models.WizardSession{
		ID:          uuid.New().String(),
		RequestType: requestType,
		State:       models.WizardEditing,
		Form:        map[string]string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSession retrieves a wizard session.
func (s *StudentHubService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.sessions.Get(ctx, sessionID)
}

// SaveForm replaces the session's form state. The form locks once the
// payment is confirmed.
func (s *StudentHubService) SaveForm(ctx context.Context, sessionID string, form map[string]string) (*models.WizardSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.WizardConfirmed {
		return nil, fmt.Errorf("%w: form is locked after payment", apperrors.ErrBadRequest)
	}

	if form == nil {
		form = map[string]string{}
	}
	session.Form = form
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// StartCheckout validates the session's form, creates the unpaid request row
// and opens a checkout session for it. The form is validated before anything
// leaves the process, so a rejected form costs no provider call and no row.
func (s *StudentHubService) StartCheckout(ctx context.Context, sessionID string) (*models.WizardSession, string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if session.State == models.WizardConfirmed {
		return nil, "", fmt.Errorf("%w: payment already confirmed", apperrors.ErrBadRequest)
	}

	if fields := validateRequestForm(session.RequestType, session.Form); len(fields) > 0 {
		return nil, "", apperrors.NewValidationError(fields)
	}

	emailAddr := strings.TrimSpace(strings.ToLower(session.Form["email"]))

	req := &models.StudentRequest{
		RequestType: session.RequestType,
		Email:       emailAddr,
		Data:        session.Form,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, "", err
	}

	checkout, err := s.provider.CreateCheckoutSession(ctx, payments.CheckoutParams{
		RequestType: string(session.RequestType),
		RequestID:   req.ID,
		Email:       emailAddr,
		AmountCents: s.amountCents,
		Currency:    s.currency,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrCheckoutFailed, err)
	}

	if err := s.requests.SetStripeSession(ctx, req.ID, checkout.ID); err != nil {
		return nil, "", err
	}

	session.State = models.WizardAwaitingPayment
	session.RequestID = req.ID
	session.StripeSessionID = checkout.ID
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}

	s.logger.Info().
		Str("sessionId", session.ID).
		Str("requestId", req.ID).
		Str("requestType", string(session.RequestType)).
		Msg("Checkout session created")

	return session, checkout.URL, nil
}

// ConfirmOutcome is the result of a payment confirmation attempt.
type ConfirmOutcome struct {
	Paid    bool
	Flipped bool
}

// ConfirmPayment verifies a checkout session against the provider and, if it
// is paid, flips the request's paid flag. The checkout session must be the
// one recorded for the request at checkout time; a paid session cannot flip
// any other request. The flip happens at most once; the confirmation emails
// and history entry ride on the flip, so a replayed confirmation is a no-op
// beyond re-reporting paid status.
func (s *StudentHubService) ConfirmPayment(ctx context.Context, checkoutSessionID, requestID string) (*ConfirmOutcome, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.StripeSessionID == nil || *req.StripeSessionID != checkoutSessionID {
		s.logger.Warn().
			Str("requestId", requestID).
			Str("checkoutSessionId", checkoutSessionID).
			Msg("Confirmation rejected, checkout session does not belong to request")
		return nil, fmt.Errorf("%w: checkout session does not belong to this request", apperrors.ErrBadRequest)
	}

	checkout, err := s.provider.GetCheckoutSession(ctx, checkoutSessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentNotConfirmed, err)
	}

	if !checkout.Paid {
		return &ConfirmOutcome{Paid: false}, nil
	}

	flipped, err := s.requests.MarkPaid(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if flipped {
		if err := s.requests.AddHistory(ctx, &models.StudentRequestHistory{
			RequestID: requestID,
			Status:    "processing",
			Notes:     "Payment confirmed via Stripe",
		}); err != nil {
			s.logger.Error().Err(err).Str("requestId", requestID).Msg("Failed to record payment history")
		}

		s.sendConfirmationEmails(ctx, req, checkoutSessionID)
		s.markSessionConfirmed(ctx, requestID, checkoutSessionID)
	}

	return &ConfirmOutcome{Paid: true, Flipped: flipped}, nil
}

// Submit finalizes a confirmed session. The request must be paid; the wizard
// session is discarded on success.
func (s *StudentHubService) Submit(ctx context.Context, sessionID string) (*models.StudentRequest, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.RequestID == "" {
		return nil, fmt.Errorf("%w: checkout has not started", apperrors.ErrPaymentRequired)
	}

	req, err := s.requests.GetByID(ctx, session.RequestID)
	if err != nil {
		return nil, err
	}
	if !req.Paid {
		return nil, apperrors.ErrPaymentRequired
	}
	if fields := validateRequestForm(session.RequestType, session.Form); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	if err := s.requests.AddHistory(ctx, &models.StudentRequestHistory{
		RequestID: req.ID,
		Status:    "submitted",
		Notes:     "Request submitted by student",
	}); err != nil {
		s.logger.Error().Err(err).Str("requestId", req.ID).Msg("Failed to record submission history")
	}

	if err := s.sessions.Delete(ctx, session); err != nil {
		s.logger.Warn().Err(err).Str("sessionId", session.ID).Msg("Failed to delete submitted session")
	}

	return req, nil
}

// RequestHistory returns a request together with its status trail, oldest
// first.
func (s *StudentHubService) RequestHistory(ctx context.Context, requestID string) (*models.StudentRequest, []models.StudentRequestHistory, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.requests.ListHistory(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	return req, entries, nil
}

// CancelSession abandons a wizard session. Any unpaid request row stays
// behind; rows are never deleted.
func (s *StudentHubService) CancelSession(ctx context.Context, sessionID string) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, session)
}

func (s *StudentHubService) sendConfirmationEmails(ctx context.Context, req *models.StudentRequest, checkoutSessionID string) {
	data := map[string]string{}
	for k, v := range req.Data {
		data[k] = v
	}
	data["service"] = req.RequestType.Title()
	data["amount"] = fmt.Sprintf("$%.2f", float64(s.amountCents)/100)
	data["transactionId"] = checkoutSessionID

	if err := s.mailer.Send(ctx, email.Message{
		Type: email.TemplatePaymentSuccess,
		To:   req.Email,
		Data: data,
	}); err != nil {
		s.logger.Warn().Err(err).Str("requestId", req.ID).Msg("Payment success email failed")
	}

	tmpl, err := email.RequestTemplate(string(req.RequestType))
	if err != nil {
		s.logger.Error().Err(err).Str("requestId", req.ID).Msg("No request template for type")
		return
	}
	if err := s.mailer.Send(ctx, email.Message{
		Type: tmpl,
		To:   req.Email,
		Data: data,
	}); err != nil {
		s.logger.Warn().Err(err).Str("requestId", req.ID).Msg("Request detail email failed")
	}
}

// markSessionConfirmed moves the wizard session that owns the request into
// the confirmed state. The session may have expired while the user was on
// the payment page; that is fine, payment state lives on the request row.
func (s *StudentHubService) markSessionConfirmed(ctx context.Context, requestID, checkoutSessionID string) {
	session, err := s.sessions.GetByRequestID(ctx, requestID)
	if err != nil {
		s.logger.Warn().Err(err).Str("requestId", requestID).Msg("No live session to confirm")
		return
	}

	session.State = models.WizardConfirmed
	session.StripeSessionID = checkoutSessionID
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Warn().Err(err).Str("sessionId", session.ID).Msg("Failed to persist confirmed session")
	}
}

// validateRequestForm checks the kind-specific required fields. Every kind
// requires a deliverable email address.
func validateRequestForm(t models.RequestType, form map[string]string) map[string]string {
	get := func(key string) string { return strings.TrimSpace(form[key]) }

	fields := map[string]string{}
	switch t {
	case models.RequestTypeResume:
		if get("name") == "" {
			fields["name"] = "Name is required"
		}
		if get("role") == "" {
			fields["role"] = "Job role is required"
		}
	case models.RequestTypeProject:
		if get("title") == "" {
			fields["title"] = "Project title is required"
		}
		if get("description") == "" {
			fields["description"] = "Project description is required"
		}
	case models.RequestTypePPT:
		if get("topic") == "" {
			fields["topic"] = "Topic is required"
		}
		if get("brief") == "" {
			fields["brief"] = "Brief description is required"
		}
	}

	emailAddr := get("email")
	if emailAddr == "" {
		fields["email"] = "Email is required"
	} else if !validation.IsValidEmail(emailAddr) {
		fields["email"] = "Please enter a valid email"
	}

	return fields
}
