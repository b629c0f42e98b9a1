package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
	"github.com/adlavijwal/innovbridge/internal/pkg/payments"
)

// --- in-memory fakes shared by the service tests ---

type fakeMailer struct {
	sent      []email.Message
	failTypes map[email.TemplateType]bool
	failAll   bool
}

func (m *fakeMailer) Send(_ context.Context, msg email.Message) error {
	if m.failAll || (m.failTypes != nil && m.failTypes[msg.Type]) {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) sentOfType(t email.TemplateType) int {
	n := 0
	for _, msg := range m.sent {
		if msg.Type == t {
			n++
		}
	}
	return n
}

type fakeSubscriberStore struct {
	newsletter map[string]bool
	community  map[string]bool
	deleted    []string
}

func newFakeSubscriberStore() *fakeSubscriberStore {
	return &fakeSubscriberStore{
		newsletter: map[string]bool{},
		community:  map[string]bool{},
	}
}

func (s *fakeSubscriberStore) InsertNewsletterSubscriber(_ context.Context, sub *models.NewsletterSubscriber) error {
	if s.newsletter[sub.Email] {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadySubscribed, sub.Email)
	}
	s.newsletter[sub.Email] = true
	sub.ID = int64(len(s.newsletter))
	return nil
}

func (s *fakeSubscriberStore) InsertCommunityMember(_ context.Context, member *models.CommunityMember) error {
	if s.community[member.Email] {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadySubscribed, member.Email)
	}
	s.community[member.Email] = true
	member.ID = int64(len(s.community))
	return nil
}

func (s *fakeSubscriberStore) DeleteCommunityMember(_ context.Context, email string) error {
	delete(s.community, email)
	s.deleted = append(s.deleted, email)
	return nil
}

type fakeContactStore struct {
	submissions []models.ContactSubmission
}

func (s *fakeContactStore) Insert(_ context.Context, sub *models.ContactSubmission) error {
	sub.ID = int64(len(s.submissions) + 1)
	s.submissions = append(s.submissions, *sub)
	return nil
}

type fakeRequestStore struct {
	requests map[string]*models.StudentRequest
	history  []models.StudentRequestHistory
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[string]*models.StudentRequest{}}
}

func (s *fakeRequestStore) Create(_ context.Context, req *models.StudentRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	s.requests[req.ID] = req
	return nil
}

func (s *fakeRequestStore) GetByID(_ context.Context, id string) (*models.StudentRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: request %s", apperrors.ErrRequestNotFound, id)
	}
	copied := *req
	return &copied, nil
}

func (s *fakeRequestStore) SetStripeSession(_ context.Context, requestID, stripeSessionID string) error {
	req, ok := s.requests[requestID]
	if !ok {
		return fmt.Errorf("%w: request %s", apperrors.ErrRequestNotFound, requestID)
	}
	req.StripeSessionID = &stripeSessionID
	return nil
}

func (s *fakeRequestStore) MarkPaid(_ context.Context, requestID string) (bool, error) {
	req, ok := s.requests[requestID]
	if !ok {
		return false, fmt.Errorf("%w: request %s", apperrors.ErrRequestNotFound, requestID)
	}
	if req.Paid {
		return false, nil
	}
	req.Paid = true
	return true, nil
}

func (s *fakeRequestStore) AddHistory(_ context.Context, entry *models.StudentRequestHistory) error {
	entry.ID = int64(len(s.history) + 1)
	s.history = append(s.history, *entry)
	return nil
}

func (s *fakeRequestStore) ListHistory(_ context.Context, requestID string) ([]models.StudentRequestHistory, error) {
	entries := []models.StudentRequestHistory{}
	for _, e := range s.history {
		if e.RequestID == requestID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

type fakeSessionStore struct {
	sessions  map[string]*models.WizardSession
	byRequest map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions:  map[string]*models.WizardSession{},
		byRequest: map[string]string{},
	}
}

func (s *fakeSessionStore) Save(_ context.Context, session *models.WizardSession) error {
	copied := *session
	s.sessions[session.ID] = &copied
	if session.RequestID != "" {
		s.byRequest[session.RequestID] = session.ID
	}
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, sessionID string) (*models.WizardSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}
	copied := *session
	return &copied, nil
}

func (s *fakeSessionStore) GetByRequestID(_ context.Context, requestID string) (*models.WizardSession, error) {
	sessionID, ok := s.byRequest[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: no session for request %s", apperrors.ErrSessionNotFound, requestID)
	}
	return s.Get(context.Background(), sessionID)
}

func (s *fakeSessionStore) Delete(_ context.Context, session *models.WizardSession) error {
	delete(s.sessions, session.ID)
	if session.RequestID != "" {
		delete(s.byRequest, session.RequestID)
	}
	return nil
}

type fakeCheckoutProvider struct {
	createCalls int
	createErr   error
	getErr      error
	paid        map[string]bool
	lastParams  payments.CheckoutParams
}

func newFakeCheckoutProvider() *fakeCheckoutProvider {
	return &fakeCheckoutProvider{paid: map[string]bool{}}
}

func (p *fakeCheckoutProvider) CreateCheckoutSession(_ context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error) {
	p.createCalls++
	p.lastParams = params
	if p.createErr != nil {
		return nil, p.createErr
	}
	id := fmt.Sprintf("cs_test_%d", p.createCalls)
	return &payments.CheckoutSession{
		ID:  id,
		URL: "https://checkout.example.com/" + id,
	}, nil
}

func (p *fakeCheckoutProvider) GetCheckoutSession(_ context.Context, sessionID string) (*payments.CheckoutSession, error) {
	if p.getErr != nil {
		return nil, p.getErr
	}
	return &payments.CheckoutSession{
		ID:   sessionID,
		Paid: p.paid[sessionID],
	}, nil
}
