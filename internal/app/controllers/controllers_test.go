package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/app/services"
	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
	"github.com/adlavijwal/innovbridge/internal/pkg/email"
	"github.com/adlavijwal/innovbridge/internal/pkg/payments"
)

// Minimal fakes for driving the controllers through a real gin engine.

type memSubscribers struct {
	newsletter map[string]bool
	community  map[string]bool
}

func (s *memSubscribers) InsertNewsletterSubscriber(_ context.Context, sub *models.NewsletterSubscriber) error {
	if s.newsletter[sub.Email] {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadySubscribed, sub.Email)
	}
	s.newsletter[sub.Email] = true
	return nil
}

func (s *memSubscribers) InsertCommunityMember(_ context.Context, member *models.CommunityMember) error {
	if s.community[member.Email] {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadySubscribed, member.Email)
	}
	s.community[member.Email] = true
	return nil
}

func (s *memSubscribers) DeleteCommunityMember(_ context.Context, email string) error {
	delete(s.community, email)
	return nil
}

type okMailer struct{}

func (okMailer) Send(_ context.Context, _ email.Message) error { return nil }

type memSessions struct {
	sessions map[string]*models.WizardSession
}

func (s *memSessions) Save(_ context.Context, session *models.WizardSession) error {
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *memSessions) Get(_ context.Context, id string) (*models.WizardSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	copied := *session
	return &copied, nil
}

func (s *memSessions) GetByRequestID(_ context.Context, _ string) (*models.WizardSession, error) {
	return nil, apperrors.ErrSessionNotFound
}

func (s *memSessions) Delete(_ context.Context, session *models.WizardSession) error {
	delete(s.sessions, session.ID)
	return nil
}

type memRequests struct {
	requests map[string]*models.StudentRequest
}

func (s *memRequests) Create(_ context.Context, req *models.StudentRequest) error {
	req.ID = uuid.New().String()
	s.requests[req.ID] = req
	return nil
}

func (s *memRequests) GetByID(_ context.Context, id string) (*models.StudentRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRequestNotFound, id)
	}
	return req, nil
}

func (s *memRequests) SetStripeSession(_ context.Context, requestID, sessionID string) error {
	if req, ok := s.requests[requestID]; ok {
		req.StripeSessionID = &sessionID
	}
	return nil
}

func (s *memRequests) MarkPaid(_ context.Context, requestID string) (bool, error) {
	req, ok := s.requests[requestID]
	if !ok || req.Paid {
		return false, nil
	}
	req.Paid = true
	return true, nil
}

func (s *memRequests) AddHistory(_ context.Context, _ *models.StudentRequestHistory) error {
	return nil
}

func (s *memRequests) ListHistory(_ context.Context, _ string) ([]models.StudentRequestHistory, error) {
	return []models.StudentRequestHistory{}, nil
}

type downProvider struct{}

func (downProvider) CreateCheckoutSession(_ context.Context, _ payments.CheckoutParams) (*payments.CheckoutSession, error) {
	return nil, errors.New("stripe unreachable")
}

func (downProvider) GetCheckoutSession(_ context.Context, _ string) (*payments.CheckoutSession, error) {
	return nil, errors.New("stripe unreachable")
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubscribeEndpointConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &memSubscribers{newsletter: map[string]bool{}, community: map[string]bool{}}
	controller := NewSubscriptionController(services.NewSubscriptionService(store, okMailer{}))

	router := gin.New()
	router.POST("/newsletter/subscribe", controller.SubscribeNewsletter)

	payload := map[string]string{"email": "user@example.com", "frequency": "weekly"}

	if w := postJSON(t, router, "/newsletter/subscribe", payload); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w := postJSON(t, router, "/newsletter/subscribe", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Success {
		t.Fatal("expected success=false")
	}
	if resp.Error.Code != "SUB_001" {
		t.Fatalf("expected SUB_001, got %s", resp.Error.Code)
	}
}

func TestSubscribeEndpointBadFrequency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &memSubscribers{newsletter: map[string]bool{}, community: map[string]bool{}}
	controller := NewSubscriptionController(services.NewSubscriptionService(store, okMailer{}))

	router := gin.New()
	router.POST("/newsletter/subscribe", controller.SubscribeNewsletter)

	w := postJSON(t, router, "/newsletter/subscribe", map[string]string{
		"email":     "user@example.com",
		"frequency": "monthly",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCheckoutEndpointProviderDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := &memSessions{sessions: map[string]*models.WizardSession{}}
	requests := &memRequests{requests: map[string]*models.StudentRequest{}}
	svc := services.NewStudentHubService(requests, sessions, downProvider{}, okMailer{}, 200, "usd")
	controller := NewStudentHubController(svc)

	router := gin.New()
	router.POST("/student-hub/sessions", controller.OpenSession)
	router.PUT("/student-hub/sessions/:id", controller.SaveForm)
	router.POST("/student-hub/sessions/:id/checkout", controller.StartCheckout)

	w := postJSON(t, router, "/student-hub/sessions", map[string]string{"requestType": "resume"})
	if w.Code != http.StatusCreated {
		t.Fatalf("open: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var opened struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &opened); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	form := map[string]interface{}{"form": map[string]string{
		"name":  "Asha",
		"role":  "Engineer",
		"email": "asha@example.com",
	}}
	body, _ := json.Marshal(form)
	req := httptest.NewRequest(http.MethodPut, "/student-hub/sessions/"+opened.Data.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	saveW := httptest.NewRecorder()
	router.ServeHTTP(saveW, req)
	if saveW.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d: %s", saveW.Code, saveW.Body.String())
	}

	w = postJSON(t, router, "/student-hub/sessions/"+opened.Data.ID+"/checkout", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 when provider is down, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCheckoutEndpointValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := &memSessions{sessions: map[string]*models.WizardSession{}}
	requests := &memRequests{requests: map[string]*models.StudentRequest{}}
	svc := services.NewStudentHubService(requests, sessions, downProvider{}, okMailer{}, 200, "usd")
	controller := NewStudentHubController(svc)

	router := gin.New()
	router.POST("/student-hub/sessions", controller.OpenSession)
	router.POST("/student-hub/sessions/:id/checkout", controller.StartCheckout)

	w := postJSON(t, router, "/student-hub/sessions", map[string]string{"requestType": "ppt"})
	var opened struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &opened); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// Empty form: checkout must fail with per-field messages before any
	// provider call.
	w = postJSON(t, router, "/student-hub/sessions/"+opened.Data.ID+"/checkout", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Error.Details["topic"] != "Topic is required" {
		t.Fatalf("unexpected details: %v", resp.Error.Details)
	}
}
