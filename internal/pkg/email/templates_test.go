package email

import (
	"errors"
	"strings"
	"testing"

	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
)

func TestRenderTemplateKnownTypes(t *testing.T) {
	types := []TemplateType{
		TemplateNewsletterWelcome,
		TemplateCommunityWelcome,
		TemplateContactConfirmation,
		TemplateContactNotification,
		TemplatePaymentSuccess,
		TemplateResumeRequest,
		TemplateProjectRequest,
		TemplatePPTRequest,
	}

	for _, typ := range types {
		subject, html, err := RenderTemplate(typ, map[string]string{"name": "Asha"})
		if err != nil {
			t.Fatalf("%s: render failed: %v", typ, err)
		}
		if subject == "" {
			t.Fatalf("%s: empty subject", typ)
		}
		if !strings.Contains(html, "InnovBridge") {
			t.Fatalf("%s: body missing branding", typ)
		}
	}
}

func TestRenderTemplateUnknown(t *testing.T) {
	_, _, err := RenderTemplate(TemplateType("mystery"), nil)
	if !errors.Is(err, apperrors.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestRenderTemplateDataInterpolation(t *testing.T) {
	subject, html, err := RenderTemplate(TemplateContactConfirmation, map[string]string{
		"name":    "Asha",
		"subject": "Partnership",
		"message": "Let's talk.",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "Asha") || !strings.Contains(html, "Partnership") {
		t.Fatal("data not interpolated into body")
	}
	if subject != "We received your message - InnovBridge" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestRenderTemplateMissingDataFallsBack(t *testing.T) {
	_, html, err := RenderTemplate(TemplatePaymentSuccess, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// Missing fields render placeholders instead of empty strings.
	if !strings.Contains(html, "there") {
		t.Fatal("expected fallback greeting")
	}
}

func TestRequestTemplate(t *testing.T) {
	cases := map[string]TemplateType{
		"resume":  TemplateResumeRequest,
		"project": TemplateProjectRequest,
		"ppt":     TemplatePPTRequest,
	}
	for kind, want := range cases {
		got, err := RequestTemplate(kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if got != want {
			t.Fatalf("%s: want %s, got %s", kind, want, got)
		}
	}

	if _, err := RequestTemplate("thesis"); !errors.Is(err, apperrors.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}
