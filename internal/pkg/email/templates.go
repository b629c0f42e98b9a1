package email

import (
	"fmt"

	"github.com/adlavijwal/innovbridge/internal/pkg/apperrors"
)

// TemplateType names one of the site's email templates.
type TemplateType string

const (
	TemplateNewsletterWelcome   TemplateType = "newsletter_welcome"
	TemplateCommunityWelcome    TemplateType = "community_welcome"
	TemplateContactConfirmation TemplateType = "contact_confirmation"
	TemplateContactNotification TemplateType = "contact_notification"
	TemplatePaymentSuccess      TemplateType = "payment_success"
	TemplateResumeRequest       TemplateType = "resume_request"
	TemplateProjectRequest      TemplateType = "project_request"
	TemplatePPTRequest          TemplateType = "ppt_request"
)

const footer = `
			<div style="padding: 24px; text-align: center; color: #6b7280; border-top: 1px solid #374151;">
				<p>InnovBridge.tech | Building the Bridge to the Next Era of Technology</p>
				<p>Contact us: <a href="mailto:hello@innovbridge.tech" style="color: #06b6d4;">hello@innovbridge.tech</a></p>
			</div>`

func wrap(heading, body string) string {
	return fmt.Sprintf(`
		<html>
		<body style="font-family: 'Inter', Arial, sans-serif; background: #000; color: #fff; margin: 0; padding: 0;">
			<div style="max-width: 600px; margin: 0 auto; background: #0a0a0f; border: 2px solid #0ea5e9; border-radius: 20px;">
				<div style="background: linear-gradient(135deg, #0ea5e9 0%%, #06b6d4 100%%); padding: 32px 20px; text-align: center; border-radius: 18px 18px 0 0;">
					<h1 style="margin: 0; font-size: 28px; color: #fff;">%s</h1>
				</div>
				<div style="padding: 32px 28px; color: #d1d5db; line-height: 1.8;">%s</div>
				%s
			</div>
		</body>
		</html>`, heading, body, footer)
}

// RenderTemplate renders a named template with its data into a subject and
// an HTML body. Data keys come from the calling flow: contact templates use
// name/subject/message, payment uses service/amount/transactionId, request
// templates echo the submitted form.
func RenderTemplate(t TemplateType, data map[string]string) (subject, html string, err error) {
	get := func(key, fallback string) string {
		if v, ok := data[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	switch t {
	case TemplateNewsletterWelcome:
		subject = "Welcome to InnovBridge 🌐"
		body := `
			<h2 style="color: #06b6d4;">Hello, Innovator! 👋</h2>
			<p>Thank you for subscribing to the InnovBridge newsletter. We're thrilled to have you join our global community of tech enthusiasts, innovators, and visionaries!</p>
			<p><strong>What you'll receive:</strong></p>
			<ul>
				<li>🚀 Tech updates and AI breakthroughs</li>
				<li>💼 Exclusive job opportunities and internships</li>
				<li>🔧 Digital transformation insights and tools</li>
				<li>🌐 Innovation stories from around the world</li>
			</ul>
			<p>Stay ahead of the curve with cutting-edge technology news delivered right to your inbox.</p>`
		html = wrap("Welcome to InnovBridge", body)

	case TemplateCommunityWelcome:
		subject = "Welcome to the InnovBridge Community 🚀"
		body := `
			<h2 style="color: #06b6d4;">Welcome to the InnovBridge Community!</h2>
			<p>Congratulations on joining a global network of innovators, creators, and tech enthusiasts.</p>
			<p><strong>As a community member, you get:</strong></p>
			<ul>
				<li>🌟 Early access to new features and updates</li>
				<li>🤝 Networking with like-minded innovators</li>
				<li>📚 Free resources and learning materials</li>
				<li>🎯 Priority notifications for opportunities</li>
			</ul>
			<p>Stay connected, stay innovative!</p>`
		html = wrap("You're In! 🎉", body)

	case TemplateContactConfirmation:
		subject = "We received your message - InnovBridge"
		body := fmt.Sprintf(`
			<h2 style="color: #06b6d4;">Hi %s,</h2>
			<p>We've received your message and our team will review it shortly. We typically respond within 24 hours.</p>
			<p><strong>Your message:</strong></p>
			<p style="background: rgba(6, 182, 212, 0.1); padding: 20px; border-left: 3px solid #06b6d4; border-radius: 5px;">
				<strong>Subject:</strong> %s<br><br>%s
			</p>
			<p>Best regards,<br><strong>The InnovBridge Team</strong></p>`,
			get("name", "there"), get("subject", "N/A"), get("message", "N/A"))
		html = wrap("Thank You for Reaching Out!", body)

	case TemplateContactNotification:
		subject = fmt.Sprintf("New contact submission: %s", get("subject", "(no subject)"))
		body := fmt.Sprintf(`
			<h2 style="color: #06b6d4;">New contact form submission</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p><strong>Subject:</strong> %s</p>
			<p style="background: rgba(6, 182, 212, 0.1); padding: 20px; border-left: 3px solid #06b6d4; border-radius: 5px;">%s</p>`,
			get("name", "?"), get("email", "?"), get("subject", "N/A"), get("message", "N/A"))
		html = wrap("Contact Notification", body)

	case TemplatePaymentSuccess:
		subject = "Payment received - InnovBridge"
		body := fmt.Sprintf(`
			<h2 style="color: #06b6d4;">Hi %s,</h2>
			<p>Your payment was received. Our team is on it!</p>
			<p><strong>Service:</strong> %s<br>
			<strong>Amount:</strong> %s<br>
			<strong>Transaction:</strong> %s</p>
			<p>We'll contact you at this address once your request is ready.</p>`,
			get("name", "there"), get("service", "?"), get("amount", "?"), get("transactionId", "?"))
		html = wrap("Payment Confirmed", body)

	case TemplateResumeRequest:
		subject = "Your Resume Maker request - InnovBridge"
		body := fmt.Sprintf(`
			<h2 style="color: #06b6d4;">Resume request received</h2>
			<p><strong>Name:</strong> %s<br>
			<strong>Target role:</strong> %s</p>
			<p>Our team will craft a resume tailored to the role and get back to you shortly.</p>`,
			get("name", "?"), get("role", "?"))
		html = wrap("Resume Maker", body)

	case TemplateProjectRequest:
		subject = "Your Project Builder request - InnovBridge"
		body := fmt.Sprintf(`
			<h2 style="color: #06b6d4;">Project request received</h2>
			<p><strong>Title:</strong> %s</p>
			<p><strong>Description:</strong></p>
			<p style="background: rgba(6, 182, 212, 0.1); padding: 20px; border-left: 3px solid #06b6d4; border-radius: 5px;">%s</p>`,
			get("title", "?"), get("description", "?"))
		html = wrap("Project Builder", body)

	case TemplatePPTRequest:
		subject = "Your PPT Creator request - InnovBridge"
		body := fmt.Sprintf(`
			<h2 style="color: #06b6d4;">Presentation request received</h2>
			<p><strong>Topic:</strong> %s</p>
			<p><strong>Brief:</strong></p>
			<p style="background: rgba(6, 182, 212, 0.1); padding: 20px; border-left: 3px solid #06b6d4; border-radius: 5px;">%s</p>`,
			get("topic", "?"), get("brief", "?"))
		html = wrap("PPT Creator", body)

	default:
		return "", "", fmt.Errorf("%w: %s", apperrors.ErrUnknownTemplate, t)
	}

	return subject, html, nil
}

// RequestTemplate returns the kind-specific request template for a request type.
func RequestTemplate(requestType string) (TemplateType, error) {
	switch requestType {
	case "resume":
		return TemplateResumeRequest, nil
	case "project":
		return TemplateProjectRequest, nil
	case "ppt":
		return TemplatePPTRequest, nil
	}
	return "", fmt.Errorf("%w: no request template for %q", apperrors.ErrUnknownTemplate, requestType)
}
