package models

import "time"

// RequestType identifies the kind of student hub request.
type RequestType string

const (
	RequestTypeResume  RequestType = "resume"
	RequestTypeProject RequestType = "project"
	RequestTypePPT     RequestType = "ppt"
)

// IsValid reports whether the request type is one of the three known kinds.
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeResume, RequestTypeProject, RequestTypePPT:
		return true
	}
	return false
}

// Title returns the display name of a request kind.
func (t RequestType) Title() string {
	switch t {
	case RequestTypeResume:
		return "Resume Maker"
	case RequestTypeProject:
		return "Project Builder"
	case RequestTypePPT:
		return "PPT Creator"
	}
	return ""
}

// StudentRequest represents one paid student hub request. The row is created
// unpaid at checkout; Paid flips to true exactly once, driven by a verified
// Stripe confirmation, and rows are never deleted.
type StudentRequest struct {
	ID              string            `json:"id"`
	RequestType     RequestType       `json:"requestType"`
	Email           string            `json:"email"`
	Data            map[string]string `json:"data"`
	Paid            bool              `json:"paid"`
	StripeSessionID *string           `json:"stripeSessionId,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// StudentRequestHistory is a status trail entry appended when a request
// advances (e.g. payment confirmed).
type StudentRequestHistory struct {
	ID        int64     `json:"id"`
	RequestID string    `json:"requestId"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
