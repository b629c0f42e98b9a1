package models

import "time"

// WizardState is the student hub wizard's lifecycle state.
type WizardState string

const (
	// WizardEditing - the form is being filled in; checkout has not started
	// or has failed and been rolled back to this state.
	WizardEditing WizardState = "editing"
	// WizardAwaitingPayment - an unpaid request row exists and the user has
	// been redirected to the payment page.
	WizardAwaitingPayment WizardState = "awaiting_payment"
	// WizardConfirmed - the payment provider verified the session as paid;
	// final submission is unlocked.
	WizardConfirmed WizardState = "confirmed"
)

// WizardSession is the server-side replacement for the original site's
// single localStorage slot: one session object per wizard run, keyed by a
// generated identifier that survives the payment redirect round trip.
type WizardSession struct {
	ID              string            `json:"id"`
	RequestType     RequestType       `json:"requestType"`
	State           WizardState       `json:"state"`
	Form            map[string]string `json:"form"`
	RequestID       string            `json:"requestId,omitempty"`
	StripeSessionID string            `json:"stripeSessionId,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
