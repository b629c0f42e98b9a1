package payments

import "context"

// CheckoutParams describes one checkout session to create.
type CheckoutParams struct {
	RequestType string
	RequestID   string
	Email       string
	AmountCents int64
	Currency    string
}

// CheckoutSession is the provider's view of a checkout session.
type CheckoutSession struct {
	ID          string
	URL         string
	Paid        bool
	AmountTotal int64
}

// CheckoutProvider abstracts the payment provider: create a hosted checkout
// session and look one up to verify its payment status.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
