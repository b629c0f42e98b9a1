package payments

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider implements CheckoutProvider against Stripe Checkout.
type StripeProvider struct {
	api     *client.API
	siteURL string
	logger  zerolog.Logger
}

// NewStripeProvider creates a Stripe-backed checkout provider. siteURL is
// where Stripe redirects after payment; the success URL carries the checkout
// session id and the request id as query parameters.
func NewStripeProvider(secretKey, siteURL string, logger zerolog.Logger) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeProvider{
		api:     api,
		siteURL: siteURL,
		logger:  logger,
	}
}

// CreateCheckoutSession creates a hosted checkout page for one request.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	productName := fmt.Sprintf("%s Service", capitalize(params.RequestType))

	sessionParams := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(params.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(productName),
						Description: stripe.String("InnovBridge Student Service"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s?session_id={CHECKOUT_SESSION_ID}&request_id=%s", p.siteURL, params.RequestID)),
		CancelURL:  stripe.String(p.siteURL),
	}
	sessionParams.Context = ctx

	sess, err := p.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		p.logger.Error().Err(err).Str("requestId", params.RequestID).Msg("Stripe checkout session creation failed")
		return nil, fmt.Errorf("creating stripe checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:          sess.ID,
		URL:         sess.URL,
		Paid:        sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal: sess.AmountTotal,
	}, nil
}

// GetCheckoutSession retrieves a checkout session to verify payment status.
func (p *StripeProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	getParams := &stripe.CheckoutSessionParams{}
	getParams.Context = ctx

	sess, err := p.api.CheckoutSessions.Get(sessionID, getParams)
	if err != nil {
		p.logger.Error().Err(err).Str("sessionId", sessionID).Msg("Stripe checkout session retrieval failed")
		return nil, fmt.Errorf("retrieving stripe checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:          sess.ID,
		URL:         sess.URL,
		Paid:        sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal: sess.AmountTotal,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
