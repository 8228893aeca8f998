// internal/provider/stripe.go

// Package provider adapts the external card-payment service to the
// CheckoutProvider interface the payment lifecycle expects.
package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"parking-portal/internal/domain"
	"parking-portal/internal/service"
)

// Metadata keys echoed back by the completion webhook.
const (
	MetaContractorID = "contractor_id"
	MetaTargetMonths = "target_months"
)

type StripeCheckout struct{}

// NewStripeCheckout sets the package-level API key, following the
// stripe-go convention of one key per process.
func NewStripeCheckout(apiKey string) *StripeCheckout {
	stripe.Key = apiKey
	return &StripeCheckout{}
}

// CreateCheckoutSession builds one line item per billed month so the
// receipt the provider shows matches the portal's month list.
func (p *StripeCheckout) CreateCheckoutSession(ctx context.Context, req service.CheckoutRequest) (string, error) {
	monthsJSON, err := json.Marshal(req.Months)
	if err != nil {
		return "", fmt.Errorf("marshal target months: %w", err)
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(req.Months))
	for i, m := range req.Months {
		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(domain.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(fmt.Sprintf("Parking Fee - %s", m)),
					Description: stripe.String(fmt.Sprintf("Monthly parking fee for %s", req.ContractorName)),
				},
				UnitAmount: stripe.Int64(req.AmountPerMonth),
			},
			Quantity: stripe.Int64(1),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata(MetaContractorID, req.ContractorID.String())
	params.AddMetadata(MetaTargetMonths, string(monthsJSON))

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe checkout session: %w", err)
	}
	return s.URL, nil
}
