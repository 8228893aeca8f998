// internal/service/interfaces.go
package service

import (
	"context"

	"github.com/google/uuid"

	"parking-portal/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// CheckoutRequest describes a hosted checkout for the given months. The
// provider charges AmountPerMonth for each month and must echo the
// contractor id and months back in its completion callback.
type CheckoutRequest struct {
	ContractorID   uuid.UUID
	ContractorName string
	Months         []domain.Month
	AmountPerMonth int64
	SuccessURL     string
	CancelURL      string
}

// CheckoutProvider is the external card-payment service. It returns the
// URL the contractor is redirected to.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)
}

// Notifier tells the owner about events worth reviewing. Delivery is
// best effort; implementations log their own failures.
type Notifier interface {
	TransferReported(ctx context.Context, contractor domain.Contractor, months []domain.Month, transferName, transferDate string)
}
