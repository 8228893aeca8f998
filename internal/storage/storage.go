// internal/storage/storage.go
package storage

import (
	"context"

	"github.com/google/uuid"

	"parking-portal/internal/domain"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

type ContractorStorage interface {
	CreateContractor(ctx context.Context, c domain.Contractor) error
	UpdateContractor(ctx context.Context, c domain.Contractor) error
	// DeleteContractor fails with domain.ErrConflict when payment
	// history references the contractor.
	DeleteContractor(ctx context.Context, id uuid.UUID) error
	GetContractor(ctx context.Context, id uuid.UUID) (*domain.Contractor, error)
	FindContractorByLogin(ctx context.Context, name, phoneLast4 string) (*domain.Contractor, error)
	ListContractors(ctx context.Context) ([]domain.Contractor, error)
}

type PaymentStorage interface {
	// InsertPayments writes all records in one transaction: a
	// multi-month operation either fully lands or not at all.
	InsertPayments(ctx context.Context, payments []domain.Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	ListPaymentsByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Payment, error)
	ListSucceededContractorIDs(ctx context.Context, month domain.Month) ([]uuid.UUID, error)
	ListPendingTransfers(ctx context.Context) ([]domain.Payment, error)
	// UpdatePaymentStatus transitions every listed record from one
	// status to another, all-or-nothing: if any id is missing or not
	// in the from status, nothing changes and domain.ErrNotFound is
	// returned.
	UpdatePaymentStatus(ctx context.Context, ids []uuid.UUID, from, to domain.PaymentStatus) error
	CountByExternalRef(ctx context.Context, ref string) (int64, error)
}

type SettingsStorage interface {
	GetOwnerSettings(ctx context.Context) (*domain.OwnerSettings, error)
	UpdateOwnerSettings(ctx context.Context, s domain.OwnerSettings) error
}
