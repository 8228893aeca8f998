// internal/service/payments.go

// Package service implements the payment lifecycle: every creation and
// state transition of a payment record goes through PaymentService, so
// the storage layer has a single writer.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"parking-portal/internal/billing"
	"parking-portal/internal/domain"
	"parking-portal/internal/storage"
)

type PaymentService struct {
	payments    storage.PaymentStorage
	contractors storage.ContractorStorage
	provider    CheckoutProvider
	notifier    Notifier
	now         func() time.Time
}

type Option func(*PaymentService)

// WithNow overrides the clock, keeping the unpaid-month computation
// deterministic in tests.
func WithNow(now func() time.Time) Option {
	return func(s *PaymentService) { s.now = now }
}

func NewPaymentService(payments storage.PaymentStorage, contractors storage.ContractorStorage, provider CheckoutProvider, notifier Notifier, opts ...Option) *PaymentService {
	s := &PaymentService{
		payments:    payments,
		contractors: contractors,
		provider:    provider,
		notifier:    notifier,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PortalSummary is everything the contractor portal page needs.
type PortalSummary struct {
	Contractor   domain.Contractor `json:"contractor"`
	CurrentMonth domain.Month      `json:"current_month"`
	UnpaidMonths []domain.Month    `json:"unpaid_months"`
	Payments     []domain.Payment  `json:"payments"`
}

func (s *PaymentService) Summary(ctx context.Context, contractorID uuid.UUID) (*PortalSummary, error) {
	contractor, err := s.contractors.GetContractor(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListPaymentsByContractor(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	current := domain.MonthOf(s.now())
	unpaid := billing.CalculateUnpaidMonths(contractor.ContractStart, contractor.ContractEnd,
		billing.PaidMonthSet(payments), current)

	return &PortalSummary{
		Contractor:   *contractor,
		CurrentMonth: current,
		UnpaidMonths: unpaid,
		Payments:     payments,
	}, nil
}

// StartCheckout creates a hosted checkout session for the given months.
// The charged amount is the contractor's current monthly fee per month,
// looked up here; client-supplied amounts are never trusted.
func (s *PaymentService) StartCheckout(ctx context.Context, contractorID uuid.UUID, months []string, successURL, cancelURL string) (string, error) {
	target, err := parseMonths(months)
	if err != nil {
		return "", err
	}

	contractor, err := s.contractors.GetContractor(ctx, contractorID)
	if err != nil {
		return "", err
	}

	url, err := s.provider.CreateCheckoutSession(ctx, CheckoutRequest{
		ContractorID:   contractorID,
		ContractorName: contractor.Name,
		Months:         target,
		AmountPerMonth: contractor.MonthlyFee,
		SuccessURL:     successURL,
		CancelURL:      cancelURL,
	})
	if err != nil {
		slog.ErrorContext(ctx, "checkout session creation failed",
			"contractor_id", contractorID, "months", target, "error", err)
		return "", fmt.Errorf("create checkout session: %w: %w", domain.ErrExternal, err)
	}
	return url, nil
}

// CompleteCardCheckout records the settled months after the provider's
// completion callback. Idempotent per external reference: re-delivery
// of the same event inserts nothing.
func (s *PaymentService) CompleteCardCheckout(ctx context.Context, contractorID uuid.UUID, months []domain.Month, totalAmount int64, externalRef string) error {
	if len(months) == 0 {
		return fmt.Errorf("%w: no target months in completion event", domain.ErrValidation)
	}
	if totalAmount <= 0 {
		return fmt.Errorf("%w: non-positive charged amount", domain.ErrValidation)
	}
	if externalRef == "" {
		return fmt.Errorf("%w: missing external reference", domain.ErrValidation)
	}

	seen, err := s.payments.CountByExternalRef(ctx, externalRef)
	if err != nil {
		return err
	}
	if seen > 0 {
		slog.InfoContext(ctx, "completion event already processed, skipping",
			"external_ref", externalRef, "contractor_id", contractorID)
		return nil
	}

	// Floor division: the last-yen drift on uneven totals is accepted,
	// matching what the provider actually charged per line item.
	amountPerMonth := totalAmount / int64(len(months))

	records := make([]domain.Payment, len(months))
	for i, m := range months {
		records[i] = domain.Payment{
			ID:           uuid.New(),
			ContractorID: contractorID,
			Amount:       amountPerMonth,
			Currency:     domain.Currency,
			TargetMonth:  m,
			Status:       domain.StatusSucceeded,
			Method:       domain.MethodCard,
			ExternalRef:  externalRef,
		}
	}

	if err := s.payments.InsertPayments(ctx, records); err != nil {
		slog.ErrorContext(ctx, "card checkout completion failed",
			"contractor_id", contractorID, "external_ref", externalRef, "error", err)
		return err
	}

	slog.InfoContext(ctx, "card payment recorded",
		"contractor_id", contractorID, "months", months, "amount_per_month", amountPerMonth)
	return nil
}

// ReportBankTransfer creates one pending record per reported month,
// sharing the submitter name and transfer date. Amounts come from the
// contractor's current monthly fee.
func (s *PaymentService) ReportBankTransfer(ctx context.Context, contractorID uuid.UUID, months []string, transferName, transferDate string) error {
	target, err := parseMonths(months)
	if err != nil {
		return err
	}
	if transferName == "" || transferDate == "" {
		return fmt.Errorf("%w: transfer name and date are required", domain.ErrValidation)
	}

	contractor, err := s.contractors.GetContractor(ctx, contractorID)
	if err != nil {
		return err
	}

	records := make([]domain.Payment, len(target))
	for i, m := range target {
		records[i] = domain.Payment{
			ID:           uuid.New(),
			ContractorID: contractorID,
			Amount:       contractor.MonthlyFee,
			Currency:     domain.Currency,
			TargetMonth:  m,
			Status:       domain.StatusPending,
			Method:       domain.MethodBankTransfer,
			TransferName: transferName,
			TransferDate: transferDate,
		}
	}

	if err := s.payments.InsertPayments(ctx, records); err != nil {
		slog.ErrorContext(ctx, "bank transfer report failed",
			"contractor_id", contractorID, "months", target, "error", err)
		return err
	}

	slog.InfoContext(ctx, "bank transfer reported",
		"contractor_id", contractorID, "months", target, "transfer_name", transferName)

	if s.notifier != nil {
		s.notifier.TransferReported(ctx, *contractor, target, transferName, transferDate)
	}
	return nil
}

// RecordManualPayment creates a single succeeded record on behalf of
// the owner, e.g. for cash handed over in person.
func (s *PaymentService) RecordManualPayment(ctx context.Context, contractorID uuid.UUID, amount int64, targetMonth string, method domain.PaymentMethod) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if method != domain.MethodCash && method != domain.MethodBankTransfer {
		return fmt.Errorf("%w: unsupported manual payment method %q", domain.ErrValidation, method)
	}
	target, err := domain.ParseMonth(targetMonth)
	if err != nil {
		return err
	}

	if _, err := s.contractors.GetContractor(ctx, contractorID); err != nil {
		return err
	}

	record := domain.Payment{
		ID:           uuid.New(),
		ContractorID: contractorID,
		Amount:       amount,
		Currency:     domain.Currency,
		TargetMonth:  target,
		Status:       domain.StatusSucceeded,
		Method:       method,
	}

	if err := s.payments.InsertPayments(ctx, []domain.Payment{record}); err != nil {
		slog.ErrorContext(ctx, "manual payment failed",
			"contractor_id", contractorID, "month", target, "error", err)
		return err
	}

	slog.InfoContext(ctx, "manual payment recorded",
		"contractor_id", contractorID, "month", target, "amount", amount, "method", method)
	return nil
}

// ApproveBankTransfers settles a batch of pending records in one
// all-or-nothing transition.
func (s *PaymentService) ApproveBankTransfers(ctx context.Context, paymentIDs []uuid.UUID) error {
	if err := validateIDs(paymentIDs); err != nil {
		return err
	}
	if err := s.payments.UpdatePaymentStatus(ctx, paymentIDs, domain.StatusPending, domain.StatusSucceeded); err != nil {
		slog.ErrorContext(ctx, "transfer approval failed", "payment_ids", paymentIDs, "error", err)
		return err
	}
	slog.InfoContext(ctx, "bank transfers approved", "count", len(paymentIDs))
	return nil
}

// RejectBankTransfers marks a fraudulent or mistaken report as
// rejected. Only pending records can be rejected.
func (s *PaymentService) RejectBankTransfers(ctx context.Context, paymentIDs []uuid.UUID) error {
	if err := validateIDs(paymentIDs); err != nil {
		return err
	}
	if err := s.payments.UpdatePaymentStatus(ctx, paymentIDs, domain.StatusPending, domain.StatusRejected); err != nil {
		slog.ErrorContext(ctx, "transfer rejection failed", "payment_ids", paymentIDs, "error", err)
		return err
	}
	slog.InfoContext(ctx, "bank transfers rejected", "count", len(paymentIDs))
	return nil
}

// PendingTransferGroups returns the grouped reports awaiting review.
func (s *PaymentService) PendingTransferGroups(ctx context.Context) ([]billing.TransferGroup, error) {
	pending, err := s.payments.ListPendingTransfers(ctx)
	if err != nil {
		return nil, err
	}
	return billing.SortedTransferGroups(pending), nil
}

// Receipt fetches a settled payment scoped to its contractor. Records
// belonging to other contractors are indistinguishable from missing.
func (s *PaymentService) Receipt(ctx context.Context, contractorID, paymentID uuid.UUID) (*domain.Payment, error) {
	p, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.ContractorID != contractorID || p.Status != domain.StatusSucceeded {
		return nil, fmt.Errorf("receipt: %w", domain.ErrNotFound)
	}
	return p, nil
}

// ContractorStatus is one row of the admin dashboard.
type ContractorStatus struct {
	Contractor domain.Contractor `json:"contractor"`
	Paid       bool              `json:"paid"`
}

// Dashboard lists every contractor with a settled-this-month flag.
func (s *PaymentService) Dashboard(ctx context.Context) (domain.Month, []ContractorStatus, error) {
	current := domain.MonthOf(s.now())

	contractors, err := s.contractors.ListContractors(ctx)
	if err != nil {
		return "", nil, err
	}
	paidIDs, err := s.payments.ListSucceededContractorIDs(ctx, current)
	if err != nil {
		return "", nil, err
	}

	paid := make(map[uuid.UUID]bool, len(paidIDs))
	for _, id := range paidIDs {
		paid[id] = true
	}

	statuses := make([]ContractorStatus, len(contractors))
	for i, c := range contractors {
		statuses[i] = ContractorStatus{Contractor: c, Paid: paid[c.ID]}
	}
	return current, statuses, nil
}

func parseMonths(months []string) ([]domain.Month, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("%w: at least one month is required", domain.ErrValidation)
	}

	seen := make(map[domain.Month]bool, len(months))
	parsed := make([]domain.Month, 0, len(months))
	for _, raw := range months {
		m, err := domain.ParseMonth(raw)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			return nil, fmt.Errorf("%w: duplicate month %q", domain.ErrValidation, m)
		}
		seen[m] = true
		parsed = append(parsed, m)
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i] < parsed[j] })
	return parsed, nil
}

func validateIDs(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one payment id is required", domain.ErrValidation)
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return fmt.Errorf("%w: empty payment id", domain.ErrValidation)
		}
	}
	return nil
}
