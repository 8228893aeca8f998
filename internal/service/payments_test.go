package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"parking-portal/internal/domain"
	"parking-portal/internal/service"
	servicemocks "parking-portal/internal/service/mocks"
	storagemocks "parking-portal/internal/storage/mocks"
)

type fixture struct {
	payments    *storagemocks.MockPaymentStorage
	contractors *storagemocks.MockContractorStorage
	provider    *servicemocks.MockCheckoutProvider
	notifier    *servicemocks.MockNotifier
	svc         *service.PaymentService
}

func newFixture(t *testing.T, current string) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		payments:    storagemocks.NewMockPaymentStorage(ctrl),
		contractors: storagemocks.NewMockContractorStorage(ctrl),
		provider:    servicemocks.NewMockCheckoutProvider(ctrl),
		notifier:    servicemocks.NewMockNotifier(ctrl),
	}
	now, err := time.Parse("2006-01", current)
	require.NoError(t, err)
	f.svc = service.NewPaymentService(f.payments, f.contractors, f.provider, f.notifier,
		service.WithNow(func() time.Time { return now }))
	return f
}

func testContractor(fee int64, start, end domain.Month) *domain.Contractor {
	return &domain.Contractor{
		ID:            uuid.New(),
		Name:          "Yamada Taro",
		PhoneNumber:   "09012345678",
		MonthlyFee:    fee,
		ContractStart: start,
		ContractEnd:   end,
	}
}

func TestReportBankTransfer(t *testing.T) {
	f := newFixture(t, "2024-04")
	contractor := testContractor(15000, "2024-01", "")
	ctx := context.Background()

	f.contractors.EXPECT().GetContractor(ctx, contractor.ID).Return(contractor, nil)

	var inserted []domain.Payment
	f.payments.EXPECT().InsertPayments(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.Payment) error {
			inserted = records
			return nil
		})
	f.notifier.EXPECT().TransferReported(ctx, *contractor,
		[]domain.Month{"2024-01", "2024-02"}, "YAMADA TARO", "2024-04-05")

	err := f.svc.ReportBankTransfer(ctx, contractor.ID, []string{"2024-02", "2024-01"}, "YAMADA TARO", "2024-04-05")
	require.NoError(t, err)

	require.Len(t, inserted, 2)
	// Months are sorted ascending; amounts come from the contractor's
	// current fee, never from the request.
	assert.Equal(t, domain.Month("2024-01"), inserted[0].TargetMonth)
	assert.Equal(t, domain.Month("2024-02"), inserted[1].TargetMonth)
	for _, p := range inserted {
		assert.Equal(t, int64(15000), p.Amount)
		assert.Equal(t, domain.StatusPending, p.Status)
		assert.Equal(t, domain.MethodBankTransfer, p.Method)
		assert.Equal(t, "YAMADA TARO", p.TransferName)
		assert.Equal(t, "2024-04-05", p.TransferDate)
		assert.Equal(t, domain.Currency, p.Currency)
	}
}

func TestReportBankTransferValidation(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name   string
		months []string
		tname  string
		tdate  string
	}{
		{"no months", nil, "YAMADA", "2024-04-05"},
		{"malformed month", []string{"2024-13"}, "YAMADA", "2024-04-05"},
		{"duplicate month", []string{"2024-01", "2024-01"}, "YAMADA", "2024-04-05"},
		{"missing transfer name", []string{"2024-01"}, "", "2024-04-05"},
		{"missing transfer date", []string{"2024-01"}, "YAMADA", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.ReportBankTransfer(ctx, id, tt.months, tt.tname, tt.tdate)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReportBankTransferContractorMissing(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	id := uuid.New()

	f.contractors.EXPECT().GetContractor(ctx, id).Return(nil, domain.ErrNotFound)

	err := f.svc.ReportBankTransfer(ctx, id, []string{"2024-01"}, "YAMADA", "2024-04-05")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompleteCardCheckoutSplitsAmountAcrossMonths(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	id := uuid.New()

	f.payments.EXPECT().CountByExternalRef(ctx, "cs_test_123").Return(int64(0), nil)

	var inserted []domain.Payment
	f.payments.EXPECT().InsertPayments(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.Payment) error {
			inserted = records
			return nil
		})

	// 25000 / 3 floors to 8333 per month; the drift is accepted.
	err := f.svc.CompleteCardCheckout(ctx, id, []domain.Month{"2024-01", "2024-02", "2024-03"}, 25000, "cs_test_123")
	require.NoError(t, err)

	require.Len(t, inserted, 3)
	for _, p := range inserted {
		assert.Equal(t, int64(8333), p.Amount)
		assert.Equal(t, domain.StatusSucceeded, p.Status)
		assert.Equal(t, domain.MethodCard, p.Method)
		assert.Equal(t, "cs_test_123", p.ExternalRef)
	}
}

func TestCompleteCardCheckoutIsIdempotentPerExternalRef(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()

	// Already recorded: the re-delivered webhook must not insert again.
	f.payments.EXPECT().CountByExternalRef(ctx, "cs_test_123").Return(int64(2), nil)

	err := f.svc.CompleteCardCheckout(ctx, uuid.New(), []domain.Month{"2024-01", "2024-02"}, 20000, "cs_test_123")
	assert.NoError(t, err)
}

func TestCompleteCardCheckoutValidation(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	id := uuid.New()

	assert.ErrorIs(t, f.svc.CompleteCardCheckout(ctx, id, nil, 10000, "cs_1"), domain.ErrValidation)
	assert.ErrorIs(t, f.svc.CompleteCardCheckout(ctx, id, []domain.Month{"2024-01"}, 0, "cs_1"), domain.ErrValidation)
	assert.ErrorIs(t, f.svc.CompleteCardCheckout(ctx, id, []domain.Month{"2024-01"}, 10000, ""), domain.ErrValidation)
}

func TestRecordManualPayment(t *testing.T) {
	f := newFixture(t, "2024-04")
	contractor := testContractor(15000, "2024-01", "")
	ctx := context.Background()

	f.contractors.EXPECT().GetContractor(ctx, contractor.ID).Return(contractor, nil)

	var inserted []domain.Payment
	f.payments.EXPECT().InsertPayments(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.Payment) error {
			inserted = records
			return nil
		})

	err := f.svc.RecordManualPayment(ctx, contractor.ID, 15000, "2024-02", domain.MethodCash)
	require.NoError(t, err)

	require.Len(t, inserted, 1)
	assert.Equal(t, domain.StatusSucceeded, inserted[0].Status)
	assert.Equal(t, domain.MethodCash, inserted[0].Method)
	assert.Equal(t, domain.Month("2024-02"), inserted[0].TargetMonth)
	assert.Empty(t, inserted[0].TransferName)
}

func TestRecordManualPaymentValidation(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	id := uuid.New()

	assert.ErrorIs(t, f.svc.RecordManualPayment(ctx, id, 0, "2024-02", domain.MethodCash), domain.ErrValidation)
	assert.ErrorIs(t, f.svc.RecordManualPayment(ctx, id, -100, "2024-02", domain.MethodCash), domain.ErrValidation)
	assert.ErrorIs(t, f.svc.RecordManualPayment(ctx, id, 100, "bad-month", domain.MethodCash), domain.ErrValidation)
	assert.ErrorIs(t, f.svc.RecordManualPayment(ctx, id, 100, "2024-02", domain.MethodCard), domain.ErrValidation)
}

func TestApproveBankTransfers(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	f.payments.EXPECT().UpdatePaymentStatus(ctx, ids, domain.StatusPending, domain.StatusSucceeded).Return(nil)
	assert.NoError(t, f.svc.ApproveBankTransfers(ctx, ids))
}

func TestApproveBankTransfersBatchFailureSurfaces(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New()}

	f.payments.EXPECT().UpdatePaymentStatus(ctx, ids, domain.StatusPending, domain.StatusSucceeded).
		Return(domain.ErrNotFound)
	assert.ErrorIs(t, f.svc.ApproveBankTransfers(ctx, ids), domain.ErrNotFound)
}

func TestApproveBankTransfersValidation(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.ApproveBankTransfers(ctx, nil), domain.ErrValidation)
	assert.ErrorIs(t, f.svc.ApproveBankTransfers(ctx, []uuid.UUID{uuid.Nil}), domain.ErrValidation)
}

func TestRejectBankTransfers(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New()}

	f.payments.EXPECT().UpdatePaymentStatus(ctx, ids, domain.StatusPending, domain.StatusRejected).Return(nil)
	assert.NoError(t, f.svc.RejectBankTransfers(ctx, ids))
}

func TestSummaryComputesUnpaidMonths(t *testing.T) {
	f := newFixture(t, "2024-04")
	contractor := testContractor(15000, "2024-01", "")
	ctx := context.Background()

	history := []domain.Payment{
		{ContractorID: contractor.ID, TargetMonth: "2024-02", Status: domain.StatusSucceeded},
		{ContractorID: contractor.ID, TargetMonth: "2024-03", Status: domain.StatusPending},
	}
	f.contractors.EXPECT().GetContractor(ctx, contractor.ID).Return(contractor, nil)
	f.payments.EXPECT().ListPaymentsByContractor(ctx, contractor.ID).Return(history, nil)

	summary, err := f.svc.Summary(ctx, contractor.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.Month("2024-04"), summary.CurrentMonth)
	// Pending records do not settle a month.
	assert.Equal(t, []domain.Month{"2024-01", "2024-03", "2024-04"}, summary.UnpaidMonths)
	assert.Equal(t, history, summary.Payments)
}

func TestStartCheckout(t *testing.T) {
	f := newFixture(t, "2024-04")
	contractor := testContractor(15000, "2024-01", "")
	ctx := context.Background()

	f.contractors.EXPECT().GetContractor(ctx, contractor.ID).Return(contractor, nil)
	f.provider.EXPECT().CreateCheckoutSession(ctx, service.CheckoutRequest{
		ContractorID:   contractor.ID,
		ContractorName: contractor.Name,
		Months:         []domain.Month{"2024-01", "2024-02"},
		AmountPerMonth: 15000,
		SuccessURL:     "https://portal.example/ok",
		CancelURL:      "https://portal.example/cancel",
	}).Return("https://checkout.example/session", nil)

	url, err := f.svc.StartCheckout(ctx, contractor.ID, []string{"2024-02", "2024-01"},
		"https://portal.example/ok", "https://portal.example/cancel")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/session", url)
}

func TestStartCheckoutProviderFailure(t *testing.T) {
	f := newFixture(t, "2024-04")
	contractor := testContractor(15000, "2024-01", "")
	ctx := context.Background()

	f.contractors.EXPECT().GetContractor(ctx, contractor.ID).Return(contractor, nil)
	f.provider.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).
		Return("", errors.New("provider down"))

	_, err := f.svc.StartCheckout(ctx, contractor.ID, []string{"2024-01"}, "s", "c")
	assert.ErrorIs(t, err, domain.ErrExternal)
}

func TestReceiptScopedToContractor(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	payment := &domain.Payment{ID: uuid.New(), ContractorID: owner, Status: domain.StatusSucceeded}

	f.payments.EXPECT().GetPayment(ctx, payment.ID).Return(payment, nil).Times(2)

	got, err := f.svc.Receipt(ctx, owner, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment, got)

	_, err = f.svc.Receipt(ctx, stranger, payment.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiptPendingPaymentHidden(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()
	owner := uuid.New()
	payment := &domain.Payment{ID: uuid.New(), ContractorID: owner, Status: domain.StatusPending}

	f.payments.EXPECT().GetPayment(ctx, payment.ID).Return(payment, nil)

	_, err := f.svc.Receipt(ctx, owner, payment.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t, "2024-04")
	ctx := context.Background()

	paid := testContractor(15000, "2024-01", "")
	unpaid := testContractor(12000, "2024-01", "")

	f.contractors.EXPECT().ListContractors(ctx).Return([]domain.Contractor{*paid, *unpaid}, nil)
	f.payments.EXPECT().ListSucceededContractorIDs(ctx, domain.Month("2024-04")).
		Return([]uuid.UUID{paid.ID}, nil)

	current, statuses, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Month("2024-04"), current)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Paid)
	assert.False(t, statuses[1].Paid)
}
