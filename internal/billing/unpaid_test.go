package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"parking-portal/internal/billing"
	"parking-portal/internal/domain"
)

func paidSet(months ...domain.Month) map[domain.Month]bool {
	s := make(map[domain.Month]bool, len(months))
	for _, m := range months {
		s[m] = true
	}
	return s
}

func TestCalculateUnpaidMonths(t *testing.T) {
	tests := []struct {
		name    string
		start   domain.Month
		end     domain.Month
		paid    map[domain.Month]bool
		current domain.Month
		want    []domain.Month
	}{
		{
			name:    "open contract, nothing paid",
			start:   "2024-01",
			current: "2024-03",
			want:    []domain.Month{"2024-01", "2024-02", "2024-03"},
		},
		{
			name:    "contract ended before current month stops at end",
			start:   "2024-01",
			end:     "2024-03",
			current: "2024-05",
			want:    []domain.Month{"2024-01", "2024-02", "2024-03"},
		},
		{
			name:    "contract end in the future never bills ahead",
			start:   "2024-01",
			end:     "2024-12",
			current: "2024-03",
			want:    []domain.Month{"2024-01", "2024-02", "2024-03"},
		},
		{
			name:    "missing start falls back to current month",
			current: "2024-03",
			want:    []domain.Month{"2024-03"},
		},
		{
			name:    "everything paid yields empty",
			start:   "2024-01",
			paid:    paidSet("2024-01", "2024-02"),
			current: "2024-02",
			want:    nil,
		},
		{
			name:    "paid months are filtered out",
			start:   "2024-01",
			paid:    paidSet("2024-02"),
			current: "2024-04",
			want:    []domain.Month{"2024-01", "2024-03", "2024-04"},
		},
		{
			name:    "contract starting in the future yields empty",
			start:   "2024-06",
			current: "2024-03",
			want:    nil,
		},
		{
			name:    "end before start yields empty instead of erroring",
			start:   "2024-06",
			end:     "2024-02",
			current: "2024-08",
			want:    nil,
		},
		{
			name:    "single-month contract",
			start:   "2024-03",
			end:     "2024-03",
			current: "2024-03",
			want:    []domain.Month{"2024-03"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.CalculateUnpaidMonths(tt.start, tt.end, tt.paid, tt.current)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateUnpaidMonthsNeverExceedsCurrent(t *testing.T) {
	current := domain.Month("2024-03")
	for _, end := range []domain.Month{"", "2024-02", "2024-03", "2025-12"} {
		for _, m := range billing.CalculateUnpaidMonths("2023-06", end, nil, current) {
			assert.False(t, current.Before(m), "month %s exceeds current %s (end=%q)", m, current, end)
		}
	}
}

func TestCalculateUnpaidMonthsMatchesEnumerationWhenNothingPaid(t *testing.T) {
	got := billing.CalculateUnpaidMonths("2023-06", "", nil, "2024-03")
	assert.Equal(t, billing.EnumerateMonths("2023-06", "2024-03"), got)
}

func TestCalculateUnpaidMonthsIsPure(t *testing.T) {
	paid := paidSet("2024-01")
	first := billing.CalculateUnpaidMonths("2023-10", "", paid, "2024-04")
	second := billing.CalculateUnpaidMonths("2023-10", "", paid, "2024-04")
	assert.Equal(t, first, second)
}

func TestPaidMonthSetIgnoresPendingAndRejected(t *testing.T) {
	payments := []domain.Payment{
		{TargetMonth: "2024-01", Status: domain.StatusSucceeded},
		{TargetMonth: "2024-02", Status: domain.StatusPending},
		{TargetMonth: "2024-03", Status: domain.StatusRejected},
	}
	assert.Equal(t, paidSet("2024-01"), billing.PaidMonthSet(payments))
}
