package billing_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-portal/internal/billing"
	"parking-portal/internal/domain"
)

func pendingTransfer(contractor uuid.UUID, month domain.Month, name, date string) domain.Payment {
	return domain.Payment{
		ID:           uuid.New(),
		ContractorID: contractor,
		Amount:       10000,
		Currency:     domain.Currency,
		TargetMonth:  month,
		Status:       domain.StatusPending,
		Method:       domain.MethodBankTransfer,
		TransferName: name,
		TransferDate: date,
	}
}

func TestGroupPendingTransfers(t *testing.T) {
	contractorA := uuid.New()
	contractorB := uuid.New()

	sameTransfer1 := pendingTransfer(contractorA, "2024-01", "YAMADA TARO", "2024-02-05")
	sameTransfer2 := pendingTransfer(contractorA, "2024-02", "YAMADA TARO", "2024-02-05")
	otherDate := pendingTransfer(contractorA, "2024-03", "YAMADA TARO", "2024-03-05")
	otherContractor := pendingTransfer(contractorB, "2024-01", "YAMADA TARO", "2024-02-05")

	groups := billing.GroupPendingTransfers([]domain.Payment{sameTransfer1, sameTransfer2, otherDate, otherContractor})
	require.Len(t, groups, 3)

	sameKey := billing.GroupKey{ContractorID: contractorA, TransferDate: "2024-02-05", TransferName: "YAMADA TARO"}
	assert.Equal(t, []domain.Payment{sameTransfer1, sameTransfer2}, groups[sameKey])
	assert.Len(t, groups[billing.GroupKey{ContractorID: contractorA, TransferDate: "2024-03-05", TransferName: "YAMADA TARO"}], 1)
	assert.Len(t, groups[billing.GroupKey{ContractorID: contractorB, TransferDate: "2024-02-05", TransferName: "YAMADA TARO"}], 1)
}

func TestGroupPendingTransfersLegacyRecordsStaySingletons(t *testing.T) {
	contractor := uuid.New()

	legacy1 := pendingTransfer(contractor, "2024-01", "", "")
	legacy2 := pendingTransfer(contractor, "2024-02", "", "")

	groups := billing.GroupPendingTransfers([]domain.Payment{legacy1, legacy2})
	require.Len(t, groups, 2)
	assert.Equal(t, []domain.Payment{legacy1}, groups[billing.GroupKey{ContractorID: contractor, RecordID: legacy1.ID}])
	assert.Equal(t, []domain.Payment{legacy2}, groups[billing.GroupKey{ContractorID: contractor, RecordID: legacy2.ID}])
}

func TestSortedTransferGroups(t *testing.T) {
	contractor := uuid.New()
	base := time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC)

	newer := pendingTransfer(contractor, "2024-03", "SUZUKI", "2024-03-01")
	newer.CreatedAt = base.Add(time.Hour)

	olderFeb := pendingTransfer(contractor, "2024-02", "YAMADA", "2024-02-05")
	olderFeb.CreatedAt = base
	olderJan := pendingTransfer(contractor, "2024-01", "YAMADA", "2024-02-05")
	olderJan.CreatedAt = base

	groups := billing.SortedTransferGroups([]domain.Payment{newer, olderFeb, olderJan})
	require.Len(t, groups, 2)

	// Oldest report comes first, with its months ascending.
	assert.Equal(t, "YAMADA", groups[0].Key.TransferName)
	assert.Equal(t, []domain.Month{"2024-01", "2024-02"}, []domain.Month{groups[0].Payments[0].TargetMonth, groups[0].Payments[1].TargetMonth})
	assert.Equal(t, int64(20000), groups[0].Total)
	assert.Equal(t, "SUZUKI", groups[1].Key.TransferName)
}
