// internal/billing/transfer.go
package billing

import (
	"sort"

	"github.com/google/uuid"

	"parking-portal/internal/domain"
)

// GroupKey identifies one reported physical bank transfer. Records that
// lack transfer metadata are keyed by their own RecordID instead, so a
// legacy record always forms a singleton group and never merges with
// anything else.
type GroupKey struct {
	ContractorID uuid.UUID `json:"contractor_id"`
	TransferDate string    `json:"transfer_date,omitempty"`
	TransferName string    `json:"transfer_name,omitempty"`
	RecordID     uuid.UUID `json:"record_id,omitempty"`
}

// TransferGroup is the unit the owner approves or rejects: all months a
// contractor reported as covered by a single transfer.
type TransferGroup struct {
	Key      GroupKey         `json:"key"`
	Payments []domain.Payment `json:"payments"`
	Total    int64            `json:"total"`
}

func keyFor(p domain.Payment) GroupKey {
	if p.HasTransferMeta() {
		return GroupKey{
			ContractorID: p.ContractorID,
			TransferDate: p.TransferDate,
			TransferName: p.TransferName,
		}
	}
	return GroupKey{ContractorID: p.ContractorID, RecordID: p.ID}
}

// GroupPendingTransfers buckets pending bank-transfer records by the
// transfer they report. Records within a group keep their input order.
func GroupPendingTransfers(pending []domain.Payment) map[GroupKey][]domain.Payment {
	groups := make(map[GroupKey][]domain.Payment)
	for _, p := range pending {
		k := keyFor(p)
		groups[k] = append(groups[k], p)
	}
	return groups
}

// SortedTransferGroups flattens GroupPendingTransfers output into a
// deterministic list for the admin view: oldest report first, months
// ascending within each group.
func SortedTransferGroups(pending []domain.Payment) []TransferGroup {
	grouped := GroupPendingTransfers(pending)

	groups := make([]TransferGroup, 0, len(grouped))
	for k, payments := range grouped {
		sort.Slice(payments, func(i, j int) bool {
			return payments[i].TargetMonth < payments[j].TargetMonth
		})
		var total int64
		for _, p := range payments {
			total += p.Amount
		}
		groups = append(groups, TransferGroup{Key: k, Payments: payments, Total: total})
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i].Payments[0], groups[j].Payments[0]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return groups
}
