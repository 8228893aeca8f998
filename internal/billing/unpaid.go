// internal/billing/unpaid.go
package billing

import (
	"parking-portal/internal/domain"
)

// CalculateUnpaidMonths derives the outstanding billing periods for a
// contract from its bounds and the set of already settled months.
//
// A contract with no recorded start is treated as starting in the
// current month, so a missing start never back-bills. Billing is never
// generated ahead of the current month: the effective end is the
// earlier of currentMonth and contractEnd. The result is ascending,
// oldest first: the portal's "pay N oldest months" selection relies on
// a prefix of length K always meaning the K oldest unpaid months.
//
// Degenerate ranges (contract starting in the future, or end before
// start) yield an empty list rather than an error.
func CalculateUnpaidMonths(contractStart, contractEnd domain.Month, paid map[domain.Month]bool, currentMonth domain.Month) []domain.Month {
	start := contractStart
	if start.IsZero() {
		start = currentMonth
	}

	end := currentMonth
	if !contractEnd.IsZero() && contractEnd.Before(currentMonth) {
		end = contractEnd
	}

	var unpaid []domain.Month
	for _, m := range EnumerateMonths(start, end) {
		if !paid[m] {
			unpaid = append(unpaid, m)
		}
	}
	return unpaid
}

// PaidMonthSet collects the target months of succeeded payments.
// Pending and rejected records do not settle a period.
func PaidMonthSet(payments []domain.Payment) map[domain.Month]bool {
	paid := make(map[domain.Month]bool, len(payments))
	for _, p := range payments {
		if p.Status == domain.StatusSucceeded {
			paid[p.TargetMonth] = true
		}
	}
	return paid
}
