// internal/billing/months.go

// Package billing holds the pure reconciliation logic: enumerating
// billing periods, deriving unpaid months from contract bounds and
// payment history, and grouping pending bank-transfer reports. Nothing
// here touches storage or the clock; callers inject "now".
package billing

import (
	"parking-portal/internal/domain"
)

// EnumerateMonths returns every month from start to end inclusive, in
// ascending order. The range is empty when start > end or when either
// bound is not a valid month.
func EnumerateMonths(start, end domain.Month) []domain.Month {
	st, err := start.Time()
	if err != nil {
		return nil
	}
	en, err := end.Time()
	if err != nil {
		return nil
	}

	var months []domain.Month
	for t := st; !t.After(en); t = t.AddDate(0, 1, 0) {
		months = append(months, domain.MonthOf(t))
	}
	return months
}
