// internal/domain/month.go
package domain

import (
	"fmt"
	"time"
)

// Month is a calendar year-month token in "YYYY-MM" form, the atomic
// billing period key. The zero-padded format makes lexicographic order
// coincide with chronological order, so Months compare with < directly.
// The empty string means "not set".
type Month string

const monthLayout = "2006-01"

// ParseMonth validates s as a YYYY-MM token.
func ParseMonth(s string) (Month, error) {
	if _, err := time.Parse(monthLayout, s); err != nil {
		return "", fmt.Errorf("%w: month must be in YYYY-MM format: %q", ErrValidation, s)
	}
	return Month(s), nil
}

// MonthOf truncates t to its calendar month.
func MonthOf(t time.Time) Month {
	return Month(t.Format(monthLayout))
}

// Time returns the first instant of the month in UTC.
func (m Month) Time() (time.Time, error) {
	return time.Parse(monthLayout, string(m))
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	t, err := m.Time()
	if err != nil {
		return ""
	}
	return MonthOf(t.AddDate(0, 1, 0))
}

func (m Month) Before(other Month) bool {
	return m < other
}

func (m Month) IsZero() bool {
	return m == ""
}

func (m Month) String() string {
	return string(m)
}
