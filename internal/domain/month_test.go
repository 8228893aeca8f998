package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-portal/internal/domain"
)

func TestParseMonth(t *testing.T) {
	m, err := domain.ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, domain.Month("2024-03"), m)

	for _, bad := range []string{"", "2024", "2024-13", "2024-3", "03-2024", "2024-03-01"} {
		_, err := domain.ParseMonth(bad)
		assert.ErrorIs(t, err, domain.ErrValidation, "input %q", bad)
	}
}

func TestMonthNext(t *testing.T) {
	assert.Equal(t, domain.Month("2024-02"), domain.Month("2024-01").Next())
	assert.Equal(t, domain.Month("2025-01"), domain.Month("2024-12").Next())
}

func TestMonthOrderingIsChronological(t *testing.T) {
	assert.True(t, domain.Month("2023-12").Before("2024-01"))
	assert.False(t, domain.Month("2024-02").Before("2024-02"))
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, domain.Month("2024-03"), domain.MonthOf(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)))
}
