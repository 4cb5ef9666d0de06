package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-05-17", "2024-05-17"},
		{"2024/05/17", "2024-05-17"},
		{"17.05.2024", "2024-05-17"},
		{"17-05-2024", "2024-05-17"},
		{"17/05/2024", "2024-05-17"},
		{" 2024-05-17 ", "2024-05-17"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			parsed, err := ParseDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ToISODate(parsed))
		})
	}

	_, err := ParseDate("not a date")
	assert.Error(t, err)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-05", MonthKey("2024-05-17"))
	assert.Equal(t, "2024-05", MonthKey("2024-05"))
	assert.Equal(t, "2024", MonthKey("2024"))
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-05-17"))
	assert.False(t, IsISODate("2024-5-17"))
	assert.False(t, IsISODate("17.05.2024"))
	assert.False(t, IsISODate(""))
}

func TestIsMonthKey(t *testing.T) {
	assert.True(t, IsMonthKey("2024-05"))
	assert.False(t, IsMonthKey("2024-05-17"))
	assert.False(t, IsMonthKey("mei"))
}

func TestNormalizeISO(t *testing.T) {
	iso, err := NormalizeISO("17.05.2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-17", iso)

	_, err = NormalizeISO("yesterday")
	assert.Error(t, err)
}

func TestTodayIsISO(t *testing.T) {
	assert.True(t, IsISODate(Today()))
}

func TestDaysAgo(t *testing.T) {
	assert.Equal(t, Today(), DaysAgo(0))

	yesterday, err := time.Parse(DateLayoutISO, DaysAgo(1))
	require.NoError(t, err)
	today, err := time.Parse(DateLayoutISO, Today())
	require.NoError(t, err)
	assert.True(t, yesterday.Before(today))
}
