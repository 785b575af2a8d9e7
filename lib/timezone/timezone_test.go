package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthID(t *testing.T) {
	cases := []struct {
		now      time.Time
		expected string
	}{
		{
			now:      time.Date(2024, time.May, 1, 0, 0, 0, 0, Location),
			expected: "2024-05",
		},
		{
			now:      time.Date(2024, time.December, 31, 23, 59, 0, 0, Location),
			expected: "2024-12",
		},
		{
			now:      time.Date(2025, time.January, 1, 0, 0, 0, 0, Location),
			expected: "2025-01",
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, MonthID(test.now))
	}
}

func TestIsLastDayOfMonth(t *testing.T) {
	cases := []struct {
		now      time.Time
		expected bool
	}{
		{
			now:      time.Date(2024, time.May, 31, 10, 0, 0, 0, Location),
			expected: true,
		},
		{
			now:      time.Date(2024, time.May, 30, 10, 0, 0, 0, Location),
			expected: false,
		},
		{
			// leap year february
			now:      time.Date(2024, time.February, 29, 0, 0, 0, 0, Location),
			expected: true,
		},
		{
			now:      time.Date(2023, time.February, 28, 0, 0, 0, 0, Location),
			expected: true,
		},
		{
			now:      time.Date(2024, time.February, 28, 0, 0, 0, 0, Location),
			expected: false,
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, IsLastDayOfMonth(test.now), test.now)
	}
}

func TestDateString(t *testing.T) {
	require.Equal(
		t,
		"2024-03-10",
		DateString(time.Date(2024, time.March, 10, 12, 30, 0, 0, Location)),
	)
}
