package tracker

import (
	"testing"

	"xptracker-backend/lib/xpstore"

	"github.com/stretchr/testify/require"
)

func TestAccumulateMonthAdds(t *testing.T) {
	totals := xpstore.MonthTotals{
		Month:  "2024-05",
		Totals: map[string]int{"A": 300},
	}

	totals = AccumulateMonth(totals, "2024-05", []Entry{
		{Name: "A", Gain: 50},
		{Name: "B", Gain: 20},
	})

	require.Equal(t, "2024-05", totals.Month)
	require.Equal(t, map[string]int{"A": 350, "B": 20}, totals.Totals)
}

func TestAccumulateMonthResetsOnRollover(t *testing.T) {
	totals := xpstore.MonthTotals{
		Month:  "2024-05",
		Totals: map[string]int{"A": 300},
	}

	totals = AccumulateMonth(totals, "2024-06", []Entry{
		{Name: "A", Gain: 50},
	})

	require.Equal(t, "2024-06", totals.Month)
	require.Equal(t, map[string]int{"A": 50}, totals.Totals)
}

func TestAccumulateMonthFreshState(t *testing.T) {
	totals := AccumulateMonth(xpstore.MonthTotals{}, "2024-06", []Entry{
		{Name: "A", Gain: 10},
	})
	require.Equal(t, "2024-06", totals.Month)
	require.Equal(t, map[string]int{"A": 10}, totals.Totals)
}

func TestMonthRanking(t *testing.T) {
	totals := xpstore.MonthTotals{
		Month: "2024-05",
		Totals: map[string]int{
			"A": 300,
			"B": 1000,
			"C": 0,
			"D": -5,
			"E": 300,
		},
	}

	ranking := MonthRanking(totals)
	require.Equal(t, []Entry{
		{Name: "B", Gain: 1000, Raw: "+1,000"},
		{Name: "A", Gain: 300, Raw: "+300"},
		{Name: "E", Gain: 300, Raw: "+300"},
	}, ranking)
}
