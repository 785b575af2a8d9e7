package tracker

import (
	"testing"

	"xptracker-backend/lib/xpstore"

	"github.com/stretchr/testify/require"
)

func TestRankFiltersNonGains(t *testing.T) {
	snapshot := xpstore.Snapshot{
		"A": {"2024-01-02": "+100"},
		"B": {"2024-01-02": "-50"},
		"C": {"2024-01-01": "+10"},
		"D": {"2024-01-02": "0"},
		"E": {},
	}

	ranking := Rank(snapshot, "2024-01-02")
	require.Equal(t, []Entry{
		{Name: "A", Gain: 100, Raw: "+100"},
	}, ranking)
}

func TestRankOrdering(t *testing.T) {
	snapshot := xpstore.Snapshot{
		"Beta":  {"2024-01-02": "+500"},
		"Alpha": {"2024-01-02": "+500"},
		"Gamma": {"2024-01-02": "+1,000"},
	}

	ranking := Rank(snapshot, "2024-01-02")
	require.Len(t, ranking, 3)
	require.Equal(t, "Gamma", ranking[0].Name)
	// equal gains order alphabetically, independent of map iteration
	require.Equal(t, "Alpha", ranking[1].Name)
	require.Equal(t, "Beta", ranking[2].Name)
}

func TestRankEmptyDate(t *testing.T) {
	snapshot := xpstore.Snapshot{
		"A": {"2024-01-02": "+100"},
	}
	require.Nil(t, Rank(snapshot, ""))
}

func TestRankPrefix(t *testing.T) {
	require.Equal(t, "🥇", RankPrefix(0))
	require.Equal(t, "🥈", RankPrefix(1))
	require.Equal(t, "🥉", RankPrefix(2))
	require.Equal(t, "4th", RankPrefix(3))
	require.Equal(t, "21st", RankPrefix(20))
}
