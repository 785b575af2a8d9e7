package tracker

import (
	"cmp"
	"slices"

	"xptracker-backend/lib/textutil"
	"xptracker-backend/lib/xpstore"
)

// AccumulateMonth adds one day's ranking into the running month
// totals. When the stored period no longer matches `month` the totals
// reset to zero before anything is added, the previous month's data
// is gone after this point.
func AccumulateMonth(totals xpstore.MonthTotals, month string, ranking []Entry) xpstore.MonthTotals {
	if totals.Month != month || totals.Totals == nil {
		totals = xpstore.MonthTotals{
			Month:  month,
			Totals: map[string]int{},
		}
	}
	for _, entry := range ranking {
		totals.Totals[entry.Name] += entry.Gain
	}
	return totals
}

// MonthRanking derives the rollup leaderboard from accumulated
// totals. Zero and negative totals are excluded; same ordering rules
// as the daily ranking.
func MonthRanking(totals xpstore.MonthTotals) []Entry {
	var entries []Entry
	for name, total := range totals.Totals {
		if total <= 0 {
			continue
		}
		entries = append(entries, Entry{
			Name: name,
			Gain: total,
			Raw:  textutil.FormatGain(total),
		})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Gain != b.Gain {
			return cmp.Compare(b.Gain, a.Gain)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}
