package tracker

import (
	"cmp"
	"slices"
	"strings"

	"xptracker-backend/lib/textutil"
	"xptracker-backend/lib/xpstore"
)

// Entry is one character's position in a ranking.
type Entry struct {
	Name string
	Gain int
	// Raw is the change string as guildstats displayed it.
	Raw string
}

// Rank builds the leaderboard for one date. A character is included
// only when it has a row for that exact date, the row denotes a gain
// (guildstats prefixes gains with "+") and the parsed value is
// strictly positive. Characters without data for the date are left
// out, not treated as zero.
//
// Ordered by gain descending; equal gains tie-break alphabetically so
// the result does not depend on map iteration order.
func Rank(snapshot xpstore.Snapshot, date string) []Entry {
	if date == "" {
		return nil
	}

	var entries []Entry
	for name, days := range snapshot {
		raw, ok := days[date]
		if !ok || !strings.Contains(raw, "+") {
			continue
		}
		gain := textutil.ParseGain(raw)
		if gain <= 0 {
			continue
		}
		entries = append(entries, Entry{Name: name, Gain: gain, Raw: raw})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Gain != b.Gain {
			return cmp.Compare(b.Gain, a.Gain)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}

var medals = []string{"🥇", "🥈", "🥉"}

// RankPrefix renders the marker shown before a name: medals for the
// podium, ordinals below it.
func RankPrefix(index int) string {
	if index < len(medals) {
		return medals[index]
	}
	return textutil.Ordinal(index + 1)
}
