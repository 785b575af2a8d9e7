package xpstore

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// DayChanges maps a "YYYY-MM-DD" date to the raw change string
// guildstats displayed for it, e.g. "+12,345".
type DayChanges map[string]string

// Snapshot is the full scraped state for one run: character name to
// that character's daily change history. A character that failed to
// scrape maps to an empty DayChanges, never to a missing key.
type Snapshot map[string]DayChanges

// ReferenceDate returns the most recent date present in any
// character's history, or "" when no character has data. Dates sort
// lexicographically so the maximum is the latest.
func (s Snapshot) ReferenceDate() string {
	latest := ""
	for _, days := range s {
		for date := range days {
			if date > latest {
				latest = date
			}
		}
	}
	return latest
}

// Changed reports whether two snapshots differ structurally in any
// way, including purely new dates. It gates the persistence and
// notification side effects of a run. A nil history and an empty one
// compare equal, a character with no data is the same either way.
func Changed(old, current Snapshot) bool {
	return !cmp.Equal(old, current, cmpopts.EquateEmpty())
}

// BestRecord is the highest single-day gain ever seen for a character.
type BestRecord struct {
	XP   int    `json:"xp"`
	Date string `json:"date"`
}

// BestRecords is persisted across runs; characters appear only after
// their first positive gain.
type BestRecords map[string]BestRecord

// MonthTotals accumulates each character's daily gains over one
// calendar month. Totals reset when Month no longer matches the
// current period.
type MonthTotals struct {
	Month  string         `json:"month"`
	Totals map[string]int `json:"totals"`
}
