package tracker

import "xptracker-backend/lib/xpstore"

// PersonalBest is emitted when a character beats its stored record.
type PersonalBest struct {
	Name     string
	Gain     int
	Date     string
	Previous int
}

// UpdateBests applies one day's ranking to the stored best records,
// mutating `bests` in place. A record only ever moves up: it is
// overwritten when the day's gain strictly exceeds it (absent counts
// as 0). Returns the beats in ranking order; an empty result means
// nothing changed.
func UpdateBests(bests xpstore.BestRecords, ranking []Entry, date string) []PersonalBest {
	var beats []PersonalBest
	for _, entry := range ranking {
		previous := bests[entry.Name].XP
		if entry.Gain <= previous {
			continue
		}
		bests[entry.Name] = xpstore.BestRecord{XP: entry.Gain, Date: date}
		beats = append(beats, PersonalBest{
			Name:     entry.Name,
			Gain:     entry.Gain,
			Date:     date,
			Previous: previous,
		})
	}
	return beats
}
