package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(err)
	}
}

// force timezone to be CET because guildstats rolls its daily
// experience tables over at server save, which follows the game
// servers' clock, not whatever machine this happens to run on.
func Now() time.Time {
	return time.Now().In(Location)
}

const dateLayout = "2006-01-02"

// DateString formats a time the way guildstats keys its daily rows.
func DateString(t time.Time) string {
	return t.In(Location).Format(dateLayout)
}

// MonthID identifies the monthly accumulation period, e.g. "2024-05".
func MonthID(t time.Time) string {
	return t.In(Location).Format("2006-01")
}

func IsLastDayOfMonth(t time.Time) bool {
	t = t.In(Location)
	return t.AddDate(0, 0, 1).Day() == 1
}
