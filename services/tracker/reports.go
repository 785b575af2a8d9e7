package tracker

import (
	"fmt"

	"xptracker-backend/lib/notify"
	"xptracker-backend/lib/textutil"
)

const reportFooter = "Tibia XP Tracker"

func leaderboardMessage(ranking []Entry, date string) notify.Message {
	if len(ranking) == 0 {
		return notify.Message{
			Title:       "Tibia Daily XP Leaderboard",
			Description: fmt.Sprintf("No XP gains on %s.", date),
			Color:       notify.ColorNeutral,
			Footer:      reportFooter,
		}
	}

	fields := make([]notify.Field, len(ranking))
	for i, entry := range ranking {
		fields[i] = notify.Field{
			Name:  fmt.Sprintf("%s **%s**", RankPrefix(i), entry.Name),
			Value: fmt.Sprintf("%s XP ⬆️", textutil.FormatGain(entry.Gain)),
		}
	}

	return notify.Message{
		Title: "🟡🟢🔵 Tibia Daily XP Leaderboard 🔵🟢🟡",
		Description: fmt.Sprintf(
			"👑 **Top Gainer:** **%s** 👑\n🗓️ **Date:** %s",
			ranking[0].Name, date,
		),
		Color:  notify.ColorLeaderboard,
		Footer: reportFooter,
		Fields: fields,
	}
}

func personalBestMessage(best PersonalBest) notify.Message {
	return notify.Message{
		Title: "🏅 New Personal Best!",
		Description: fmt.Sprintf(
			"**%s** just achieved a new XP record: **%s XP** on %s! 🚀",
			best.Name, textutil.FormatGain(best.Gain), best.Date,
		),
		Color:  notify.ColorPersonalBest,
		Footer: reportFooter,
	}
}

func monthlyMessage(ranking []Entry, month string) notify.Message {
	fields := make([]notify.Field, len(ranking))
	for i, entry := range ranking {
		fields[i] = notify.Field{
			Name:  fmt.Sprintf("%s **%s**", RankPrefix(i), entry.Name),
			Value: fmt.Sprintf("%s XP", textutil.FormatGain(entry.Gain)),
		}
	}

	return notify.Message{
		Title: fmt.Sprintf("📅 Monthly XP Leaderboard (%s)", month),
		Description: fmt.Sprintf(
			"👑 **Top Gainer of the Month:** **%s** 👑",
			ranking[0].Name,
		),
		Color:  notify.ColorMonthly,
		Footer: reportFooter,
		Fields: fields,
	}
}
