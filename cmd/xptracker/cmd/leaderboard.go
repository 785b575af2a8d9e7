package cmd

import (
	"fmt"

	"xptracker-backend/cmd/xptracker/utils"
	"xptracker-backend/lib/textutil"
	"xptracker-backend/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the daily XP leaderboard from the last scraped snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()

		repo := config.SnapshotRepo()
		if !repo.Exists() {
			fmt.Println("No snapshot on disk yet, run 'xptracker run' first.")
			return
		}
		snapshot := repo.Load()
		date := snapshot.ReferenceDate()
		if date == "" {
			fmt.Println("The snapshot on disk has no dated entries.")
			return
		}

		ranking := tracker.Rank(snapshot, date)
		if len(ranking) == 0 {
			fmt.Printf("No XP gains on %s.\n", date)
			return
		}

		t := utils.NewTable()
		t.SetTitle(fmt.Sprintf("XP gained on %s", date))
		t.AppendHeader(table.Row{"Rank", "Character", "XP"})
		for i, entry := range ranking {
			t.AppendRow(table.Row{tracker.RankPrefix(i), entry.Name, textutil.FormatGain(entry.Gain)})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}
