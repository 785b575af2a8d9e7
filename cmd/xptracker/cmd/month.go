package cmd

import (
	"fmt"

	"xptracker-backend/cmd/xptracker/utils"
	"xptracker-backend/lib/textutil"
	"xptracker-backend/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Print the accumulated XP totals for the month being tracked.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()

		repo := config.MonthsRepo()
		if !repo.Exists() {
			fmt.Println("No monthly totals on disk yet, run 'xptracker run' first.")
			return
		}
		totals := repo.Load()
		ranking := tracker.MonthRanking(totals)
		if len(ranking) == 0 {
			fmt.Println("No monthly totals recorded yet.")
			return
		}

		t := utils.NewTable()
		t.SetTitle(fmt.Sprintf("XP gained in %s", totals.Month))
		t.AppendHeader(table.Row{"Rank", "Character", "XP"})
		for i, entry := range ranking {
			t.AppendRow(table.Row{tracker.RankPrefix(i), entry.Name, textutil.FormatGain(entry.Gain)})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
}
