package cmd

import (
	"cmp"
	"fmt"
	"slices"

	"xptracker-backend/cmd/xptracker/utils"
	"xptracker-backend/lib/textutil"
	"xptracker-backend/lib/xpstore"

	"github.com/antzucaro/matchr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var bestsCmd = &cobra.Command{
	Use:   "bests [character]",
	Short: "Print personal best daily gains, for everyone or for one character.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()

		repo := config.BestsRepo()
		if !repo.Exists() {
			fmt.Println("No personal bests on disk yet, run 'xptracker run' first.")
			return
		}
		bests := repo.Load()
		if len(bests) == 0 {
			fmt.Println("No personal bests recorded yet.")
			return
		}

		if len(args) == 1 {
			printSingleBest(bests, args[0])
			return
		}

		names := make([]string, 0, len(bests))
		for name := range bests {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			if bests[a].XP != bests[b].XP {
				return cmp.Compare(bests[b].XP, bests[a].XP)
			}
			return cmp.Compare(a, b)
		})

		t := utils.NewTable()
		t.SetTitle("Personal best daily XP")
		t.AppendHeader(table.Row{"Character", "XP", "Date"})
		for _, name := range names {
			record := bests[name]
			t.AppendRow(table.Row{name, textutil.FormatGain(record.XP), record.Date})
		}
		t.Render()
	},
}

func printSingleBest(bests xpstore.BestRecords, query string) {
	for name, record := range bests {
		if textutil.NormalizeName(name) == textutil.NormalizeName(query) {
			fmt.Printf("%s's best day is %s XP on %s.\n", name, textutil.FormatGain(record.XP), record.Date)
			return
		}
	}

	closest := ""
	closestDistance := -1
	for name := range bests {
		distance := matchr.DamerauLevenshtein(textutil.NormalizeName(query), textutil.NormalizeName(name))
		if closestDistance < 0 || distance < closestDistance {
			closest = name
			closestDistance = distance
		}
	}

	fmt.Printf("No personal best recorded for %q.\n", query)
	if closest != "" && closestDistance <= len(query)/2 {
		fmt.Printf("Did you mean %q?\n", closest)
	}
}

func init() {
	rootCmd.AddCommand(bestsCmd)
}
