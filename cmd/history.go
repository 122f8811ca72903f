package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/chapsplit-cli/chapsplit/color"
	"github.com/chapsplit-cli/chapsplit/history"
	"github.com/chapsplit-cli/chapsplit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.SetOut(os.Stdout)
	historyCmd.Flags().BoolP("urls", "u", false, "Display only the source URLs, one per line")
}

// historyCmd lists past runs recorded in the local history file.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display previously completed runs",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		runs := lo.Values(saved)
		sort.Slice(runs, func(i, j int) bool {
			return runs[i].FinishedAt.After(runs[j].FinishedAt)
		})

		if lo.Must(cmd.Flags().GetBool("urls")) {
			for _, run := range runs {
				cmd.Println(run.URL)
			}
			return
		}

		if len(runs) == 0 {
			cmd.Println(style.Faint("No runs recorded yet"))
			return
		}

		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		for i, run := range runs {
			status := style.Fg(color.Green)("ok")
			if run.Failed > 0 {
				status = style.Fg(color.Red)(fmt.Sprintf("%d failed", run.Failed))
			}

			cmd.Printf("%s %s\n", headerStyle(run.Title), style.Faint(run.FinishedAt.Format("2006-01-02 15:04")))
			cmd.Printf("  %s %s, %d segments (%s)\n", run.Mode, run.Container, run.Segments, status)
			cmd.Println("  " + style.Faint(run.URL))
			cmd.Println("  " + style.Faint(run.OutputDir))

			if i < len(runs)-1 {
				cmd.Println()
			}
		}
	},
}
