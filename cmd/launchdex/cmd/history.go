package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"launchdex/internal/adapters/tui/styles"
	"launchdex/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show launch statistics",
	Long: `Show recorded launches, highest frecency score first. Records for
programs that are no longer in the index are marked stale; they are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, closeHistory, err := cfg.OpenHistoryStore()
		if err != nil {
			return err
		}
		defer closeHistory()

		entries, err := commands.NewHistoryCommand(cfg.IndexStore(), history, historyLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println(styles.MutedText.Render("No launches recorded."))
			return nil
		}

		fmt.Println(styles.Header.Render(fmt.Sprintf("%6s  %8s  %-19s  %s", "RANK", "SCORE", "LAST LAUNCH", "PROGRAM")))
		for _, e := range entries {
			name := e.Key
			if !e.Stale {
				name = e.Program.Path
			}
			last := time.Unix(e.Record.Access, 0).Format(time.DateTime)
			line := fmt.Sprintf("%6d  %8.3f  %-19s  %s", e.Record.Rank, e.Score, last, name)
			if e.Stale {
				line += " " + styles.Stale.Render("(stale)")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most N records (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
