package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchdex/internal/adapters/tui/styles"
	"launchdex/internal/application/commands"
)

var (
	listLimit int
	listQuery string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed programs in launch order",
	Long: `List indexed programs in the order the picker shows them.

Examples:
  launchdex list
  launchdex list --limit 10
  launchdex list --query note`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, closeHistory, err := cfg.OpenHistoryStore()
		if err != nil {
			return err
		}
		defer closeHistory()

		ranked, err := commands.NewListCommand(cfg.IndexStore(), history, listQuery, listLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(ranked) == 0 {
			fmt.Println(styles.MutedText.Render("No programs."))
			return nil
		}
		for _, rp := range ranked {
			stats := ""
			if rp.HasHistory {
				stats = styles.MutedText.Render(fmt.Sprintf("  rank %d  score %.3f", rp.Record.Rank, rp.Score))
			}
			fmt.Printf("%s] %s%s\n", styles.SourceBadge(rp.Source.Code()), rp.Title, stats)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "show at most N programs (0 for all)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "fuzzy filter on program titles")
	rootCmd.AddCommand(listCmd)
}
