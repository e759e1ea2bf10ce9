package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchdex/internal/adapters/filesystem"
	"launchdex/internal/application/commands"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the program index",
	Long: `Scan the start menu directories (recursively) and every directory on the
search path (non-recursively) for launchable files and replace the index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := filesystem.NewScanner(cfg.Extensions, logger)
		store := cfg.IndexStore()

		result, err := commands.NewBuildIndexCommand(scanner, store, cfg.Roots()).Execute(cmd.Context())
		if err != nil {
			return err
		}

		logger.Debug("index written", "path", store.Path(), "took", result.Duration)
		fmt.Printf("Indexed %d programs\n", result.Count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
