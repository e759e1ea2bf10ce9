package cmd

import (
	"github.com/spf13/cobra"

	"launchdex/internal/adapters/launcher"
	"launchdex/internal/adapters/picker"
	"launchdex/internal/adapters/tui"
	"launchdex/internal/application/commands"
	"launchdex/internal/ports"
)

var runCmd = &cobra.Command{
	Use:   "run [picker args...]",
	Short: "Pick a program and launch it",
	Long: `Show the indexed programs, most frequently and recently used first, in the
configured line picker and launch the chosen one.

Text typed after the "<code>] <title>:" label is split like a shell command
line and passed to the program. All arguments are handed to the picker
unchanged; only a --config given before "run" is kept by launchdex.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, closeHistory, err := cfg.OpenHistoryStore()
		if err != nil {
			return err
		}
		defer closeHistory()

		run := commands.NewRunCommand(newPicker(), cfg.IndexStore(), history, launcher.New(),
			commands.WithLogger(logger),
		)
		result, err := run.Execute(cmd.Context(), passArgs)
		if err != nil {
			return err
		}

		logger.Debug("launched", "path", result.Program.Path, "rank", result.Record.Rank)
		return nil
	},
}

func newPicker() ports.Picker {
	if cfg.Picker.Builtin() {
		return tui.NewPicker()
	}
	return picker.NewProcess(cfg.Picker.Command, cfg.Picker.Args)
}

func init() {
	rootCmd.AddCommand(runCmd)
}
